// Package symbols lists the asset symbol icons bundled with the web UI and
// copies them into the deployable asset directory.
package symbols

import (
	"path"
	"strings"

	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"decred.org/dcrwallet/v2/errors"
)

const (
	// NameTemplate is replaced by the source file name without extension.
	NameTemplate = "[name]"

	// OutputDir is the directory, relative to the bundle root, that holds
	// every symbol icon.
	OutputDir = "asset-symbols"
)

// Entry pairs a source image with the template of the file name it is
// published under.
type Entry struct {
	Source   string
	Template string
}

func sameName(source string) Entry {
	return Entry{Source: source, Template: NameTemplate + ".png"}
}

// Name returns the source file name without extension.
func (e Entry) Name() string {
	base := path.Base(e.Source)
	return strings.TrimSuffix(base, path.Ext(base))
}

// OutputName returns the bundle-relative path the source is published as,
// e.g. "asset-symbols/bts.png".
func (e Entry) OutputName() string {
	return path.Join(OutputDir, strings.ReplaceAll(e.Template, NameTemplate, e.Name()))
}

// IsRename reports whether the entry publishes the source under a different
// name.
func (e Entry) IsRename() bool {
	return path.Base(e.OutputName()) != path.Base(e.Source)
}

// Registry returns every icon to bundle. Two entries publish an image under a
// different name: nlg.png as silver.png and bkt.png as kapital.png.
func Registry() []Entry {
	return append([]Entry(nil), registry...)
}

// Validate checks that no two entries publish the same output file and that
// every entry names a PNG source.
func Validate(entries []Entry) error {
	const op errors.Op = "symbols.Validate"

	seen := make(map[string]Entry, len(entries))
	for _, e := range entries {
		if e.Source == "" || e.Template == "" {
			return errors.E(op, errors.Invalid, errors.Errorf("incomplete entry %+v", e))
		}
		if !isPlainFileName(e.Source) || !isPlainFileName(e.Template) {
			return errors.E(op, errors.Invalid, errors.Errorf("entry %+v must name files inside %s", e, OutputDir))
		}
		if !strings.EqualFold(path.Ext(e.Source), ".png") {
			return errors.E(op, errors.Invalid, errors.Errorf("%s: %s", utils.ErrUnsupportedImage, e.Source))
		}
		out := e.OutputName()
		if prev, ok := seen[out]; ok {
			return errors.E(op, errors.Exist, errors.Errorf("%s: %s and %s both publish %s",
				utils.ErrDuplicateAsset, prev.Source, e.Source, out))
		}
		seen[out] = e
	}
	return nil
}

var registry = []Entry{
	// Core asset
	sameName("bts.png"),

	// BitAssets
	sameName("usd.png"),
	sameName("eur.png"),
	sameName("cny.png"),
	sameName("gold.png"),
	sameName("btc.png"),
	{Source: "nlg.png", Template: "silver.png"},

	// 3rd party assets
	sameName("eth.png"),
	sameName("steem.png"),
	sameName("mkr.png"),
	sameName("dgd.png"),
	sameName("obits.png"),
	sameName("btsr.png"),
	sameName("dao.png"),
	sameName("lisk.png"),
	sameName("peerplays.png"),
	sameName("icoo.png"),
	sameName("blockpay.png"),
	sameName("dash.png"),
	sameName("eurt.png"),
	sameName("game.png"),
	sameName("grc.png"),
	sameName("usdt.png"),
	sameName("bkt.png"),
	{Source: "bkt.png", Template: "kapital.png"},
	sameName("dct.png"),
	sameName("incnt.png"),
	sameName("nxc.png"),
	sameName("btwty.png"),
	sameName("open.btc.png"),
	sameName("gdex.btc.png"),
	sameName("hempsweet.png"),
	sameName("eos.png"),
	sameName("yoyow.png"),
	sameName("hero.png"),
	sameName("ruble.png"),
	sameName("oct.png"),
	sameName("smoke.png"),
	sameName("muse.png"),
	sameName("ppy.png"),
	sameName("stealth.png"),
	sameName("kexcoin.png"),
	sameName("bto.png"),
	sameName("btm.png"),
	sameName("krm.png"),
	sameName("golos.png"),
	sameName("gbg.png"),
	sameName("atn.png"),
	sameName("neo.png"),
	sameName("gas.png"),
	sameName("qtum.png"),
	sameName("bkbt.png"),
	sameName("dht.png"),
	sameName("gxs.png"),
	sameName("tt.png"),
	sameName("scr.png"),
	sameName("zeph.png"),
	sameName("egem.png"),
	sameName("hertz.png"),
	sameName("dgb.png"),
	sameName("doge.png"),
	sameName("tusd.png"),
	sameName("zec.png"),
	sameName("waves.png"),
	sameName("zrx.png"),
	sameName("xrp.png"),
	sameName("xmr.png"),
	sameName("sbd.png"),
	sameName("rudex.btc.png"),
	sameName("sth.png"),
	sameName("kec.png"),
	sameName("ltc.png"),
	sameName("post.png"),
	sameName("bch.png"),
	sameName("btg.png"),

	// Tatch
	sameName("tatchcoin.png"),
	sameName("tclgulden.png"),
	sameName("tclsilver.png"),
	sameName("tatch.nlg.png"),

	// Addons
	sameName("bco.png"),
	sameName("wsp.png"),
	sameName("rpi.png"),
}

// isPlainFileName reports whether name is a single path element that cannot
// leave its directory.
func isPlainFileName(name string) bool {
	return !strings.ContainsAny(name, `/\`) && !strings.Contains(name, "..")
}
