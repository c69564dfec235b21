package symbols_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.tatchcapital.com/group/tatchwallet/ui/assets/symbols"
	"decred.org/dcrwallet/v2/errors"
)

var _ = Describe("Registry", func() {
	It("validates without duplicate outputs", func() {
		Expect(symbols.Validate(symbols.Registry())).To(Succeed())
	})

	It("lists every icon of the web UI", func() {
		Expect(symbols.Registry()).To(HaveLen(82))
	})

	It("publishes sources under their own name", func() {
		Expect(symbols.Registry()[0].OutputName()).To(Equal("asset-symbols/bts.png"))

		e := symbols.Entry{Source: "tatch.nlg.png", Template: symbols.NameTemplate + ".png"}
		Expect(e.Name()).To(Equal("tatch.nlg"))
		Expect(e.OutputName()).To(Equal("asset-symbols/tatch.nlg.png"))
		Expect(e.IsRename()).To(BeFalse())
	})

	It("contains exactly the two explicit renames", func() {
		var renames []string
		for _, e := range symbols.Registry() {
			if e.IsRename() {
				renames = append(renames, e.Source+"->"+e.OutputName())
			}
		}
		Expect(renames).To(Equal([]string{
			"nlg.png->asset-symbols/silver.png",
			"bkt.png->asset-symbols/kapital.png",
		}))
	})

	It("publishes bkt.png both as itself and as kapital.png", func() {
		var outputs []string
		for _, e := range symbols.Registry() {
			if e.Source == "bkt.png" {
				outputs = append(outputs, e.OutputName())
			}
		}
		Expect(outputs).To(ConsistOf("asset-symbols/bkt.png", "asset-symbols/kapital.png"))
	})

	It("hands out a copy", func() {
		entries := symbols.Registry()
		entries[0].Source = "changed.png"
		Expect(symbols.Registry()[0].Source).To(Equal("bts.png"))
	})

	Describe("Validate", func() {
		It("rejects two entries publishing the same file", func() {
			err := symbols.Validate([]symbols.Entry{
				{Source: "usd.png", Template: "[name].png"},
				{Source: "dollar.png", Template: "usd.png"},
			})
			Expect(errors.Is(err, errors.Exist)).To(BeTrue())
		})

		It("rejects non PNG sources", func() {
			err := symbols.Validate([]symbols.Entry{{Source: "usd.svg", Template: "[name].png"}})
			Expect(errors.Is(err, errors.Invalid)).To(BeTrue())
		})

		It("rejects entries that would leave the output directory", func() {
			for _, e := range []symbols.Entry{
				{Source: "usd.png", Template: "../x.png"},
				{Source: "usd.png", Template: "sub/x.png"},
				{Source: "../usd.png", Template: "[name].png"},
				{Source: `icons\usd.png`, Template: "[name].png"},
			} {
				err := symbols.Validate([]symbols.Entry{e})
				Expect(errors.Is(err, errors.Invalid)).To(BeTrue(), "entry %+v", e)
			}
		})

		It("rejects incomplete entries", func() {
			err := symbols.Validate([]symbols.Entry{{Source: "usd.png"}})
			Expect(errors.Is(err, errors.Invalid)).To(BeTrue())
		})
	})
})
