package symbols_test

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"code.tatchcapital.com/group/tatchwallet/ui/assets/symbols"
	"decred.org/dcrwallet/v2/errors"
)

func writePNG(dir, name string) {
	f, err := os.Create(filepath.Join(dir, name))
	Expect(err).To(BeNil())
	defer f.Close()
	Expect(png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2)))).To(Succeed())
}

var _ = Describe("Bundle", func() {
	var srcDir, outDir string

	BeforeEach(func() {
		var err error
		srcDir, err = os.MkdirTemp("", "symbols-src")
		Expect(err).To(BeNil())
		outDir, err = os.MkdirTemp("", "symbols-out")
		Expect(err).To(BeNil())
	})

	AfterEach(func() {
		os.RemoveAll(srcDir)
		os.RemoveAll(outDir)
	})

	It("copies every source under its output name", func() {
		entries := []symbols.Entry{
			{Source: "bts.png", Template: "[name].png"},
			{Source: "nlg.png", Template: "silver.png"},
			{Source: "bkt.png", Template: "[name].png"},
			{Source: "bkt.png", Template: "kapital.png"},
		}
		for _, name := range []string{"bts.png", "nlg.png", "bkt.png"} {
			writePNG(srcDir, name)
		}

		written, err := symbols.Bundle(context.Background(), srcDir, outDir, entries)
		Expect(err).To(BeNil())
		Expect(written).To(Equal([]string{
			"asset-symbols/bts.png",
			"asset-symbols/silver.png",
			"asset-symbols/bkt.png",
			"asset-symbols/kapital.png",
		}))

		files, err := os.ReadDir(filepath.Join(outDir, symbols.OutputDir))
		Expect(err).To(BeNil())
		Expect(files).To(HaveLen(4))

		src, err := os.ReadFile(filepath.Join(srcDir, "nlg.png"))
		Expect(err).To(BeNil())
		dst, err := os.ReadFile(filepath.Join(outDir, "asset-symbols", "silver.png"))
		Expect(err).To(BeNil())
		Expect(dst).To(Equal(src))
	})

	It("fails on a missing source", func() {
		_, err := symbols.Bundle(context.Background(), srcDir, outDir, []symbols.Entry{
			{Source: "missing.png", Template: "[name].png"},
		})
		Expect(errors.Is(err, errors.NotExist)).To(BeTrue())
	})

	It("refuses files that are not PNG images", func() {
		Expect(os.WriteFile(filepath.Join(srcDir, "fake.png"), []byte("GIF89a"), 0644)).To(Succeed())
		_, err := symbols.Bundle(context.Background(), srcDir, outDir, []symbols.Entry{
			{Source: "fake.png", Template: "[name].png"},
		})
		Expect(errors.Is(err, errors.Invalid)).To(BeTrue())
	})

	It("never writes outside the asset directory", func() {
		writePNG(srcDir, "bts.png")
		_, err := symbols.Bundle(context.Background(), srcDir, outDir, []symbols.Entry{
			{Source: "bts.png", Template: "../escaped.png"},
		})
		Expect(errors.Is(err, errors.Invalid)).To(BeTrue())
		_, statErr := os.Stat(filepath.Join(outDir, "escaped.png"))
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})

	It("validates before touching the output directory", func() {
		_, err := symbols.Bundle(context.Background(), srcDir, outDir, []symbols.Entry{
			{Source: "a.png", Template: "x.png"},
			{Source: "b.png", Template: "x.png"},
		})
		Expect(errors.Is(err, errors.Exist)).To(BeTrue())
		_, statErr := os.Stat(filepath.Join(outDir, symbols.OutputDir))
		Expect(os.IsNotExist(statErr)).To(BeTrue())
	})
})
