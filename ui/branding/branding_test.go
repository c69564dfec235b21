package branding_test

import (
	"encoding/json"

	. "github.com/onsi/ginkgo"
	"github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"code.tatchcapital.com/group/tatchwallet/libwallet/chainapi"
	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/branding"
	"code.tatchcapital.com/group/tatchwallet/ui/values"
)

const testnetChainID = "39f5e2ede1f8bc1a3a54a7914414e3779e33193f1f5693510e73cb7a87617447"

// switchingSource reports the production chain first and a testnet chain on
// every later call, like a client refreshed while a snapshot is taken.
type switchingSource struct {
	calls int
}

func (s *switchingSource) ChainID() string {
	s.calls++
	if s.calls == 1 {
		return string(utils.DefaultChainID)
	}
	return testnetChainID
}

var _ = Describe("Resolver", func() {
	var (
		mainnet *branding.Resolver
		testnet *branding.Resolver
	)

	BeforeEach(func() {
		mainnet = branding.NewResolver(chainapi.Static(utils.DefaultChainID))
		testnet = branding.NewResolver(chainapi.Static(testnetChainID))
	})

	Describe("IsTestnet", func() {
		table.DescribeTable("classifies chain ids by their first 8 characters",
			func(id string, want bool) {
				Expect(branding.NewResolver(chainapi.Static(id)).IsTestnet()).To(Equal(want))
			},
			table.Entry("full production id", string(utils.DefaultChainID), false),
			table.Entry("production prefix", "4018d784", false),
			table.Entry("public testnet", testnetChainID, true),
			table.Entry("other chain", "0123456789abcdef", true),
			table.Entry("truncated production id", "4018d78", true),
		)

		It("reports production before the chain api has connected", func() {
			client := chainapi.NewClient("http://127.0.0.1:1")
			Expect(branding.NewResolver(client).IsTestnet()).To(BeFalse())
		})

		It("reports production without a chain id source", func() {
			Expect(branding.NewResolver(nil).IsTestnet()).To(BeFalse())
		})
	})

	Describe("constant getters", func() {
		It("returns the wallet identity", func() {
			Expect(mainnet.WalletName()).To(Equal("Tatch Cloud Wallet"))
			Expect(mainnet.WalletURL()).To(Equal("https://wallet.tatchcapital.com"))
			Expect(mainnet.Logo()).To(Equal("assets/logo-ico-blue.png"))
		})

		It("returns the faucet settings", func() {
			Expect(mainnet.Faucet()).To(Equal(branding.Faucet{
				URL:      "https://faucet.bitshares.eu/3a2df26c1bc74473",
				Show:     true,
				Editable: false,
			}))
		})

		It("returns the default UI settings", func() {
			Expect(mainnet.DefaultTheme()).To(Equal(values.MidnightTheme))
			Expect(mainnet.DefaultLogin()).To(Equal(values.PasswordLogin))
			Expect(mainnet.AllowedLogins()).To(Equal([]values.LoginMode{values.PasswordLogin, values.WalletLogin}))
			Expect(mainnet.IsLoginAllowed(values.WalletLogin)).To(BeTrue())
			Expect(mainnet.IsLoginAllowed("ledger")).To(BeFalse())
		})

		It("returns the namespace rules", func() {
			Expect(mainnet.AssetNamespaces()).To(Equal([]string{"TATCH.", "BRIDGE.", "OPEN."}))
			Expect(mainnet.AssetHideNamespaces()).To(Equal([]string{"TATCH."}))
		})

		It("has no supported languages yet", func() {
			Expect(mainnet.SupportedLanguages()).To(BeEmpty())
		})
	})

	Describe("Units", func() {
		table.DescribeTable("maps chain ids to default units",
			func(id string, want []string) {
				Expect(branding.Units(utils.ChainID(id))).To(Equal(want))
			},
			table.Entry("production", "4018d784", []string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}),
			table.Entry("testnet", "39f5e2ed", []string{"TEST"}),
			table.Entry("unknown", "unknown", []string{"BTS"}),
			table.Entry("empty", "", []string{"BTS"}),
		)

		It("defaults to the production chain", func() {
			Expect(mainnet.Units("")).To(Equal([]string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}))
		})

		It("hands out copies", func() {
			units := branding.Units(utils.MainnetChainID)
			units[0] = "MUTATED"
			Expect(branding.Units(utils.MainnetChainID)[0]).To(Equal("TATCH.EUR"))
		})
	})

	Describe("markets", func() {
		It("concatenates the quote groups in declaration order", func() {
			Expect(mainnet.MyMarketsQuotes()).To(Equal([]string{
				"BTS", "TATCHCOIN", "TCLGULDEN", "TCLSILVER",
				"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG",
			}))
		})

		It("is not affected by callers changing a returned list", func() {
			quotes := mainnet.MyMarketsQuotes()
			quotes[0] = "MUTATED"
			values.NativeTokens()[0] = "MUTATED"
			Expect(mainnet.MyMarketsQuotes()[0]).To(Equal("BTS"))
		})

		It("lists the highlighted bases", func() {
			Expect(mainnet.MyMarketsBases()).To(Equal([]string{
				"TATCH.USD", "TATCH.EUR", "TATCH.NLG", "TATCH.BTC",
				"TCLGULDEN", "TATCHCOIN", "BTS", "BEOS",
			}))
		})

		It("returns every featured market unfiltered", func() {
			markets := mainnet.FeaturedMarkets(nil)
			Expect(markets).To(HaveLen(27))
			Expect(markets[0]).To(Equal(values.NewMarket("BEOS", "TATCH.NLG")))
			Expect(markets[26]).To(Equal(values.NewMarket("TCLSILVER", "TATCH.BTC")))
			Expect(mainnet.FeaturedMarkets([]string{})).To(Equal(markets))
		})

		It("filters featured markets by their first symbol", func() {
			Expect(mainnet.FeaturedMarkets([]string{"TATCH.BTC"})).To(Equal([]values.Market{
				values.NewMarket("TATCH.BTC", "TATCH.NLG"),
				values.NewMarket("TATCH.BTC", "TATCH.EUR"),
				values.NewMarket("TATCH.BTC", "TATCH.BTC"),
			}))
		})

		It("keeps declaration order across several quotes", func() {
			Expect(mainnet.FeaturedMarkets([]string{"BTS", "BITEUR"})).To(Equal([]values.Market{
				values.NewMarket("BTS", "TATCH.EUR"),
				values.NewMarket("BTS", "TATCH.BTC"),
				values.NewMarket("BITEUR", "TATCH.EUR"),
			}))
		})

		It("returns nothing for unknown quotes", func() {
			Expect(mainnet.FeaturedMarkets([]string{"NOPE"})).To(BeEmpty())
		})
	})

	Describe("AllowedGateway", func() {
		It("returns the same list whatever the argument", func() {
			want := []string{"TATCH", "BRIDGE", "OPEN", "tatch"}
			Expect(mainnet.AllowedGateway("TATCH")).To(Equal(want))
			Expect(mainnet.AllowedGateway("NOT-A-GATEWAY")).To(Equal(want))
			Expect(mainnet.AllowedGateway("")).To(Equal(want))
		})
	})

	Describe("ConfigurationAsset", func() {
		It("uses TEST on the production chain", func() {
			Expect(mainnet.ConfigurationAsset().Symbol).To(Equal("TEST"))
		})

		It("uses NOTIFICATIONS on a testnet", func() {
			asset := testnet.ConfigurationAsset()
			Expect(asset.Symbol).To(Equal("NOTIFICATIONS"))
			Expect(asset.Explanation).To(ContainSubstring("decentralized configuration"))
		})
	})

	Describe("Config", func() {
		It("resolves units for the connected chain", func() {
			Expect(mainnet.Config().Units).To(Equal([]string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}))
			Expect(testnet.Config().Units).To(Equal([]string{"TEST"}))
			Expect(branding.NewResolver(chainapi.Static("ffffffff")).Config().Units).To(Equal([]string{"BTS"}))
		})

		It("reads the chain id once per snapshot", func() {
			src := &switchingSource{}
			cfg := branding.NewResolver(src).Config()
			Expect(src.calls).To(Equal(1))
			Expect(cfg.Units).To(Equal([]string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}))
			Expect(cfg.ConfigurationAsset.Symbol).To(Equal("TEST"))
		})

		It("encodes markets as pairs", func() {
			b, err := json.Marshal(mainnet.Config())
			Expect(err).To(BeNil())

			var decoded struct {
				FeaturedMarkets [][]string `json:"featuredMarkets"`
				DefaultTheme    string     `json:"defaultTheme"`
			}
			Expect(json.Unmarshal(b, &decoded)).To(Succeed())
			Expect(decoded.FeaturedMarkets[0]).To(Equal([]string{"BEOS", "TATCH.NLG"}))
			Expect(decoded.DefaultTheme).To(Equal("midnightTheme"))
		})
	})
})
