// Package branding centralizes the customization of the wallet: its name,
// URL, default UI settings, market lists and asset namespace rules.
package branding

import (
	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/values"
)

const (
	walletName = "Tatch Cloud Wallet"
	walletURL  = "https://wallet.tatchcapital.com"
	logoRef    = "assets/logo-ico-blue.png"

	faucetURL = "https://faucet.bitshares.eu/3a2df26c1bc74473"

	configAssetExplanation = "This asset is used for decentralized configuration of the BitShares UI placed under bitshares.org."
)

// ChainIDSource provides the chain id of the network the wallet is connected
// to.
type ChainIDSource interface {
	ChainID() string
}

type (
	// Faucet describes the registration faucet shown on account creation.
	Faucet struct {
		URL      string `json:"url"`
		Show     bool   `json:"show"`
		Editable bool   `json:"editable"`
	}

	// ConfigurationAsset is the on-chain asset whose description carries the
	// decentralized UI configuration.
	ConfigurationAsset struct {
		Symbol      string `json:"symbol"`
		Explanation string `json:"explanation"`
	}

	// Config is a snapshot of every branding value for one chain.
	Config struct {
		WalletName          string             `json:"walletName"`
		WalletURL           string             `json:"walletURL"`
		Logo                string             `json:"logo"`
		Faucet              Faucet             `json:"faucet"`
		DefaultTheme        values.Theme       `json:"defaultTheme"`
		DefaultLogin        values.LoginMode   `json:"defaultLogin"`
		AllowedLogins       []values.LoginMode `json:"allowedLogins"`
		Units               []string           `json:"units"`
		MyMarketsBases      []string           `json:"myMarketsBases"`
		MyMarketsQuotes     []string           `json:"myMarketsQuotes"`
		FeaturedMarkets     []values.Market    `json:"featuredMarkets"`
		AssetNamespaces     []string           `json:"assetNamespaces"`
		AssetHideNamespaces []string           `json:"assetHideNamespaces"`
		AllowedGateways     []string           `json:"allowedGateways"`
		ConfigurationAsset  ConfigurationAsset `json:"configurationAsset"`
	}
)

// Resolver answers branding questions. Only IsTestnet and the values derived
// from it read the chain id source; everything else is constant.
type Resolver struct {
	chain ChainIDSource
}

// NewResolver returns a resolver reading the chain id from src. A nil src
// always reports the production chain.
func NewResolver(src ChainIDSource) *Resolver {
	return &Resolver{chain: src}
}

func (r *Resolver) chainID() utils.ChainID {
	if r.chain == nil {
		return utils.DefaultChainID
	}
	id := r.chain.ChainID()
	if id == "" {
		return utils.DefaultChainID
	}
	return utils.ChainID(id)
}

// IsTestnet reports whether the connected chain is anything other than the
// production chain.
//
// The chain id source hands out the production id until it has reached a
// node, so this reports false before the source is initialized.
func (r *Resolver) IsTestnet() bool {
	return isTestnet(r.chainID())
}

func isTestnet(id utils.ChainID) bool {
	return utils.NetworkFromChainID(id) != utils.Mainnet
}

// ChainID returns the chain id the resolver currently sees.
func (r *Resolver) ChainID() utils.ChainID {
	return r.chainID()
}

// WalletName is used throughout the UI and in translations.
func (r *Resolver) WalletName() string {
	return walletName
}

// WalletURL is the public URL of this wallet.
func (r *Resolver) WalletURL() string {
	return walletURL
}

// Logo is the asset reference of the logo used throughout the UI.
func (r *Resolver) Logo() string {
	return logoRef
}

// Faucet returns the registration faucet settings.
func (r *Resolver) Faucet() Faucet {
	return Faucet{
		URL:      faucetURL,
		Show:     true,
		Editable: false,
	}
}

// DefaultTheme is the theme set on first start.
func (r *Resolver) DefaultTheme() values.Theme {
	return values.MidnightTheme
}

// DefaultLogin is the login mode offered first.
func (r *Resolver) DefaultLogin() values.LoginMode {
	return values.PasswordLogin
}

// AllowedLogins lists the login modes the user may pick from.
func (r *Resolver) AllowedLogins() []values.LoginMode {
	return []values.LoginMode{values.PasswordLogin, values.WalletLogin}
}

// IsLoginAllowed reports whether mode is one of AllowedLogins.
func (r *Resolver) IsLoginAllowed(mode values.LoginMode) bool {
	for _, allowed := range r.AllowedLogins() {
		if mode == allowed {
			return true
		}
	}
	return false
}

// MyMarketsBases are the highlighted bases in "My Markets" of the exchange.
func (r *Resolver) MyMarketsBases() []string {
	return copyStrings(myMarketsBases)
}

// MyMarketsQuotes are the default quotes shown after selecting a base.
func (r *Resolver) MyMarketsQuotes() []string {
	var quotes []string
	for _, group := range values.QuoteTokenGroups() {
		quotes = append(quotes, group...)
	}
	return quotes
}

// FeaturedMarkets returns the markets shown on the landing page. When quotes
// is not empty only markets whose first symbol is in quotes are returned.
// Order is preserved.
func (r *Resolver) FeaturedMarkets(quotes []string) []values.Market {
	if len(quotes) == 0 {
		return append([]values.Market(nil), featuredMarkets...)
	}

	wanted := make(map[string]struct{}, len(quotes))
	for _, q := range quotes {
		wanted[q] = struct{}{}
	}

	var markets []values.Market
	for _, m := range featuredMarkets {
		if _, ok := wanted[m.Base]; ok {
			markets = append(markets, m)
		}
	}
	return markets
}

// AssetNamespaces are the recognized asset namespaces.
func (r *Resolver) AssetNamespaces() []string {
	return []string{"TATCH.", "BRIDGE.", "OPEN."}
}

// AssetHideNamespaces are hidden from the user when displaying symbols.
func (r *Resolver) AssetHideNamespaces() []string {
	return []string{"TATCH."}
}

// AllowedGateway returns the gateways the user can choose from in the
// deposit/withdraw modal. The argument is not checked against the list.
func (r *Resolver) AllowedGateway(gateway string) []string {
	return []string{"TATCH", "BRIDGE", "OPEN", "tatch"}
}

// SupportedLanguages is not yet supported and returns nil.
func (r *Resolver) SupportedLanguages() []string {
	return nil
}

// ConfigurationAsset returns the asset used for decentralized configuration.
//
// NOTE: the symbols look swapped, a testnet reports "NOTIFICATIONS" and the
// production chain reports "TEST". Consumers rely on this mapping.
func (r *Resolver) ConfigurationAsset() ConfigurationAsset {
	return configurationAsset(r.chainID())
}

func configurationAsset(id utils.ChainID) ConfigurationAsset {
	symbol := "TEST"
	if isTestnet(id) {
		symbol = "NOTIFICATIONS"
	}
	return ConfigurationAsset{
		Symbol:      symbol,
		Explanation: configAssetExplanation,
	}
}

// Config resolves every value for the chain the resolver currently sees. The
// chain id is read once so all chain dependent fields agree.
func (r *Resolver) Config() Config {
	id := r.chainID()
	cfg := Config{
		WalletName:          r.WalletName(),
		WalletURL:           r.WalletURL(),
		Logo:                r.Logo(),
		Faucet:              r.Faucet(),
		DefaultTheme:        r.DefaultTheme(),
		DefaultLogin:        r.DefaultLogin(),
		AllowedLogins:       r.AllowedLogins(),
		Units:               Units(id.Prefix()),
		MyMarketsBases:      r.MyMarketsBases(),
		MyMarketsQuotes:     r.MyMarketsQuotes(),
		FeaturedMarkets:     r.FeaturedMarkets(nil),
		AssetNamespaces:     r.AssetNamespaces(),
		AssetHideNamespaces: r.AssetHideNamespaces(),
		AllowedGateways:     r.AllowedGateway(""),
		ConfigurationAsset:  configurationAsset(id),
	}
	log.Debugf("resolved branding for chain %s (testnet: %v)", id.Prefix(), isTestnet(id))
	return cfg
}

func copyStrings(s []string) []string {
	return append([]string(nil), s...)
}
