package branding

import (
	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/values"
)

// unitsEntry maps a chain id prefix to the units shown by default.
type unitsEntry struct {
	chainID utils.ChainID
	units   []string
}

var (
	// unitsTable is matched in order against the exact chain id.
	unitsTable = []unitsEntry{
		{utils.MainnetChainID, []string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}},
		{utils.TestnetChainID, []string{"TEST"}},
	}

	// defaultUnits is used for unknown chains. It must never be empty.
	defaultUnits = []string{"BTS"}

	myMarketsBases = []string{
		"TATCH.USD",
		"TATCH.EUR",
		"TATCH.NLG",
		"TATCH.BTC",
		"TCLGULDEN",
		"TATCHCOIN",
		"BTS",
		"BEOS",
	}

	featuredMarkets = []values.Market{
		{Base: "BEOS", Quote: "TATCH.NLG"},
		{Base: "TATCH.BTC", Quote: "TATCH.NLG"},
		{Base: "TATCH.EUR", Quote: "TATCH.NLG"},
		{Base: "TATCHCOIN", Quote: "TATCH.NLG"},
		{Base: "TCLGULDEN", Quote: "TATCH.NLG"},
		{Base: "TCLSILVER", Quote: "TATCH.NLG"},
		{Base: "BRIDGE.WSP", Quote: "TATCH.NLG"},
		{Base: "BRIDGE.PIVX", Quote: "TATCH.NLG"},
		{Base: "TATCH.BTC", Quote: "TATCH.EUR"},
		{Base: "BRIDGE.WSP", Quote: "TATCH.EUR"},
		{Base: "BRIDGE.PIVX", Quote: "TATCH.EUR"},
		{Base: "BTS", Quote: "TATCH.EUR"},
		{Base: "BRIDGE.LTC", Quote: "TATCH.EUR"},
		{Base: "TATCH.NLG", Quote: "TATCH.EUR"},
		{Base: "TATCHCOIN", Quote: "TATCH.EUR"},
		{Base: "TCLGULDEN", Quote: "TATCH.EUR"},
		{Base: "TCLSILVER", Quote: "TATCH.EUR"},
		{Base: "TATCH.BTC", Quote: "TATCH.BTC"},
		{Base: "BRIDGE.WSP", Quote: "TATCH.BTC"},
		{Base: "BRIDGE.PIVX", Quote: "TATCH.BTC"},
		{Base: "BTS", Quote: "TATCH.BTC"},
		{Base: "BITEUR", Quote: "TATCH.EUR"},
		{Base: "BRIDGE.LTC", Quote: "TATCH.BTC"},
		{Base: "TATCH.NLG", Quote: "TATCH.BTC"},
		{Base: "TATCHCOIN", Quote: "TATCH.BTC"},
		{Base: "TCLGULDEN", Quote: "TATCH.BTC"},
		{Base: "TCLSILVER", Quote: "TATCH.BTC"},
	}
)

// Units returns the default units for chainID. The id must match a known
// chain exactly, unknown chains get defaultUnits. The result is never empty.
func Units(chainID utils.ChainID) []string {
	for _, entry := range unitsTable {
		if entry.chainID == chainID {
			return copyStrings(entry.units)
		}
	}
	return copyStrings(defaultUnits)
}

// Units returns the default units for chainID, the production chain when
// chainID is empty.
func (r *Resolver) Units(chainID string) []string {
	if chainID == "" {
		chainID = string(utils.MainnetChainID)
	}
	return Units(utils.ChainID(chainID))
}
