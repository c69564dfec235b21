package utils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ChainID identifies the blockchain network a client is connected to. Only
// the first ChainIDPrefixLen characters are significant for classification.
type ChainID string

// NetworkType is the class of network a chain identifier belongs to.
type NetworkType string

const (
	// ChainIDPrefixLen is the number of leading characters compared when
	// classifying a chain identifier.
	ChainIDPrefixLen = 8

	// MainnetChainID is the prefix of the production network chain id.
	MainnetChainID ChainID = "4018d784"
	// TestnetChainID is the prefix of the public test network chain id.
	TestnetChainID ChainID = "39f5e2ed"

	// DefaultChainID is the full production chain id. It is what the chain
	// API hands out before it has talked to a node.
	DefaultChainID ChainID = "4018d7844c78f6a6c41c6a552b898022310fc5dec06da467ee7905a8dad512c8"

	Mainnet NetworkType = "mainnet"
	Testnet NetworkType = "testnet"
	Unknown NetworkType = "unknown"
)

// Prefix returns the significant leading part of the chain id. Ids shorter
// than ChainIDPrefixLen are returned unchanged.
func (id ChainID) Prefix() ChainID {
	if len(id) <= ChainIDPrefixLen {
		return id
	}
	return id[:ChainIDPrefixLen]
}

// String implements fmt.Stringer.
func (id ChainID) String() string {
	return string(id)
}

// NetworkFromChainID classifies a chain id. Only an exact prefix match with
// MainnetChainID is production, every other chain is treated as testnet.
func NetworkFromChainID(id ChainID) NetworkType {
	if id.Prefix() == MainnetChainID {
		return Mainnet
	}
	return Testnet
}

// Display returns the title case network name to be displayed on the app UI.
func (n NetworkType) Display() string {
	caser := cases.Title(language.Und)
	return caser.String(string(n))
}

// ToNetworkType maps the provided network string identifier to the available
// network type constants.
func ToNetworkType(str string) NetworkType {
	switch strings.ToLower(str) {
	case "mainnet", "main", "production":
		return Mainnet
	case "testnet", "testnet3", "test":
		return Testnet
	default:
		return Unknown
	}
}
