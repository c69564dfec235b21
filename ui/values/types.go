package values

import (
	"encoding/json"
	"fmt"
	"strings"

	"decred.org/dcrwallet/v2/errors"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Theme names a UI color theme.
type Theme string

const (
	DarkTheme     Theme = "darkTheme"
	LightTheme    Theme = "lightTheme"
	MidnightTheme Theme = "midnightTheme"
)

// Themes lists every theme the UI can render.
var Themes = []Theme{DarkTheme, LightTheme, MidnightTheme}

// IsValid reports whether t is one of Themes.
func (t Theme) IsValid() bool {
	for _, theme := range Themes {
		if t == theme {
			return true
		}
	}
	return false
}

// Display returns the theme name without the "Theme" suffix in title case,
// e.g. "Midnight".
func (t Theme) Display() string {
	caser := cases.Title(language.Und)
	return caser.String(strings.TrimSuffix(string(t), "Theme"))
}

// LoginMode is the way a user unlocks the wallet.
type LoginMode string

const (
	// PasswordLogin is the cloud login mode.
	PasswordLogin LoginMode = "password"
	// WalletLogin is the local wallet file mode.
	WalletLogin LoginMode = "wallet"
)

// The structure of the Market class is Base-Quote
// example: TATCH.BTC-TATCH.NLG
type Market struct {
	Base  string
	Quote string
}

// MarketSep separates the base and quote symbols in a market string.
const MarketSep = "-"

func NewMarket(base, quote string) Market {
	return Market{Base: base, Quote: quote}
}

func (m Market) String() string {
	return fmt.Sprintf("%s%s%s", m.Base, MarketSep, m.Quote)
}

// MarshalJSON encodes the market as a [base, quote] pair.
func (m Market) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]string{m.Base, m.Quote})
}

// UnmarshalJSON decodes a [base, quote] pair.
func (m *Market) UnmarshalJSON(b []byte) error {
	var pair []string
	if err := json.Unmarshal(b, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return errors.E(errors.Encoding, errors.Errorf("market must have 2 symbols, got %d", len(pair)))
	}
	m.Base, m.Quote = pair[0], pair[1]
	return nil
}
