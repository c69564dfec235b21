package values

// Quote token groups, in the order they are offered after selecting a base.
var (
	nativeTokens  = []string{"BTS"}
	tatchTokens   = []string{"TATCHCOIN", "TCLGULDEN", "TCLSILVER"}
	tatchGateways = []string{"TATCH.EUR", "TATCH.USD", "TATCH.BTC", "TATCH.NLG"}
)

// NativeTokens returns the core chain tokens.
func NativeTokens() []string {
	return append([]string(nil), nativeTokens...)
}

// TatchTokens returns the tokens issued by Tatch.
func TatchTokens() []string {
	return append([]string(nil), tatchTokens...)
}

// TatchGateways returns the gateway-bridged Tatch assets.
func TatchGateways() []string {
	return append([]string(nil), tatchGateways...)
}

// QuoteTokenGroups returns copies of the quote groups in declaration order.
func QuoteTokenGroups() [][]string {
	return [][]string{NativeTokens(), TatchTokens(), TatchGateways()}
}
