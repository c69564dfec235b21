package utils

const (
	// Error Codes
	ErrNotConnected      = "not_connected"
	ErrInvalidTheme      = "invalid_theme"
	ErrLoginNotAllowed   = "login_not_allowed"
	ErrDuplicateAsset    = "duplicate_asset_output"
	ErrUnsupportedImage  = "unsupported_image"
	ErrEmptyChainID      = "empty_chain_id"
	ErrAPICallNotAllowed = "api_call_not_allowed"
)
