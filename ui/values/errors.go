package values

import (
	"strings"

	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
)

// This files holds implementation to translate errors into user friendly messages.

// TranslateErr translates error codes to user friendly messages.
func TranslateErr(errStr string) string {
	switch {
	case strings.Contains(errStr, utils.ErrInvalidTheme):
		return "The selected theme is not available"
	case strings.Contains(errStr, utils.ErrLoginNotAllowed):
		return "This login mode is not allowed for this wallet"
	case strings.Contains(errStr, utils.ErrDuplicateAsset):
		return "Two asset icons would be written to the same file"
	case strings.Contains(errStr, utils.ErrUnsupportedImage):
		return "Asset icons must be PNG images"
	case strings.Contains(errStr, utils.ErrNotConnected):
		return "Unable to reach the chain API node"
	}
	return errStr
}
