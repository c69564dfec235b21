package load

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/branding"
	"code.tatchcapital.com/group/tatchwallet/ui/values"
	"decred.org/dcrwallet/v2/errors"
)

// AppConfig is a helper for reading and storing app-wide config values using a
// JSON file.
type AppConfig struct {
	mtx          sync.RWMutex
	jsonFilePath string
	resolver     *branding.Resolver
	values       *AppConfigValues
}

// AppConfigValues are app-wide configuration options with their values.
type AppConfigValues struct {
	Theme     values.Theme     `json:"theme"`
	LoginMode values.LoginMode `json:"loginMode"`
	// ChainID is the last chain id the app resolved. It is reused when no
	// node or chain id is given.
	ChainID string `json:"chainID,omitempty"`
}

// DefaultAppConfigValues returns the branding defaults.
func DefaultAppConfigValues(resolver *branding.Resolver) AppConfigValues {
	return AppConfigValues{
		Theme:     resolver.DefaultTheme(),
		LoginMode: resolver.DefaultLogin(),
	}
}

// AppConfigFromFile attempts to load and parse the JSON file at the specified
// path, and read the stored config values. If there is no file at the specified
// path, a new AppConfig instance with default values will be returned.
func AppConfigFromFile(jsonFilePath string, resolver *branding.Resolver) (*AppConfig, error) {
	defaults := DefaultAppConfigValues(resolver)
	loaded := defaults
	cfg := &AppConfig{
		jsonFilePath: jsonFilePath,
		resolver:     resolver,
		values:       &loaded, // updated below if the json file exists
	}

	cfgJSON, err := os.ReadFile(jsonFilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("no config at %s, using defaults", jsonFilePath)
			return cfg, nil
		}
		return nil, fmt.Errorf("os.ReadFile error: %v", err)
	}

	if err = json.Unmarshal(cfgJSON, cfg.values); err != nil {
		return nil, fmt.Errorf("unmarshal cfg json error: %v", err)
	}

	// Values the branding no longer offers fall back to the defaults.
	if !cfg.values.Theme.IsValid() {
		log.Warnf("ignoring unknown theme %q", cfg.values.Theme)
		cfg.values.Theme = defaults.Theme
	}
	if !resolver.IsLoginAllowed(cfg.values.LoginMode) {
		log.Warnf("ignoring login mode %q", cfg.values.LoginMode)
		cfg.values.LoginMode = defaults.LoginMode
	}

	return cfg, nil
}

// Values returns a read-only copy of the current app-wide cofiguration values.
func (cfg *AppConfig) Values() AppConfigValues {
	cfg.mtx.RLock()
	defer cfg.mtx.RUnlock()
	return *cfg.values // return a copy to prevent unprotected mutation
}

// Update provides access to the current app-wide cofiguration values for
// updating in a concurrent-safe manner. The update is discarded if the
// resulting values are not offered by the branding or cannot be persisted to
// the JSON file.
func (cfg *AppConfig) Update(updateFn func(*AppConfigValues)) error {
	const op errors.Op = "load.AppConfig.Update"

	// Write-lock the mtx to prevent concurrent updates and reads.
	cfg.mtx.Lock()
	defer cfg.mtx.Unlock()

	// Allow the caller to update a temporary copy of the values. Only accept
	// the update if the changes can be persisted to file below.
	tempValues := *cfg.values
	updateFn(&tempValues)

	if !tempValues.Theme.IsValid() {
		return errors.E(op, errors.Invalid, errors.Errorf("%s: %s", utils.ErrInvalidTheme, tempValues.Theme))
	}
	if !cfg.resolver.IsLoginAllowed(tempValues.LoginMode) {
		return errors.E(op, errors.Invalid, errors.Errorf("%s: %s", utils.ErrLoginNotAllowed, tempValues.LoginMode))
	}

	cfgJSON, err := json.Marshal(tempValues)
	if err != nil {
		return errors.E(op, errors.Encoding, err)
	}
	if err = os.WriteFile(cfg.jsonFilePath, cfgJSON, utils.UserFilePerm); err != nil {
		return errors.E(op, errors.IO, err)
	}

	cfg.values = &tempValues
	return nil
}
