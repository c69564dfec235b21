package load

import (
	"context"
	"time"

	"code.tatchcapital.com/group/tatchwallet/libwallet/chainapi"
	"code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/branding"
	"decred.org/dcrwallet/v2/errors"
)

// ChainSource is a chain id source that can be refreshed from a node.
type ChainSource interface {
	branding.ChainIDSource
	Refresh(ctx context.Context) (utils.ChainID, error)
}

// AppInfo is the container for the properties every command relies on.
type AppInfo struct {
	version     string
	buildDate   time.Time
	startUpTime time.Time

	cfg      *AppConfig
	chain    branding.ChainIDSource
	Resolver *branding.Resolver
}

// StartApp returns an instance of AppInfo with the startUpTime set to the
// current time. chain supplies the connected chain id and the preferences are
// read from appCfgFilePath. A nil chain reuses the chain id stored in the
// preferences, or the production chain when none is stored.
func StartApp(version string, buildDate time.Time, chain branding.ChainIDSource, appCfgFilePath string) (*AppInfo, error) {
	// Theme and login checks do not depend on the chain.
	appCfg, err := AppConfigFromFile(appCfgFilePath, branding.NewResolver(nil))
	if err != nil {
		return nil, err
	}

	if chain == nil {
		if id := appCfg.Values().ChainID; id != "" {
			log.Debugf("reusing stored chain id %s", utils.ChainID(id).Prefix())
			chain = chainapi.Static(id)
		}
	}
	resolver := branding.NewResolver(chain)

	return &AppInfo{
		version:     version,
		buildDate:   buildDate,
		startUpTime: time.Now(),
		cfg:         appCfg,
		chain:       chain,
		Resolver:    resolver,
	}, nil
}

// BuildDate returns the app's build date.
func (app *AppInfo) BuildDate() time.Time {
	return app.buildDate
}

// Version returns the app's version.
func (app *AppInfo) Version() string {
	return app.version
}

// StartupTime returns the app's startup time.
func (app *AppInfo) StartupTime() time.Time {
	return app.startUpTime
}

// Config returns the persisted user preferences.
func (app *AppInfo) Config() *AppConfig {
	return app.cfg
}

// RememberChainID stores id in the preferences so later runs without a node
// reuse it.
func (app *AppInfo) RememberChainID(id utils.ChainID) error {
	if id == "" {
		return errors.E(errors.Invalid, errors.New(utils.ErrEmptyChainID))
	}
	return app.cfg.Update(func(v *AppConfigValues) {
		v.ChainID = string(id)
	})
}

// ConnectChain refreshes the chain id when the source supports it and stores
// the refreshed id. A failure is logged and the source keeps reporting its
// fallback chain id.
func (app *AppInfo) ConnectChain(ctx context.Context) utils.NetworkType {
	if src, ok := app.chain.(ChainSource); ok {
		id, err := src.Refresh(ctx)
		if err != nil {
			log.Warnf("chain api unavailable, assuming %s: %v", utils.NetworkFromChainID(app.Resolver.ChainID()).Display(), err)
		} else if err := app.RememberChainID(id); err != nil {
			log.Errorf("unable to store chain id: %v", err)
		}
	}
	net := utils.NetworkFromChainID(app.Resolver.ChainID())
	log.Infof("using %s chain %s", net.Display(), app.Resolver.ChainID().Prefix())
	return net
}
