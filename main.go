package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"code.tatchcapital.com/group/tatchwallet/libwallet/chainapi"
	libutils "code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/branding"
	"code.tatchcapital.com/group/tatchwallet/ui/load"
	"code.tatchcapital.com/group/tatchwallet/ui/values"

	"github.com/jessevdk/go-flags"
)

const (
	devBuild  = "dev"
	prodBuild = "prod"

	chainConnectTimeout = 10 * time.Second
)

var (
	// Version is the application version. It is set using the -ldflags
	Version = "1.0.0"
	// BuildDate is the date the application was built. It is set using the -ldflags
	BuildDate string
	// BuildEnv is the build environment. It is set using the -ldflags
	BuildEnv = devBuild
)

var (
	cfg     = defaultConfig()
	appInfo *load.AppInfo
)

func main() {
	parser := newParser()
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); ok && e.Type == flags.ErrHelp {
			fmt.Println(e.Message)
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", values.TranslateErr(err.Error()))
		os.Exit(1)
	}
}

func newParser() *flags.Parser {
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	parser.SubcommandsOptional = true
	parser.CommandHandler = func(command flags.Commander, args []string) error {
		if cfg.ShowVersion {
			fmt.Printf("%s version %s (%s)\n", defaultAppName, Version, BuildEnv)
			return nil
		}
		if command == nil {
			parser.WriteHelp(os.Stderr)
			return nil
		}
		if err := startApp(); err != nil {
			return err
		}
		defer func() {
			if logRotator != nil {
				logRotator.Close()
			}
		}()
		return command.Execute(args)
	}

	addCommands(parser)
	return parser
}

// startApp initializes logging and the shared app state from the parsed
// options.
func startApp() error {
	if err := cfg.normalize(); err != nil {
		return err
	}
	if err := ensureHomeDir(cfg.HomeDir); err != nil {
		return fmt.Errorf("failed to create app directory: %v", err)
	}

	initLogRotator(cfg.LogDir, cfg.MaxLogZips)
	if err := setLogLevels(cfg.DebugLevel); err != nil {
		return err
	}

	buildDate := time.Now()
	if BuildEnv == prodBuild {
		var err error
		buildDate, err = time.Parse(time.RFC3339, BuildDate)
		if err != nil {
			return err
		}
	}

	var chain branding.ChainIDSource
	switch {
	case cfg.ChainID != "":
		chain = chainapi.Static(chainIDFromOption(cfg.ChainID))
	case cfg.NodeURL != "":
		chain = chainapi.NewClient(cfg.NodeURL)
	}
	// A nil chain makes StartApp reuse the stored chain id, the production
	// chain when none was stored.

	var err error
	appInfo, err = load.StartApp(Version, buildDate, chain, cfg.appConfigPath())
	if err != nil {
		return err
	}

	if cfg.ChainID != "" {
		if err := appInfo.RememberChainID(appInfo.Resolver.ChainID()); err != nil {
			return err
		}
	}
	if cfg.NodeURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), chainConnectTimeout)
		defer cancel()
		appInfo.ConnectChain(ctx)
	}
	return nil
}

// chainIDFromOption accepts a network name as shorthand for its chain id.
func chainIDFromOption(opt string) string {
	switch libutils.ToNetworkType(opt) {
	case libutils.Mainnet:
		return string(libutils.DefaultChainID)
	case libutils.Testnet:
		return string(libutils.TestnetChainID)
	default:
		return opt
	}
}
