package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	libutils "code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/ui/assets/symbols"
	"code.tatchcapital.com/group/tatchwallet/ui/load"
	"code.tatchcapital.com/group/tatchwallet/ui/values"

	"github.com/jessevdk/go-flags"
)

// output is where command results are written.
var output io.Writer = os.Stdout

type brandingCmd struct {
	Compact bool `long:"compact" description:"Print the configuration on a single line"`
}

type networkCmd struct{}

type bundleCmd struct {
	Src string `long:"src" required:"true" description:"Directory holding the source icons"`
	Out string `long:"out" required:"true" description:"Directory the asset-symbols folder is written to"`
}

type prefsCmd struct {
	Theme string `long:"theme" description:"Set the UI theme {darkTheme, lightTheme, midnightTheme}"`
	Login string `long:"login" description:"Set the login mode {password, wallet}"`
}

func addCommands(parser *flags.Parser) {
	commands := []struct {
		name, short, long string
		data              interface{}
	}{
		{"branding", "Print the branding configuration", "Print every branding value for the connected chain as JSON", &brandingCmd{}},
		{"network", "Print the connected chain", "Print the chain id, network type and default units of the connected chain", &networkCmd{}},
		{"bundle", "Bundle the asset symbol icons", "Copy every registered asset symbol icon into the deployable asset directory", &bundleCmd{}},
		{"prefs", "Show or change the user preferences", "Show the persisted user preferences, updating them first when options are passed", &prefsCmd{}},
	}
	for _, c := range commands {
		if _, err := parser.AddCommand(c.name, c.short, c.long, c.data); err != nil {
			// Only fails on programming errors in the option tags.
			panic(err)
		}
	}
}

func writeJSON(v interface{}, compact bool) error {
	enc := json.NewEncoder(output)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func (c *brandingCmd) Execute(_ []string) error {
	return writeJSON(appInfo.Resolver.Config(), c.Compact)
}

func (c *networkCmd) Execute(_ []string) error {
	resolver := appInfo.Resolver
	id := resolver.ChainID()
	net := libutils.NetworkFromChainID(id)
	fmt.Fprintf(output, "chain id: %s\n", id)
	fmt.Fprintf(output, "network:  %s\n", net.Display())
	fmt.Fprintf(output, "units:    %s\n", strings.Join(resolver.Units(string(id.Prefix())), ", "))
	return nil
}

func (c *bundleCmd) Execute(_ []string) error {
	written, err := symbols.Bundle(context.Background(), c.Src, c.Out, symbols.Registry())
	if err != nil {
		return err
	}
	for _, name := range written {
		fmt.Fprintln(output, name)
	}
	return nil
}

func (c *prefsCmd) Execute(_ []string) error {
	appCfg := appInfo.Config()
	if c.Theme != "" || c.Login != "" {
		err := appCfg.Update(func(v *load.AppConfigValues) {
			if c.Theme != "" {
				v.Theme = values.Theme(c.Theme)
			}
			if c.Login != "" {
				v.LoginMode = values.LoginMode(c.Login)
			}
		})
		if err != nil {
			return err
		}
		log.Infof("preferences saved to %s", cfg.appConfigPath())
	}

	v := appCfg.Values()
	fmt.Fprintf(output, "theme: %s (%s)\n", v.Theme, v.Theme.Display())
	fmt.Fprintf(output, "login: %s\n", v.LoginMode)
	return nil
}
