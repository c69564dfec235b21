package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	libutils "code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"github.com/decred/dcrd/dcrutil/v4"
)

const (
	defaultAppName    = "tatchwallet"
	defaultLogDirname = "logs"
	defaultCfgName    = "config.json"
	defaultMaxLogZips = 3
)

var defaultHomeDir = dcrutil.AppDataDir(defaultAppName, false)

// config defines the options shared by every command.
type config struct {
	HomeDir     string `long:"appdata" description:"Directory where the app configuration file and logs are stored"`
	LogDir      string `long:"logdir" description:"Directory to log output. Defaults to <appdata>/logs"`
	MaxLogZips  int    `long:"maxlogzips" description:"The number of zipped log files created by the log rotator to be retained. Setting to 0 will keep all"`
	DebugLevel  string `short:"d" long:"debuglevel" description:"Logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem2>=<level>,... to set the log level for individual subsystems"`
	NodeURL     string `long:"node" description:"JSON-RPC URL of the chain API node used to detect the connected chain"`
	ChainID     string `long:"chainid" description:"Use this chain id instead of asking a node"`
	ShowVersion bool   `short:"V" long:"version" description:"Display version information and exit"`
}

func defaultConfig() config {
	return config{
		HomeDir:    defaultHomeDir,
		MaxLogZips: defaultMaxLogZips,
	}
}

// normalize fills the derived defaults and validates the options after they
// have been parsed.
func (cfg *config) normalize() error {
	cfg.HomeDir = cleanAndExpandPath(cfg.HomeDir)
	if cfg.LogDir == "" {
		cfg.LogDir = filepath.Join(cfg.HomeDir, defaultLogDirname)
	}
	cfg.LogDir = cleanAndExpandPath(cfg.LogDir)

	if cfg.MaxLogZips < 0 {
		return fmt.Errorf("maxlogzips must not be negative: %d", cfg.MaxLogZips)
	}
	if cfg.NodeURL != "" && cfg.ChainID != "" {
		return fmt.Errorf("node and chainid options are mutually exclusive")
	}
	return nil
}

// appConfigPath is the JSON file holding the user preferences.
func (cfg *config) appConfigPath() string {
	return filepath.Join(cfg.HomeDir, defaultCfgName)
}

// cleanAndExpandPath expands environment variables and leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~") {
		homeDir := filepath.Dir(defaultHomeDir)
		if home, err := os.UserHomeDir(); err == nil {
			homeDir = home
		}
		path = strings.Replace(path, "~", homeDir, 1)
	}
	return filepath.Clean(os.ExpandEnv(path))
}

func splitAndTrim(s, sep string) []string {
	parts := strings.Split(s, sep)
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

func ensureHomeDir(dir string) error {
	return os.MkdirAll(dir, libutils.UserDirPerm)
}
