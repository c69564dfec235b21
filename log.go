// Copyright (c) 2016, 2018 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"code.tatchcapital.com/group/tatchwallet/libwallet/chainapi"
	libutils "code.tatchcapital.com/group/tatchwallet/libwallet/utils"
	"code.tatchcapital.com/group/tatchwallet/logger"
	"code.tatchcapital.com/group/tatchwallet/ui/assets/symbols"
	"code.tatchcapital.com/group/tatchwallet/ui/branding"
	"code.tatchcapital.com/group/tatchwallet/ui/load"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"
)

// logWriter implements an io.Writer that outputs to both standard error and
// the write-end pipe of an initialized log rotator. Standard output is kept
// for command results.
type logWriter struct{}

// Write writes the data in p to standard error and the log rotator.
func (logWriter) Write(p []byte) (n int, err error) {
	os.Stderr.Write(p)
	if logRotator == nil {
		return len(p), nil
	}
	return logRotator.Write(p)
}

// Loggers per subsystem.  A single backend logger is created and all subsytem
// loggers created from it will write to the backend.  When adding new
// subsystems, add the subsystem logger variable here and to the
// subsystemLoggers map.
var (
	// backendLog is the logging backend used to create all subsystem loggers.
	backendLog = slog.NewBackend(logWriter{})

	// logRotator is one of the logging outputs. It should be closed on
	// application shutdown.
	logRotator *rotator.Rotator

	log     = backendLog.Logger("TWLT")
	brndLog = backendLog.Logger("BRND")
	asymLog = backendLog.Logger("ASYM")
	capiLog = backendLog.Logger("CAPI")
	loadLog = backendLog.Logger("LOAD")
)

// Initialize package-global logger variables.
func init() {
	branding.UseLogger(brndLog)
	symbols.UseLogger(asymLog)
	chainapi.UseLogger(capiLog)
	load.UseLogger(loadLog)

	logger.New(subsystemLoggers)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"TWLT": log,
	"BRND": brndLog,
	"ASYM": asymLog,
	"CAPI": capiLog,
	"LOAD": loadLog,
}

// initLogRotator initializes the logging rotater to write logs to logFile and
// create roll files in the same directory.  It must be called before the
// package-global log rotater variables are used.
func initLogRotator(logDir string, maxRolls int) {
	if logRotator != nil {
		logRotator.Close()
	}

	err := os.MkdirAll(logDir, libutils.UserDirPerm)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	r, err := rotator.New(filepath.Join(logDir, libutils.LogFileName), 32*1024, false, maxRolls)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}
	logRotator = r
}

// setLogLevels applies the --debuglevel option. It accepts either a single
// level for every subsystem or a comma separated list of subsystem=level
// pairs.
func setLogLevels(debugLevel string) error {
	if debugLevel == "" {
		debugLevel = libutils.DefaultLogLevel
	}
	if _, ok := slog.LevelFromString(debugLevel); ok {
		return logger.SetLogLevels(debugLevel)
	}

	if err := logger.SetLogLevels(libutils.DefaultLogLevel); err != nil {
		return err
	}
	for _, pair := range splitAndTrim(debugLevel, ",") {
		fields := splitAndTrim(pair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an invalid subsystem/level pair [%v]", pair)
		}
		subsysID, logLevel := fields[0], fields[1]
		if !isExistSystem(subsysID) {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- supported subsystems %v",
				subsysID, logger.SupportedSubsystems())
		}
		if _, ok := slog.LevelFromString(logLevel); !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid", logLevel)
		}
		logger.SetLogLevel(subsysID, logLevel)
	}
	return nil
}

func isExistSystem(subsysID string) bool {
	_, exists := subsystemLoggers[subsysID]
	return exists
}
