package utils

import "os"

const (
	// LogFileName is the name of the main log file.
	LogFileName = "tatchwallet.log"

	// DefaultLogLevel is used when no level is passed on the command line.
	DefaultLogLevel = "info"

	// UserFilePerm is the permission used for files written for the user.
	UserFilePerm = os.FileMode(0600)
	// UserDirPerm is the permission used for directories created for the user.
	UserDirPerm = os.FileMode(0700)
)
