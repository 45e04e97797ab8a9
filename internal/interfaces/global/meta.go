// Package global
package global

import (
	"flag"
	"time"
)

var (
	DebugMode      = flag.Bool("debug", false, "Enable debug mode")
	ConfigFilePath = flag.String("config", "./config.json", "Path to configuration file")
	LogFilePath    = flag.String("log", "./logs/surety.log", "Path to log file")
	SkipRelay      = flag.Bool("skip_relay", false, "Do not start the simulated oracle relay")
)

const (
	AppVersion    = "0.3.0"
	ConfigVersion = "0.3.0"

	DefaultFilePermissions     = 0644
	DefaultDirectoryPermission = 0755

	// SubUnitsPerUnit is the number of indivisible sub-units in one unit of native value
	SubUnitsPerUnit = 1_000_000_000

	EventBusBufferSize = 64
	QueryPageSizeMax   = 200
	ShutdownTimeout    = 10 * time.Second
)
