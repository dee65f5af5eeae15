package config

import "time"

// app constants
const (
	AppName = "adviceslip"
	Version = "0.1.0"

	FileName  = "adviceslip.yaml"
	EnvFile   = ".env"
	EnvPrefix = "ADVICE"
)

// api constants
const (
	DefaultBaseURL   = "https://api.adviceslip.com"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = AppName + "/" + Version
)

// logging constants
const (
	DefaultLogLevel  = "info"
	DefaultLogFormat = "console"
)

// ui constants
const (
	DefaultAltScreen = true
	DefaultAnimate   = true
	DefaultWrapWidth = 0
)

// bus constants
const (
	DefaultBusBuffer = 16
)

var (
	logLevels  = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic"}
	logFormats = []string{"console", "json"}
)
