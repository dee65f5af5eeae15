package errors

import (
	"errors"
)

var (
	ErrFailedToReadConfig  = errors.New("failed to read config file")
	ErrFailedToParseConfig = errors.New("failed to parse config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrFailedToLoadEnv     = errors.New("failed to load .env file")

	ErrInvalidBaseURL   = errors.New("api base url must be an absolute http(s) url")
	ErrInvalidTimeout   = errors.New("api timeout must be greater than zero")
	ErrInvalidLogLevel  = errors.New("unknown logging level")
	ErrInvalidLogFormat = errors.New("unknown logging format")
	ErrInvalidBusBuffer = errors.New("bus buffer must be greater than zero")
	ErrInvalidWrapWidth = errors.New("ui wrap width must not be negative")

	ErrConfigExists        = errors.New("config file already exists")
	ErrFailedToWriteConfig = errors.New("failed to write config file")

	ErrNetwork               = errors.New("failed to reach advice api")
	ErrParse                 = errors.New("failed to parse advice api response")
	ErrEmptyQuery            = errors.New("search query must not be empty")
	ErrFailedToCreateRequest = errors.New("failed to create request")

	ErrUnknownCommand = errors.New("unknown command")
)

var (
	As  = errors.As
	Is  = errors.Is
	New = errors.New
)
