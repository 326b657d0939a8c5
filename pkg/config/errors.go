package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct.
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrInvalidConfig is returned when a parsed config fails its own Validate method.
	ErrInvalidConfig = errors.New("invalid configuration")

	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	ErrNilPointer = errors.New("nil pointer provided to config loader")
)
