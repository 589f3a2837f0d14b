package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrReadingFile is returned when the policy file cannot be opened
	ErrReadingFile = errors.New("failed to read config file")

	// ErrParsingFile is returned when the policy file is not valid YAML for the target struct
	ErrParsingFile = errors.New("failed to parse config file")
)
