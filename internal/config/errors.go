package config

import "errors"

var (
	// ErrStoreFileEmpty indicates no store file path was given by any source.
	ErrStoreFileEmpty = errors.New("config: store file not specified")
	// ErrConfigFileNotFound indicates an explicitly named config file is missing.
	ErrConfigFileNotFound = errors.New("config: file not found")
	// ErrConfigFileRead indicates an existing config file (global, project or
	// explicit) could not be read.
	ErrConfigFileRead = errors.New("config: file unreadable")
	// ErrConfigInvalid indicates a config file's contents did not parse.
	ErrConfigInvalid = errors.New("config: invalid contents")
)
