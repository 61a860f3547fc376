package models

import "errors"

// ErrFileNotFound indicates an input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input file could not be decoded.
var ErrInvalidFormat = errors.New("invalid format")

// ErrInvalidConfig indicates the mapping or run configuration is unusable.
var ErrInvalidConfig = errors.New("invalid configuration")
