package config

import "errors"

// Configuration errors
var (
	ErrNotFound          = errors.New("configuration file not found")
	ErrMalformed         = errors.New("malformed configuration")
	ErrInvalidColorSpec  = errors.New("invalid colors")
	ErrInvalidLabelEntry = errors.New("invalid label entry")
)
