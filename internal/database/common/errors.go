package common

import "errors"

var (
	// ErrUnsupportedOperation is returned when a dialect cannot express an
	// operation without rebuilding the table.
	ErrUnsupportedOperation = errors.New("operation not supported by dialect")
	ErrMalformedIndexSpec   = errors.New("malformed index column spec")
	ErrUnknownColumnKind    = errors.New("unknown column kind")
	ErrUnknownIndexKind     = errors.New("unknown index kind")
	ErrInvalidDefault       = errors.New("default value does not fit column kind")
	ErrInvalidSchema        = errors.New("invalid schema definition")
	ErrMissingParam         = errors.New("missing query parameter")
	ErrNotConnected         = errors.New("adapter is not connected")
)
