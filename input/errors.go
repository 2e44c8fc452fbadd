package input

import "errors"

var (
	// ErrLoadFailed indicates the input file could not be read.
	ErrLoadFailed = errors.New("input file unreadable")

	// ErrMalformedInput indicates the input is not well-formed JSON or does
	// not match the expected point-file shape.
	ErrMalformedInput = errors.New("malformed input")
)
