package qdrant

import "errors"

var (
	// ErrInvalidEndpoint indicates the endpoint URL could not be parsed or
	// cannot carry a port.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrConnectionFailed indicates the client handle could not be built
	// from the supplied configuration.
	ErrConnectionFailed = errors.New("connection failed")
)
