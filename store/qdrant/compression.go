package qdrant

import (
	"fmt"
	"strings"

	"google.golang.org/grpc/encoding/gzip"
)

// Compression is the wire-level encoding applied to request payloads.
type Compression string

const (
	// CompressionNone sends requests uncompressed.
	CompressionNone Compression = "none"

	// CompressionGzip compresses request payloads with gzip.
	CompressionGzip Compression = "gzip"

	// CompressionZstd is accepted but degrades to gzip: the transport ships
	// no zstd codec.
	CompressionZstd Compression = "zstd"

	// CompressionLZ4 is accepted but degrades to gzip: the transport ships
	// no lz4 codec.
	CompressionLZ4 Compression = "lz4"
)

// ParseCompression maps a mode name to a Compression, case-insensitively.
func ParseCompression(s string) (Compression, error) {
	switch c := Compression(strings.ToLower(s)); c {
	case CompressionNone, CompressionGzip, CompressionZstd, CompressionLZ4:
		return c, nil
	default:
		return "", fmt.Errorf("compression must be one of none, gzip, zstd, lz4 (got %q)", s)
	}
}

// resolveCodec maps the mode to the codec name registered with the
// transport. An empty codec means no compression. substituted reports a
// gzip downgrade the caller should surface as a warning; resolution never
// fails for a recognized mode.
func (c Compression) resolveCodec() (codec string, substituted bool, err error) {
	switch c {
	case CompressionNone, "":
		return "", false, nil
	case CompressionGzip:
		return gzip.Name, false, nil
	case CompressionZstd, CompressionLZ4:
		return gzip.Name, true, nil
	default:
		return "", false, fmt.Errorf("unrecognized compression mode %q", string(c))
	}
}
