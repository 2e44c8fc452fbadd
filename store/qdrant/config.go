// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package qdrant

import "time"

// Config holds connection settings for the Qdrant-backed store.
type Config struct {
	// URL is the user-supplied endpoint.
	// It is normalized by ParseEndpoint before dialing: a missing port
	// becomes DefaultGRPCPort, an https scheme selects TLS.
	URL string

	// APIKey authenticates every call. Managed-cloud clusters require it.
	APIKey string

	// Timeout bounds each individual store call.
	// Zero or negative disables the bound.
	Timeout time.Duration

	// PoolSize is the transport's connection capacity. The pipeline issues
	// calls strictly sequentially, so the value is reported at startup for
	// visibility but never drives concurrency.
	PoolSize int

	// Compression selects the wire compression mode; see ParseCompression.
	Compression Compression
}

// DefaultConfig returns a Config with the standard defaults: a 30 second
// per-call timeout, a pool capacity of 3, and no compression.
func DefaultConfig() Config {
	return Config{
		Timeout:     30 * time.Second,
		PoolSize:    3,
		Compression: CompressionNone,
	}
}
