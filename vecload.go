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


package vecload

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/poiesic/vecload/input"
	"github.com/poiesic/vecload/store"
	"github.com/poiesic/vecload/store/qdrant"
	"github.com/poiesic/vecload/upload"
)

// Config holds the resolved settings for one ingestion run. Every stage
// treats it as read-only.
type Config struct {
	// URL is the store endpoint, e.g. https://host:6334
	URL string

	// APIKey authenticates requests to the store
	APIKey string

	// InputPath is the JSON file holding the points
	InputPath string

	// Collection is the collection receiving the points
	Collection string

	// Dimensions is the vector size used if the collection must be created
	Dimensions uint64

	// BatchSize is the number of points sent per upsert call
	BatchSize int

	// Timeout bounds each store call
	Timeout time.Duration

	// PoolSize is the advertised connection pool size. It is reported at
	// startup for visibility; uploads stay sequential regardless.
	PoolSize int

	// Compression selects the request compression mode
	Compression qdrant.Compression
}

// DefaultConfig returns a Config with the standard defaults. URL, APIKey and
// InputPath have no defaults and must be set by the caller.
func DefaultConfig() *Config {
	return &Config{
		Collection:  "documents",
		Dimensions:  768,
		BatchSize:   100,
		Timeout:     30 * time.Second,
		PoolSize:    3,
		Compression: qdrant.CompressionNone,
	}
}

// Pipeline runs one complete ingestion: load the input file, connect to the
// store, ensure the collection exists, and upload every point in batches.
type Pipeline struct {
	config *Config
	logger *slog.Logger
	out    io.Writer
	store  store.Store
}

// PipelineOption configures a Pipeline.
type PipelineOption func(*pipelineOptions)

type pipelineOptions struct {
	logger *slog.Logger
	out    io.Writer
	store  store.Store
}

// WithLogger sets a custom logger for diagnostics.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) PipelineOption {
	return func(o *pipelineOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithOutput sets the writer receiving structured progress lines.
// Default is os.Stdout.
func WithOutput(out io.Writer) PipelineOption {
	return func(o *pipelineOptions) {
		if out != nil {
			o.out = out
		}
	}
}

// WithStore injects a pre-built store, skipping the connection step.
// The caller keeps ownership and closes it.
func WithStore(s store.Store) PipelineOption {
	return func(o *pipelineOptions) {
		o.store = s
	}
}

func NewPipeline(config *Config, opts ...PipelineOption) *Pipeline {
	if config == nil {
		config = DefaultConfig()
	}

	// Apply options
	options := &pipelineOptions{
		logger: slog.Default(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(options)
	}

	return &Pipeline{
		config: config,
		logger: options.logger,
		out:    options.out,
		store:  options.store,
	}
}

// Run executes the ingestion end to end and returns the first error
// encountered. Nothing is retried; a failed run leaves whatever batches
// already landed in place, and a re-run starts over from the beginning.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.config.BatchSize <= 0 {
		return fmt.Errorf("%w (got %d)", upload.ErrInvalidBatchSize, p.config.BatchSize)
	}

	dataset, err := input.Load(p.config.InputPath)
	if err != nil {
		return err
	}

	p.logger.Info("loaded points", "count", dataset.Len(), "file", p.config.InputPath)
	p.logger.Info("store settings",
		"timeout", p.config.Timeout,
		"pool_size", p.config.PoolSize,
		"compression", string(p.config.Compression))

	s := p.store
	if s == nil {
		connected, err := qdrant.Connect(qdrant.Config{
			URL:         p.config.URL,
			APIKey:      p.config.APIKey,
			Timeout:     p.config.Timeout,
			PoolSize:    p.config.PoolSize,
			Compression: p.config.Compression,
		}, qdrant.WithLogger(p.logger))
		if err != nil {
			return err
		}
		defer func() {
			if err := connected.Close(); err != nil {
				p.logger.Error("error closing store", "err", err)
			}
		}()
		s = connected
	}

	created, err := store.EnsureCollection(ctx, s, store.CollectionSpec{
		Name:       p.config.Collection,
		Dimensions: p.config.Dimensions,
		Distance:   store.DistanceCosine,
	})
	if err != nil {
		return err
	}
	if created {
		p.logger.Info("created collection",
			"name", p.config.Collection,
			"dimensions", p.config.Dimensions)
	}

	uploader, err := upload.NewUploader(s, &upload.Config{
		Collection: p.config.Collection,
		BatchSize:  p.config.BatchSize,
	}, p.out, upload.WithLogger(p.logger))
	if err != nil {
		return err
	}

	return uploader.Run(ctx, dataset)
}
