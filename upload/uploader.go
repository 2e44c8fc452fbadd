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


package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/poiesic/vecload/core"
	"github.com/poiesic/vecload/store"
)

// Config holds configuration for the upload operation.
type Config struct {
	// Collection is the collection receiving the points
	Collection string

	// BatchSize is the number of points sent per write
	BatchSize int
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Collection: "documents",
		BatchSize:  100,
	}
}

// Uploader pushes a dataset into a vector store one batch at a time.
type Uploader struct {
	store  store.Store
	config *Config
	out    io.Writer
	logger *slog.Logger
}

// Option configures an Uploader.
type Option func(*Uploader)

// WithLogger sets the logger used for upload diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(u *Uploader) {
		u.logger = logger
	}
}

// NewUploader creates an uploader writing into the given store.
// A nil config uses DefaultConfig. The batch size is validated here, before
// any store traffic.
// out: where to write progress lines (typically os.Stdout)
func NewUploader(s store.Store, config *Config, out io.Writer, opts ...Option) (*Uploader, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.BatchSize <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidBatchSize, config.BatchSize)
	}

	u := &Uploader{
		store:  s,
		config: config,
		out:    out,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}

	return u, nil
}

// Run uploads every point in the dataset in order, one batch at a time.
// All batches except possibly the last carry exactly BatchSize points; the
// last carries the remainder. Each completed batch emits a progress line,
// and a successful run ends with a done line. The dataset is not modified.
//
// A failed write aborts the run and returns an *UpsertError carrying the
// 1-based index of the batch that failed; batches already written stay
// written.
func (u *Uploader) Run(ctx context.Context, dataset *core.Dataset) error {
	totalBatches := (dataset.Len() + u.config.BatchSize - 1) / u.config.BatchSize

	u.logger.Info("uploading points",
		"count", dataset.Len(),
		"batches", totalBatches,
		"batch_size", u.config.BatchSize,
		"collection", u.config.Collection)

	reporter := NewReporter(u.out, totalBatches)

	for i := 0; i < dataset.Len(); i += u.config.BatchSize {
		end := i + u.config.BatchSize
		if end > dataset.Len() {
			end = dataset.Len()
		}
		batch := dataset.Points[i:end]

		if err := u.store.UpsertPoints(ctx, u.config.Collection, batch); err != nil {
			return &UpsertError{Batch: i/u.config.BatchSize + 1, Err: err}
		}

		reporter.BatchCompleted(len(batch))
	}

	reporter.Done(dataset.Len())
	return nil
}
