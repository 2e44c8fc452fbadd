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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/poiesic/vecload"
	"github.com/poiesic/vecload/store/qdrant"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:   "vecload",
		Usage:  "Upload embeddings to a Qdrant vector database",
		Before: setupLogger,
		Action: uploadCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Qdrant endpoint URL",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "api-key",
				Usage:    "API key for the Qdrant endpoint",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "input",
				Aliases:  []string{"i"},
				Usage:    "Path to the JSON points file",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "collection",
				Usage: "Target collection name",
				Value: "documents",
			},
			&cli.Uint64Flag{
				Name:  "dimensions",
				Usage: "Vector dimensionality used when creating the collection",
				Value: 768,
			},
			&cli.IntFlag{
				Name:  "batch-size",
				Usage: "Number of points to upsert in each batch",
				Value: 100,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "Per-request timeout",
				Value: 30 * time.Second,
			},
			&cli.IntFlag{
				Name:  "pool-size",
				Usage: "Connection pool size (reported, uploads stay sequential)",
				Value: 3,
			},
			&cli.StringFlag{
				Name:  "compression",
				Usage: "Request compression mode (none, gzip, zstd, lz4)",
				Value: "none",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
	}
}

func uploadCommand(c *cli.Context) error {
	ctx := context.Background()

	// Validate flags
	batchSize := c.Int("batch-size")
	if batchSize <= 0 {
		return fmt.Errorf("batch-size must be greater than 0")
	}

	compression, err := qdrant.ParseCompression(c.String("compression"))
	if err != nil {
		return err
	}

	config := &vecload.Config{
		URL:         c.String("url"),
		APIKey:      c.String("api-key"),
		InputPath:   c.String("input"),
		Collection:  c.String("collection"),
		Dimensions:  c.Uint64("dimensions"),
		BatchSize:   batchSize,
		Timeout:     c.Duration("timeout"),
		PoolSize:    c.Int("pool-size"),
		Compression: compression,
	}

	fmt.Fprintf(os.Stderr, "Endpoint: %s\n", config.URL)
	fmt.Fprintf(os.Stderr, "Input: %s\n", config.InputPath)
	fmt.Fprintf(os.Stderr, "Collection: %s\n", config.Collection)
	fmt.Fprintln(os.Stderr)

	pipeline := vecload.NewPipeline(config)
	if err := pipeline.Run(ctx); err != nil {
		return fmt.Errorf("upload failed: %w", err)
	}

	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
