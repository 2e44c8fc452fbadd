package main

import (
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestUploadCommandFlags(t *testing.T) {
	app := newApp()

	t.Run("url is required", func(t *testing.T) {
		args := []string{"vecload", "--api-key", "k", "--input", "points.json"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "url")
	})

	t.Run("api-key is required", func(t *testing.T) {
		args := []string{"vecload", "--url", "http://localhost:6334", "--input", "points.json"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api-key")
	})

	t.Run("input is required", func(t *testing.T) {
		args := []string{"vecload", "--url", "http://localhost:6334", "--api-key", "k"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "input")
	})

	t.Run("collection has default value", func(t *testing.T) {
		var collectionFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "collection" {
				collectionFlag = f
				break
			}
		}
		require.NotNil(t, collectionFlag)
		assert.Equal(t, "documents", collectionFlag.Value)
	})

	t.Run("dimensions has default value of 768", func(t *testing.T) {
		var dimsFlag *cli.Uint64Flag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.Uint64Flag); ok && f.Name == "dimensions" {
				dimsFlag = f
				break
			}
		}
		require.NotNil(t, dimsFlag)
		assert.Equal(t, uint64(768), dimsFlag.Value)
	})

	t.Run("batch-size has default value of 100", func(t *testing.T) {
		var batchFlag *cli.IntFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "batch-size" {
				batchFlag = f
				break
			}
		}
		require.NotNil(t, batchFlag)
		assert.Equal(t, 100, batchFlag.Value)
	})

	t.Run("timeout has default value of 30s", func(t *testing.T) {
		var timeoutFlag *cli.DurationFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.DurationFlag); ok && f.Name == "timeout" {
				timeoutFlag = f
				break
			}
		}
		require.NotNil(t, timeoutFlag)
		assert.Equal(t, 30*time.Second, timeoutFlag.Value)
	})

	t.Run("pool-size has default value of 3", func(t *testing.T) {
		var poolFlag *cli.IntFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "pool-size" {
				poolFlag = f
				break
			}
		}
		require.NotNil(t, poolFlag)
		assert.Equal(t, 3, poolFlag.Value)
	})

	t.Run("compression has default value of none", func(t *testing.T) {
		var compFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "compression" {
				compFlag = f
				break
			}
		}
		require.NotNil(t, compFlag)
		assert.Equal(t, "none", compFlag.Value)
	})

	t.Run("flags have no EnvVars", func(t *testing.T) {
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok {
				assert.Empty(t, f.EnvVars, "flag %q should not read the environment", f.Name)
			}
		}
	})
}

func TestUploadCommandValidation(t *testing.T) {
	t.Run("rejects zero batch size", func(t *testing.T) {
		args := []string{
			"vecload",
			"--url", "http://localhost:6334",
			"--api-key", "k",
			"--input", "points.json",
			"--batch-size", "0",
		}
		err := newApp().Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size must be greater than 0")
	})

	t.Run("rejects negative batch size", func(t *testing.T) {
		args := []string{
			"vecload",
			"--url", "http://localhost:6334",
			"--api-key", "k",
			"--input", "points.json",
			"--batch-size", "-1",
		}
		err := newApp().Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "batch-size must be greater than 0")
	})

	t.Run("rejects unknown compression mode", func(t *testing.T) {
		args := []string{
			"vecload",
			"--url", "http://localhost:6334",
			"--api-key", "k",
			"--input", "points.json",
			"--compression", "brotli",
		}
		err := newApp().Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "compression must be one of")
	})
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "verbose"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
		assert.Contains(t, err.Error(), "verbose")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		app := newApp()
		var levelFlag *cli.StringFlag
		for _, flag := range app.Flags {
			if f, ok := flag.(*cli.StringFlag); ok && f.Name == "log-level" {
				levelFlag = f
				break
			}
		}
		require.NotNil(t, levelFlag)
		assert.Contains(t, levelFlag.Aliases, "l")
		assert.Equal(t, "info", levelFlag.Value)
	})
}

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}
