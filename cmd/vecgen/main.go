package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/google/uuid"
)

var titles = []string{
	"Quarterly infrastructure review",
	"Incident postmortem: cache stampede",
	"Onboarding guide for new operators",
	"Capacity planning worksheet",
	"Service dependency inventory",
	"Release notes archive",
	"Runbook: failover drill",
	"Schema migration checklist",
	"Vendor evaluation summary",
	"Latency budget proposal",
	"Storage tiering analysis",
	"Deprecation notice: legacy ingest API",
	"Meeting notes: platform sync",
	"Escalation policy draft",
	"Cost attribution report",
	"Threat model walkthrough",
	"Load test findings",
	"Data retention policy",
	"Query performance field guide",
	"Backfill procedure",
}

var (
	outFileName = flag.String("output", "points.json", "file to write generated points to")
	pointCount  = flag.Int("count", 1000, "number of points to generate")
	dimensions  = flag.Int("dimensions", 768, "vector dimensionality")
	seed        = flag.Uint64("seed", 1, "seed for the vector generator")
)

func init() {
	handler := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	slog.SetDefault(slog.New(handler))
	flag.Parse()
}

// point mirrors the upload input schema.
type point struct {
	ID      string         `json:"id"`
	Vector  []float32      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

type pointsFile struct {
	Points []point `json:"points"`
}

// randomVector returns a vector with components in [-1, 1).
func randomVector(rng *rand.Rand, dims int) []float32 {
	v := make([]float32, dims)
	for i := range v {
		v[i] = rng.Float32()*2 - 1
	}
	return v
}

func main() {
	rng := rand.New(rand.NewPCG(*seed, 0))

	points := make([]point, *pointCount)
	for i := range points {
		points[i] = point{
			ID:     uuid.NewString(),
			Vector: randomVector(rng, *dimensions),
			Payload: map[string]any{
				"title": fmt.Sprintf("%s #%d", titles[i%len(titles)], i),
				"seq":   i,
			},
		}
	}

	data, err := json.Marshal(pointsFile{Points: points})
	if err != nil {
		panic(err)
	}

	if err := os.WriteFile(*outFileName, data, 0644); err != nil {
		panic(err)
	}

	slog.Info("wrote points file",
		"file", *outFileName,
		"count", *pointCount,
		"dimensions", *dimensions)
}
