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


package input

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/poiesic/vecload/core"
)

// pointFile mirrors the on-disk document. Pointer fields distinguish absent
// or null values from present ones, keeping required fields required.
type pointFile struct {
	Points []pointRecord `json:"points"`
}

type pointRecord struct {
	ID      *string         `json:"id"`
	Vector  *[]float32      `json:"vector"`
	Payload json.RawMessage `json:"payload"`
}

// Load reads the file at path and parses it into a dataset.
// It returns ErrLoadFailed when the file cannot be read and ErrMalformedInput
// when the contents do not parse. There is no partial result: any failure
// discards everything read so far.
func Load(path string) (*core.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}
	return Parse(data)
}

// Parse decodes a point file held in memory. See Load for failure modes.
func Parse(data []byte) (*core.Dataset, error) {
	var doc pointFile
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if doc.Points == nil {
		return nil, fmt.Errorf("%w: missing points field", ErrMalformedInput)
	}

	points := make([]core.Point, 0, len(doc.Points))
	for i, rec := range doc.Points {
		point, err := rec.toPoint()
		if err != nil {
			return nil, fmt.Errorf("%w: point %d: %w", ErrMalformedInput, i, err)
		}
		points = append(points, point)
	}

	return &core.Dataset{Points: points}, nil
}

func (r pointRecord) toPoint() (core.Point, error) {
	if r.ID == nil {
		return core.Point{}, errors.New("missing id")
	}
	if r.Vector == nil {
		return core.Point{}, errors.New("missing vector")
	}
	if r.Payload == nil {
		return core.Point{}, errors.New("missing payload")
	}

	payload, err := decodePayload(r.Payload)
	if err != nil {
		return core.Point{}, err
	}

	return core.Point{ID: *r.ID, Vector: *r.Vector, Payload: payload}, nil
}

// decodePayload unpacks the raw payload value. Only JSON objects are
// accepted; scalars and arrays have no representation in the store's
// document model. A null payload becomes an empty one.
func decodePayload(raw json.RawMessage) (map[string]any, error) {
	if string(raw) == "null" {
		return nil, nil
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, errors.New("payload must be an object")
		}
		return nil, err
	}
	return payload, nil
}
