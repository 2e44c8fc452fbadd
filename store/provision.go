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


package store

import (
	"context"
	"fmt"
)

// EnsureCollection guarantees the collection named in spec exists before any
// upsert. An existing collection is left untouched: its configuration is
// never altered or re-validated, even if its dimensionality or metric
// differs from the spec. An absent collection is created with the spec's
// dimensionality and distance.
//
// It returns created=true only when this call issued the creation request,
// and ErrProvisionFailed when either round trip errors.
func EnsureCollection(ctx context.Context, s Store, spec CollectionSpec) (created bool, err error) {
	exists, err := s.CollectionExists(ctx, spec.Name)
	if err != nil {
		return false, fmt.Errorf("%w: checking collection %q: %w", ErrProvisionFailed, spec.Name, err)
	}
	if exists {
		return false, nil
	}

	if err := s.CreateCollection(ctx, spec); err != nil {
		return false, fmt.Errorf("%w: creating collection %q: %w", ErrProvisionFailed, spec.Name, err)
	}
	return true, nil
}
