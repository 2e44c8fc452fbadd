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


// Package store defines the vector store abstraction used by the pipeline.
//
// The Store interface captures the three capabilities the pipeline needs
// (existence check, collection creation, and point upsert) so the rest of
// the code never couples to a concrete backend. The qdrant subpackage is the
// production implementation; the mock subpackage is an in-memory fake for
// tests.
//
// Constructors on implementation packages return concrete types; consumers
// accept the Store interface. Provisioning (EnsureCollection) is written
// against the interface only, so it works unchanged with any backend.
package store
