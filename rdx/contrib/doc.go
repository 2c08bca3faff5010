// Copyright 2026 go-radixsort Authors
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

// Package contrib holds extensions built on top of the rdx engine.
//
// # Subpackages
//
//   - batch: sorts many independent slices concurrently on a persistent
//     worker pool. The engine itself stays single-threaded per slice; batch
//     only distributes whole slices across workers.
//
// Subpackages may carry their own dependencies and stability guarantees;
// see each package's documentation.
package contrib
