// Copyright 2026 The req-go Authors
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

package req

import (
	"math/rand"

	"github.com/datasketches-contrib/req-go/internal"
)

// BitSource produces the uniform coin flips a compaction event consumes to
// choose which half of a span it promotes. Tests inject a deterministic
// BitSource so compaction outputs are reproducible.
type BitSource interface {
	NextBit() int
}

// randBitSource wraps a math/rand source seeded once per compactor.
type randBitSource struct {
	rnd *rand.Rand
}

func newRandBitSource(seed uint64) *randBitSource {
	return &randBitSource{rnd: rand.New(rand.NewSource(int64(seed)))}
}

func (r *randBitSource) NextBit() int {
	return r.rnd.Intn(2)
}

// newCompactorBitSource derives a per-compactor seed from (level, salt) via
// murmur3 rather than sharing one process-wide rand.Source across every
// level; see internal.CompactorSeed. Seeded once at construction, it runs
// as a single continuing PRNG stream for the compactor's lifetime — it is
// never re-seeded as numCompactions advances.
func newCompactorBitSource(level uint8, salt uint64) BitSource {
	return newRandBitSource(internal.CompactorSeed(level, salt))
}
