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

package internal

import (
	"encoding/binary"

	"github.com/twmb/murmur3"
)

// CompactorSeed derives a PRNG seed for the coin flips a single compactor's
// halving events consume over its lifetime. Hashing (level, salt) rather
// than drawing every level from one shared rand.Source keeps the per-level
// coin sequences uncorrelated: two compactors seeded from the same stream
// position would otherwise halve in lockstep, biasing the combined sample in
// one direction over many compactions.
func CompactorSeed(level uint8, salt uint64) uint64 {
	var buf [9]byte
	buf[0] = level
	binary.LittleEndian.PutUint64(buf[1:9], salt)
	return murmur3.Sum64(buf[:])
}
