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
	"math"

	"github.com/cespare/xxhash/v2"
)

// Observer is an optional collaborator notified at lifecycle events. No
// event may mutate sketch state; implementations are for diagnostics only.
type Observer interface {
	OnStart(k int, hra bool)
	OnNewCompactor(level int)
	OnCompressStart(retained, maxNominalSize int)
	OnCompressDone(retained, maxNominalSize int)
	OnMustAddCompactor(level int)
	OnSerialize(numBytes int, fingerprint uint64)
}

// noopObserver is the default Observer; every method is a no-op so callers
// never need to nil-check Sketch.observer.
type noopObserver struct{}

func (noopObserver) OnStart(int, bool)        {}
func (noopObserver) OnNewCompactor(int)       {}
func (noopObserver) OnCompressStart(int, int) {}
func (noopObserver) OnCompressDone(int, int)  {}
func (noopObserver) OnMustAddCompactor(int)   {}
func (noopObserver) OnSerialize(int, uint64)  {}

var defaultObserver Observer = noopObserver{}

// Fingerprint returns a cheap content digest of a set of retained values.
// ToByteArray computes one over the full retained set and passes it to
// Observer.OnSerialize, so an implementation can log or compare a
// serialized image's contents without retaining the byte slice itself.
func Fingerprint(values []float32) uint64 {
	h := xxhash.New()
	buf := make([]byte, 4)
	for _, v := range values {
		bits := math.Float32bits(v)
		buf[0] = byte(bits)
		buf[1] = byte(bits >> 8)
		buf[2] = byte(bits >> 16)
		buf[3] = byte(bits >> 24)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
