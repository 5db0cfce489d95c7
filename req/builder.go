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

// Builder assembles a Sketch from named options, mirroring the recognized
// options k, hra, compatible, criterion, and debug. NewReqBuilder returns
// one preloaded with the package defaults; a zero-value Builder has k=0,
// which Build rejects with ErrInvalidK.
type Builder struct {
	k          int
	hra        bool
	compatible bool
	criterion  Criterion
	observer   Observer
	salt       uint64
}

// NewReqBuilder returns a Builder preloaded with the default options:
// k=12, hra=true, compatible=true, criterion=LT, no observer.
func NewReqBuilder() *Builder {
	return &Builder{
		k:          defaultK,
		hra:        defaultHRA,
		compatible: defaultCompatible,
		criterion:  defaultCriterion,
	}
}

// K sets the sketch's accuracy parameter. Odd values are rounded down;
// values below 4 are clamped to 4.
func (b *Builder) K(k int) *Builder {
	if k < minK {
		k = minK
	}
	b.k = k - (k % 2)
	return b
}

// HRA sets the high-rank-accuracy orientation.
func (b *Builder) HRA(hra bool) *Builder {
	b.hra = hra
	return b
}

// Compatible sets out-of-range quantile behavior.
func (b *Builder) Compatible(compatible bool) *Builder {
	b.compatible = compatible
	return b
}

// Criterion sets the default comparator used by rank/count queries.
func (b *Builder) Criterion(c Criterion) *Builder {
	b.criterion = c
	return b
}

// Debug installs an Observer notified at sketch lifecycle events.
func (b *Builder) Debug(observer Observer) *Builder {
	b.observer = observer
	return b
}

// Salt sets the base value folded into each compactor's randomness seed,
// for deterministic multi-sketch test setups that would otherwise collide.
func (b *Builder) Salt(salt uint64) *Builder {
	b.salt = salt
	return b
}

// Build constructs the Sketch.
func (b *Builder) Build() (*Sketch, error) {
	if b.k < minK || b.k%2 != 0 {
		return nil, ErrInvalidK
	}
	return newSketch(b.k, b.hra, b.compatible, b.criterion, b.salt, b.observer), nil
}
