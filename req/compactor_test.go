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
	"testing"

	"github.com/stretchr/testify/assert"
)

// fixedBitSource always returns the same parity bit, for reproducible
// compaction assertions.
type fixedBitSource struct{ bit int }

func (f fixedBitSource) NextBit() int { return f.bit }

func TestCompactorNomCapacity(t *testing.T) {
	c := newCompactor(0, true, 12, 0)
	assert.Equal(t, initSections, c.numSections)
	assert.Equal(t, 12, c.sectionSize())
	assert.Equal(t, 2*3*12, c.nomCapacity())
}

func TestCompactorOverflows(t *testing.T) {
	c := newCompactor(0, true, 4, 0)
	assert.False(t, c.overflows())
	for i := 0; i < c.nomCapacity(); i++ {
		c.buf.Append(float32(i))
	}
	assert.True(t, c.overflows())
}

func TestCompactorCompactHRA(t *testing.T) {
	c := newCompactor(0, true, 4, 0)
	c.bits = fixedBitSource{bit: 0}
	n := c.nomCapacity()
	for i := 0; i < n; i++ {
		c.buf.Append(float32(i))
	}
	c.buf.SortAscending()

	before := c.buf.Len()
	promoted := c.compact()

	assert.Less(t, c.buf.Len(), before)
	assert.Equal(t, before, c.buf.Len()+promoted.Len()*2)
	assert.Equal(t, uint64(1), c.numCompactions)
	// Promoted values are a strided subset of the original sorted range.
	for i := 1; i < promoted.Len(); i++ {
		assert.Less(t, promoted.data[i-1], promoted.data[i])
	}
}

func TestCompactorCompactLRA(t *testing.T) {
	c := newCompactor(0, false, 4, 0)
	c.bits = fixedBitSource{bit: 1}
	n := c.nomCapacity()
	for i := 0; i < n; i++ {
		c.buf.Append(float32(i))
	}
	c.buf.SortAscending()

	before := c.buf.Len()
	promoted := c.compact()

	assert.Less(t, c.buf.Len(), before)
	assert.Equal(t, before, c.buf.Len()+promoted.Len()*2)
}

func TestCompactorScheduleDoubling(t *testing.T) {
	c := newCompactor(0, true, 4, 0)
	c.bits = fixedBitSource{bit: 0}
	startSections := c.numSections
	// Force enough compactions to cross the 2^(numSections-1) doubling
	// threshold (2^(3-1) = 4 compactions at the initial schedule).
	for i := 0; i < 4; i++ {
		n := c.nomCapacity()
		for j := 0; j < n; j++ {
			c.buf.Append(float32(j))
		}
		c.buf.SortAscending()
		c.compact()
	}
	assert.Greater(t, c.numSections, startSections)
}

func TestCompactorMergeFrom(t *testing.T) {
	a := newCompactor(2, true, 12, 0)
	a.buf.Append(1)
	a.buf.Append(3)
	a.numCompactions = 2

	b := newCompactor(2, true, 12, 1)
	b.buf.Append(2)
	b.buf.Append(4)
	b.numCompactions = 5
	b.numSections = initSections * 2
	b.sectionSizeFlt = 6

	a.mergeFrom(b)
	a.buf.SortAscending()
	assert.Equal(t, []float32{1, 2, 3, 4}, a.buf.data)
	assert.Equal(t, uint64(5), a.numCompactions)
	assert.Equal(t, initSections*2, a.numSections)
	assert.Equal(t, 6.0, a.sectionSizeFlt)
}
