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

	"github.com/datasketches-contrib/req-go/internal"
)

const (
	minK         = 4
	initSections = 3
)

// compactor stores a sample at a single weight class 2^lgWeight and decides
// when to compact, which half to keep, and how the capacity schedule
// advances.
type compactor struct {
	lgWeight       uint8
	hra            bool
	sectionSizeFlt float64
	numSections    int
	numCompactions uint64
	state          uint64
	buf            *floatBuffer
	bits           BitSource
	salt           uint64
}

func newCompactor(lgWeight uint8, hra bool, k int, salt uint64) *compactor {
	c := &compactor{
		lgWeight:       lgWeight,
		hra:            hra,
		sectionSizeFlt: float64(k),
		numSections:    initSections,
		buf:            newFloatBuffer(2 * initSections * k),
		salt:           salt,
	}
	c.bits = newCompactorBitSource(lgWeight, salt)
	return c
}

// sectionSize is the nominal section width, rounded to the nearest int and
// floored at minK/2.
func (c *compactor) sectionSize() int {
	s := int(math.Round(c.sectionSizeFlt))
	if s < minK/2 {
		return minK / 2
	}
	return s
}

// nomCapacity is the retained-item threshold that triggers compaction.
func (c *compactor) nomCapacity() int {
	return 2 * c.numSections * c.sectionSize()
}

func (c *compactor) overflows() bool {
	return c.buf.Len() >= c.nomCapacity()
}

// compact halves the compactor per spec.md §4.1 and returns the promoted
// set as a sorted buffer of weight 2^(lgWeight+1). buf must be sorted
// ascending and at or past nomCapacity before calling.
func (c *compactor) compact() *floatBuffer {
	secSize := c.sectionSize()
	submittedLen := 2 * c.numSections * secSize
	total := c.buf.Len()
	retainLen := total - submittedLen

	var retain, submitted []float32
	if c.hra {
		// low end preserved as residue, high end submitted to halving
		retain = c.buf.data[:retainLen]
		submitted = c.buf.data[retainLen:]
	} else {
		// high end preserved as residue, low end submitted to halving
		submitted = c.buf.data[:submittedLen]
		retain = c.buf.data[submittedLen:]
	}

	secsToCompact := int(internal.CountTrailingZerosInU64(c.state)) + 1
	if secsToCompact > c.numSections {
		secsToCompact = c.numSections
	}
	c.state++

	spanLen := secsToCompact * secSize * 2
	// The span folded this event sits at the end of the submitted region
	// adjacent to the retain/submit boundary: for hra that is the near
	// (low) edge of the submitted suffix, for !hra the near (high) edge
	// of the submitted prefix. Sections farther from the boundary are
	// folded in later events as the state bitfield advances.
	var spanLo int
	if c.hra {
		spanLo = 0
	} else {
		spanLo = len(submitted) - spanLen
	}
	span := submitted[spanLo : spanLo+spanLen]
	untouched := make([]float32, 0, len(submitted)-spanLen)
	if c.hra {
		untouched = append(untouched, submitted[spanLen:]...)
	} else {
		untouched = append(untouched, submitted[:len(submitted)-spanLen]...)
	}

	b := c.bits.NextBit()
	promoted := make([]float32, 0, spanLen/2)
	for i := b; i < len(span); i += 2 {
		promoted = append(promoted, span[i])
	}

	rebuilt := make([]float32, 0, retainLen+len(untouched))
	if c.hra {
		rebuilt = append(rebuilt, retain...)
		rebuilt = append(rebuilt, untouched...)
	} else {
		rebuilt = append(rebuilt, untouched...)
		rebuilt = append(rebuilt, retain...)
	}
	c.buf.data = rebuilt

	c.numCompactions++
	if c.numCompactions >= uint64(1)<<uint(c.numSections-1) {
		c.numSections *= 2
		c.sectionSizeFlt /= math.Sqrt2
		c.state = 0
	}
	result := newFloatBuffer(len(promoted))
	result.data = promoted
	return result
}

// mergeFrom merges other's state into c per spec.md §4.1 "Merge
// (compactor-level)": concatenate buffers, union state bits, take the max
// compaction count, and keep the finer-grained (larger numSections,
// smaller sectionSizeFlt) capacity schedule.
func (c *compactor) mergeFrom(other *compactor) {
	c.buf.SortAscending()
	c.buf.MergeSortIn(other.buf.sortedCopy())
	c.state |= other.state
	if other.numCompactions > c.numCompactions {
		c.numCompactions = other.numCompactions
	}
	if other.numSections > c.numSections {
		c.numSections = other.numSections
		c.sectionSizeFlt = other.sectionSizeFlt
	}
}
