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
	"sort"

	"github.com/datasketches-contrib/req-go/internal"
)

// floatBuffer is an ordered sequence of 32-bit floats backing one
// compactor's samples.
type floatBuffer struct {
	data []float32
}

func newFloatBuffer(capacityHint int) *floatBuffer {
	return &floatBuffer{data: make([]float32, 0, capacityHint)}
}

func (b *floatBuffer) Len() int { return len(b.data) }

func (b *floatBuffer) Append(v float32) {
	b.data = append(b.data, v)
}

// SortAscending sorts the buffer in place.
func (b *floatBuffer) SortAscending() {
	sort.Slice(b.data, func(i, j int) bool { return b.data[i] < b.data[j] })
}

// sortedCopy returns a new buffer holding a sorted copy of b's data,
// leaving b itself untouched.
func (b *floatBuffer) sortedCopy() *floatBuffer {
	cp := make([]float32, len(b.data))
	copy(cp, b.data)
	out := &floatBuffer{data: cp}
	out.SortAscending()
	return out
}

// MergeSortIn merges other, assumed already sorted ascending, into b, also
// assumed already sorted ascending, producing a sorted union.
func (b *floatBuffer) MergeSortIn(other *floatBuffer) {
	if other == nil || len(other.data) == 0 {
		return
	}
	if len(b.data) == 0 {
		b.data = append(b.data[:0:0], other.data...)
		return
	}
	merged := make([]float32, 0, len(b.data)+len(other.data))
	i, j := 0, 0
	for i < len(b.data) && j < len(other.data) {
		if b.data[i] <= other.data[j] {
			merged = append(merged, b.data[i])
			i++
		} else {
			merged = append(merged, other.data[j])
			j++
		}
	}
	merged = append(merged, b.data[i:]...)
	merged = append(merged, other.data[j:]...)
	b.data = merged
}

// CountWithCriterion returns the number of entries that compare to v under
// crit. b must be sorted ascending; the search is O(log n).
func (b *floatBuffer) CountWithCriterion(v float32, crit Criterion) int {
	n := len(b.data)
	if n == 0 {
		return 0
	}
	idx := internal.FindBoundary(b.data, v, crit)
	if idx == -1 {
		return 0
	}
	switch crit {
	case CriterionLT, CriterionLE:
		return idx + 1
	default: // GT, GE: idx is the lowest qualifying index
		return n - idx
	}
}
