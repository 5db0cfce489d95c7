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

// Iterator walks (value, weight) pairs across every compactor, skipping
// empty levels.
type Iterator struct {
	s        *Sketch
	level    int
	idx      int
	value    float32
	weight   uint64
	hasValue bool
}

// Iterator returns a fresh walker positioned before the first pair.
func (s *Sketch) Iterator() *Iterator {
	return &Iterator{s: s}
}

// Next advances the iterator and reports whether a pair is available.
func (it *Iterator) Next() bool {
	for it.level < len(it.s.compactors) {
		c := it.s.compactors[it.level]
		if it.idx < c.buf.Len() {
			it.value = c.buf.data[it.idx]
			it.weight = uint64(1) << uint(it.level)
			it.idx++
			it.hasValue = true
			return true
		}
		it.level++
		it.idx = 0
	}
	it.hasValue = false
	return false
}

// Value returns the current pair's value. Valid only after Next returns
// true.
func (it *Iterator) Value() float32 { return it.value }

// Weight returns the current pair's weight (2^level). Valid only after
// Next returns true.
func (it *Iterator) Weight() uint64 { return it.weight }
