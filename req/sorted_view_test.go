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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedViewQuantileExactRanks(t *testing.T) {
	s := newTestSketch(t, 12, true)
	for _, v := range []float32{1, 2, 3, 4, 5} {
		s.Update(v)
	}
	view := newSortedView(s)
	assert.Equal(t, uint64(5), view.totalN)

	q := view.getQuantile(0.2, CriterionLE, true, s.minValue, s.maxValue)
	assert.Equal(t, float32(1), q)

	q = view.getQuantile(1.0, CriterionLE, true, s.minValue, s.maxValue)
	assert.Equal(t, float32(5), q)
}

func TestSortedViewQuantileCompatibleFallback(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(3.0)
	view := newSortedView(s)

	// GT search for rank 1.0 yields no qualifying row; compatible mode
	// falls back to maxValue.
	q := view.getQuantile(1.0, CriterionGT, true, s.minValue, s.maxValue)
	assert.Equal(t, s.maxValue, q)

	q = view.getQuantile(1.0, CriterionGT, false, s.minValue, s.maxValue)
	assert.True(t, math.IsNaN(float64(q)))
}
