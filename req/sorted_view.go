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
	"sort"

	"github.com/datasketches-contrib/req-go/internal"
)

// sortedView is the auxiliary structure that answers quantile queries: a
// single array gathered from every compactor, sorted by value, with a
// cumulative-weight column normalized to [0, 1]. Built lazily on the first
// quantile query after a mutation, cached on Sketch.view, and invalidated
// by every mutating call.
type sortedView struct {
	quantiles  []float32
	cumWeights []uint64
	totalN     uint64
}

func newSortedView(s *Sketch) *sortedView {
	type entry struct {
		value  float32
		weight uint64
	}
	var entries []entry
	for level, c := range s.compactors {
		w := uint64(1) << uint(level)
		for _, v := range c.buf.data {
			entries = append(entries, entry{value: v, weight: w})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].value < entries[j].value })

	quantiles := make([]float32, len(entries))
	cumWeights := make([]uint64, len(entries))
	var running uint64
	for i, e := range entries {
		running += e.weight
		quantiles[i] = e.value
		cumWeights[i] = running
	}
	return &sortedView{quantiles: quantiles, cumWeights: cumWeights, totalN: running}
}

// getQuantile locates the first row whose rank satisfies crit and returns
// its value, falling back to compatible-mode behavior when the probe rank
// falls outside every row's rank.
func (sv *sortedView) getQuantile(rank float64, crit Criterion, compatible bool, minValue, maxValue float32) float32 {
	n := len(sv.quantiles)
	if n == 0 {
		return float32(0)
	}
	naturalRank := uint64(rank*float64(sv.totalN) + 0.5)
	if naturalRank < 1 {
		naturalRank = 1
	}
	var searchCrit Criterion
	switch crit {
	case CriterionLT, CriterionLE:
		searchCrit = CriterionGE
	default:
		searchCrit = CriterionGT
	}
	idx := internal.FindBoundary(sv.cumWeights, naturalRank, searchCrit)
	if idx == -1 {
		if compatible {
			if crit == CriterionLT || crit == CriterionLE {
				return minValue
			}
			return maxValue
		}
		return float32(math.NaN())
	}
	return sv.quantiles[idx]
}
