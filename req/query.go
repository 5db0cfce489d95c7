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

// GetRank returns the normalized rank of v under the sketch's active
// criterion: count of qualifying samples, weighted by level, over total_n.
func (s *Sketch) GetRank(v float32) float64 {
	return s.GetRankWithCriterion(v, s.criterion)
}

// GetRankWithCriterion returns the normalized rank of v under crit,
// independent of the sketch's stored criterion.
func (s *Sketch) GetRankWithCriterion(v float32, crit Criterion) float64 {
	if s.IsEmpty() {
		return 0
	}
	lower := crit.LowerCriterion()
	var count uint64
	for level, c := range s.compactors {
		count += uint64(c.buf.CountWithCriterion(v, lower)) << uint(level)
	}
	rank := float64(count) / float64(s.totalN)
	if crit == CriterionGT || crit == CriterionGE {
		rank = 1 - rank
	}
	return rank
}

// GetRanks returns the normalized rank of each value in vs, in order.
func (s *Sketch) GetRanks(vs []float32) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		out[i] = s.GetRank(v)
	}
	return out
}

// ensureView builds and caches the auxiliary sorted view if it is missing.
func (s *Sketch) ensureView() *sortedView {
	if s.view == nil {
		s.view = newSortedView(s)
	}
	return s.view
}

// GetQuantile returns the value at normalized rank r under the sketch's
// active criterion.
func (s *Sketch) GetQuantile(r float64) (float32, error) {
	if s.IsEmpty() {
		return 0, ErrEmptySketch
	}
	if r < 0 || r > 1 {
		return 0, ErrInvalidRank
	}
	view := s.ensureView()
	return view.getQuantile(r, s.criterion, s.compatible, s.minValue, s.maxValue), nil
}

// GetQuantiles returns the value at each normalized rank in rs, building
// the auxiliary view once and reusing it for every probe.
func (s *Sketch) GetQuantiles(rs []float64) ([]float32, error) {
	if s.IsEmpty() {
		return nil, ErrEmptySketch
	}
	out := make([]float32, len(rs))
	view := s.ensureView()
	for i, r := range rs {
		if r < 0 || r > 1 {
			return nil, ErrInvalidRank
		}
		out[i] = view.getQuantile(r, s.criterion, s.compatible, s.minValue, s.maxValue)
	}
	return out, nil
}
