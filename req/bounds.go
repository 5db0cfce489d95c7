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

import "math"

// relativeErrorConst is sqrt(0.0512 / initSections), the empirical
// coefficient in the relative-error term of the advertised rank bounds.
var relativeErrorConst = math.Sqrt(0.0512 / float64(initSections))

// numLevels reports how many compactor levels are present, used by the
// L=1 special case of the error-bound formula.
func (s *Sketch) numLevels() int { return len(s.compactors) }

// rankBound computes the one-sided bound (lower when lower is true, upper
// otherwise) on the normalized rank r after numStdDev standard deviations,
// per the formulas advertised (not enforced) for this sketch family.
func (s *Sketch) rankBound(r float64, numStdDev float64, lower bool) float64 {
	l := s.numLevels()
	if l <= 1 {
		return r
	}
	n := float64(s.totalN)
	t := float64(s.k*initSections) / n
	if (s.hra && r >= 1-t) || (!s.hra && r <= t) {
		return r
	}
	var tail float64
	if s.hra {
		tail = 1 - r
	} else {
		tail = r
	}
	rel := (relativeErrorConst / float64(s.k)) * tail
	fix := 0.06 / float64(s.k)
	if lower {
		a := r - numStdDev*rel
		b := r - numStdDev*fix
		return math.Max(a, b)
	}
	a := r + numStdDev*rel
	b := r + numStdDev*fix
	return math.Min(a, b)
}

// GetRankLowerBound returns the lower bound on the true normalized rank of
// a value whose estimated rank is r, at the given confidence expressed in
// standard deviations.
func (s *Sketch) GetRankLowerBound(r float64, numStdDev float64) float64 {
	return s.rankBound(r, numStdDev, true)
}

// GetRankUpperBound returns the upper bound on the true normalized rank of
// a value whose estimated rank is r, at the given confidence expressed in
// standard deviations.
func (s *Sketch) GetRankUpperBound(r float64, numStdDev float64) float64 {
	return s.rankBound(r, numStdDev, false)
}
