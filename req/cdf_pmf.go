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

// checkSplitPoints validates that splitPoints is finite and strictly
// increasing. An empty slice is permitted — the loop below simply doesn't
// run — matching kll.ItemsSketch's checkItems, which likewise allows m=0
// and lets GetCDF/GetPMF answer with just the trailing bucket.
func checkSplitPoints(splitPoints []float32) error {
	for i, v := range splitPoints {
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return ErrInvalidSplitPoints
		}
		if i > 0 && v <= splitPoints[i-1] {
			return ErrInvalidSplitPoints
		}
	}
	return nil
}

// GetCDF returns, for each split point, its normalized rank under the
// active criterion (GetRank), followed by a trailing 1.0.
// Empty sketches return an empty slice rather than an error.
func (s *Sketch) GetCDF(splitPoints []float32) ([]float64, error) {
	if s.IsEmpty() {
		return []float64{}, nil
	}
	if err := checkSplitPoints(splitPoints); err != nil {
		return nil, err
	}
	buckets := make([]float64, len(splitPoints)+1)
	for i, v := range splitPoints {
		buckets[i] = s.GetRank(v)
	}
	buckets[len(splitPoints)] = 1.0
	return buckets, nil
}

// GetPMF returns the probability mass between consecutive split points
// (and the tails before the first and after the last), derived from
// GetCDF by differencing.
func (s *Sketch) GetPMF(splitPoints []float32) ([]float64, error) {
	if s.IsEmpty() {
		return []float64{}, nil
	}
	buckets, err := s.GetCDF(splitPoints)
	if err != nil {
		return nil, err
	}
	for i := len(buckets) - 1; i > 0; i-- {
		buckets[i] -= buckets[i-1]
	}
	return buckets, nil
}
