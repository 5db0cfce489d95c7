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

// Package req implements a single-pass streaming relative-error quantiles
// sketch: a hierarchical stack of compactors that halves over-capacity
// buffers and promotes survivors to the next weight class.
package req

import (
	"math"
)

const (
	defaultK          = 12
	defaultHRA        = true
	defaultCompatible = true
	defaultCriterion  = CriterionLT
)

// Sketch is a single-pass streaming quantiles sketch with relative-error
// rank guarantees. The zero value is not usable; construct with Builder or
// NewDefaultReqSketch.
type Sketch struct {
	k              int
	hra            bool
	compatible     bool
	criterion      Criterion
	salt           uint64
	totalN         uint64
	minValue       float32
	maxValue       float32
	retained       int
	maxNominalSize int
	compactors     []*compactor
	view           *sortedView
	observer       Observer
}

func newSketch(k int, hra, compatible bool, criterion Criterion, salt uint64, observer Observer) *Sketch {
	if observer == nil {
		observer = defaultObserver
	}
	s := &Sketch{
		k:          k,
		hra:        hra,
		compatible: compatible,
		criterion:  criterion,
		salt:       salt,
		minValue:   float32(math.Inf(1)),
		maxValue:   float32(math.Inf(-1)),
		observer:   observer,
	}
	s.addCompactor()
	s.observer.OnStart(k, hra)
	return s
}

// NewDefaultReqSketch builds a sketch with k=12, hra=true, compatible=true,
// and criterion LT — the defaults spec'd for the builder.
func NewDefaultReqSketch() *Sketch {
	return newSketch(defaultK, defaultHRA, defaultCompatible, defaultCriterion, 0, nil)
}

func (s *Sketch) addCompactor() {
	level := len(s.compactors)
	s.compactors = append(s.compactors, newCompactor(uint8(level), s.hra, s.k, s.salt+uint64(level)))
	s.recomputeMaxNominalSize()
	s.observer.OnNewCompactor(level)
}

func (s *Sketch) recomputeMaxNominalSize() {
	total := 0
	for _, c := range s.compactors {
		total += c.nomCapacity()
	}
	s.maxNominalSize = total
}

func (s *Sketch) recomputeRetained() {
	total := 0
	for _, c := range s.compactors {
		total += c.buf.Len()
	}
	s.retained = total
}

func (s *Sketch) invalidateView() {
	s.view = nil
}

// IsEmpty reports whether the sketch has seen any non-NaN update.
func (s *Sketch) IsEmpty() bool {
	return s.totalN == 0
}

// IsEstimationMode reports whether the sketch has ever compacted, meaning
// quantile/rank answers carry the advertised relative error rather than
// being exact.
func (s *Sketch) IsEstimationMode() bool {
	for _, c := range s.compactors {
		if c.numCompactions > 0 {
			return true
		}
	}
	return false
}

// GetHighRankAccuracy reports the sketch's hra orientation.
func (s *Sketch) GetHighRankAccuracy() bool { return s.hra }

// GetN returns the total number of non-NaN values ever presented to Update
// or merged in from another sketch.
func (s *Sketch) GetN() uint64 { return s.totalN }

// GetRetainedItems returns the number of samples currently retained across
// all compactors.
func (s *Sketch) GetRetainedItems() int { return s.retained }

// GetMinValue returns the smallest non-NaN value ever seen.
func (s *Sketch) GetMinValue() float32 { return s.minValue }

// GetMaxValue returns the largest non-NaN value ever seen.
func (s *Sketch) GetMaxValue() float32 { return s.maxValue }

// SetCriterion changes the comparator used by rank/count queries and
// returns the sketch for chaining. The sorted view does not depend on
// criterion, so no invalidation is needed.
func (s *Sketch) SetCriterion(c Criterion) *Sketch {
	s.criterion = c
	return s
}

// SetCompatible toggles out-of-range quantile behavior and returns the
// sketch for chaining.
func (s *Sketch) SetCompatible(compatible bool) *Sketch {
	s.compatible = compatible
	return s
}

// Reset clears the sketch back to a single empty level, as if newly
// constructed with the same parameters.
func (s *Sketch) Reset() *Sketch {
	s.totalN = 0
	s.minValue = float32(math.Inf(1))
	s.maxValue = float32(math.Inf(-1))
	s.retained = 0
	s.compactors = nil
	s.addCompactor()
	s.invalidateView()
	return s
}

// Update ingests a single value. NaN is silently dropped.
func (s *Sketch) Update(v float32) {
	if math.IsNaN(float64(v)) {
		return
	}
	if v < s.minValue {
		s.minValue = v
	}
	if v > s.maxValue {
		s.maxValue = v
	}
	s.compactors[0].buf.Append(v)
	s.retained++
	s.totalN++
	if s.retained >= s.maxNominalSize {
		s.compactors[0].buf.SortAscending()
		s.compress()
		if s.retained >= s.maxNominalSize {
			panic("req: retained >= max_nominal_size after compress")
		}
	}
	s.invalidateView()
}

// compress walks the stack bottom-up, halving any compactor at or past its
// nominal capacity and promoting survivors, stopping as soon as the
// retained count drops back below maxNominalSize.
func (s *Sketch) compress() {
	s.observer.OnCompressStart(s.retained, s.maxNominalSize)
	for h := 0; h < len(s.compactors); h++ {
		c := s.compactors[h]
		if !c.overflows() {
			continue
		}
		if h+1 == len(s.compactors) {
			s.observer.OnMustAddCompactor(h + 1)
			s.addCompactor()
		}
		promoted := c.compact()
		next := s.compactors[h+1]
		next.buf.SortAscending()
		next.buf.MergeSortIn(promoted)
		s.recomputeRetained()
		if s.retained < s.maxNominalSize {
			break
		}
	}
	s.recomputeMaxNominalSize()
	s.invalidateView()
	s.observer.OnCompressDone(s.retained, s.maxNominalSize)
}

// Merge absorbs other's stream into s. other is left unmodified.
func (s *Sketch) Merge(other *Sketch) *Sketch {
	if other == nil || other.IsEmpty() {
		return s
	}
	s.totalN += other.totalN
	if other.minValue < s.minValue {
		s.minValue = other.minValue
	}
	if other.maxValue > s.maxValue {
		s.maxValue = other.maxValue
	}
	for len(s.compactors) < len(other.compactors) {
		s.addCompactor()
	}
	for h, oc := range other.compactors {
		s.compactors[h].mergeFrom(oc)
	}
	s.recomputeMaxNominalSize()
	s.recomputeRetained()
	for s.retained >= s.maxNominalSize {
		s.compress()
		s.recomputeMaxNominalSize()
		s.recomputeRetained()
	}
	s.invalidateView()
	return s
}
