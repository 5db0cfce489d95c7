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
	"github.com/stretchr/testify/require"
)

func newTestSketch(t *testing.T, k int, hra bool) *Sketch {
	t.Helper()
	s, err := NewReqBuilder().K(k).HRA(hra).Build()
	require.NoError(t, err)
	return s
}

// Scenario #1: empty sketch CDF is an empty array.
func TestScenarioEmptySketchCDF(t *testing.T) {
	s := newTestSketch(t, 12, true)
	cdf, err := s.GetCDF([]float32{0.0})
	require.NoError(t, err)
	assert.Empty(t, cdf)
}

// An empty split-point slice is not an error: it just yields the trailing
// whole-stream bucket, matching kll.ItemsSketch's permissive checkItems.
func TestGetCDFEmptySplitPointsIsWholeStreamBucket(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(1.0)
	s.Update(2.0)

	cdf, err := s.GetCDF(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, cdf)

	pmf, err := s.GetPMF(nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1.0}, pmf)
}

// Scenario #2: a single update is exact.
func TestScenarioSingleUpdate(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(5.0)
	assert.Equal(t, 1.0, s.GetRankWithCriterion(5.0, CriterionLE))
	assert.Equal(t, 0.0, s.GetRankWithCriterion(5.0, CriterionLT))
	q, err := s.GetQuantile(0.5)
	require.NoError(t, err)
	assert.Equal(t, float32(5.0), q)
	assert.False(t, s.IsEstimationMode())
}

// Scenario #3: 1..1000 in order stays within the advertised error band.
func TestScenarioOrderedStream(t *testing.T) {
	s := newTestSketch(t, 12, true)
	for i := 1; i <= 1000; i++ {
		s.Update(float32(i))
	}
	rank := s.GetRankWithCriterion(500.0, CriterionLT)
	assert.InDelta(t, 0.5, rank, 0.02)
	q, err := s.GetQuantile(0.5)
	require.NoError(t, err)
	assert.InDelta(t, 500, q, 20)
	assert.Equal(t, uint64(1000), s.GetN())
	assert.Equal(t, float32(1), s.GetMinValue())
	assert.Equal(t, float32(1000), s.GetMaxValue())
}

// Scenario #4: merge of two disjoint halves matches the single-stream bounds.
func TestScenarioMergeDisjointHalves(t *testing.T) {
	left := newTestSketch(t, 12, true)
	for i := 1; i <= 500; i++ {
		left.Update(float32(i))
	}
	right := newTestSketch(t, 12, true)
	for i := 501; i <= 1000; i++ {
		right.Update(float32(i))
	}
	left.Merge(right)
	assert.Equal(t, uint64(1000), left.GetN())
	rank := left.GetRankWithCriterion(500.0, CriterionLT)
	assert.InDelta(t, 0.5, rank, 0.02)
}

// Scenario #5: NaN is silently dropped.
func TestScenarioNaNDropped(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(float32(math.NaN()))
	s.Update(3.0)
	assert.Equal(t, uint64(1), s.GetN())
	assert.Equal(t, float32(3.0), s.GetMinValue())
	assert.Equal(t, float32(3.0), s.GetMaxValue())
}

// Scenario #6: k=4, 100000 updates grows the stack and round-trips exactly.
func TestScenarioLargeStreamRoundTrip(t *testing.T) {
	s := newTestSketch(t, 4, true)
	for i := 1; i <= 100000; i++ {
		s.Update(float32(i))
	}
	assert.GreaterOrEqual(t, s.numLevels(), 2)
	assert.Less(t, s.GetRetainedItems(), s.maxNominalSize)

	probes := []float32{1, 1000, 50000, 99000, 100000}
	want := s.GetRanks(probes)

	bytes := s.ToByteArray()
	restored, err := Heapify(bytes)
	require.NoError(t, err)
	got := restored.GetRanks(probes)
	assert.Equal(t, want, got)
}

func TestInvariantRetainedBelowMaxNominalSize(t *testing.T) {
	s := newTestSketch(t, 4, true)
	for i := 1; i <= 20000; i++ {
		s.Update(float32(i))
		assert.Less(t, s.retained, s.maxNominalSize)
	}
}

func TestInvariantMinMaxTrackExtremes(t *testing.T) {
	s := newTestSketch(t, 12, true)
	values := []float32{5, 1, 9, -3, 7}
	for _, v := range values {
		s.Update(v)
		assert.LessOrEqual(t, s.GetMinValue(), v)
		assert.GreaterOrEqual(t, s.GetMaxValue(), v)
	}
	assert.Equal(t, float32(-3), s.GetMinValue())
	assert.Equal(t, float32(9), s.GetMaxValue())
}

func TestRankMonotone(t *testing.T) {
	s := newTestSketch(t, 12, true)
	for i := 1; i <= 200; i++ {
		s.Update(float32(i))
	}
	prev := -1.0
	for v := 0; v <= 200; v += 5 {
		r := s.GetRankWithCriterion(float32(v), CriterionLT)
		assert.GreaterOrEqual(t, r, prev)
		prev = r
	}
}

func TestRankLTLECTComplement(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(5.0)
	ltRank := s.GetRankWithCriterion(5.0, CriterionLT)
	leRank := s.GetRankWithCriterion(5.0, CriterionLE)
	gtRank := s.GetRankWithCriterion(5.0, CriterionGT)
	assert.LessOrEqual(t, ltRank, leRank)
	assert.InDelta(t, 1.0, gtRank+leRank, 1e-9)
}

func TestResetClearsState(t *testing.T) {
	s := newTestSketch(t, 12, true)
	for i := 1; i <= 100; i++ {
		s.Update(float32(i))
	}
	s.Reset()
	assert.True(t, s.IsEmpty())
	assert.Equal(t, uint64(0), s.GetN())
	assert.Equal(t, 1, len(s.compactors))
}

func TestMergeEmptyOtherIsNoop(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(1.0)
	other := newTestSketch(t, 12, true)
	s.Merge(other)
	assert.Equal(t, uint64(1), s.GetN())
}

func TestGetQuantileInvalidRank(t *testing.T) {
	s := newTestSketch(t, 12, true)
	s.Update(1.0)
	_, err := s.GetQuantile(-0.1)
	assert.ErrorIs(t, err, ErrInvalidRank)
	_, err = s.GetQuantile(1.1)
	assert.ErrorIs(t, err, ErrInvalidRank)
}

func TestGetQuantileEmptySketch(t *testing.T) {
	s := newTestSketch(t, 12, true)
	_, err := s.GetQuantile(0.5)
	assert.ErrorIs(t, err, ErrEmptySketch)
}
