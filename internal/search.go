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

package internal

import "golang.org/x/exp/constraints"

// Inequality is the four-way comparator rank and quantile queries search
// sorted arrays under.
type Inequality int

const (
	LT Inequality = iota
	LE
	GT
	GE
)

// LowerCriterion returns the LT/LE comparator that computes the same boundary
// as c, after negating the "count above" framing: counting items GT v is
// counting total minus items LE v, and counting items GE v is counting total
// minus items LT v.
func (c Inequality) LowerCriterion() Inequality {
	switch c {
	case GT:
		return LE
	case GE:
		return LT
	default:
		return c
	}
}

// FindBoundary performs a binary search over arr, which must be sorted
// ascending, and returns the boundary index satisfying crit against v:
//
//   - LT: the largest index i with arr[i] < v
//   - LE: the largest index i with arr[i] <= v
//   - GT: the smallest index i with arr[i] > v
//   - GE: the smallest index i with arr[i] >= v
//
// It returns -1 if no index in arr qualifies. The search narrows to an
// adjacent pair (mid, mid+1) and resolves the boundary within that pair,
// rather than the textbook lo==hi convergence, because the boundary itself
// can sit on either side of the midpoint depending on crit.
func FindBoundary[T constraints.Ordered](arr []T, v T, crit Inequality) int {
	n := len(arr)
	if n == 0 {
		return -1
	}
	lo, hi := 0, n-1
	for lo <= hi {
		if hi-lo <= 1 {
			return resolveBoundary(arr, lo, hi, v, crit)
		}
		mid := lo + (hi-lo)/2
		switch compareMid(arr, mid, mid+1, v, crit) {
		case -1:
			hi = mid
		case 1:
			lo = mid + 1
		default:
			return selectIndex(mid, mid+1, crit)
		}
	}
	return -1
}

func resolveBoundary[T constraints.Ordered](arr []T, lo, hi int, v T, crit Inequality) int {
	switch crit {
	case LT:
		if lo == hi {
			if arr[hi] < v {
				return lo
			}
			return -1
		}
		if arr[hi] < v {
			return hi
		}
		if arr[lo] < v {
			return lo
		}
		return -1
	case LE:
		if lo == hi {
			if arr[lo] <= v {
				return lo
			}
			return -1
		}
		if arr[hi] <= v {
			return hi
		}
		if arr[lo] <= v {
			return lo
		}
		return -1
	case GT:
		if lo == hi {
			if arr[lo] > v {
				return lo
			}
			return -1
		}
		if arr[lo] > v {
			return lo
		}
		if arr[hi] > v {
			return hi
		}
		return -1
	case GE:
		if lo == hi {
			if arr[lo] >= v {
				return lo
			}
			return -1
		}
		if arr[lo] >= v {
			return lo
		}
		if arr[hi] >= v {
			return hi
		}
		return -1
	default:
		panic("invalid inequality")
	}
}

// compareMid reports whether the boundary for crit lies at or below a
// (-1), at or above b (1), or straddles the (a, b) pair (0).
func compareMid[T constraints.Ordered](arr []T, a, b int, v T, crit Inequality) int {
	switch crit {
	case LT, GE:
		if v <= arr[a] {
			return -1
		}
		if arr[b] < v {
			return 1
		}
		return 0
	case LE, GT:
		if v < arr[a] {
			return -1
		}
		if arr[b] <= v {
			return 1
		}
		return 0
	default:
		panic("invalid inequality")
	}
}

func selectIndex(a, b int, crit Inequality) int {
	switch crit {
	case LT, LE:
		return a
	case GE, GT:
		return b
	default:
		panic("invalid inequality")
	}
}
