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

import "github.com/datasketches-contrib/req-go/internal"

// Criterion selects the comparator a rank or count query is evaluated
// under: LT gives rank(min) = 0, LE gives rank(min) = P(X = min), and GT/GE
// are their complements.
type Criterion = internal.Inequality

const (
	CriterionLT = internal.LT
	CriterionLE = internal.LE
	CriterionGT = internal.GT
	CriterionGE = internal.GE
)
