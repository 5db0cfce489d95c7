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

import "errors"

// Argument errors: user-caused, reported directly to the caller.
var (
	ErrEmptySketch        = errors.New("req: sketch is empty")
	ErrInvalidRank        = errors.New("req: normalized rank must be in [0, 1]")
	ErrInvalidSplitPoints = errors.New("req: split points must be finite and strictly increasing")
	ErrInvalidK           = errors.New("req: k must be an even integer >= 4")
	ErrInvalidSerialImage = errors.New("req: serialized image failed validation")
)
