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

package common

// ItemSerde abstracts serialization of a fixed-width sketch payload type.
// req only ever instantiates this at C = float32, but keeping it generic
// mirrors the teacher repo's per-type SerDe family (one SerDe per item
// type), in case a future sketch sharing this package wants a different
// payload type.
type ItemSerde[C any] interface {
	SizeOf(item C) int
	SerializeMany(items []C) []byte
	DeserializeMany(mem []byte, offsetBytes int, numItems int) ([]C, error)
}
