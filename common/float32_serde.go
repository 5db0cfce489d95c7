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

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Float32SerDe handles serialization and deserialization of the float32
// payload a compactor's buffer carries on the wire.
type Float32SerDe struct{}

func (Float32SerDe) SizeOf(item float32) int {
	return 4
}

func (s Float32SerDe) SerializeMany(items []float32) []byte {
	if len(items) == 0 {
		return []byte{}
	}
	bytes := make([]byte, 4*len(items))
	offset := 0
	for _, item := range items {
		binary.LittleEndian.PutUint32(bytes[offset:], math.Float32bits(item))
		offset += 4
	}
	return bytes
}

func (s Float32SerDe) DeserializeMany(mem []byte, offsetBytes int, numItems int) ([]float32, error) {
	if numItems == 0 {
		return []float32{}, nil
	}
	if offsetBytes+4*numItems > len(mem) {
		return nil, fmt.Errorf("req: truncated float32 payload: need %d bytes at offset %d, have %d", 4*numItems, offsetBytes, len(mem))
	}
	array := make([]float32, 0, numItems)
	for i := 0; i < numItems; i++ {
		array = append(array, math.Float32frombits(binary.LittleEndian.Uint32(mem[offsetBytes:])))
		offsetBytes += 4
	}
	return array, nil
}
