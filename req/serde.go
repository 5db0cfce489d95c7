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
	"encoding/binary"
	"fmt"
	"math"

	"github.com/datasketches-contrib/req-go/common"
	"github.com/datasketches-contrib/req-go/internal"
)

var float32Serde common.Float32SerDe

// ToByteArray serializes the sketch into the wire format: a fixed
// 28-byte preamble followed by each compactor's int-length-prefixed
// region, in level order.
func (s *Sketch) ToByteArray() []byte {
	compactorBlobs := make([][]byte, len(s.compactors))
	total := _DATA_START_ADR
	for i, c := range s.compactors {
		blob := serializeCompactor(c)
		compactorBlobs[i] = blob
		total += 4 + len(blob)
	}

	out := make([]byte, total)
	out[_PREAMBLE_LONGS_BYTE_ADR] = byte(_PREAMBLE_LONGS)
	out[_SER_VER_BYTE_ADR] = byte(_SER_VER)
	out[_FAMILY_BYTE_ADR] = byte(internal.FamilyEnum.Req.Id)

	flags := common.BoolToInt(s.IsEmpty())<<2 |
		common.BoolToInt(s.hra)<<3 |
		common.BoolToInt(s.compatible)<<4 |
		common.BoolToInt(s.criterion == CriterionLE)<<5
	out[_FLAGS_BYTE_ADR] = byte(flags)

	binary.LittleEndian.PutUint32(out[_K_INT_ADR:], uint32(s.k))
	binary.LittleEndian.PutUint64(out[_N_LONG_ADR:], s.totalN)
	binary.LittleEndian.PutUint32(out[_MIN_VALUE_FLOAT_ADR:], math.Float32bits(s.minValue))
	binary.LittleEndian.PutUint32(out[_MAX_VALUE_FLOAT_ADR:], math.Float32bits(s.maxValue))
	binary.LittleEndian.PutUint32(out[_NUM_COMPACTORS_INT_ADR:], uint32(len(s.compactors)))

	offset := _DATA_START_ADR
	for _, blob := range compactorBlobs {
		binary.LittleEndian.PutUint32(out[offset:], uint32(len(blob)))
		offset += 4
		copy(out[offset:], blob)
		offset += len(blob)
	}

	var retained []float32
	for _, c := range s.compactors {
		retained = append(retained, c.buf.data...)
	}
	s.observer.OnSerialize(len(out), Fingerprint(retained))
	return out
}

func serializeCompactor(c *compactor) []byte {
	payload := float32Serde.SerializeMany(c.buf.data)
	out := make([]byte, _C_DATA_START_ADR+len(payload))
	out[_C_PREAMBLE_LONGS_ADR] = byte(_PREAMBLE_LONGS)
	out[_C_SER_VER_ADR] = byte(_SER_VER)
	out[_C_FLAGS_ADR] = byte(common.BoolToInt(c.hra) << 0)
	out[_C_LG_WEIGHT_ADR] = c.lgWeight
	binary.LittleEndian.PutUint64(out[_C_SECTION_SIZE_ADR:], math.Float64bits(c.sectionSizeFlt))
	binary.LittleEndian.PutUint32(out[_C_NUM_SECTIONS_ADR:], uint32(c.numSections))
	binary.LittleEndian.PutUint64(out[_C_NUM_COMPACTIONS_ADR:], c.numCompactions)
	binary.LittleEndian.PutUint64(out[_C_STATE_ADR:], c.state)
	binary.LittleEndian.PutUint32(out[_C_BUF_LEN_ADR:], uint32(len(c.buf.data)))
	copy(out[_C_DATA_START_ADR:], payload)
	return out
}

func deserializeCompactor(mem []byte, salt uint64) (*compactor, error) {
	if len(mem) < _C_DATA_START_ADR {
		return nil, fmt.Errorf("%w: compactor region too short (%d bytes)", ErrInvalidSerialImage, len(mem))
	}
	lgWeight := mem[_C_LG_WEIGHT_ADR]
	hra := mem[_C_FLAGS_ADR]&_C_HRA_BIT_MASK != 0
	sectionSizeFlt := math.Float64frombits(binary.LittleEndian.Uint64(mem[_C_SECTION_SIZE_ADR:]))
	numSections := int(binary.LittleEndian.Uint32(mem[_C_NUM_SECTIONS_ADR:]))
	numCompactions := binary.LittleEndian.Uint64(mem[_C_NUM_COMPACTIONS_ADR:])
	state := binary.LittleEndian.Uint64(mem[_C_STATE_ADR:])
	bufLen := int(binary.LittleEndian.Uint32(mem[_C_BUF_LEN_ADR:]))

	values, err := float32Serde.DeserializeMany(mem, _C_DATA_START_ADR, bufLen)
	if err != nil {
		return nil, err
	}

	c := newCompactor(lgWeight, hra, minK, salt+uint64(lgWeight))
	c.sectionSizeFlt = sectionSizeFlt
	c.numSections = numSections
	c.numCompactions = numCompactions
	c.state = state
	c.buf = newFloatBuffer(len(values))
	c.buf.data = values
	return c, nil
}

// Heapify deserializes a byte slice produced by ToByteArray back into a
// Sketch.
func Heapify(mem []byte) (*Sketch, error) {
	mv, err := newMemoryValidate(mem)
	if err != nil {
		return nil, err
	}

	criterion := CriterionLT
	if mv.criterionLE {
		criterion = CriterionLE
	}
	s := &Sketch{
		k:          int(mv.k),
		hra:        mv.hra,
		compatible: mv.compatible,
		criterion:  criterion,
		totalN:     mv.totalN,
		minValue:   mv.minValue,
		maxValue:   mv.maxValue,
		observer:   defaultObserver,
	}

	offset := _DATA_START_ADR
	compactors := make([]*compactor, 0, mv.numCompactors)
	for i := int32(0); i < mv.numCompactors; i++ {
		if offset+4 > len(mem) {
			return nil, fmt.Errorf("%w: truncated compactor length prefix at offset %d", ErrInvalidSerialImage, offset)
		}
		blobLen := int(binary.LittleEndian.Uint32(mem[offset:]))
		offset += 4
		if offset+blobLen > len(mem) {
			return nil, fmt.Errorf("%w: truncated compactor region at offset %d", ErrInvalidSerialImage, offset)
		}
		c, err := deserializeCompactor(mem[offset:offset+blobLen], s.salt)
		if err != nil {
			return nil, err
		}
		compactors = append(compactors, c)
		offset += blobLen
	}
	s.compactors = compactors
	s.recomputeMaxNominalSize()
	s.recomputeRetained()
	if s.retained >= s.maxNominalSize && s.maxNominalSize > 0 {
		panic("req: deserialized sketch violates retained < max_nominal_size")
	}
	return s, nil
}
