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
	"fmt"

	"github.com/datasketches-contrib/req-go/internal"
)

// memoryValidate parses and sanity-checks a serialized sketch header
// before any compactor is decoded, mirroring the struct-of-parsed-header
// pattern used to validate other sketch families' wire images.
type memoryValidate struct {
	preambleLongs int
	serVer        int
	familyID      int
	flags         int
	k             int32
	totalN        uint64
	minValue      float32
	maxValue      float32
	numCompactors int32
	empty         bool
	hra           bool
	compatible    bool
	criterionLE   bool
}

func newMemoryValidate(mem []byte) (*memoryValidate, error) {
	if len(mem) < _DATA_START_ADR {
		return nil, fmt.Errorf("%w: too short (%d bytes, need at least %d)", ErrInvalidSerialImage, len(mem), _DATA_START_ADR)
	}
	preambleLongs := getPreambleLongs(mem)
	serVer := getSerVer(mem)
	familyID := getFamilyID(mem)
	if preambleLongs != _PREAMBLE_LONGS {
		panic(fmt.Sprintf("req: preamble-longs %d, expected %d", preambleLongs, _PREAMBLE_LONGS))
	}
	if serVer != _SER_VER {
		panic(fmt.Sprintf("req: ser-ver %d, expected %d", serVer, _SER_VER))
	}
	if familyID != internal.FamilyEnum.Req.Id {
		panic(fmt.Sprintf("req: family-id %d, expected %d", familyID, internal.FamilyEnum.Req.Id))
	}
	mv := &memoryValidate{
		preambleLongs: preambleLongs,
		serVer:        serVer,
		familyID:      familyID,
		flags:         getFlags(mem),
		k:             getK(mem),
		totalN:        getTotalN(mem),
		minValue:      getMinValue(mem),
		maxValue:      getMaxValue(mem),
		numCompactors: getNumCompactors(mem),
		empty:         getEmptyFlag(mem),
		hra:           getHRAFlag(mem),
		compatible:    getCompatibleFlag(mem),
		criterionLE:   getCriterionLEFlag(mem),
	}
	if mv.k < minK || mv.k%2 != 0 {
		return nil, fmt.Errorf("%w: k=%d is not even and >= %d", ErrInvalidSerialImage, mv.k, minK)
	}
	if mv.numCompactors < 1 {
		return nil, fmt.Errorf("%w: num_compactors=%d, expected >= 1", ErrInvalidSerialImage, mv.numCompactors)
	}
	return mv, nil
}
