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

// Family identifies a sketch algorithm on the wire so a reader can refuse to
// deserialize bytes produced by a different sketch.
type Family struct {
	Id          int
	MaxPreLongs int
}

type families struct {
	Req Family
}

// FamilyEnum is the registry of sketch family ids recognized by this module.
var FamilyEnum = &families{
	Req: Family{
		Id:          17,
		MaxPreLongs: 1,
	},
}
