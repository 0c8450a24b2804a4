// Copyright 2025 go-sse2 Authors
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

// Package lanes provides the fixed-width 128-bit vector types used by the
// sse2 package.
//
// Every type is a Go array, so vectors are plain values: assignment copies,
// == compares lane by lane, and no operation mutates its receiver.
//
//	v := lanes.NewI32x4(5, 10, 15, 20) // lane 0 = 5
//	w := v.Replace(3, 99)               // v is unchanged
//	f := v.Bits().AsF32x4()             // same 128 bits, viewed as float32 lanes
//
// Lane 0 is always the lowest lane. The byte image returned by Bits is
// little-endian on every host, so reinterpretation between kinds gives the
// same answer as an x86 register would.
package lanes

//go:generate go run ../cmd/sse2gen -target vectors -output vectors.gen.go
