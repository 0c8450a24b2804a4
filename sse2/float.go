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

package sse2

import (
	"math"

	"github.com/ajroetker/go-sse2/lanes"
)

// The Sd forms operate on lane 0 and copy lane 1 from a. The Pd forms
// operate on both lanes.

func fadd(x, y float64) float64 { return x + y }
func fsub(x, y float64) float64 { return x - y }
func fmul(x, y float64) float64 { return x * y }
func fdiv(x, y float64) float64 { return x / y }

// fmax returns y unless x > y, so NaN in either operand or equal values
// yield y. This is not math.Max.
func fmax(x, y float64) float64 {
	if x > y {
		return x
	}
	return y
}

// fmin returns y unless x < y.
func fmin(x, y float64) float64 {
	if x < y {
		return x
	}
	return y
}

func scalar(a, b lanes.F64x2, f func(x, y float64) float64) lanes.F64x2 {
	return lanes.F64x2{f(a[0], b[0]), a[1]}
}

func packed(a, b lanes.F64x2, f func(x, y float64) float64) lanes.F64x2 {
	var r lanes.F64x2
	lanes.Zip(r[:], a[:], b[:], f)
	return r
}

// AddSd returns (a[0]+b[0], a[1]).
func AddSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fadd) }

// AddPd adds both lanes.
func AddPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fadd) }

// SubSd returns (a[0]-b[0], a[1]).
func SubSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fsub) }

// SubPd subtracts both lanes.
func SubPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fsub) }

// MulSd returns (a[0]*b[0], a[1]).
func MulSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fmul) }

// MulPd multiplies both lanes.
func MulPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fmul) }

// DivSd returns (a[0]/b[0], a[1]).
func DivSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fdiv) }

// DivPd divides both lanes.
func DivPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fdiv) }

// MaxSd returns the maximum of the low lanes with lane 1 from a. When the
// operands are unordered or equal the result is b[0].
func MaxSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fmax) }

// MaxPd returns the per-lane maximum with the same NaN rule as MaxSd.
func MaxPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fmax) }

// MinSd returns the minimum of the low lanes with lane 1 from a. When the
// operands are unordered or equal the result is b[0].
func MinSd(a, b lanes.F64x2) lanes.F64x2 { return scalar(a, b, fmin) }

// MinPd returns the per-lane minimum with the same NaN rule as MinSd.
func MinPd(a, b lanes.F64x2) lanes.F64x2 { return packed(a, b, fmin) }

// SqrtSd returns (sqrt(b[0]), a[1]).
func SqrtSd(a, b lanes.F64x2) lanes.F64x2 {
	return lanes.F64x2{math.Sqrt(b[0]), a[1]}
}

// SqrtPd takes the square root of both lanes.
func SqrtPd(a lanes.F64x2) lanes.F64x2 {
	var r lanes.F64x2
	lanes.Map(r[:], a[:], math.Sqrt)
	return r
}
