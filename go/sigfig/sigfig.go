/*
Copyright 2025 The Sigfig Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package sigfig implements significant-figures-aware decimal
// arithmetic and formatting.
//
// Inputs are decimal text or native numeric values. Text is the
// precision-preserving path: "1.0" carries two significant figures,
// while the float 1.0 prints as "1" and carries one, because a native
// float cannot remember trailing zeros. All arithmetic is decimal-exact
// (no binary floating-point error) and every result is returned as
// decimal text, never as a float.
//
//	sum, _ := sigfig.Add("1.23", "4.5")      // "5.7"
//	product, _ := sigfig.Mul("100", "2.5")   // "3e+2"
//	n, _ := sigfig.Count("1.230")            // 4
//
// Binary operations derive their output precision from the operands:
// add and sub keep the decimal places of the least precise operand,
// while mul, div, mod, idiv and pow keep the smaller significant-figure
// count. Every operation accepts an optional trailing significant-figure
// count that overrides the derived precision.
//
// Rounding direction is controlled by a threshold digit in [0, 9],
// default 5: the decision digit (the first digit beyond the retained
// ones) rounds away from zero when it is at or above the threshold.
// Truncate is the never-round-up variant.
//
// All functions are pure: no shared state, no I/O, safe for concurrent
// use from multiple goroutines.
package sigfig

const (
	// DefaultThreshold is the decision digit value at and above which
	// rounding moves away from zero.
	DefaultThreshold = 5

	// truncateThreshold lies past every possible decision digit, so the
	// rounding procedure never increments.
	truncateThreshold = 10

	// guardDigits is the extra precision carried by inexact operations
	// (division, roots, reciprocals) before rounding, keeping the
	// decision digit free of intermediate rounding.
	guardDigits = 16

	// maxSigfigs and maxPlaces bound the precision control parameters.
	// They match the exponent range the dec package accepts.
	maxSigfigs = 100000
	maxPlaces  = 100000

	// expLowerBand and expUpperBand delimit the adjusted exponents
	// rendered in fixed notation. Outside the band, output switches to
	// exponential form even where fixed form was implied.
	expLowerBand = -7
	expUpperBand = 21
)
