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

package sigfig

import (
	"strconv"
	"strings"

	"sigfig.dev/sigfig/go/dec"
)

// The renderers assemble final strings from coefficient digits and a
// power-of-ten exponent. They never consult dec's String rendering, so
// exponent style ("e+2", not "E+02") and zero padding are fully owned
// here.

// renderSig renders d, already rounded to at most sigfigs digits, with
// exactly sigfigs significant figures. Fixed notation is used inside
// the exponent band as long as it can show exactly sigfigs digits;
// otherwise the output is exponential (250 at one significant figure
// must be "3e+2", since "300" would claim only one of its three
// digits).
func renderSig(d dec.Decimal, sigfigs int) string {
	digits, exp := padDigits(d.Digits(), d.Exponent(), sigfigs)
	adj := exp + len(digits) - 1
	if exp > 0 || adj <= expLowerBand || adj >= expUpperBand {
		return expNotation(d.Sign() < 0, digits, adj)
	}
	return fixedNotation(d.Sign() < 0, digits, exp)
}

// renderPlaces renders d, already quantized to the wanted decimal
// places, in fixed notation. Magnitudes at or beyond the upper band
// fall back to the shortest exponential form rather than spelling out
// dozens of integer digits.
func renderPlaces(d dec.Decimal) string {
	if !d.IsZero() && d.Adjusted() >= expUpperBand {
		return shortestExp(d)
	}
	return fixedNotation(d.Sign() < 0, d.Digits(), d.Exponent())
}

// renderSci renders d, already rounded to at most sigfigs digits, in
// scientific notation with exactly sigfigs coefficient digits.
func renderSci(d dec.Decimal, sigfigs int) string {
	if d.IsZero() {
		return expNotation(false, zeros(sigfigs), 0)
	}
	digits, exp := padDigits(d.Digits(), d.Exponent(), sigfigs)
	return expNotation(d.Sign() < 0, digits, exp+len(digits)-1)
}

// renderEng renders d, already rounded to at most sigfigs digits, in
// engineering notation: the exponent is a multiple of three and the
// coefficient lies in [1, 1000).
func renderEng(d dec.Decimal, sigfigs int) string {
	if d.IsZero() {
		return expNotation(false, zeros(sigfigs), 0)
	}
	digits, exp := padDigits(d.Digits(), d.Exponent(), sigfigs)
	adj := exp + len(digits) - 1
	engExp := 3 * floorDiv3(adj)
	intDigits := adj - engExp + 1
	if short := intDigits - len(digits); short > 0 {
		digits += zeros(short)
	}

	var b strings.Builder
	if d.Sign() < 0 {
		b.WriteByte('-')
	}
	b.WriteString(digits[:intDigits])
	if len(digits) > intDigits {
		b.WriteByte('.')
		b.WriteString(digits[intDigits:])
	}
	b.WriteString(expText(engExp))
	return b.String()
}

// padDigits widens a digit string to sigfigs digits by appending
// zeros, compensating through the exponent so the value is unchanged.
func padDigits(digits string, exp, sigfigs int) (string, int) {
	if pad := sigfigs - len(digits); pad > 0 {
		return digits + zeros(pad), exp - pad
	}
	return digits, exp
}

// expNotation assembles [-]D[.DDD]e±X from a digit string and the
// adjusted exponent of its leading digit.
func expNotation(neg bool, digits string, adj int) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte(digits[0])
	if len(digits) > 1 {
		b.WriteByte('.')
		b.WriteString(digits[1:])
	}
	b.WriteString(expText(adj))
	return b.String()
}

// fixedNotation assembles [-]III[.FFF] from a digit string and the
// exponent of its trailing digit.
func fixedNotation(neg bool, digits string, exp int) string {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	switch {
	case exp == 0:
		b.WriteString(digits)
	case exp > 0:
		b.WriteString(digits)
		b.WriteString(zeros(exp))
	default:
		point := len(digits) + exp
		if point > 0 {
			b.WriteString(digits[:point])
			b.WriteByte('.')
			b.WriteString(digits[point:])
		} else {
			b.WriteString("0.")
			b.WriteString(zeros(-point))
			b.WriteString(digits)
		}
	}
	return b.String()
}

// shortestExp renders d in exponential form with trailing coefficient
// zeros dropped.
func shortestExp(d dec.Decimal) string {
	digits := d.Digits()
	exp := d.Exponent()
	if t := strings.TrimRight(digits, "0"); t != digits {
		exp += len(digits) - len(t)
		digits = t
	}
	return expNotation(d.Sign() < 0, digits, exp+len(digits)-1)
}

// expText renders an exponent suffix with a mandatory, unpadded sign:
// "e+0", "e+21", "e-6".
func expText(exp int) string {
	if exp < 0 {
		return "e-" + strconv.Itoa(-exp)
	}
	return "e+" + strconv.Itoa(exp)
}

func zeros(n int) string { return strings.Repeat("0", n) }

// floorDiv3 divides by three rounding toward negative infinity.
func floorDiv3(n int) int {
	q := n / 3
	if n%3 != 0 && n < 0 {
		q--
	}
	return q
}
