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

// Package dec is a narrow, immutable wrapper around
// github.com/cockroachdb/apd. It is the only package that imports apd.
//
// A Decimal is a finite arbitrary-precision decimal represented as an
// integer coefficient and a power-of-ten exponent. Operations never
// mutate their receiver or arguments; every result is a fresh value, so
// Decimals are safe for concurrent use.
//
// Exact operations (Add, Sub, Mul, Neg, Abs, non-negative PowInt) size
// their working precision from the operand widths so no rounding can
// occur. Inherently inexact operations (Div, Sqrt, reciprocal PowInt)
// take the number of significant digits the caller wants; callers that
// round the result afterwards should request guard digits beyond their
// target.
package dec

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"sigfig.dev/sigfig/go/sigerrors"
)

// Decimal is a finite decimal number. The zero value is 0.
type Decimal struct {
	inner apd.Decimal
}

// Parse converts decimal text into a Decimal. The accepted grammar is
// an optional ASCII sign, digits with at most one point, and an
// optional e/E exponent. Non-finite forms (NaN, Infinity) and values
// whose adjusted exponent lies outside ±apd.MaxExponent are rejected
// with CodeInvalidInput.
func Parse(s string) (Decimal, error) {
	// apd strips one sign and big.Int would take another; allow only
	// sign, digit, or point up front.
	t := s
	if len(t) > 0 && (t[0] == '+' || t[0] == '-') {
		t = t[1:]
	}
	if len(t) == 0 || (t[0] != '.' && (t[0] < '0' || t[0] > '9')) {
		return Decimal{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "cannot parse %q as a decimal number", s)
	}
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return Decimal{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "cannot parse %q as a decimal number", s)
	}
	if d.Form != apd.Finite {
		return Decimal{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "cannot parse %q as a finite decimal number", s)
	}
	if adj := adjusted(d); adj > apd.MaxExponent || adj < apd.MinExponent {
		return Decimal{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "%q: exponent out of range", s)
	}
	return Decimal{inner: *d}, nil
}

// FromFloat64 converts a float to the Decimal holding its shortest
// round-trip decimal rendering, so float64(1.0) becomes exactly 1 and
// float64(0.1) becomes exactly 0.1. NaN and infinities are rejected
// with CodeInvalidInput.
func FromFloat64(f float64) (Decimal, error) {
	return fromFloatText(strconv.FormatFloat(f, 'g', -1, 64))
}

// FromFloat32 is FromFloat64 for 32-bit floats, using the shortest
// rendering that round-trips at 32 bits.
func FromFloat32(f float32) (Decimal, error) {
	return fromFloatText(strconv.FormatFloat(float64(f), 'g', -1, 32))
}

func fromFloatText(s string) (Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil || d.Form != apd.Finite {
		return Decimal{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "%s is not a finite number", s)
	}
	return Decimal{inner: *d}, nil
}

// FromInt64 converts an integer to a Decimal.
func FromInt64(i int64) Decimal {
	return Decimal{inner: *apd.New(i, 0)}
}

// FromUint64 converts an unsigned integer to a Decimal.
func FromUint64(u uint64) Decimal {
	var d apd.Decimal
	d.Coeff.SetUint64(u)
	return Decimal{inner: d}
}

// IsZero reports whether d is zero.
func (d Decimal) IsZero() bool { return d.inner.IsZero() }

// Sign returns -1 if d < 0, 0 if d == 0, and +1 if d > 0.
func (d Decimal) Sign() int { return d.inner.Sign() }

// Cmp compares d and x numerically and returns -1, 0, or +1.
func (d Decimal) Cmp(x Decimal) int { return d.inner.Cmp(&x.inner) }

// IsInteger reports whether d has no fractional part.
func (d Decimal) IsInteger() bool {
	if d.inner.Exponent >= 0 || d.inner.IsZero() {
		return true
	}
	var r apd.Decimal
	r.Reduce(&d.inner)
	return r.Exponent >= 0
}

// Digits returns the absolute coefficient of d as a digit string with
// no sign and no point. Zero yields "0".
func (d Decimal) Digits() string { return d.inner.Coeff.String() }

// NumDigits returns the number of digits in the coefficient of d.
// Zero counts as one digit.
func (d Decimal) NumDigits() int { return int(d.inner.NumDigits()) }

// Exponent returns the power of ten of the least significant
// coefficient digit: d = coefficient × 10^Exponent.
func (d Decimal) Exponent() int { return int(d.inner.Exponent) }

// Adjusted returns the power of ten of the most significant
// coefficient digit, i.e. the exponent d would carry in scientific
// notation. Meaningless for zero.
func (d Decimal) Adjusted() int { return int(adjusted(&d.inner)) }

// Int64 returns d as an int64 if it is integral and in range.
func (d Decimal) Int64() (int64, error) {
	i, err := d.inner.Int64()
	if err != nil {
		return 0, sigerrors.Wrap(err, "int64")
	}
	return i, nil
}

// Float64 returns the nearest float64 to d.
func (d Decimal) Float64() (float64, error) {
	f, err := d.inner.Float64()
	if err != nil {
		return 0, sigerrors.Wrap(err, "float64")
	}
	return f, nil
}

// String renders d in apd's diagnostic notation. Final output strings
// are assembled by the callers from Digits and Exponent; String is for
// logs, errors, and tests.
func (d Decimal) String() string { return d.inner.String() }

func adjusted(d *apd.Decimal) int64 {
	return int64(d.Exponent) + d.NumDigits() - 1
}
