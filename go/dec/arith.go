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

package dec

import (
	"github.com/cockroachdb/apd/v3"

	"sigfig.dev/sigfig/go/sigerrors"
)

const (
	// contextPrecisionFloor keeps every working context wide enough
	// that small precision requests never starve an operation.
	contextPrecisionFloor = 16

	// exponentLimit leaves exponent room for any product or quotient
	// of operands that passed the Parse range gate.
	exponentLimit = 1 << 30
)

func sizedContext(prec int64) *apd.Context {
	return &apd.Context{
		Precision:   uint32(prec),
		MaxExponent: exponentLimit,
		MinExponent: -exponentLimit,
		Traps:       apd.DefaultTraps,
	}
}

func newContext(prec int64) *apd.Context {
	return sizedContext(max(prec, contextPrecisionFloor))
}

// addPrecision returns a working precision that holds the sum or
// difference of x and y without rounding: one digit past the widest
// span from the highest leading digit to the lowest trailing digit.
func addPrecision(x, y *apd.Decimal) int64 {
	hi := max(adjusted(x), adjusted(y))
	lo := min(int64(x.Exponent), int64(y.Exponent))
	return hi - lo + 2
}

// mulPrecision returns a working precision that holds the full product
// of x and y: the product coefficient is at most as wide as both
// coefficient widths combined.
func mulPrecision(x, y *apd.Decimal) int64 {
	return x.NumDigits() + y.NumDigits() + 1
}

// intQuoPrecision returns a working precision that holds the integer
// part of x ÷ y.
func intQuoPrecision(x, y *apd.Decimal) int64 {
	return adjusted(x) - adjusted(y) + 3
}

// Add returns d + x exactly.
func (d Decimal) Add(x Decimal) (Decimal, error) {
	var out apd.Decimal
	if _, err := newContext(addPrecision(&d.inner, &x.inner)).Add(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "add")
	}
	return Decimal{inner: out}, nil
}

// Sub returns d - x exactly.
func (d Decimal) Sub(x Decimal) (Decimal, error) {
	var out apd.Decimal
	if _, err := newContext(addPrecision(&d.inner, &x.inner)).Sub(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "subtract")
	}
	return Decimal{inner: out}, nil
}

// Mul returns d × x exactly.
func (d Decimal) Mul(x Decimal) (Decimal, error) {
	var out apd.Decimal
	if _, err := newContext(mulPrecision(&d.inner, &x.inner)).Mul(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "multiply")
	}
	return Decimal{inner: out}, nil
}

// Neg returns -d.
func (d Decimal) Neg() Decimal {
	var out apd.Decimal
	out.Neg(&d.inner)
	return Decimal{inner: out}
}

// Abs returns |d|.
func (d Decimal) Abs() Decimal {
	var out apd.Decimal
	out.Abs(&d.inner)
	return Decimal{inner: out}
}

// Div returns d ÷ x carrying digits significant digits. A zero divisor
// is CodeDivisionByZero.
func (d Decimal) Div(x Decimal, digits int) (Decimal, error) {
	if x.IsZero() {
		return Decimal{}, sigerrors.New(sigerrors.CodeDivisionByZero, "division by zero")
	}
	var out apd.Decimal
	if _, err := newContext(int64(digits)).Quo(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "divide")
	}
	return Decimal{inner: out}, nil
}

// Sqrt returns the square root of d carrying digits significant
// digits. Negative input is CodeInvalidDomain.
func (d Decimal) Sqrt(digits int) (Decimal, error) {
	if d.Sign() < 0 {
		return Decimal{}, sigerrors.New(sigerrors.CodeInvalidDomain, "square root of a negative number")
	}
	var out apd.Decimal
	if _, err := newContext(int64(digits)).Sqrt(&out, &d.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "square root")
	}
	return Decimal{inner: out}, nil
}

// QuoInt returns the integer part of d ÷ x, truncated toward zero.
func (d Decimal) QuoInt(x Decimal) (Decimal, error) {
	if x.IsZero() {
		return Decimal{}, sigerrors.New(sigerrors.CodeDivisionByZero, "division by zero")
	}
	var out apd.Decimal
	if _, err := newContext(intQuoPrecision(&d.inner, &x.inner)).QuoInteger(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "integer divide")
	}
	return Decimal{inner: out}, nil
}

// Rem returns the remainder of the truncated integer division d ÷ x.
// The result takes the sign of d.
func (d Decimal) Rem(x Decimal) (Decimal, error) {
	if x.IsZero() {
		return Decimal{}, sigerrors.New(sigerrors.CodeDivisionByZero, "remainder by zero")
	}
	var out apd.Decimal
	if _, err := newContext(intQuoPrecision(&d.inner, &x.inner) + mulPrecision(&d.inner, &x.inner)).Rem(&out, &d.inner, &x.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "remainder")
	}
	return Decimal{inner: out}, nil
}

// PowInt returns d raised to an integer exponent. Non-negative
// exponents are computed exactly on the coefficient; negative
// exponents take the reciprocal of the exact positive power at digits
// significant digits. A zero base with a negative exponent is
// CodeInvalidResult, as is a result whose magnitude leaves the
// representable exponent range.
func (d Decimal) PowInt(exp int64, digits int) (Decimal, error) {
	if d.IsZero() {
		if exp < 0 {
			return Decimal{}, sigerrors.New(sigerrors.CodeInvalidResult, "zero cannot be raised to a negative power")
		}
		if exp == 0 {
			return FromInt64(1), nil
		}
		return Decimal{}, nil
	}
	if exp == 0 {
		return FromInt64(1), nil
	}
	if d.Abs().Cmp(FromInt64(1)) == 0 {
		if exp%2 != 0 {
			return d, nil
		}
		return FromInt64(1), nil
	}
	if exp > apd.MaxExponent || exp < -apd.MaxExponent {
		return Decimal{}, sigerrors.New(sigerrors.CodeInvalidResult, "result out of range")
	}
	neg := exp < 0
	n := exp
	if neg {
		n = -n
	}
	adj := adjusted(&d.inner)
	if adj < 0 {
		adj = -adj
	}
	if (adj+1)*n > apd.MaxExponent {
		return Decimal{}, sigerrors.New(sigerrors.CodeInvalidResult, "result out of range")
	}
	expProduct := int64(d.inner.Exponent) * n
	if expProduct > exponentLimit || expProduct < -exponentLimit {
		return Decimal{}, sigerrors.New(sigerrors.CodeInvalidResult, "result out of range")
	}
	coeff := new(apd.BigInt).Exp(&d.inner.Coeff, apd.NewBigInt(n), nil)
	pos := apd.Decimal{
		Negative: d.inner.Negative && n%2 == 1,
		Exponent: int32(expProduct),
		Coeff:    *coeff,
	}
	if !neg {
		return Decimal{inner: pos}, nil
	}
	var out apd.Decimal
	if _, err := newContext(int64(digits)).Quo(&out, apd.New(1, 0), &pos); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "pow")
	}
	return Decimal{inner: out}, nil
}
