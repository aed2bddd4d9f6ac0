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
	"math"

	"sigfig.dev/sigfig/go/dec"
	"sigfig.dev/sigfig/go/sigerrors"
)

// Add returns a + b, computed exactly. By default the result keeps the
// decimal places of the least precise operand (Add(1.23, 4.5) is
// "5.7"); an explicit significant-figure count switches to sigfig
// rendering instead.
func Add(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	sum, err := av.num.Add(bv.num)
	if err != nil {
		return "", err
	}
	return formatAddSub(sum, av, bv, sigfigs)
}

// Sub returns a - b, computed exactly, with Add's precision rules.
func Sub(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	diff, err := av.num.Sub(bv.num)
	if err != nil {
		return "", err
	}
	return formatAddSub(diff, av, bv, sigfigs)
}

// formatAddSub applies the add/sub asymmetry: decimal places by
// default, significant figures only on explicit request.
func formatAddSub(d dec.Decimal, av, bv Value, sigfigs []int) (string, error) {
	if len(sigfigs) > 0 {
		n, err := sigfigsArg(0, sigfigs)
		if err != nil {
			return "", err
		}
		return formatSig(d, n, DefaultThreshold)
	}
	return formatPlaces(d, DecimalPlacesForAddSub(av, bv))
}

// Mul returns a × b, computed exactly and rendered at the smaller
// significant-figure count of the operands unless overridden:
// Mul(100, 2.5) is "3e+2".
func Mul(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(SigfigsForMulDiv(av, bv), sigfigs)
	if err != nil {
		return "", err
	}
	product, err := av.num.Mul(bv.num)
	if err != nil {
		return "", err
	}
	return formatSig(product, n, DefaultThreshold)
}

// Div returns a ÷ b at the smaller significant-figure count of the
// operands unless overridden. A zero divisor is CodeDivisionByZero.
func Div(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(SigfigsForMulDiv(av, bv), sigfigs)
	if err != nil {
		return "", err
	}
	quotient, err := av.num.Div(bv.num, n+guardDigits)
	if err != nil {
		return "", err
	}
	return formatSig(quotient, n, DefaultThreshold)
}

// Mod returns the remainder of the truncated division a ÷ b, taking
// the sign of a. A zero modulus is CodeDivisionByZero.
func Mod(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(SigfigsForMulDiv(av, bv), sigfigs)
	if err != nil {
		return "", err
	}
	rem, err := av.num.Rem(bv.num)
	if err != nil {
		return "", err
	}
	return formatSig(rem, n, DefaultThreshold)
}

// IntDiv returns the floor of a ÷ b: the quotient rounds toward
// negative infinity, so IntDiv(-7, 2) is "-4". A zero divisor is
// CodeDivisionByZero.
func IntDiv(a, b any, sigfigs ...int) (string, error) {
	av, bv, err := operands(a, b)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(SigfigsForMulDiv(av, bv), sigfigs)
	if err != nil {
		return "", err
	}
	q, err := av.num.QuoInt(bv.num)
	if err != nil {
		return "", err
	}
	if av.num.Sign()*bv.num.Sign() < 0 {
		rem, err := av.num.Rem(bv.num)
		if err != nil {
			return "", err
		}
		if !rem.IsZero() {
			q, err = q.Sub(dec.FromInt64(1))
			if err != nil {
				return "", err
			}
		}
	}
	return formatSig(q, n, DefaultThreshold)
}

// Pow returns base raised to exponent. Integer exponents are computed
// exactly (a zero base with a negative exponent is CodeInvalidResult);
// non-integer exponents fall back to float approximation, and a
// non-finite outcome is CodeInvalidResult. The default precision is
// the smaller significant-figure count of base and exponent.
func Pow(base, exponent any, sigfigs ...int) (string, error) {
	bv, ev, err := operands(base, exponent)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(SigfigsForMulDiv(bv, ev), sigfigs)
	if err != nil {
		return "", err
	}
	if ev.num.IsInteger() {
		if e, ierr := ev.num.Int64(); ierr == nil {
			result, err := bv.num.PowInt(e, n+guardDigits)
			if err != nil {
				return "", err
			}
			return formatSig(result, n, DefaultThreshold)
		}
		// The exponent is integral but beyond int64; the float path
		// below turns the inevitable overflow into CodeInvalidResult.
	}
	return powFloat(bv.num, ev.num, n)
}

// powFloat approximates a non-integer power through float64.
func powFloat(base, exponent dec.Decimal, n int) (string, error) {
	notFinite := sigerrors.New(sigerrors.CodeInvalidResult, "result is not a finite number")
	bf, err := base.Float64()
	if err != nil {
		return "", notFinite
	}
	ef, err := exponent.Float64()
	if err != nil {
		return "", notFinite
	}
	f := math.Pow(bf, ef)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", notFinite
	}
	d, err := dec.FromFloat64(f)
	if err != nil {
		return "", err
	}
	return formatSig(d, n, DefaultThreshold)
}

// Sqrt returns the square root of v at the significant-figure count of
// v unless overridden. Negative input is CodeInvalidDomain.
func Sqrt(v any, sigfigs ...int) (string, error) {
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(val.Count(), sigfigs)
	if err != nil {
		return "", err
	}
	root, err := val.num.Sqrt(n + guardDigits)
	if err != nil {
		return "", err
	}
	return formatSig(root, n, DefaultThreshold)
}

// Abs returns the absolute value of v at the significant-figure count
// of v unless overridden.
func Abs(v any, sigfigs ...int) (string, error) {
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	n, err := sigfigsArg(val.Count(), sigfigs)
	if err != nil {
		return "", err
	}
	return formatSig(val.num.Abs(), n, DefaultThreshold)
}

func operands(a, b any) (Value, Value, error) {
	av, err := NewValue(a)
	if err != nil {
		return Value{}, Value{}, err
	}
	bv, err := NewValue(b)
	if err != nil {
		return Value{}, Value{}, err
	}
	return av, bv, nil
}
