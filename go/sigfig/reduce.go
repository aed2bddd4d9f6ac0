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
	"reflect"

	"sigfig.dev/sigfig/go/dec"
	"sigfig.dev/sigfig/go/sigerrors"
)

// Max returns the largest value in the list. values must be a slice or
// array of any supported input type; elements that fail to parse (nil,
// NaN, infinities, unparsable text) are silently skipped, and a list
// with no usable element is CodeNoValidInput. Candidates are compared
// exactly, unrounded; only the selected value is rendered, at the
// smallest significant-figure count among the survivors' original
// representations unless overridden. Ties keep the earliest survivor.
func Max(values any, sigfigs ...int) (string, error) {
	return extremum(values, sigfigs, 1)
}

// Min returns the smallest value in the list, with Max's filtering and
// precision rules.
func Min(values any, sigfigs ...int) (string, error) {
	return extremum(values, sigfigs, -1)
}

func extremum(values any, sigfigs []int, want int) (string, error) {
	rv := reflect.ValueOf(values)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return "", sigerrors.Errorf(sigerrors.CodeInvalidArgument, "%T is not a list of values", values)
	}
	var best Value
	survivors := make([]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		v, err := NewValue(rv.Index(i).Interface())
		if err != nil {
			continue
		}
		if len(survivors) == 0 || v.num.Cmp(best.num)*want > 0 {
			best = v
		}
		survivors = append(survivors, v)
	}
	if len(survivors) == 0 {
		return "", sigerrors.New(sigerrors.CodeNoValidInput, "no valid input")
	}
	n, err := sigfigsArg(SigfigsForMulDiv(survivors...), sigfigs)
	if err != nil {
		return "", err
	}
	return formatSig(best.num, n, DefaultThreshold)
}

// PercentageOptions configures Percentage. The zero value derives the
// significant-figure count from the operands and appends a percent
// sign.
type PercentageOptions struct {
	// Sigfigs overrides the derived significant-figure count when
	// positive.
	Sigfigs int

	// OmitPercentSign leaves the trailing "%" off the result.
	OmitPercentSign bool
}

// Percentage returns part as a percentage of whole: (part ÷ whole) ×
// 100, rendered at the smaller significant-figure count of the two
// operands unless overridden, with a trailing "%" unless omitted. A
// zero whole is CodeDivisionByZero.
func Percentage(part, whole any, opts ...PercentageOptions) (string, error) {
	pv, wv, err := operands(part, whole)
	if err != nil {
		return "", err
	}
	var o PercentageOptions
	switch len(opts) {
	case 0:
	case 1:
		o = opts[0]
	default:
		return "", sigerrors.New(sigerrors.CodeInvalidArgument, "at most one options value may be supplied")
	}
	n := SigfigsForMulDiv(pv, wv)
	if o.Sigfigs != 0 {
		if err := validateSigfigs(o.Sigfigs); err != nil {
			return "", err
		}
		n = o.Sigfigs
	}
	if wv.num.IsZero() {
		return "", sigerrors.New(sigerrors.CodeDivisionByZero, "whole is zero")
	}
	ratio, err := pv.num.Div(wv.num, n+guardDigits)
	if err != nil {
		return "", err
	}
	scaled, err := ratio.Mul(dec.FromInt64(100))
	if err != nil {
		return "", err
	}
	s, err := formatSig(scaled, n, DefaultThreshold)
	if err != nil {
		return "", err
	}
	if !o.OmitPercentSign {
		s += "%"
	}
	return s, nil
}
