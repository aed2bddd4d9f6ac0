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
	"sigfig.dev/sigfig/go/sigerrors"
)

// Round renders v with exactly sigfigs significant figures. The
// optional threshold (default 5) picks the rounding direction: the
// decision digit, the first digit beyond the retained ones (0 when
// absent), rounds the result away from zero when it is at or above the
// threshold. Round(123.456, 3, 3) is "124"; Round(123.256, 3, 3) is
// "123". Zero renders as "0" regardless of sigfigs.
func Round(v any, sigfigs int, threshold ...int) (string, error) {
	if err := validateSigfigs(sigfigs); err != nil {
		return "", err
	}
	th, err := thresholdArg(threshold)
	if err != nil {
		return "", err
	}
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	return formatSig(val.num, sigfigs, th)
}

// Truncate renders v with exactly sigfigs significant figures, never
// rounding up: the digits beyond the retained ones are dropped.
func Truncate(v any, sigfigs int) (string, error) {
	if err := validateSigfigs(sigfigs); err != nil {
		return "", err
	}
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	return formatSig(val.num, sigfigs, truncateThreshold)
}

// ToSigfigs renders v with exactly sigfigs significant figures using
// the default half-up rounding.
func ToSigfigs(v any, sigfigs int) (string, error) {
	return Round(v, sigfigs)
}

// ToPrecision is an alias for ToSigfigs.
func ToPrecision(v any, sigfigs int) (string, error) {
	return ToSigfigs(v, sigfigs)
}

// ToDecimalPlaces renders v in fixed notation with exactly places
// digits after the point, rounding half-up and zero-padding as needed:
// ToDecimalPlaces(1.5, 3) is "1.500" and ToDecimalPlaces(0, 3) is
// "0.000". Magnitudes at or past 1e21 fall back to exponential form.
func ToDecimalPlaces(v any, places int) (string, error) {
	if err := validatePlaces(places); err != nil {
		return "", err
	}
	val, err := NewValue(v)
	if err != nil {
		return "", err
	}
	return formatPlaces(val.num, places)
}

// ToFixed is an alias for ToDecimalPlaces.
func ToFixed(v any, places int) (string, error) {
	return ToDecimalPlaces(v, places)
}

// formatSig rounds d to sigfigs digits at the given threshold and
// renders the result.
func formatSig(d dec.Decimal, sigfigs, threshold int) (string, error) {
	if d.IsZero() {
		return "0", nil
	}
	r, err := roundToSig(d, sigfigs, threshold)
	if err != nil {
		return "", err
	}
	return renderSig(r, sigfigs), nil
}

// formatPlaces quantizes d to places decimal places and renders the
// result.
func formatPlaces(d dec.Decimal, places int) (string, error) {
	q, err := d.Quantize(places)
	if err != nil {
		return "", err
	}
	return renderPlaces(q), nil
}

// roundToSig rounds d to at most sigfigs significant digits. The
// default threshold delegates to dec.RoundSig, whose half-up rounding
// decides direction identically (a decision digit of five or more is
// exactly a remainder of half an ulp or more). Other
// thresholds run the digit procedure on the exact coefficient:
// truncate to sigfigs digits, then increment away from zero when the
// decision digit reaches the threshold. A threshold of zero increments
// even when the decision digit is absent. A carry that widens the
// digits (99 → 100) renormalizes to keep the retained width.
func roundToSig(d dec.Decimal, sigfigs, threshold int) (dec.Decimal, error) {
	if threshold == DefaultThreshold {
		return d.RoundSig(sigfigs)
	}
	digits := d.Digits()
	exp := d.Exponent()
	decision := 0
	if len(digits) > sigfigs {
		decision = int(digits[sigfigs] - '0')
		exp += len(digits) - sigfigs
		digits = digits[:sigfigs]
	} else if threshold > 0 {
		return d, nil
	} else {
		digits, exp = padDigits(digits, exp, sigfigs)
	}
	if decision >= threshold {
		var widened bool
		digits, widened = incrementDigits(digits)
		if widened {
			digits = digits[:len(digits)-1]
			exp++
		}
	}
	return rebuild(d.Sign() < 0, digits, exp)
}

// incrementDigits adds one to a digit string, reporting whether the
// carry widened it ("99" → "100").
func incrementDigits(digits string) (string, bool) {
	b := []byte(digits)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b), false
		}
		b[i] = '0'
	}
	return "1" + string(b), true
}

// rebuild reassembles a decimal from a rounded digit string.
func rebuild(neg bool, digits string, exp int) (dec.Decimal, error) {
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString(digits)
	b.WriteByte('e')
	b.WriteString(strconv.Itoa(exp))
	return dec.Parse(b.String())
}

func validateSigfigs(n int) error {
	if n < 1 || n > maxSigfigs {
		return sigerrors.Errorf(sigerrors.CodeInvalidArgument, "significant figures must be between 1 and %d, got %d", maxSigfigs, n)
	}
	return nil
}

func validatePlaces(n int) error {
	if n < 0 || n > maxPlaces {
		return sigerrors.Errorf(sigerrors.CodeInvalidArgument, "decimal places must be between 0 and %d, got %d", maxPlaces, n)
	}
	return nil
}

func validateThreshold(n int) error {
	if n < 0 || n > 9 {
		return sigerrors.Errorf(sigerrors.CodeInvalidArgument, "threshold must be between 0 and 9, got %d", n)
	}
	return nil
}

// thresholdArg resolves the optional trailing threshold argument.
func thresholdArg(args []int) (int, error) {
	switch len(args) {
	case 0:
		return DefaultThreshold, nil
	case 1:
		if err := validateThreshold(args[0]); err != nil {
			return 0, err
		}
		return args[0], nil
	}
	return 0, sigerrors.New(sigerrors.CodeInvalidArgument, "at most one threshold may be supplied")
}

// sigfigsArg resolves an optional trailing significant-figure count,
// falling back to the derived default.
func sigfigsArg(def int, args []int) (int, error) {
	switch len(args) {
	case 0:
		return def, nil
	case 1:
		if err := validateSigfigs(args[0]); err != nil {
			return 0, err
		}
		return args[0], nil
	}
	return 0, sigerrors.New(sigerrors.CodeInvalidArgument, "at most one significant-figure count may be supplied")
}
