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

// RoundSig rounds d half-up to at most n significant digits. Values
// already at or below n digits are returned unchanged. Trailing zeros
// produced by the rounding stay in the coefficient (1.997 rounded to
// three digits keeps the coefficient 200), so renderers see the full
// rounded width through Digits and Exponent.
func (d Decimal) RoundSig(n int) (Decimal, error) {
	c := sizedContext(int64(n))
	c.Rounding = apd.RoundHalfUp
	var out apd.Decimal
	if _, err := c.Round(&out, &d.inner); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "round")
	}
	return Decimal{inner: out}, nil
}

// Quantize rounds d half-up to exactly places digits after the point.
// The result exponent is -places, so trailing zeros survive (1.5
// quantized to three places carries the coefficient 1500).
func (d Decimal) Quantize(places int) (Decimal, error) {
	c := newContext(adjusted(&d.inner) + int64(places) + 3)
	c.Rounding = apd.RoundHalfUp
	var out apd.Decimal
	if _, err := c.Quantize(&out, &d.inner, int32(-places)); err != nil {
		return Decimal{}, sigerrors.Wrap(err, "quantize")
	}
	return Decimal{inner: out}, nil
}
