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
	"strconv"

	"sigfig.dev/sigfig/go/dec"
	"sigfig.dev/sigfig/go/sigerrors"
)

// Value is a parsed operand: the canonical decimal text it came from,
// which is the source of truth for significant-figure counting, and
// the exact decimal number behind it. Values are immutable; construct
// them with ParseValue or NewValue.
type Value struct {
	text string
	num  dec.Decimal
	p    parts
}

// parts is the canonical text split into the segments the counting
// rules operate on. The exponent never participates in counting, only
// in decimal-place derivation.
type parts struct {
	neg      bool
	intPart  string
	fracPart string
	hasPoint bool
	exp      int
	hasExp   bool
}

// ParseValue parses decimal text into a Value, preserving trailing
// zeros for counting. The grammar is an optional ASCII sign, digits
// with at most one point (at least one digit overall), and an optional
// e/E exponent with its own optional sign.
func ParseValue(s string) (Value, error) {
	p, err := scan(s)
	if err != nil {
		return Value{}, err
	}
	num, err := dec.Parse(s)
	if err != nil {
		return Value{}, err
	}
	return Value{text: s, num: num, p: p}, nil
}

// NewValue normalizes any supported input into a Value: strings and
// Values pass through ParseValue semantics, integers of all widths are
// exact, and floats are converted through their shortest round-trip
// decimal text, which deliberately loses trailing-zero information
// (the float 1.0 becomes "1" with one significant figure). NaN,
// infinities, nil, and unsupported dynamic types are CodeInvalidInput.
func NewValue(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case string:
		return ParseValue(x)
	case float64:
		return floatValue(x, 64)
	case float32:
		return floatValue(float64(x), 32)
	case int:
		return intValue(int64(x))
	case int8:
		return intValue(int64(x))
	case int16:
		return intValue(int64(x))
	case int32:
		return intValue(int64(x))
	case int64:
		return intValue(x)
	case uint:
		return uintValue(uint64(x))
	case uint8:
		return uintValue(uint64(x))
	case uint16:
		return uintValue(uint64(x))
	case uint32:
		return uintValue(uint64(x))
	case uint64:
		return uintValue(x)
	case nil:
		return Value{}, sigerrors.New(sigerrors.CodeInvalidInput, "nil is not a number")
	default:
		return Value{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "cannot use %T as a number", v)
	}
}

func floatValue(f float64, bits int) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "%v is not a finite number", f)
	}
	return ParseValue(strconv.FormatFloat(f, 'g', -1, bits))
}

func intValue(i int64) (Value, error) {
	return ParseValue(strconv.FormatInt(i, 10))
}

func uintValue(u uint64) (Value, error) {
	return ParseValue(strconv.FormatUint(u, 10))
}

// String returns the canonical decimal text of v.
func (v Value) String() string { return v.text }

// IsZero reports whether v is numerically zero.
func (v Value) IsZero() bool { return v.num.IsZero() }

// Count returns the significant-figure count of v.
func (v Value) Count() int { return countParts(v.p) }

// DecimalPlaces returns the number of digits v carries after the
// decimal point, taking any explicit exponent into account and
// flooring at zero.
func (v Value) DecimalPlaces() int {
	return max(len(v.p.fracPart)-v.p.exp, 0)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func invalidNumber(s string) error {
	return sigerrors.Errorf(sigerrors.CodeInvalidInput, "cannot parse %q as a decimal number", s)
}

// scan splits s into parts, validating the full grammar in one pass.
func scan(s string) (parts, error) {
	var p parts
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		p.neg = s[i] == '-'
		i++
	}
	start := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	p.intPart = s[start:i]
	if i < len(s) && s[i] == '.' {
		p.hasPoint = true
		i++
		start = i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		p.fracPart = s[start:i]
	}
	if p.intPart == "" && p.fracPart == "" {
		return parts{}, invalidNumber(s)
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		start = i
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			i++
		}
		digitsStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == digitsStart {
			return parts{}, invalidNumber(s)
		}
		exp, err := strconv.Atoi(s[start:i])
		if err != nil {
			return parts{}, sigerrors.Errorf(sigerrors.CodeInvalidInput, "%q: exponent out of range", s)
		}
		p.exp, p.hasExp = exp, true
	}
	if i != len(s) {
		return parts{}, invalidNumber(s)
	}
	return p, nil
}
