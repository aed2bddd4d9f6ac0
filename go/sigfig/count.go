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

import "strings"

// Count returns the number of significant figures in v under standard
// scientific convention:
//
//   - zero, however written, has one significant figure;
//   - in exponential text only the coefficient counts;
//   - with a decimal point, leading integer zeros are insignificant;
//     if no integer digit remains, leading fraction zeros are
//     insignificant too, and the remaining fraction digits count
//     ("0.00120" has three);
//   - with a decimal point and a non-zero integer part, every integer
//     and fraction digit counts, trailing zeros included ("1.230" has
//     four, "100." has three);
//   - without a point, leading and trailing zeros are insignificant
//     ("100" has one).
func Count(v any) (int, error) {
	val, err := NewValue(v)
	if err != nil {
		return 0, err
	}
	return val.Count(), nil
}

// DecimalPlaces returns the number of digits after the decimal point
// in the canonical text of v, adjusted by any explicit exponent and
// floored at zero. Integer-valued text yields 0.
func DecimalPlaces(v any) (int, error) {
	val, err := NewValue(v)
	if err != nil {
		return 0, err
	}
	return val.DecimalPlaces(), nil
}

func countParts(p parts) int {
	if allZero(p.intPart) && allZero(p.fracPart) {
		return 1
	}
	if p.hasPoint {
		ip := strings.TrimLeft(p.intPart, "0")
		if ip == "" {
			return max(len(strings.TrimLeft(p.fracPart, "0")), 1)
		}
		return len(ip) + len(p.fracPart)
	}
	return max(len(strings.Trim(p.intPart, "0")), 1)
}

func allZero(digits string) bool {
	for i := 0; i < len(digits); i++ {
		if digits[i] != '0' {
			return false
		}
	}
	return true
}
