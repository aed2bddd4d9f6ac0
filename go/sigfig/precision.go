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

// DecimalPlacesForAddSub resolves the output precision of a sum or
// difference: the decimal places of the least precise operand. Any
// integer-valued operand short-circuits the result to zero.
func DecimalPlacesForAddSub(values ...Value) int {
	places := -1
	for _, v := range values {
		p := v.DecimalPlaces()
		if p == 0 {
			return 0
		}
		if places < 0 || p < places {
			places = p
		}
	}
	return max(places, 0)
}

// SigfigsForMulDiv resolves the output precision of a product,
// quotient, remainder, or power: the smallest significant-figure count
// across the operands.
func SigfigsForMulDiv(values ...Value) int {
	n := 0
	for _, v := range values {
		if c := v.Count(); n == 0 || c < n {
			n = c
		}
	}
	return max(n, 1)
}
