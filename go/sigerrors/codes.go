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

package sigerrors

// Code classifies an error so that callers can branch on the kind of
// failure programmatically instead of matching message text.
type Code int

// All the error codes.
const (
	// CodeUnknown is the code of errors that did not originate in this
	// module, and of nil.
	CodeUnknown Code = iota

	// CodeInvalidInput reports an operand that could not be parsed as a
	// finite decimal number.
	CodeInvalidInput

	// CodeInvalidArgument reports an out-of-range control parameter,
	// such as a non-positive significant-figure count, a negative
	// decimal-place count, or a rounding threshold outside [0, 9].
	CodeInvalidArgument

	// CodeDivisionByZero reports a zero divisor, modulus, or percentage
	// whole.
	CodeDivisionByZero

	// CodeInvalidDomain reports an operand outside the mathematical
	// domain of the operation, such as the square root of a negative
	// number.
	CodeInvalidDomain

	// CodeInvalidResult reports a computation that produced a value
	// that cannot be represented as a finite decimal, such as a zero
	// base raised to a negative power.
	CodeInvalidResult

	// CodeNoValidInput reports a variadic reducer whose operand list
	// contained no usable element.
	CodeNoValidInput
)

var codeNames = map[Code]string{
	CodeUnknown:         "UNKNOWN",
	CodeInvalidInput:    "INVALID_INPUT",
	CodeInvalidArgument: "INVALID_ARGUMENT",
	CodeDivisionByZero:  "DIVISION_BY_ZERO",
	CodeInvalidDomain:   "INVALID_DOMAIN",
	CodeInvalidResult:   "INVALID_RESULT",
	CodeNoValidInput:    "NO_VALID_INPUT",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
