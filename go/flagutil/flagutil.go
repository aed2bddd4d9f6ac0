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

// Package flagutil contains flags that parse precision controls for
// the sigfig tools.
package flagutil

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// SigfigsValue is an optional significant-figure count flag: "auto"
// leaves the count to be derived from the operands, a positive integer
// forces it.
type SigfigsValue struct {
	forced bool
	count  int
}

// Get returns the forced count, or 0 when the count is automatic.
func (v SigfigsValue) Get() any {
	return v.count
}

// Set sets the value of this flag from parsing the given string.
func (v *SigfigsValue) Set(s string) error {
	if strings.EqualFold(strings.TrimSpace(s), "auto") {
		*v = SigfigsValue{}
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid significant-figure count %q: expected auto or a positive integer", s)
	}
	v.forced, v.count = true, n
	return nil
}

// String returns the string representation of this flag.
func (v SigfigsValue) String() string {
	if !v.forced {
		return "auto"
	}
	return strconv.Itoa(v.count)
}

func (v SigfigsValue) Type() string { return "sigfigs" }

// Args returns the optional-argument slice to splice into an engine
// call: empty in automatic mode, the forced count otherwise.
func (v SigfigsValue) Args() []int {
	if !v.forced {
		return nil
	}
	return []int{v.count}
}

// SigfigsVar defines a SigfigsValue flag with the specified name and
// usage string. The flag defaults to automatic.
func SigfigsVar(fs *pflag.FlagSet, p *SigfigsValue, name string, usage string) {
	*p = SigfigsValue{}
	fs.Var(p, name, usage)
}

// ThresholdValue is a rounding threshold flag: a single digit 0
// through 9, validated at parse time.
type ThresholdValue struct {
	digit int
}

// Get returns the int value of this flag.
func (v ThresholdValue) Get() any {
	return v.digit
}

// Set sets the value of this flag from parsing the given string.
func (v *ThresholdValue) Set(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 || n > 9 {
		return fmt.Errorf("invalid threshold %q: expected a digit between 0 and 9", s)
	}
	v.digit = n
	return nil
}

// String returns the string representation of this flag.
func (v ThresholdValue) String() string {
	return strconv.Itoa(v.digit)
}

func (v ThresholdValue) Type() string { return "threshold" }

// Digit returns the threshold digit.
func (v ThresholdValue) Digit() int { return v.digit }

// ThresholdVar defines a ThresholdValue flag with the specified name,
// default digit, and usage string.
func ThresholdVar(fs *pflag.FlagSet, p *ThresholdValue, name string, def int, usage string) {
	*p = ThresholdValue{digit: def}
	fs.Var(p, name, usage)
}
