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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigfig.dev/sigfig/go/sigerrors"
)

func TestToScientific(t *testing.T) {
	testCases := []struct {
		in      any
		sigfigs []int
		want    string
	}{
		// The default count is the input's own. Trailing zeros a
		// decimal point makes significant survive.
		{"1.230", nil, "1.230e+0"},
		{"123.456", nil, "1.23456e+2"},
		{"0.000123", nil, "1.23e-4"},
		{"-45.6", nil, "-4.56e+1"},
		{100, nil, "1e+2"},
		{"100.", nil, "1.00e+2"},
		{"0.5", nil, "5e-1"},
		{1e-7, nil, "1e-7"},

		// Explicit counts round or pad the coefficient.
		{"123.456", []int{2}, "1.2e+2"},
		{"123.456", []int{4}, "1.235e+2"},
		{"99.9", []int{2}, "1.0e+2"},
		{"5", []int{3}, "5.00e+0"},
		{"-0.00012345", []int{3}, "-1.23e-4"},

		// Zero pins the exponent at zero.
		{"0", nil, "0e+0"},
		{"0", []int{3}, "0.00e+0"},
		{0.0, []int{2}, "0.0e+0"},
		{"-0", nil, "0e+0"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v%v", tc.in, tc.sigfigs), func(t *testing.T) {
			got, err := ToScientific(tc.in, tc.sigfigs...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToExponential(t *testing.T) {
	want, err := ToScientific("123.456", 3)
	require.NoError(t, err)

	got, err := ToExponential("123.456", 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "1.23e+2", got)
}

func TestToEngineering(t *testing.T) {
	testCases := []struct {
		in      any
		sigfigs []int
		want    string
	}{
		{"0.000123", nil, "123e-6"},
		{"-0.000123", nil, "-123e-6"},
		{"1234", nil, "1.234e+3"},
		{"12345", nil, "12.345e+3"},
		{"123456", nil, "123.456e+3"},
		{"1234567", nil, "1.234567e+6"},
		{"1.5", nil, "1.5e+0"},
		{"15", nil, "15e+0"},

		// Coefficients below one scale up to the next lower triple.
		{"0.1", nil, "100e-3"},
		{"0.01", nil, "10e-3"},
		{"0.001", nil, "1e-3"},

		// Rounding happens before the exponent is constrained.
		{"999.9", []int{2}, "1.0e+3"},
		{"0.000123", []int{2}, "120e-6"},
		{1500000, nil, "1.5e+6"},
		{"1e2", []int{3}, "100e+0"},

		{"0", nil, "0e+0"},
		{"0", []int{3}, "0.00e+0"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v%v", tc.in, tc.sigfigs), func(t *testing.T) {
			got, err := ToEngineering(tc.in, tc.sigfigs...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNotationInvalid(t *testing.T) {
	_, err := ToScientific("abc")
	require.Error(t, err)
	assert.Equal(t, sigerrors.CodeInvalidInput, sigerrors.CodeOf(err))

	_, err = ToScientific("1", 0)
	require.Error(t, err)
	assert.Equal(t, sigerrors.CodeInvalidArgument, sigerrors.CodeOf(err))

	_, err = ToEngineering("1", 1, 2)
	require.Error(t, err)
	assert.Equal(t, sigerrors.CodeInvalidArgument, sigerrors.CodeOf(err))
}
