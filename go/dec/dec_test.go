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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sigfig.dev/sigfig/go/sigerrors"
)

func mustParse(t *testing.T, s string) Decimal {
	t.Helper()
	d, err := Parse(s)
	require.NoError(t, err)
	return d
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in         string
		wantDigits string
		wantExp    int
		wantSign   int
	}{
		{"0", "0", 0, 0},
		{"123.45", "12345", -2, 1},
		{"-0.500", "500", -3, -1},
		{".5", "5", -1, 1},
		{"5.", "5", 0, 1},
		{"+12e3", "12", 3, 1},
		{"1E-2", "1", -2, 1},
		{"00100", "100", 0, 1},
		{"-0", "0", 0, 0},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDigits, d.Digits())
			assert.Equal(t, tc.wantExp, d.Exponent())
			assert.Equal(t, tc.wantSign, d.Sign())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	inputs := []string{
		"", ".", "abc", "1.2.3", "1e", "e5", "--5", "+-5",
		"NaN", "nan", "Infinity", "-Inf", "0x10", "1 2", " 5",
		"1e100001", "-1e100001", "1e+2147483648",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			require.Error(t, err)
			assert.Equal(t, sigerrors.CodeInvalidInput, sigerrors.CodeOf(err))
		})
	}
}

func TestFromFloat64(t *testing.T) {
	testCases := []struct {
		in         float64
		wantDigits string
		wantExp    int
		wantSign   int
	}{
		{1.0, "1", 0, 1},
		{100.0, "100", 0, 1},
		{0.1, "1", -1, 1},
		{0.000123, "123", -6, 1},
		{1e-7, "1", -7, 1},
		{1e21, "1", 21, 1},
		{-2.5, "25", -1, -1},
		{0, "0", 0, 0},
	}
	for _, tc := range testCases {
		d, err := FromFloat64(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.wantDigits, d.Digits(), "digits of %v", tc.in)
		assert.Equal(t, tc.wantExp, d.Exponent(), "exponent of %v", tc.in)
		assert.Equal(t, tc.wantSign, d.Sign(), "sign of %v", tc.in)
	}

	for _, bad := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := FromFloat64(bad)
		require.Error(t, err)
		assert.Equal(t, sigerrors.CodeInvalidInput, sigerrors.CodeOf(err))
	}
}

func TestFromInts(t *testing.T) {
	assert.Equal(t, "0", FromInt64(0).Digits())
	assert.Equal(t, 0, FromInt64(0).Sign())

	d := FromInt64(-5)
	assert.Equal(t, "5", d.Digits())
	assert.Equal(t, -1, d.Sign())

	assert.Equal(t, "9223372036854775807", FromInt64(math.MaxInt64).Digits())
	assert.Equal(t, "18446744073709551615", FromUint64(math.MaxUint64).Digits())
}

func TestIsInteger(t *testing.T) {
	testCases := []struct {
		in   string
		want bool
	}{
		{"100", true},
		{"1.00", true},
		{"0", true},
		{"0.0", true},
		{"1e3", true},
		{"1230e-1", true},
		{"1.5", false},
		{"12.30", false},
		{"-0.001", false},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, mustParse(t, tc.in).IsInteger(), "IsInteger(%s)", tc.in)
	}
}

func TestAccessors(t *testing.T) {
	d := mustParse(t, "-12.30")
	assert.Equal(t, "1230", d.Digits())
	assert.Equal(t, 4, d.NumDigits())
	assert.Equal(t, -2, d.Exponent())
	assert.Equal(t, 1, d.Adjusted())
	assert.True(t, mustParse(t, "0").IsZero())
	assert.False(t, d.IsZero())

	assert.Equal(t, -3, mustParse(t, "0.00123").Adjusted())
	assert.Equal(t, 1, mustParse(t, "0").NumDigits())
}

func TestInt64(t *testing.T) {
	i, err := mustParse(t, "1230e-1").Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(123), i)

	_, err = mustParse(t, "1.5").Int64()
	assert.Error(t, err)
}

func TestFloat64(t *testing.T) {
	f, err := mustParse(t, "2.5").Float64()
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
}
