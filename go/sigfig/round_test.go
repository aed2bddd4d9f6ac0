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

func TestRound(t *testing.T) {
	testCases := []struct {
		in      any
		sigfigs int
		want    string
	}{
		{"123.456", 3, "123"},
		{"123.456", 4, "123.5"},
		{"123.456", 5, "123.46"},
		{"123.456", 6, "123.456"},
		{"123.456", 7, "123.4560"},
		{"-123.456", 3, "-123"},
		{"-123.456", 2, "-1.2e+2"},

		// Halfway digits round away from zero.
		{"2.5", 1, "3"},
		{"-2.5", 1, "-3"},
		{"0.035", 1, "0.04"},
		{"250", 1, "3e+2"},

		// Carries renormalize and may hop into exponential form.
		{"99.9", 2, "1.0e+2"},
		{"9.99", 2, "10"},
		{"99.9", 3, "99.9"},
		{"999.9", 3, "1.00e+3"},
		{"0.9995", 3, "1.00"},
		{"9.8765", 1, "1e+1"},
		{"-99.96", 3, "-100"},

		// Padding adds significant trailing zeros.
		{"5", 3, "5.00"},
		{"5", 1, "5"},
		{"0.00012", 3, "0.000120"},
		{"1.5", 4, "1.500"},

		// Fixed form only when it can show exactly sigfigs digits.
		{"123", 1, "1e+2"},
		{"123", 2, "1.2e+2"},
		{"123", 3, "123"},
		{"100", 3, "100"},
		{"1e20", 1, "1e+20"},

		// Outside the band the form is always exponential.
		{"0.0000001", 1, "1e-7"},
		{"0.000001", 1, "0.000001"},
		{"1e21", 1, "1e+21"},

		{"0.00012345", 3, "0.000123"},
		{"0.00012345", 2, "0.00012"},
		{"0.00012355", 3, "0.000124"},

		// Zero is "0" at any count.
		{"0", 3, "0"},
		{0.0, 5, "0"},
		{"-0", 2, "0"},

		{1.0, 3, "1.00"},
		{100, 2, "1.0e+2"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v@%d", tc.in, tc.sigfigs), func(t *testing.T) {
			got, err := Round(tc.in, tc.sigfigs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoundThreshold(t *testing.T) {
	testCases := []struct {
		in        string
		sigfigs   int
		threshold int
		want      string
	}{
		{"123.456", 3, 3, "124"},
		{"123.256", 3, 3, "123"},
		{"123.456", 3, 5, "123"},
		{"123.556", 3, 5, "124"},

		// Threshold 9 only rounds up on a nine.
		{"1.295", 3, 9, "1.29"},
		{"1.299", 3, 9, "1.30"},
		{"129.5", 2, 9, "1.3e+2"},
		{"128.5", 2, 9, "1.2e+2"},

		// Threshold 0 always rounds up, even past the written digits.
		{"1.21", 2, 0, "1.3"},
		{"1.5", 2, 0, "1.6"},
		{"1.5", 3, 0, "1.51"},
		{"2", 1, 0, "3"},
		{"-2", 1, 0, "-3"},

		// Carries renormalize under any threshold.
		{"99.5", 2, 4, "1.0e+2"},
		{"9.99", 2, 0, "10"},

		{"-123.456", 3, 3, "-124"},
		{"0", 3, 0, "0"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s@%d/%d", tc.in, tc.sigfigs, tc.threshold), func(t *testing.T) {
			got, err := Round(tc.in, tc.sigfigs, tc.threshold)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		in      string
		sigfigs int
		want    string
	}{
		{"1.999", 2, "1.9"},
		{"0.9999", 2, "0.99"},
		{"-1.999", 2, "-1.9"},
		{"123.456", 4, "123.4"},
		{"100", 2, "1.0e+2"},

		// Short inputs pad, same as rounding.
		{"1.5", 3, "1.50"},
		{"0", 2, "0"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%s@%d", tc.in, tc.sigfigs), func(t *testing.T) {
			got, err := Truncate(tc.in, tc.sigfigs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRoundAliases(t *testing.T) {
	want, err := Round("123.456", 4)
	require.NoError(t, err)

	got, err := ToSigfigs("123.456", 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)

	got, err = ToPrecision("123.456", 4)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRoundIdempotent(t *testing.T) {
	values := []string{"123.456", "99.9", "0.9995", "0.00012345", "-123.456", "250"}
	for _, v := range values {
		for n := 1; n <= 5; n++ {
			once, err := Round(v, n)
			require.NoError(t, err)
			twice, err := Round(once, n)
			require.NoError(t, err)
			assert.Equal(t, once, twice, "Round(%s, %d)", v, n)
		}
	}
}

func TestRoundCountRoundTrip(t *testing.T) {
	values := []string{"123.456", "0.0012345", "9.8765", "-42.42"}
	for _, v := range values {
		for n := 1; n <= 6; n++ {
			s, err := Round(v, n)
			require.NoError(t, err)
			got, err := Count(s)
			require.NoError(t, err)
			assert.Equal(t, n, got, "Count(Round(%s, %d) = %s)", v, n, s)
		}
	}
}

func TestRoundInvalid(t *testing.T) {
	testCases := []struct {
		name string
		err  error
	}{
		{"zero sigfigs", func() error { _, err := Round("1", 0); return err }()},
		{"negative sigfigs", func() error { _, err := Round("1", -2); return err }()},
		{"sigfigs too large", func() error { _, err := Round("1", maxSigfigs+1); return err }()},
		{"threshold too large", func() error { _, err := Round("1", 2, 10); return err }()},
		{"threshold negative", func() error { _, err := Round("1", 2, -1); return err }()},
		{"two thresholds", func() error { _, err := Round("1", 2, 3, 4); return err }()},
		{"truncate zero sigfigs", func() error { _, err := Truncate("1", 0); return err }()},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err)
			assert.Equal(t, sigerrors.CodeInvalidArgument, sigerrors.CodeOf(tc.err))
		})
	}

	_, err := Round("abc", 2)
	require.Error(t, err)
	assert.Equal(t, sigerrors.CodeInvalidInput, sigerrors.CodeOf(err))
}

func TestToDecimalPlaces(t *testing.T) {
	testCases := []struct {
		in     any
		places int
		want   string
	}{
		{"1.5", 3, "1.500"},
		{"0", 3, "0.000"},
		{"0", 0, "0"},
		{"87.5", 0, "88"},
		{"123.456", 2, "123.46"},
		{"-2.5", 0, "-3"},
		{"2.4", 0, "2"},
		{"100", 2, "100.00"},
		{"0.004", 2, "0.00"},
		{1.25, 1, "1.3"},

		// Rounding to zero drops the sign.
		{"-0.004", 2, "0.00"},

		// Past the band, fixed form gives way to exponential.
		{"2e21", 2, "2e+21"},
		{"1.25e21", 1, "1.25e+21"},
		{"1e20", 0, "100000000000000000000"},
	}
	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%v@%d", tc.in, tc.places), func(t *testing.T) {
			got, err := ToDecimalPlaces(tc.in, tc.places)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToFixed(t *testing.T) {
	got, err := ToFixed("1.005", 2)
	require.NoError(t, err)
	assert.Equal(t, "1.01", got)

	_, err = ToFixed("1", -1)
	require.Error(t, err)
	assert.Equal(t, sigerrors.CodeInvalidArgument, sigerrors.CodeOf(err))
}
