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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundSig(t *testing.T) {
	testCases := []struct {
		in         string
		n          int
		wantDigits string
		wantExp    int
	}{
		{"123.456", 3, "123", 0},
		{"1.9971", 3, "200", -2},
		{"0.9995", 3, "100", -2},
		{"99.95", 3, "100", 0},
		{"12", 5, "12", 0},
		{"-123.456", 2, "12", 1},
		{"0.00012345", 4, "1235", -7},
		{"5", 1, "5", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := mustParse(t, tc.in).RoundSig(tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDigits, got.Digits())
			assert.Equal(t, tc.wantExp, got.Exponent())
		})
	}
}

func TestRoundSigKeepsSign(t *testing.T) {
	got, err := mustParse(t, "-99.95").RoundSig(3)
	require.NoError(t, err)
	assert.Equal(t, -1, got.Sign())
	assertSame(t, "-100", got)
}

func TestQuantize(t *testing.T) {
	testCases := []struct {
		in         string
		places     int
		wantDigits string
		wantExp    int
	}{
		{"1.5", 3, "1500", -3},
		{"87.5", 0, "88", 0},
		{"123.456", 2, "12346", -2},
		{"0.004", 2, "0", -2},
		{"-2.5", 0, "3", 0},
		{"0", 3, "0", -3},
		{"2.5", 0, "3", 0},
		{"2.4", 0, "2", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := mustParse(t, tc.in).Quantize(tc.places)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDigits, got.Digits())
			assert.Equal(t, tc.wantExp, got.Exponent())
		})
	}
}
