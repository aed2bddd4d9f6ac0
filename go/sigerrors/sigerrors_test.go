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

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	testCases := []struct {
		code Code
		msg  string
	}{
		{CodeInvalidInput, "cannot parse \"abc\" as a decimal number"},
		{CodeDivisionByZero, "division by zero"},
		{CodeNoValidInput, "no valid input"},
	}
	for _, tc := range testCases {
		err := New(tc.code, tc.msg)
		require.Error(t, err)
		assert.Equal(t, tc.msg, err.Error())
		assert.Equal(t, tc.code, CodeOf(err))
	}
}

func TestErrorf(t *testing.T) {
	err := Errorf(CodeInvalidArgument, "significant figures must be positive, got %d", -3)
	require.Error(t, err)
	assert.Equal(t, "significant figures must be positive, got -3", err.Error())
	assert.Equal(t, CodeInvalidArgument, CodeOf(err))
}

func TestWrapping(t *testing.T) {
	err1 := Errorf(CodeInvalidInput, "invalid operand")
	err2 := Wrapf(err1, "operand %d", 2)
	err3 := Wrap(err2, "max")

	assert.Equal(t, "max: operand 2: invalid operand", err3.Error())
	assert.Equal(t, CodeInvalidInput, CodeOf(err3))
	assert.Equal(t, err1, RootCause(err3))
	assert.True(t, errors.Is(err3, err1))
}

func TestWrapNil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "ignored"))
	assert.NoError(t, Wrapf(nil, "ignored %d", 1))
}

func TestCodeOf(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Code
	}{{
		name: "nil",
		err:  nil,
		want: CodeUnknown,
	}, {
		name: "foreign error",
		err:  errors.New("plain"),
		want: CodeUnknown,
	}, {
		name: "fundamental",
		err:  New(CodeInvalidDomain, "square root of negative number"),
		want: CodeInvalidDomain,
	}, {
		name: "wrapped once",
		err:  Wrap(New(CodeInvalidResult, "zero to a negative power"), "pow"),
		want: CodeInvalidResult,
	}, {
		name: "wrapped by stdlib",
		err:  fmt.Errorf("outer: %w", New(CodeDivisionByZero, "division by zero")),
		want: CodeDivisionByZero,
	}, {
		name: "wrapped foreign error",
		err:  Wrap(io.EOF, "read"),
		want: CodeUnknown,
	}}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CodeOf(tc.err))
		})
	}
}

func TestRootCause(t *testing.T) {
	assert.Nil(t, RootCause(nil))

	root := New(CodeInvalidInput, "root")
	assert.Equal(t, root, RootCause(root))
	assert.Equal(t, root, RootCause(Wrap(Wrap(root, "a"), "b")))

	assert.Equal(t, io.EOF, RootCause(Wrap(io.EOF, "read")))
}

func TestCodeString(t *testing.T) {
	testCases := []struct {
		code Code
		want string
	}{
		{CodeUnknown, "UNKNOWN"},
		{CodeInvalidInput, "INVALID_INPUT"},
		{CodeInvalidArgument, "INVALID_ARGUMENT"},
		{CodeDivisionByZero, "DIVISION_BY_ZERO"},
		{CodeInvalidDomain, "INVALID_DOMAIN"},
		{CodeInvalidResult, "INVALID_RESULT"},
		{CodeNoValidInput, "NO_VALID_INPUT"},
		{Code(99), "UNKNOWN"},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.code.String())
	}
}
