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

// Package sigerrors provides the error handling primitives used
// throughout this module.
//
// Every error carries a Code that classifies the failure. The
// traditional way to create one is sigerrors.New:
//
//	err := sigerrors.New(sigerrors.CodeDivisionByZero, "division by zero")
//
// Errors travelling up the call stack can be annotated without losing
// their code:
//
//	_, err := dec.Parse(raw)
//	if err != nil {
//	        return sigerrors.Wrapf(err, "operand %d", i)
//	}
//
// Wrapped messages are joined with ": ", so the example above renders
// as "operand 2: <original message>".
//
// Which code an error carries is retrieved with CodeOf, which walks
// the chain of wrapped errors to the innermost code it finds:
//
//	if sigerrors.CodeOf(err) == sigerrors.CodeInvalidInput {
//	        // handle unparseable operand
//	}
//
// Errors created by other packages carry CodeUnknown. All errors
// returned here participate in the standard errors.Is/As/Unwrap
// machinery.
package sigerrors

import (
	"errors"
	"fmt"
)

// fundamental is an error with a code and a message, the root of every
// chain this package creates.
type fundamental struct {
	code Code
	msg  string
}

func (f *fundamental) Error() string { return f.msg }

// New returns an error with the supplied code and message.
func New(code Code, msg string) error {
	return &fundamental{code: code, msg: msg}
}

// Errorf formats according to a format specifier and returns the string
// as an error value carrying the supplied code.
func Errorf(code Code, format string, args ...any) error {
	return &fundamental{code: code, msg: fmt.Sprintf(format, args...)}
}

// wrapping annotates a cause with an additional message. The code of
// the chain stays whatever the cause carries.
type wrapping struct {
	cause error
	msg   string
}

func (w *wrapping) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrapping) Unwrap() error { return w.cause }

// Wrap returns an error annotating err with the supplied message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: msg}
}

// Wrapf returns an error annotating err with the formatted message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &wrapping{cause: err, msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the innermost code attached to err, unwrapping as far
// as it can. A nil error and errors created outside this package map
// to CodeUnknown.
func CodeOf(err error) Code {
	code := CodeUnknown
	for err != nil {
		var f *fundamental
		if errors.As(err, &f) {
			code = f.code
			err = errors.Unwrap(f)
			continue
		}
		err = errors.Unwrap(err)
	}
	return code
}

// RootCause unwraps err all the way down and returns the innermost
// error of the chain. If err is nil, nil is returned.
func RootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
