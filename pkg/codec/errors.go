// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package codec

import (
	"errors"
	"fmt"
)

// ErrorCode classifies codec failures for programmatic handling.
type ErrorCode string

const (
	// ErrCodeConfig indicates a malformed profile definition.
	ErrCodeConfig ErrorCode = "CONFIG"
	// ErrCodeParse indicates a non-numeric version component.
	ErrCodeParse ErrorCode = "PARSE"
	// ErrCodeArity indicates a component-count mismatch between a
	// version string and the profile.
	ErrCodeArity ErrorCode = "ARITY"
	// ErrCodeOverflow indicates a decoded integer wider than the
	// profile's total bit capacity.
	ErrCodeOverflow ErrorCode = "OVERFLOW"
	// ErrCodeRange indicates a component value that does not fit its
	// allotted width. Only reported in strict mode.
	ErrCodeRange ErrorCode = "RANGE"
)

// parseErrorPrefix is carried on all encode/decode failures for message
// compatibility with prior instances of the scheme.
const parseErrorPrefix = "Parsing Error: "

// Error is the tagged error type for all codec failures. It carries an
// error code for programmatic handling, a human-readable message, and
// the underlying cause if any.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Error implements the error interface. Encode/decode failures are
// prefixed "Parsing Error: "; configuration failures are not, since
// they occur before any parsing of version data.
func (e *Error) Error() string {
	prefix := parseErrorPrefix
	if e.Code == ErrCodeConfig {
		prefix = ""
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s%s: %v", prefix, e.Message, e.Cause)
	}
	return prefix + e.Message
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf reports the code of err if it is (or wraps) a codec Error,
// and the empty string otherwise.
func CodeOf(err error) ErrorCode {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

func newError(code ErrorCode, message string) *Error {
	return &Error{Code: code, Message: message}
}

func newErrorf(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func wrapErrorf(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}
