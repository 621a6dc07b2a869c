/*
Copyright 2026 Triton Authors

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

package uri

import "fmt"

// SyntaxError is returned when an input violates the RFC 3986 grammar.
// Offset is the character offset within the literal substring of the
// offending component, and Input is that substring.
type SyntaxError struct {
	Component string
	Offset    int
	Input     string
}

// Error returns the string representation of the syntax error.
func (e *SyntaxError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("invalid character at index %d: %q", e.Offset, e.Input)
	}
	return fmt.Sprintf("invalid char in %s at index %d: %q", e.Component, e.Offset, e.Input)
}

// CorrelationError is returned when the components of a URI-reference are
// individually well-formed but violate one of the cross-component rules of
// RFC 3986, Sections 3 and 4.2. It is a specialization of SyntaxError:
// errors.As reaches the embedded *SyntaxError through Unwrap.
type CorrelationError struct {
	SyntaxError
	Reason string
}

// Error returns the violated rule.
func (e *CorrelationError) Error() string {
	return e.Reason
}

// Unwrap exposes the underlying syntax error.
func (e *CorrelationError) Unwrap() error {
	return &e.SyntaxError
}

// IndexError is returned by builder operations whose index argument is out
// of range.
type IndexError struct {
	Index int
	Size  int
}

// Error returns the string representation of the index error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for size %d", e.Index, e.Size)
}

// ArgumentError is returned on construction-time misuse, such as building
// an encoder whose mask allows a character outside the URIC set.
type ArgumentError struct {
	Reason string
}

// Error returns the string representation of the argument error.
func (e *ArgumentError) Error() string {
	return e.Reason
}

// OverflowError is returned by PortInt when the port component does not fit
// in an int32. The port string itself remains accessible through Port.
type OverflowError struct {
	Port string
}

// Error returns the string representation of the overflow error.
func (e *OverflowError) Error() string {
	return fmt.Sprintf("port overflows an int32: %s", e.Port)
}

// SinkError wraps an error reported by a caller-supplied encoder sink. The
// underlying error is wrapped exactly once and surfaced as-is via Unwrap.
type SinkError struct {
	Err error
}

// Error returns the string representation of the sink error.
func (e *SinkError) Error() string {
	return fmt.Sprintf("write to sink: %v", e.Err)
}

// Unwrap returns the sink's own error.
func (e *SinkError) Unwrap() error {
	return e.Err
}
