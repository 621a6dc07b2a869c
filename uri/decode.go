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

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
)

// Decode reverses percent-encoding. Characters of the URIC set are emitted
// as single bytes, "%HH" triplets decode to the byte they name, and any
// other character, including a truncated or malformed triplet, is a
// *SyntaxError carrying the offending offset.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c == '%' {
			if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
				return nil, &SyntaxError{Offset: i, Input: s}
			}
			out = append(out, hexToByte(s[i+1], s[i+2]))
			i += 3
			continue
		}
		if !URICMask.Match(c) {
			return nil, &SyntaxError{Offset: i, Input: s}
		}
		out = append(out, c)
		i++
	}
	return out, nil
}

// DecodeText decodes the percent-encoded string s and then converts the
// raw bytes to text in the given character encoding, replacing malformed
// sequences with the replacement character.
func DecodeText(s string, enc encoding.Encoding) (string, error) {
	if enc == nil || enc == unicode.UTF8 {
		return DecodeUTF8(s)
	}
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	out, err := enc.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// DecodeUTF8 is DecodeText for UTF-8. When s contains no triplet, the
// input is returned as-is after a character check, avoiding the byte
// buffer entirely.
func DecodeUTF8(s string) (string, error) {
	if !strings.Contains(s, "%") {
		if n := URICMask.MatchString(s); n != len(s) {
			return "", &SyntaxError{Offset: n, Input: s}
		}
		return s, nil
	}
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return strings.ToValidUTF8(string(b), "�"), nil
}
