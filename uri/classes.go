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

// The character-class tables of RFC 3986, built once at package
// initialization and shared process-wide. Each mask is named after the
// grammar rule it implements.
var (
	lowAlphaMask = mustMask("abcdefghijklmnopqrstuvwxyz")
	upAlphaMask  = mustMask("ABCDEFGHIJKLMNOPQRSTUVWXYZ")

	// AlphaMask matches ALPHA (RFC 3986, Section 1.3).
	AlphaMask = CombineMask(lowAlphaMask, upAlphaMask)
	// DigitMask matches DIGIT.
	DigitMask = mustMask("0123456789")
	// HexDigMask matches HEXDIG, in both cases.
	HexDigMask = CombineMask(DigitMask, mustMask("abcdefABCDEF"))

	// UnreservedMask matches the unreserved set (Section 2.3).
	UnreservedMask = CombineMask(AlphaMask, DigitMask, mustMask("-._~"))
	// GenDelimsMask matches gen-delims (Section 2.2).
	GenDelimsMask = mustMask(":/?#[]@")
	// SubDelimsMask matches sub-delims (Section 2.2).
	SubDelimsMask = mustMask("!$&'()*+,;=")
	// ReservedMask matches the reserved set.
	ReservedMask = CombineMask(GenDelimsMask, SubDelimsMask)
	// URICMask is the union of the unreserved and reserved sets: every
	// US-ASCII character that may appear literally somewhere in a URI.
	URICMask = CombineMask(UnreservedMask, ReservedMask)

	// PCharMask matches pchar (Section 3.3).
	PCharMask = CombineMask(UnreservedMask, SubDelimsMask, mustMask(":@"))
	// SegmentMask matches segment.
	SegmentMask = PCharMask
	// SegmentNCMask matches segment-nz-nc, the first segment of a
	// relative-path reference, which must not contain a colon.
	SegmentNCMask = CombineMask(UnreservedMask, SubDelimsMask, mustMask("@"))

	// SchemeFirstMask matches the first character of a scheme.
	SchemeFirstMask = AlphaMask
	// SchemeMask matches the remaining characters of a scheme.
	SchemeMask = CombineMask(AlphaMask, DigitMask, mustMask("+-."))
	// UserInfoMask matches userinfo (Section 3.2.1).
	UserInfoMask = CombineMask(UnreservedMask, SubDelimsMask, mustMask(":"))
	// RegNameMask matches reg-name (Section 3.2.2). IPv4 dotted-decimal
	// hosts are a subset of reg-name and need no separate mask.
	RegNameMask = CombineMask(UnreservedMask, SubDelimsMask)
	// PortMask matches port (Section 3.2.3).
	PortMask = DigitMask
	// PathMask matches any path character (Section 3.3).
	PathMask = CombineMask(PCharMask, mustMask("/"))
	// QueryMask matches query (Section 3.4).
	QueryMask = CombineMask(PCharMask, mustMask("/?"))
	// FragmentMask matches fragment (Section 3.5).
	FragmentMask = CombineMask(PCharMask, mustMask("/?"))

	// ipv6AddressMask bounds the characters of an IPv6 address literal
	// before the numeric recognizer runs.
	ipv6AddressMask = CombineMask(HexDigMask, DigitMask, mustMask(":."))
	// ipvFutureMask matches the data part of an IPvFuture literal.
	ipvFutureMask = CombineMask(UnreservedMask, SubDelimsMask, mustMask(":"))
)
