// Copyright 2026 The gocap Authors
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

package cap

import "fmt"

// MissingComponentError is returned when a CAP archive lacks a mandatory
// component.
type MissingComponentError struct {
	Name string
}

func (e *MissingComponentError) Error() string {
	return fmt.Sprintf(
		"invalid CAP file: mandatory component %s missing",
		e.Name,
	)
}

// MissingOptionalComponentError is returned by accessors that require an
// optional component which the archive does not carry.
type MissingOptionalComponentError struct {
	Name string
}

func (e *MissingOptionalComponentError) Error() string {
	return fmt.Sprintf(
		"CAP file lacks the optional %s component",
		e.Name,
	)
}

// InvalidMagicError is returned when the Header component does not start
// with the CAP magic number.
type InvalidMagicError struct {
	Found    uint32
	Expected uint32
}

func (e *InvalidMagicError) Error() string {
	return fmt.Sprintf(
		"invalid CAP file: Header magic mismatch (0x%08X != 0x%08X)",
		e.Found,
		e.Expected,
	)
}

// AppletIndexError is returned when a requested applet index lies outside
// the Applet component's entry count.
type AppletIndexError struct {
	Index int
	Count int
}

func (e *AppletIndexError) Error() string {
	return fmt.Sprintf(
		"applet index %d out of range: CAP file has %d applets",
		e.Index,
		e.Count,
	)
}

// UnknownTagError is returned when an IJC stream contains a component tag
// outside the valid 1..12 range.
type UnknownTagError struct {
	Tag uint8
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("unknown component tag %d", e.Tag)
}

// TruncatedStreamError is returned when an IJC stream ends before a
// component's declared size is satisfied.
type TruncatedStreamError struct {
	Offset    int
	Needed    int
	Remaining int
}

func (e *TruncatedStreamError) Error() string {
	return fmt.Sprintf(
		"truncated IJC stream at offset %d: need %d bytes, %d remaining",
		e.Offset,
		e.Needed,
		e.Remaining,
	)
}
