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

// Package codec implements the primitive binary encoding used throughout
// the CAP file format: big-endian unsigned integers and LV byte strings
// (a one-byte length prefix followed by that many bytes).
package codec

import (
	"encoding/binary"
	"fmt"
)

// TruncatedRecordError is returned when a decode operation demands more
// bytes than remain in the buffer.
type TruncatedRecordError struct {
	Needed    int
	Remaining int
}

func (e *TruncatedRecordError) Error() string {
	return fmt.Sprintf(
		"truncated record: need %d bytes, %d remaining",
		e.Needed,
		e.Remaining,
	)
}

// Decoder provides sequential field decoding with position tracking over a
// byte slice. Returned slices alias the underlying data and must not be
// modified by the caller.
type Decoder struct {
	data []byte
	pos  int
}

func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// Position returns the current byte position in the buffer.
func (d *Decoder) Position() int {
	return d.pos
}

// Remaining returns the number of unconsumed bytes.
func (d *Decoder) Remaining() int {
	return len(d.data) - d.pos
}

// EOF returns true once every byte has been consumed.
func (d *Decoder) EOF() bool {
	return d.pos >= len(d.data)
}

// Bytes consumes and returns the next n bytes.
func (d *Decoder) Bytes(n int) ([]byte, error) {
	if n < 0 || d.Remaining() < n {
		return nil, &TruncatedRecordError{Needed: n, Remaining: d.Remaining()}
	}
	ret := d.data[d.pos : d.pos+n]
	d.pos += n
	return ret, nil
}

func (d *Decoder) Uint8() (uint8, error) {
	buf, err := d.Bytes(1)
	if err != nil {
		return 0, err
	}
	return buf[0], nil
}

func (d *Decoder) Uint16() (uint16, error) {
	buf, err := d.Bytes(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf), nil
}

func (d *Decoder) Uint32() (uint32, error) {
	buf, err := d.Bytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf), nil
}

// LV consumes a length-prefixed byte string: one length byte followed by
// that many data bytes. The returned slice excludes the length byte.
func (d *Decoder) LV() ([]byte, error) {
	length, err := d.Uint8()
	if err != nil {
		return nil, err
	}
	return d.Bytes(int(length))
}

// Encoder builds a buffer of big-endian fields. It is the write-side
// counterpart of Decoder.
type Encoder struct {
	data []byte
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// Bytes returns the encoded buffer.
func (e *Encoder) Bytes() []byte {
	return e.data
}

func (e *Encoder) Uint8(v uint8) *Encoder {
	e.data = append(e.data, v)
	return e
}

func (e *Encoder) Uint16(v uint16) *Encoder {
	e.data = binary.BigEndian.AppendUint16(e.data, v)
	return e
}

func (e *Encoder) Uint32(v uint32) *Encoder {
	e.data = binary.BigEndian.AppendUint32(e.data, v)
	return e
}

// Raw appends bytes verbatim.
func (e *Encoder) Raw(v []byte) *Encoder {
	e.data = append(e.data, v...)
	return e
}

// LV appends a length-prefixed byte string. Values longer than 255 bytes
// cannot be represented and return an error.
func (e *Encoder) LV(v []byte) error {
	if len(v) > 255 {
		return fmt.Errorf("LV value too long: %d bytes", len(v))
	}
	e.data = append(e.data, uint8(len(v)))
	e.data = append(e.data, v...)
	return nil
}
