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

import (
	"github.com/openjavacard/gocap/codec"
)

// SplitComponent is one component re-chunked out of a flat IJC stream.
type SplitComponent struct {
	Name string
	// Bytes covers the whole component, including its 3-byte tag+size
	// prefix. It aliases the input stream.
	Bytes []byte
}

// SplitIJC walks a flat IJC byte stream and re-chunks it into its
// components. Each component starts with a 1-byte tag and a 2-byte
// big-endian size covering the bytes that follow the prefix. It makes no
// claims about mandatory components; it is a pure re-chunking transform.
func SplitIJC(stream []byte) ([]SplitComponent, error) {
	d := codec.NewDecoder(stream)
	var out []SplitComponent
	for !d.EOF() {
		start := d.Position()
		tag, err := d.Uint8()
		if err != nil {
			return nil, truncatedStream(start, err)
		}
		size, err := d.Uint16()
		if err != nil {
			return nil, truncatedStream(start, err)
		}
		info := ComponentByTag(tag)
		if info == nil {
			return nil, &UnknownTagError{Tag: tag}
		}
		if _, err := d.Bytes(int(size)); err != nil {
			return nil, truncatedStream(start, err)
		}
		out = append(out, SplitComponent{
			Name:  info.Name,
			Bytes: stream[start:d.Position()],
		})
	}
	return out, nil
}

// WriteIJC splits a flat IJC stream and writes each component to the sink
// as "<prefix>/javacard/<name>.cap", recreating the entry layout of a CAP
// archive. This is the inverse of CapFile construction.
func WriteIJC(stream []byte, prefix string, sink ArchiveSink) error {
	components, err := SplitIJC(stream)
	if err != nil {
		return err
	}
	for _, component := range components {
		entryName := prefix + "/javacard/" + component.Name + ".cap"
		if err := sink.WriteEntry(entryName, component.Bytes); err != nil {
			return err
		}
	}
	return nil
}

func truncatedStream(offset int, err error) error {
	if tr, ok := err.(*codec.TruncatedRecordError); ok {
		return &TruncatedStreamError{
			Offset:    offset,
			Needed:    tr.Needed,
			Remaining: tr.Remaining,
		}
	}
	return err
}
