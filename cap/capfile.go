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
	"encoding/hex"
	"fmt"
	"strings"
)

// CapFile is a validated, immutable view of a compact-format CAP archive.
// Each present component's raw bytes (including its 3-byte tag+size prefix)
// are held in a fixed slot; all mandatory components are guaranteed present
// after construction.
//
// Only the compact CAP format is supported, not the extended format.
type CapFile struct {
	// One slot per component kind, indexed by tag-1. Optional components
	// leave their slot nil.
	slots [TagDebug][]byte
}

// NewCapFile builds a CapFile from the entries of an archive source.
// Entries are classified by a case-insensitive suffix match against
// "<componentname>.cap" (per Java Card VM specification v3.2, section
// 6.2.1); entries that match no component name are ignored. Construction
// fails with a MissingComponentError if any mandatory component is absent,
// reporting the first missing component in tag order.
func NewCapFile(src ArchiveSource) (*CapFile, error) {
	c := &CapFile{}
	for _, entryName := range src.EntryNames() {
		info := classifyEntry(entryName)
		if info == nil {
			continue
		}
		data, err := src.ReadEntry(entryName)
		if err != nil {
			return nil, fmt.Errorf("read archive entry %s: %w", entryName, err)
		}
		c.slots[info.Tag-1] = data
	}
	for _, info := range componentTable {
		if info.Mandatory && c.slots[info.Tag-1] == nil {
			return nil, &MissingComponentError{Name: info.Name}
		}
	}
	return c, nil
}

// classifyEntry maps an archive entry name to the component kind it holds,
// or nil for entries that are not CAP components.
func classifyEntry(entryName string) *ComponentInfo {
	lower := strings.ToLower(entryName)
	for _, info := range componentTable {
		if strings.HasSuffix(lower, strings.ToLower(info.Name)+".cap") {
			ret := info
			return &ret
		}
	}
	return nil
}

// Component returns the raw bytes of the component with the given tag, or
// nil if the component is absent (or the tag invalid). The returned slice
// must not be modified.
func (c *CapFile) Component(tag uint8) []byte {
	if tag < TagHeader || tag > TagDebug {
		return nil
	}
	return c.slots[tag-1]
}

// Loadfile returns the executable loadfile: the concatenation of all
// present components in the fixed load order defined by the Java Card VM
// specification (v3.2, section 6.3). The Debug component is never part of
// a loadfile.
func (c *CapFile) Loadfile() []byte {
	var loadfile []byte
	for _, tag := range loadfileOrder {
		loadfile = append(loadfile, c.slots[tag-1]...)
	}
	return loadfile
}

// LoadfileHex returns the loadfile as a lowercase hex string.
func (c *CapFile) LoadfileHex() string {
	return hex.EncodeToString(c.Loadfile())
}

// IJC returns all present components concatenated in tag order, producing
// the flat Interoperable Java Card transport encoding of the archive.
// Unlike a loadfile this includes the Debug component when present.
func (c *CapFile) IJC() []byte {
	var stream []byte
	for _, slot := range c.slots {
		stream = append(stream, slot...)
	}
	return stream
}

// Header returns the decoded Header component. It fails with an
// InvalidMagicError if the component does not start with the CAP magic
// number.
func (c *CapFile) Header() (*HeaderComponent, error) {
	header, err := DecodeHeader(c.slots[TagHeader-1])
	if err != nil {
		return nil, fmt.Errorf("decode Header component: %w", err)
	}
	if header.Magic != HeaderMagic {
		return nil, &InvalidMagicError{
			Found:    header.Magic,
			Expected: HeaderMagic,
		}
	}
	return header, nil
}

// LoadfileAID returns the package AID from the Header component. This is
// the package-level identifier, distinct from any applet's AID.
func (c *CapFile) LoadfileAID() ([]byte, error) {
	header, err := c.Header()
	if err != nil {
		return nil, err
	}
	return header.Package.AID, nil
}

// Applets returns the decoded Applet component. Even though every CAP file
// produced by a converter carries one, the specification defines it as
// optional, so this fails with a MissingOptionalComponentError when
// absent.
func (c *CapFile) Applets() (*AppletComponent, error) {
	data := c.slots[TagApplet-1]
	if data == nil {
		return nil, &MissingOptionalComponentError{Name: "Applet"}
	}
	applet, err := DecodeApplet(data)
	if err != nil {
		return nil, fmt.Errorf("decode Applet component: %w", err)
	}
	return applet, nil
}

// AppletCount returns the number of applets declared by the Applet
// component.
func (c *CapFile) AppletCount() (int, error) {
	applet, err := c.Applets()
	if err != nil {
		return 0, err
	}
	return applet.Count(), nil
}

// AppletAID returns the AID of the applet at the given index. Valid
// indexes are 0 <= index < AppletCount(); anything else fails with an
// AppletIndexError.
func (c *CapFile) AppletAID(index int) ([]byte, error) {
	applet, err := c.Applets()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= applet.Count() {
		return nil, &AppletIndexError{Index: index, Count: applet.Count()}
	}
	return applet.Applets[index].AID, nil
}
