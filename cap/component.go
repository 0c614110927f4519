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

import "strings"

// Component tags per the Java Card VM specification. The tag value doubles
// as the component's position in the IJC stream table; it is NOT the order
// in which components appear in a loadfile (see loadfileOrder).
const (
	TagHeader uint8 = iota + 1
	TagDirectory
	TagApplet
	TagImport
	TagConstantPool
	TagClass
	TagMethod
	TagStaticField
	TagRefLocation
	TagExport
	TagDescriptor
	TagDebug
)

// ComponentInfo describes one of the twelve fixed CAP component kinds.
type ComponentInfo struct {
	Tag       uint8
	Name      string
	Mandatory bool
}

// componentTable lists all component kinds in tag order (1-indexed by tag).
var componentTable = []ComponentInfo{
	{Tag: TagHeader, Name: "Header", Mandatory: true},
	{Tag: TagDirectory, Name: "Directory", Mandatory: true},
	{Tag: TagApplet, Name: "Applet", Mandatory: false},
	{Tag: TagImport, Name: "Import", Mandatory: true},
	{Tag: TagConstantPool, Name: "ConstantPool", Mandatory: true},
	{Tag: TagClass, Name: "Class", Mandatory: true},
	{Tag: TagMethod, Name: "Method", Mandatory: true},
	{Tag: TagStaticField, Name: "StaticField", Mandatory: true},
	{Tag: TagRefLocation, Name: "RefLocation", Mandatory: true},
	{Tag: TagExport, Name: "Export", Mandatory: false},
	{Tag: TagDescriptor, Name: "Descriptor", Mandatory: true},
	{Tag: TagDebug, Name: "Debug", Mandatory: false},
}

// loadfileOrder is the fixed order in which components are concatenated
// into the executable loadfile, per the Java Card VM specification. Note
// that it differs from tag order and that Debug is never loaded onto a
// card.
var loadfileOrder = []uint8{
	TagHeader,
	TagDirectory,
	TagImport,
	TagApplet,
	TagClass,
	TagMethod,
	TagStaticField,
	TagExport,
	TagConstantPool,
	TagRefLocation,
	TagDescriptor,
}

// ComponentByTag returns the component kind for the given tag, or nil if
// the tag lies outside the valid 1..12 range.
func ComponentByTag(tag uint8) *ComponentInfo {
	if tag < TagHeader || tag > TagDebug {
		return nil
	}
	info := componentTable[tag-1]
	return &info
}

// ComponentByName returns the component kind with the given name
// (case-insensitive), or nil if no such component exists.
func ComponentByName(name string) *ComponentInfo {
	for _, info := range componentTable {
		if strings.EqualFold(info.Name, name) {
			ret := info
			return &ret
		}
	}
	return nil
}
