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

// AppletEntry is one applet declaration inside the Applet component.
type AppletEntry struct {
	AID                 []byte
	InstallMethodOffset uint16
}

// AppletComponent is the decoded compact Applet component, per the Java
// Card VM specification (v3.2, section 6.6).
type AppletComponent struct {
	Tag     uint8
	Size    uint16
	Applets []AppletEntry
}

// Count returns the number of applets declared by the component.
func (a *AppletComponent) Count() int {
	return len(a.Applets)
}

// DecodeApplet decodes a compact Applet component, including its own
// 3-byte tag+size prefix.
func DecodeApplet(data []byte) (*AppletComponent, error) {
	d := codec.NewDecoder(data)
	var a AppletComponent
	var err error
	if a.Tag, err = d.Uint8(); err != nil {
		return nil, err
	}
	if a.Size, err = d.Uint16(); err != nil {
		return nil, err
	}
	count, err := d.Uint8()
	if err != nil {
		return nil, err
	}
	a.Applets = make([]AppletEntry, 0, count)
	for i := uint8(0); i < count; i++ {
		var entry AppletEntry
		if entry.AID, err = d.LV(); err != nil {
			return nil, err
		}
		if entry.InstallMethodOffset, err = d.Uint16(); err != nil {
			return nil, err
		}
		a.Applets = append(a.Applets, entry)
	}
	return &a, nil
}
