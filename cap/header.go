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

// HeaderMagic is the fixed magic number starting every Header component.
const HeaderMagic uint32 = 0xDECAFFED

// PackageInfo is the package record nested inside the Header component.
type PackageInfo struct {
	MinorVersion uint8
	MajorVersion uint8
	AID          []byte
}

// HeaderComponent is the decoded compact Header component, per the Java
// Card VM specification (v3.2, section 6.4).
type HeaderComponent struct {
	Tag          uint8
	Size         uint16
	Magic        uint32
	MinorVersion uint8
	MajorVersion uint8
	Flags        uint8
	Package      PackageInfo
	// PackageName is only present in CAP format 2.2 and later; nil when
	// the component carries no trailing package name.
	PackageName []byte
}

// DecodeHeader decodes a compact Header component, including its own
// 3-byte tag+size prefix. It does not verify the magic number; callers
// that require a valid Header check Magic against HeaderMagic.
func DecodeHeader(data []byte) (*HeaderComponent, error) {
	d := codec.NewDecoder(data)
	var h HeaderComponent
	var err error
	if h.Tag, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.Size, err = d.Uint16(); err != nil {
		return nil, err
	}
	if h.Magic, err = d.Uint32(); err != nil {
		return nil, err
	}
	if h.MinorVersion, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.MajorVersion, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.Flags, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.Package.MinorVersion, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.Package.MajorVersion, err = d.Uint8(); err != nil {
		return nil, err
	}
	if h.Package.AID, err = d.LV(); err != nil {
		return nil, err
	}
	// The package name is length-driven, not flag-driven: it is present
	// exactly when bytes remain after the package record.
	if !d.EOF() {
		if h.PackageName, err = d.LV(); err != nil {
			return nil, err
		}
	}
	return &h, nil
}
