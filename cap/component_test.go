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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponentByTag(t *testing.T) {
	testCases := []struct {
		tag           uint8
		wantName      string
		wantMandatory bool
	}{
		{tag: TagHeader, wantName: "Header", wantMandatory: true},
		{tag: TagDirectory, wantName: "Directory", wantMandatory: true},
		{tag: TagApplet, wantName: "Applet", wantMandatory: false},
		{tag: TagImport, wantName: "Import", wantMandatory: true},
		{tag: TagConstantPool, wantName: "ConstantPool", wantMandatory: true},
		{tag: TagClass, wantName: "Class", wantMandatory: true},
		{tag: TagMethod, wantName: "Method", wantMandatory: true},
		{tag: TagStaticField, wantName: "StaticField", wantMandatory: true},
		{tag: TagRefLocation, wantName: "RefLocation", wantMandatory: true},
		{tag: TagExport, wantName: "Export", wantMandatory: false},
		{tag: TagDescriptor, wantName: "Descriptor", wantMandatory: true},
		{tag: TagDebug, wantName: "Debug", wantMandatory: false},
	}
	for _, tc := range testCases {
		t.Run(tc.wantName, func(t *testing.T) {
			info := ComponentByTag(tc.tag)
			require.NotNil(t, info)
			assert.Equal(t, tc.tag, info.Tag)
			assert.Equal(t, tc.wantName, info.Name)
			assert.Equal(t, tc.wantMandatory, info.Mandatory)
		})
	}
}

func TestComponentByTagInvalid(t *testing.T) {
	assert.Nil(t, ComponentByTag(0))
	assert.Nil(t, ComponentByTag(13))
	assert.Nil(t, ComponentByTag(255))
}

func TestComponentByName(t *testing.T) {
	info := ComponentByName("ConstantPool")
	require.NotNil(t, info)
	assert.Equal(t, TagConstantPool, info.Tag)
	// Lookup is case-insensitive
	info = ComponentByName("reflocation")
	require.NotNil(t, info)
	assert.Equal(t, TagRefLocation, info.Tag)
	assert.Nil(t, ComponentByName("Bytecode"))
}

func TestLoadfileOrderIsNotTagOrder(t *testing.T) {
	// The loadfile order is a fixed sequence defined by the standard and
	// must never be collapsed into tag order.
	want := []uint8{
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
	assert.Equal(t, want, loadfileOrder)
	assert.NotContains(t, loadfileOrder, TagDebug)
}
