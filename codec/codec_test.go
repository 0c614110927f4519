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

package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecoderUints(t *testing.T) {
	d := NewDecoder([]byte{0x01, 0xDE, 0xCA, 0xDE, 0xCA, 0xFF, 0xED})
	v8, err := d.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)
	v16, err := d.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0xDECA), v16)
	v32, err := d.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDECAFFED), v32)
	assert.True(t, d.EOF())
	assert.Equal(t, 7, d.Position())
}

func TestDecoderLV(t *testing.T) {
	testCases := []struct {
		name string
		data []byte
		want []byte
	}{
		{
			name: "Empty",
			data: []byte{0x00},
			want: []byte{},
		},
		{
			name: "FiveBytes",
			data: []byte{0x05, 0xA0, 0x00, 0x00, 0x00, 0x62},
			want: []byte{0xA0, 0x00, 0x00, 0x00, 0x62},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(tc.data)
			got, err := d.LV()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.True(t, d.EOF())
		})
	}
}

func TestDecoderTruncated(t *testing.T) {
	testCases := []struct {
		name   string
		data   []byte
		decode func(d *Decoder) error
	}{
		{
			name: "Uint8Empty",
			data: []byte{},
			decode: func(d *Decoder) error {
				_, err := d.Uint8()
				return err
			},
		},
		{
			name: "Uint16OneByte",
			data: []byte{0x01},
			decode: func(d *Decoder) error {
				_, err := d.Uint16()
				return err
			},
		},
		{
			name: "Uint32ThreeBytes",
			data: []byte{0x01, 0x02, 0x03},
			decode: func(d *Decoder) error {
				_, err := d.Uint32()
				return err
			},
		},
		{
			name: "LVShortValue",
			data: []byte{0x05, 0x01, 0x02},
			decode: func(d *Decoder) error {
				_, err := d.LV()
				return err
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder(tc.data)
			err := tc.decode(d)
			require.Error(t, err)
			var truncErr *TruncatedRecordError
			assert.ErrorAs(t, err, &truncErr)
		})
	}
}

func TestEncoderRoundTrip(t *testing.T) {
	e := NewEncoder()
	e.Uint8(0x01).Uint16(0x0203).Uint32(0xDECAFFED)
	require.NoError(t, e.LV([]byte{0xAA, 0xBB}))
	d := NewDecoder(e.Bytes())
	v8, err := d.Uint8()
	require.NoError(t, err)
	assert.Equal(t, uint8(0x01), v8)
	v16, err := d.Uint16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x0203), v16)
	v32, err := d.Uint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDECAFFED), v32)
	lv, err := d.LV()
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB}, lv)
	assert.True(t, d.EOF())
}

func TestEncoderLVTooLong(t *testing.T) {
	e := NewEncoder()
	err := e.LV(make([]byte, 256))
	assert.Error(t, err)
}
