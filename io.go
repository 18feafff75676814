// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"encoding/json"
	"image/color"

	"cogentcore.org/core/base/iox/jsonx"
	"cogentcore.org/core/colors"
)

// markerJSON is the JSON representation of a [Marker],
// with the color as a hex string.
type markerJSON struct {
	Pos   float32 `json:"pos"`
	Color string  `json:"color,omitempty"`
	Value float32 `json:"value,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface,
// encoding the marker color as a hex string.
func (m Marker) MarshalJSON() ([]byte, error) {
	mj := markerJSON{Pos: m.Pos, Value: m.Value}
	if m.Color.A > 0 || m.Color.R > 0 || m.Color.G > 0 || m.Color.B > 0 {
		mj.Color = colors.AsHex(m.Color)
	}
	return json.Marshal(mj)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
func (m *Marker) UnmarshalJSON(b []byte) error {
	mj := markerJSON{}
	if err := json.Unmarshal(b, &mj); err != nil {
		return err
	}
	m.Pos = mj.Pos
	m.Value = mj.Value
	m.Color = color.RGBA{}
	if mj.Color != "" {
		c, err := colors.FromHex(mj.Color)
		if err != nil {
			return err
		}
		m.Color = c
	}
	return nil
}

// SaveJSON saves the ramp to the given JSON file.
func (r *Ramp) SaveJSON(filename string) error {
	return jsonx.Save(r, filename)
}

// OpenJSON loads the ramp from the given JSON file.
func (r *Ramp) OpenJSON(filename string) error {
	return jsonx.Open(r, filename)
}
