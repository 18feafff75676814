// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"encoding/json"
	"image/color"
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/colors"
	"github.com/stretchr/testify/assert"
)

func TestNewColor(t *testing.T) {
	r := NewColor()
	assert.Equal(t, Color, r.Type)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, color.RGBA{A: 255}, r.Marker(0).Color)
	assert.Equal(t, color.RGBA{R: 255, A: 255}, r.Marker(1).Color)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.Marker(2).Color)
}

func TestAddSorted(t *testing.T) {
	r := NewColor()
	i := r.AddColor(0.25, colors.Blue)
	assert.Equal(t, 1, i)
	i = r.AddColor(0.75, colors.Green)
	assert.Equal(t, 3, i)
	for j := 1; j < r.Len(); j++ {
		assert.LessOrEqual(t, r.Marker(j-1).Pos, r.Marker(j).Pos)
	}
}

func TestAddClamps(t *testing.T) {
	r := NewColor()
	i := r.AddColor(1.5, colors.Blue)
	assert.Equal(t, 3, i)
	assert.Equal(t, float32(1), r.Marker(i).Pos)
	i = r.AddColor(-2, colors.Blue)
	assert.Equal(t, 0, i)
	assert.Equal(t, float32(0), r.Marker(i).Pos)
}

func TestColorAtMarker(t *testing.T) {
	r := NewColor()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, r.ColorAt(0.5))
	assert.Equal(t, color.RGBA{A: 255}, r.ColorAt(0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, r.ColorAt(1))
}

func TestColorAtClamped(t *testing.T) {
	r := &Ramp{Type: Color, Blend: colors.RGB, Markers: []Marker{
		{Pos: 0.25, Color: color.RGBA{R: 200, A: 255}},
		{Pos: 0.75, Color: color.RGBA{B: 200, A: 255}},
	}}
	assert.Equal(t, color.RGBA{R: 200, A: 255}, r.ColorAt(0))
	assert.Equal(t, color.RGBA{B: 200, A: 255}, r.ColorAt(1))
}

func TestColorAtLinear(t *testing.T) {
	r := &Ramp{Type: Color, Blend: colors.RGB, Markers: []Marker{
		{Pos: 0, Color: color.RGBA{A: 255}},
		{Pos: 1, Color: color.RGBA{R: 200, G: 100, B: 40, A: 255}},
	}}
	assert.Equal(t, color.RGBA{R: 50, G: 25, B: 10, A: 255}, r.ColorAt(0.25))
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 20, A: 255}, r.ColorAt(0.5))
}

func TestColorAtConstant(t *testing.T) {
	r := &Ramp{Type: Color, Blend: colors.RGB, Interpolation: Constant, Markers: []Marker{
		{Pos: 0, Color: color.RGBA{A: 255}},
		{Pos: 1, Color: color.RGBA{R: 200, G: 100, B: 40, A: 255}},
	}}
	assert.Equal(t, color.RGBA{A: 255}, r.ColorAt(0.25))
	assert.Equal(t, color.RGBA{A: 255}, r.ColorAt(0.9))
	assert.Equal(t, color.RGBA{R: 200, G: 100, B: 40, A: 255}, r.ColorAt(1))
}

func TestValueAt(t *testing.T) {
	r := NewFloat()
	tolassert.Equal(t, 0.25, r.ValueAt(0.25))
	tolassert.Equal(t, 1, r.ValueAt(2))
	tolassert.Equal(t, 0, r.ValueAt(-1))

	r.SetInterpolation(Smooth)
	tolassert.Equal(t, 0.15625, r.ValueAt(0.25))
	tolassert.Equal(t, 0.5, r.ValueAt(0.5))

	r.SetInterpolation(Constant)
	tolassert.Equal(t, 0, r.ValueAt(0.99))
	tolassert.Equal(t, 1, r.ValueAt(1))
}

func TestRemove(t *testing.T) {
	r := NewColor()
	assert.NoError(t, r.Remove(1))
	assert.Equal(t, 2, r.Len())
	assert.Error(t, r.Remove(5))
	assert.NoError(t, r.Remove(0))
	assert.Error(t, r.Remove(0)) // must keep at least one marker
	assert.Equal(t, 1, r.Len())
}

func TestRemoveAt(t *testing.T) {
	r := NewColor()
	assert.NoError(t, r.RemoveAt(0.5))
	assert.Equal(t, 2, r.Len())
	assert.Error(t, r.RemoveAt(0.3))
}

func TestSetPos(t *testing.T) {
	r := NewColor()
	i, err := r.SetPos(1, 0.9)
	assert.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Equal(t, float32(0.9), r.Marker(1).Pos)

	_, err = r.SetPos(1, 1.5)
	assert.Error(t, err)
	_, err = r.SetPos(10, 0.5)
	assert.Error(t, err)
}

func TestSetColorValue(t *testing.T) {
	r := NewColor()
	assert.NoError(t, r.SetColor(0, colors.Blue))
	assert.Equal(t, colors.AsRGBA(colors.Blue), r.Marker(0).Color)
	assert.Error(t, r.SetColor(-1, colors.Blue))

	f := NewFloat()
	assert.NoError(t, f.SetValue(0, 0.4))
	tolassert.Equal(t, 0.4, f.Marker(0).Value)
	assert.Error(t, f.SetValue(3, 0.4))
}

func TestIndex(t *testing.T) {
	r := NewColor()
	assert.Equal(t, 1, r.Index(0.5, 0))
	assert.Equal(t, 1, r.Index(0.52, 0.05))
	assert.Equal(t, -1, r.Index(0.3, 0.01))
}

func TestClone(t *testing.T) {
	r := NewColor()
	c := r.Clone()
	c.AddColor(0.3, colors.Blue)
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, 4, c.Len())
}

func TestJSON(t *testing.T) {
	r := NewColor().SetInterpolation(Smooth)
	r.AddColor(0.25, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	b, err := json.Marshal(r)
	assert.NoError(t, err)
	n := &Ramp{}
	assert.NoError(t, json.Unmarshal(b, n))
	assert.Equal(t, r, n)
}

func TestGradient(t *testing.T) {
	g := NewColor().Gradient()
	assert.Equal(t, 3, len(g.Stops))
	assert.Equal(t, float32(0.5), g.Stops[1].Pos)

	// non-linear interpolation is approximated by sampling
	sg := NewColor().SetInterpolation(Smooth).Gradient()
	assert.Equal(t, gradientSamples+1, len(sg.Stops))
}

func TestMarkerColor(t *testing.T) {
	f := NewFloat()
	assert.Equal(t, color.RGBA{R: 51, G: 51, B: 51, A: 255}, f.MarkerColor(FloatMarker(0, 0.2)))
	c := NewColor()
	assert.Equal(t, color.RGBA{R: 255, A: 255}, c.MarkerColor(c.Marker(1)))
}
