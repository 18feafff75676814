// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ramp provides an ordered-marker ramp data model for gradient
// editing tools: a list of control points ("markers"), each with a
// normalized position and a color or scalar value, with interpolated
// value lookup between neighboring markers.
package ramp

//go:generate core generate

import (
	"cmp"
	"errors"
	"fmt"
	"image/color"
	"slices"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
)

// Marker is a single control point on a [Ramp]. Pos is its normalized
// position between 0 and 1. Color is its value on [Color] ramps, and
// Value is its value on [Float] ramps.
type Marker struct {
	Pos   float32
	Color color.RGBA
	Value float32
}

// ColorMarker returns a new marker with the given position and color.
func ColorMarker(pos float32, c color.Color) Marker {
	return Marker{Pos: pos, Color: colors.AsRGBA(c)}
}

// FloatMarker returns a new marker with the given position and scalar value.
func FloatMarker(pos, value float32) Marker {
	return Marker{Pos: pos, Value: value}
}

// Types are the types of ramps, based on the type of value the markers hold.
type Types int32 //enums:enum -transform lower

const (
	// Color is a ramp between color markers, producing a color gradient.
	Color Types = iota

	// Float is a ramp between scalar markers, producing a scalar curve.
	Float
)

// Interpolations are the interpolation curves used between
// neighboring markers on a ramp.
type Interpolations int32 //enums:enum -transform lower

const (
	// Linear blends linearly between the two neighboring markers.
	Linear Interpolations = iota

	// Constant holds the value of the left marker until the next one.
	Constant

	// Smooth blends with a cubic smoothstep, easing in and out of each marker.
	Smooth
)

// Ramp is an ordered collection of [Marker]s with interpolated value
// lookup between them. All operations keep Markers sorted by position;
// use the Add, Remove, and Set methods instead of modifying Markers
// directly. A ramp always has at least one marker.
type Ramp struct { //types:add -setters

	// Type is the type of the ramp, which determines whether the marker
	// colors or scalar values are used.
	Type Types

	// Blend is the colorspace algorithm used to blend marker colors.
	Blend colors.BlendTypes

	// Interpolation is the interpolation curve used between markers.
	Interpolation Interpolations

	// Markers are the control points of the ramp, sorted by position.
	Markers []Marker `set:"-"`
}

// New returns a new [Ramp] of the given type with default markers,
// per [NewColor] and [NewFloat].
func New(typ Types) *Ramp {
	if typ == Float {
		return NewFloat()
	}
	return NewColor()
}

// NewColor returns a new [Color] ramp with the standard starter markers:
// black at 0, red at 0.5, and white at 1.
func NewColor() *Ramp {
	return &Ramp{
		Type:  Color,
		Blend: colors.RGB,
		Markers: []Marker{
			{Pos: 0, Color: color.RGBA{A: 255}},
			{Pos: 0.5, Color: color.RGBA{R: 255, A: 255}},
			{Pos: 1, Color: color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		},
	}
}

// NewFloat returns a new [Float] ramp going from 0 at 0 to 1 at 1.
func NewFloat() *Ramp {
	return &Ramp{
		Type:  Float,
		Blend: colors.RGB,
		Markers: []Marker{
			{Pos: 0, Value: 0},
			{Pos: 1, Value: 1},
		},
	}
}

// Len returns the number of markers on the ramp.
func (r *Ramp) Len() int {
	return len(r.Markers)
}

// Marker returns the marker at the given index.
// It panics if the index is out of range, like a slice.
func (r *Ramp) Marker(i int) Marker {
	return r.Markers[i]
}

// Sort sorts the markers by position. The sort is stable, so markers
// sharing a position keep their relative order. Operations on the ramp
// maintain sorted order themselves; Sort only needs to be called after
// modifying Markers directly.
func (r *Ramp) Sort() {
	slices.SortStableFunc(r.Markers, func(a, b Marker) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
}

// above returns the index of the first marker positioned
// strictly after the given position.
func (r *Ramp) above(pos float32) int {
	i := 0
	for i < len(r.Markers) && pos >= r.Markers[i].Pos {
		i++
	}
	return i
}

// Add inserts the given marker, keeping the markers sorted,
// and returns the index it was inserted at. The marker position
// is clamped to the 0-1 range.
func (r *Ramp) Add(m Marker) int {
	m.Pos = math32.Clamp(m.Pos, 0, 1)
	i := r.above(m.Pos)
	r.Markers = slices.Insert(r.Markers, i, m)
	return i
}

// AddColor inserts a new marker with the given position and color
// and returns the index it was inserted at.
func (r *Ramp) AddColor(pos float32, c color.Color) int {
	return r.Add(ColorMarker(pos, c))
}

// AddValue inserts a new marker with the given position and scalar value
// and returns the index it was inserted at.
func (r *Ramp) AddValue(pos, value float32) int {
	return r.Add(FloatMarker(pos, value))
}

// Remove removes the marker at the given index. It returns an error if
// the index is out of range, or if it would leave the ramp empty.
func (r *Ramp) Remove(i int) error {
	if len(r.Markers) <= 1 {
		return errors.New("ramp must have at least one marker")
	}
	if i < 0 || i >= len(r.Markers) {
		return fmt.Errorf("marker index %d out of range (%d markers)", i, len(r.Markers))
	}
	r.Markers = slices.Delete(r.Markers, i, i+1)
	return nil
}

// RemoveAt removes the first marker at exactly the given position.
// It returns an error if no marker is at that position, or if removing
// it would leave the ramp empty.
func (r *Ramp) RemoveAt(pos float32) error {
	i := r.Index(pos, 0)
	if i < 0 {
		return fmt.Errorf("no marker at position %g", pos)
	}
	return r.Remove(i)
}

// SetPos moves the marker at the given index to the given position,
// keeping the markers sorted, and returns the index it ended up at.
// It returns an error if the index is out of range or the position is
// not between 0 and 1.
func (r *Ramp) SetPos(i int, pos float32) (int, error) {
	if i < 0 || i >= len(r.Markers) {
		return i, fmt.Errorf("marker index %d out of range (%d markers)", i, len(r.Markers))
	}
	if pos < 0 || pos > 1 {
		return i, fmt.Errorf("marker position must be between 0 and 1, got %g", pos)
	}
	m := r.Markers[i]
	m.Pos = pos
	r.Markers = slices.Delete(r.Markers, i, i+1)
	return r.Add(m), nil
}

// SetColor sets the color of the marker at the given index.
func (r *Ramp) SetColor(i int, c color.Color) error {
	if i < 0 || i >= len(r.Markers) {
		return fmt.Errorf("marker index %d out of range (%d markers)", i, len(r.Markers))
	}
	r.Markers[i].Color = colors.AsRGBA(c)
	return nil
}

// SetValue sets the scalar value of the marker at the given index.
func (r *Ramp) SetValue(i int, value float32) error {
	if i < 0 || i >= len(r.Markers) {
		return fmt.Errorf("marker index %d out of range (%d markers)", i, len(r.Markers))
	}
	r.Markers[i].Value = value
	return nil
}

// Index returns the index of the first marker within the given tolerance
// of the given position, or -1 if there is none.
func (r *Ramp) Index(pos, tolerance float32) int {
	for i := range r.Markers {
		if math32.Abs(r.Markers[i].Pos-pos) <= tolerance {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the ramp, with its own copy of the markers.
func (r *Ramp) Clone() *Ramp {
	c := *r
	c.Markers = slices.Clone(r.Markers)
	return &c
}

// fraction returns the interpolation fraction for the given position
// between the given neighboring marker positions, applying the ramp's
// [Interpolations] curve.
func (r *Ramp) fraction(lo, hi, pos float32) float32 {
	if hi == lo {
		return 1
	}
	t := (pos - lo) / (hi - lo)
	switch r.Interpolation {
	case Constant:
		return 0
	case Smooth:
		return t * t * (3 - 2*t)
	}
	return t
}

// ColorAt returns the color of the ramp at the given normalized position.
// A position exactly on a marker returns that marker's color; positions
// beyond the first or last marker return that marker's color; positions
// between two markers blend their colors in the ramp's [Ramp.Blend]
// colorspace using its interpolation curve.
func (r *Ramp) ColorAt(pos float32) color.RGBA {
	n := len(r.Markers)
	if n == 0 {
		return color.RGBA{}
	}
	for i := range r.Markers {
		if r.Markers[i].Pos == pos {
			return r.Markers[i].Color
		}
	}
	if pos < r.Markers[0].Pos {
		return r.Markers[0].Color
	}
	if pos > r.Markers[n-1].Pos {
		return r.Markers[n-1].Color
	}
	i := r.above(pos)
	lo, hi := r.Markers[i-1], r.Markers[i]
	t := r.fraction(lo.Pos, hi.Pos, pos)
	return colors.Blend(r.Blend, 100*(1-t), lo.Color, hi.Color)
}

// ValueAt returns the scalar value of the ramp at the given normalized
// position, following the same rules as [Ramp.ColorAt].
func (r *Ramp) ValueAt(pos float32) float32 {
	n := len(r.Markers)
	if n == 0 {
		return 0
	}
	for i := range r.Markers {
		if r.Markers[i].Pos == pos {
			return r.Markers[i].Value
		}
	}
	if pos < r.Markers[0].Pos {
		return r.Markers[0].Value
	}
	if pos > r.Markers[n-1].Pos {
		return r.Markers[n-1].Value
	}
	i := r.above(pos)
	lo, hi := r.Markers[i-1], r.Markers[i]
	t := r.fraction(lo.Pos, hi.Pos, pos)
	return lo.Value + t*(hi.Value-lo.Value)
}
