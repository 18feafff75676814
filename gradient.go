// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ramp

import (
	"image/color"

	"cogentcore.org/core/colors/gradient"
	"cogentcore.org/core/math32"
)

// gradientSamples is the number of stops used to approximate a ramp
// with a non-linear interpolation curve as a linear gradient.
const gradientSamples = 64

// MarkerColor returns the display color of the given marker on this ramp:
// the marker color for [Color] ramps, and a gray level for [Float] ramps.
func (r *Ramp) MarkerColor(m Marker) color.RGBA {
	if r.Type == Float {
		g := uint8(math32.Round(255 * math32.Clamp(m.Value, 0, 1)))
		return color.RGBA{g, g, g, 255}
	}
	return m.Color
}

// colorAt returns the display color of the ramp at the given position,
// using gray levels for [Float] ramps.
func (r *Ramp) colorAt(pos float32) color.RGBA {
	if r.Type == Float {
		g := uint8(math32.Round(255 * math32.Clamp(r.ValueAt(pos), 0, 1)))
		return color.RGBA{g, g, g, 255}
	}
	return r.ColorAt(pos)
}

// Gradient returns a left-to-right [gradient.Linear] with the ramp's
// markers as stops, usable directly as an [image.Image] fill or a
// [styles.Style.Background]. Float ramps produce a grayscale gradient.
// For non-linear interpolation curves, the curve is approximated by
// sampling the ramp at regular intervals.
func (r *Ramp) Gradient() *gradient.Linear {
	g := gradient.NewLinear()
	g.Blend = r.Blend
	if r.Interpolation != Linear {
		for i := 0; i <= gradientSamples; i++ {
			pos := float32(i) / gradientSamples
			g.AddStop(r.colorAt(pos), pos)
		}
		return g
	}
	for _, m := range r.Markers {
		g.AddStop(r.MarkerColor(m), m.Pos)
	}
	return g
}
