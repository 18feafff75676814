// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rampedit

import (
	"fmt"
	"image"
	"testing"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"github.com/rampkit/ramp"
	"github.com/stretchr/testify/assert"
)

func TestEditor(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b)
	tt, _ := ed.WidgetTooltip(image.Point{})
	exp := fmt.Sprintf("(marker 1 of 3: position: 0, color: %s)", colors.AsHex(ed.SelectedMarker().Color))
	assert.Equal(t, exp, tt)
	b.AssertRender(t, "editor/basic")
}

func TestEditorFloat(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b).SetRamp(ramp.NewFloat())
	ed.Select(1)
	tt, _ := ed.WidgetTooltip(image.Point{})
	assert.Equal(t, "(marker 2 of 2: position: 1, value: 1)", tt)
	b.AssertRender(t, "editor/float")
}

func TestEditorSelect(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b)
	ed.Select(1)
	assert.Equal(t, 1, ed.Selected)
	assert.Equal(t, float32(0.5), ed.SelectedMarker().Pos)
	ed.Select(10) // clamps
	assert.Equal(t, 2, ed.Selected)
	ed.Select(-1)
	assert.Equal(t, 0, ed.Selected)
}

func TestEditorAddRemove(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b)
	i := ed.AddMarker(0.25)
	assert.Equal(t, 1, i)
	assert.Equal(t, 1, ed.Selected)
	assert.Equal(t, 4, ed.Ramp.Len())

	assert.NoError(t, ed.RemoveMarker(1))
	assert.Equal(t, 0, ed.Selected) // left neighbor selected
	assert.Equal(t, 3, ed.Ramp.Len())

	assert.NoError(t, ed.RemoveMarker(0))
	assert.Equal(t, 0, ed.Selected) // no left neighbor, right one selected
	assert.NoError(t, ed.RemoveMarker(0))
	assert.Error(t, ed.RemoveMarker(0)) // last marker cannot be removed
	assert.Equal(t, 1, ed.Ramp.Len())
}

func TestEditorSetSelectedPos(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b)
	ed.Select(1)
	ed.SetSelectedPos(0.9)
	assert.Equal(t, float32(0.9), ed.SelectedMarker().Pos)
	assert.Equal(t, 1, ed.Selected)

	ed.SetSelectedPos(1.5) // clamps to 1 and resorts past the end marker
	assert.Equal(t, float32(1), ed.SelectedMarker().Pos)
	assert.Equal(t, 2, ed.Selected)
}

func TestEditorSetSelectedColor(t *testing.T) {
	b := core.NewBody()
	ed := NewEditor(b)
	ed.SetSelectedColor(colors.Blue)
	assert.Equal(t, colors.AsRGBA(colors.Blue), ed.SelectedMarker().Color)
}

func TestPicker(t *testing.T) {
	b := core.NewBody()
	pk := NewPicker(b)
	assert.NotNil(t, pk.Ramp)
	b.AssertRender(t, "picker/basic")
}

func TestPickerFloat(t *testing.T) {
	b := core.NewBody()
	NewPicker(b).SetRamp(ramp.NewFloat())
	b.AssertRender(t, "picker/float")
}

func TestButton(t *testing.T) {
	b := core.NewBody()
	bt := NewButton(b)
	bt.SetRamp(ramp.NewColor())
	b.AssertRender(t, "button/basic")
}
