// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rampedit provides widgets for editing [ramp.Ramp] gradients:
// an [Editor] with draggable markers, a [Picker] that combines it with
// controls for the selected marker, and a [Button] that opens a [Picker]
// in a dialog.
package rampedit

//go:generate core generate

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/cursors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/keymap"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/styles/abilities"
	"cogentcore.org/core/styles/states"
	"cogentcore.org/core/styles/units"
	"github.com/rampkit/ramp"
)

// Editor is a widget for editing a [ramp.Ramp]. It renders the ramp as a
// horizontal gradient strip with a circular handle above the strip for
// each marker and a crossed delete box below it. Clicking the strip adds
// a marker at that position, dragging a handle moves its marker, and
// clicking a delete box removes its marker. Exactly one marker is always
// selected; [events.Select] is sent when the selection changes,
// [events.Input] while a marker is dragged, and [events.Change] when the
// ramp is modified.
type Editor struct {
	core.Frame

	// Ramp is the ramp being edited. It defaults to [ramp.NewColor].
	Ramp *ramp.Ramp `set:"-"`

	// Selected is the index of the currently selected marker.
	Selected int `set:"-"`

	// Step is the amount that the arrow keys move the selected marker by.
	// It defaults to 0.01.
	Step float32

	// MarkerSize is the diameter of the circular marker handles.
	MarkerSize units.Value

	// DeleteSize is the side length of the marker delete boxes.
	DeleteSize units.Value

	// Computed hit geometry, updated on each render:

	// strip is the gradient strip rectangle, in scene coordinates.
	strip math32.Box2

	// handles are the marker handle centers, in scene coordinates.
	handles []math32.Vector2

	// deletes are the marker delete boxes, in scene coordinates.
	deletes []math32.Box2

	// dragging is whether the selected marker is being dragged.
	dragging bool
}

func (ed *Editor) WidgetValue() any { return &ed.Ramp }

func (ed *Editor) Init() {
	ed.Frame.Init()
	ed.Ramp = ramp.NewColor()
	ed.Step = 0.01
	ed.MarkerSize = units.Dp(12)
	ed.DeleteSize = units.Dp(11)
	ed.Styler(func(s *styles.Style) {
		s.SetAbilities(true, abilities.Activatable, abilities.Focusable, abilities.Hoverable, abilities.Slideable)
		s.Padding.Set(units.Dp(4))
		s.Grow.Set(1, 0)
		if !ed.IsReadOnly() {
			s.Cursor = cursors.Grab
			if s.Is(states.Sliding) {
				s.Cursor = cursors.Grabbing
			}
		}
	})
	ed.FinalStyler(func(s *styles.Style) {
		s.Min.X.Em(20)
		s.Min.Y.Em(4)
	})

	ed.On(events.Click, func(e events.Event) {
		if ed.IsReadOnly() {
			return
		}
		pt := e.Pos()
		if i := ed.handleAt(pt); i >= 0 {
			ed.selectEvent(i)
			return
		}
		if ed.strip.ContainsPoint(math32.FromPoint(pt)) {
			ed.addEvent(ed.rampPos(pt))
			return
		}
		if i := ed.deleteAt(pt); i >= 0 {
			ed.removeEvent(i)
		}
	})
	ed.On(events.SlideStart, func(e events.Event) {
		ed.dragging = false
		if ed.IsReadOnly() {
			return
		}
		pt := e.Pos()
		if i := ed.handleAt(pt); i >= 0 {
			ed.selectEvent(i)
			ed.dragging = true
		} else if ed.strip.ContainsPoint(math32.FromPoint(pt)) {
			ed.addEvent(ed.rampPos(pt))
			ed.dragging = true
		}
	})
	ed.On(events.SlideMove, func(e events.Event) {
		if !ed.dragging {
			return
		}
		ed.moveEvent(ed.rampPos(e.Pos()))
	})
	ed.On(events.SlideStop, func(e events.Event) {
		if !ed.dragging {
			return
		}
		ed.dragging = false
		ed.moveEvent(ed.rampPos(e.Pos()))
		ed.SendChange()
	})
	ed.OnKeyChord(func(e events.Event) {
		if ed.IsReadOnly() {
			return
		}
		kf := keymap.Of(e.KeyChord())
		switch kf {
		case keymap.MoveLeft:
			ed.nudge(-ed.Step)
			e.SetHandled()
		case keymap.MoveRight:
			ed.nudge(ed.Step)
			e.SetHandled()
		case keymap.Home:
			ed.SetSelectedPos(0)
			ed.SendChange()
			e.SetHandled()
		case keymap.End:
			ed.SetSelectedPos(1)
			ed.SendChange()
			e.SetHandled()
		case keymap.Delete, keymap.Backspace:
			ed.removeEvent(ed.Selected)
			e.SetHandled()
		}
	})
}

// SetRamp sets the ramp being edited and resets the selection
// to the first marker.
func (ed *Editor) SetRamp(r *ramp.Ramp) *Editor {
	ed.Ramp = r
	ed.Selected = 0
	ed.NeedsRender()
	return ed
}

// SelectedMarker returns the currently selected marker.
func (ed *Editor) SelectedMarker() ramp.Marker {
	return ed.Ramp.Marker(ed.Selected)
}

// Select selects the marker at the given index, clamped to the valid
// range. It does not send an [events.Select] event.
func (ed *Editor) Select(i int) *Editor {
	ed.Selected = min(max(i, 0), ed.Ramp.Len()-1)
	ed.NeedsRender()
	return ed
}

// AddMarker adds a marker at the given position with the ramp's
// interpolated color and value there, selects it, and returns its index.
// It does not send any events.
func (ed *Editor) AddMarker(pos float32) int {
	m := ramp.Marker{Pos: pos, Color: ed.Ramp.ColorAt(pos), Value: ed.Ramp.ValueAt(pos)}
	i := ed.Ramp.Add(m)
	ed.Selected = i
	ed.NeedsRender()
	return i
}

// RemoveMarker removes the marker at the given index and selects its
// left neighbor, or the right one if there is none (per the ramp editors
// in 3D animation packages). It does not send any events.
func (ed *Editor) RemoveMarker(i int) error {
	if err := ed.Ramp.Remove(i); err != nil {
		return err
	}
	if i > 0 {
		ed.Selected = i - 1
	} else {
		ed.Selected = 0
	}
	ed.NeedsRender()
	return nil
}

// SetSelectedPos moves the selected marker to the given position,
// clamped to the 0-1 range. It does not send any events.
func (ed *Editor) SetSelectedPos(pos float32) *Editor {
	pos = math32.Clamp(pos, 0, 1)
	i, err := ed.Ramp.SetPos(ed.Selected, pos)
	if err == nil {
		ed.Selected = i
		ed.NeedsRender()
	}
	return ed
}

// SetSelectedColor sets the color of the selected marker.
// It does not send any events.
func (ed *Editor) SetSelectedColor(c color.Color) *Editor {
	ed.Ramp.SetColor(ed.Selected, c)
	ed.NeedsRender()
	return ed
}

// SetSelectedValue sets the scalar value of the selected marker.
// It does not send any events.
func (ed *Editor) SetSelectedValue(v float32) *Editor {
	ed.Ramp.SetValue(ed.Selected, v)
	ed.NeedsRender()
	return ed
}

// selectEvent selects the marker at the given index and sends
// an [events.Select] event.
func (ed *Editor) selectEvent(i int) {
	if i == ed.Selected {
		return
	}
	ed.Select(i)
	ed.Send(events.Select)
}

// addEvent adds a marker at the given position, selects it, and sends
// [events.Select] and [events.Change] events.
func (ed *Editor) addEvent(pos float32) {
	ed.AddMarker(pos)
	ed.Send(events.Select)
	ed.SendChange()
}

// removeEvent removes the marker at the given index if more than one
// remains, and sends [events.Select] and [events.Change] events.
// Removal of the last marker is silently ignored, so a ramp edited
// interactively always has a value.
func (ed *Editor) removeEvent(i int) {
	if err := ed.RemoveMarker(i); err != nil {
		return
	}
	ed.Send(events.Select)
	ed.SendChange()
}

// moveEvent moves the selected marker to the given position and sends
// an [events.Input] event.
func (ed *Editor) moveEvent(pos float32) {
	ed.SetSelectedPos(pos)
	ed.Send(events.Input)
}

// nudge moves the selected marker by the given amount and sends
// [events.Input] and [events.Change] events.
func (ed *Editor) nudge(del float32) {
	ed.SetSelectedPos(ed.SelectedMarker().Pos + del)
	ed.Send(events.Input)
	ed.SendChange()
}

func (ed *Editor) WidgetTooltip(pos image.Point) (string, image.Point) {
	res := ed.Tooltip
	if ed.Ramp == nil || ed.Ramp.Len() == 0 {
		return res, ed.DefaultTooltipPos()
	}
	if res != "" {
		res += " "
	}
	m := ed.SelectedMarker()
	if ed.Ramp.Type == ramp.Float {
		res += fmt.Sprintf("(marker %d of %d: position: %.4g, value: %.4g)", ed.Selected+1, ed.Ramp.Len(), m.Pos, m.Value)
	} else {
		res += fmt.Sprintf("(marker %d of %d: position: %.4g, color: %s)", ed.Selected+1, ed.Ramp.Len(), m.Pos, colors.AsHex(m.Color))
	}
	return res, ed.DefaultTooltipPos()
}

// markerRadius returns the marker handle radius in dots.
func (ed *Editor) markerRadius() float32 {
	return 0.5 * ed.MarkerSize.ToDots(&ed.Styles.UnitContext)
}

// deleteSide returns the delete box side length in dots.
func (ed *Editor) deleteSide() float32 {
	return ed.DeleteSize.ToDots(&ed.Styles.UnitContext)
}

// rampPos returns the normalized ramp position for the given scene
// point, clamped to the 0-1 range.
func (ed *Editor) rampPos(pt image.Point) float32 {
	w := ed.strip.Size().X
	if w <= 0 {
		return 0
	}
	return math32.Clamp((float32(pt.X)-ed.strip.Min.X)/w, 0, 1)
}

// handleAt returns the index of the marker handle containing the given
// scene point, or -1 if there is none. Later (topmost) handles win.
func (ed *Editor) handleAt(pt image.Point) int {
	p := math32.FromPoint(pt)
	r := ed.markerRadius() + 1
	for i := len(ed.handles) - 1; i >= 0; i-- {
		if ed.handles[i].DistanceTo(p) <= r {
			return i
		}
	}
	return -1
}

// deleteAt returns the index of the marker delete box containing the
// given scene point, or -1 if there is none.
func (ed *Editor) deleteAt(pt image.Point) int {
	p := math32.FromPoint(pt)
	for i := range ed.deletes {
		if ed.deletes[i].ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// layoutGeom computes the strip rectangle and the per-marker hit
// geometry from the current content box.
func (ed *Editor) layoutGeom() {
	sz := ed.Geom.Size.Actual.Content
	pos := ed.Geom.Pos.Content
	r := ed.markerRadius()
	ds := ed.deleteSide()

	// the strip is inset so handles and boxes at 0 and 1 stay inside
	left := pos.X + r
	right := pos.X + sz.X - r
	top := pos.Y + 2*r + 2
	bottom := pos.Y + sz.Y - ds - 4
	if bottom < top {
		bottom = top
	}
	ed.strip = math32.B2(left, top, right, bottom)

	n := ed.Ramp.Len()
	ed.handles = make([]math32.Vector2, n)
	ed.deletes = make([]math32.Box2, n)
	for i := range n {
		m := ed.Ramp.Marker(i)
		x := left + m.Pos*(right-left)
		ed.handles[i] = math32.Vec2(x, top-r-2)
		ed.deletes[i] = math32.B2(x-ds/2, bottom+4, x+ds/2, bottom+4+ds)
	}
}

func (ed *Editor) Render() {
	ed.RenderStandardBox()
	ed.layoutGeom()
	pc := &ed.Scene.Painter

	// gradient strip
	g := ed.Ramp.Gradient()
	pc.FillBox(ed.strip.Min, ed.strip.Size(), g)

	// marker handles
	r := ed.markerRadius()
	pc.Stroke.Width.Dp(1)
	for i, c := range ed.handles {
		pc.Fill.Color = colors.Uniform(ed.Ramp.MarkerColor(ed.Ramp.Marker(i)))
		if i == ed.Selected {
			pc.Stroke.Color = colors.Scheme.Primary.Base
			pc.Stroke.Width.Dp(2)
		} else {
			pc.Stroke.Color = colors.Scheme.Outline
			pc.Stroke.Width.Dp(1)
		}
		pc.Circle(c.X, c.Y, r)
		pc.PathDone()
	}

	// delete boxes with cross lines
	pc.Fill.Color = nil
	pc.Stroke.Color = colors.Scheme.Outline
	pc.Stroke.Width.Dp(1)
	for _, b := range ed.deletes {
		pc.MoveTo(b.Min.X, b.Min.Y)
		pc.LineTo(b.Max.X, b.Min.Y)
		pc.LineTo(b.Max.X, b.Max.Y)
		pc.LineTo(b.Min.X, b.Max.Y)
		pc.Close()
		pc.MoveTo(b.Min.X, b.Min.Y)
		pc.LineTo(b.Max.X, b.Max.Y)
		pc.MoveTo(b.Max.X, b.Min.Y)
		pc.LineTo(b.Min.X, b.Max.Y)
		pc.PathDone()
	}
}
