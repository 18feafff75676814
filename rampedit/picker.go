// Copyright (c) 2026, The Rampkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rampedit

import (
	"cogentcore.org/core/colors"
	"cogentcore.org/core/colors/cam/hct"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/icons"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"github.com/rampkit/ramp"
)

// Picker combines an [Editor] with controls for the selected marker:
// a position spinner, and a [core.ColorPicker] for the marker color on
// color ramps or a value spinner on float ramps. The controls follow
// the selection and stay in sync while a marker is dragged.
type Picker struct {
	core.Frame

	// Ramp is the ramp being edited. It defaults to [ramp.NewColor].
	Ramp *ramp.Ramp `set:"-"`

	// editor is the child [Editor].
	editor *Editor
}

func (pk *Picker) WidgetValue() any { return &pk.Ramp }

func (pk *Picker) Init() {
	pk.Frame.Init()
	pk.Ramp = ramp.NewColor()
	pk.Styler(func(s *styles.Style) {
		s.Direction = styles.Column
		s.Grow.Set(1, 0)
	})

	pk.Maker(func(p *tree.Plan) {
		tree.AddAt(p, "editor", func(w *Editor) {
			pk.editor = w
			w.Updater(func() {
				if w.Ramp != pk.Ramp {
					w.SetRamp(pk.Ramp)
				}
			})
			w.OnSelect(func(e events.Event) {
				pk.Update()
			})
			w.OnInput(func(e events.Event) {
				pk.Update()
				pk.Send(events.Input, e)
			})
			w.OnChange(func(e events.Event) {
				pk.UpdateChange(e)
			})
		})
		tree.AddAt(p, "position", func(w *core.Spinner) {
			w.SetMin(0).SetMax(1).SetStep(0.01)
			w.SetTooltip("The position of the selected marker")
			w.Updater(func() {
				w.SetValue(pk.editor.SelectedMarker().Pos)
			})
			w.OnChange(func(e events.Event) {
				pk.editor.SetSelectedPos(w.Value)
				pk.UpdateChange(e)
			})
		})
		if pk.Ramp != nil && pk.Ramp.Type == ramp.Float {
			tree.AddAt(p, "value", func(w *core.Spinner) {
				w.SetMin(0).SetMax(1).SetStep(0.01)
				w.SetTooltip("The value of the selected marker")
				w.Updater(func() {
					w.SetValue(pk.editor.SelectedMarker().Value)
				})
				w.OnChange(func(e events.Event) {
					pk.editor.SetSelectedValue(w.Value)
					pk.UpdateChange(e)
				})
			})
		} else {
			tree.AddAt(p, "color", func(w *core.ColorPicker) {
				w.Updater(func() {
					w.SetColor(pk.editor.SelectedMarker().Color)
				})
				w.OnChange(func(e events.Event) {
					pk.editor.SetSelectedColor(w.Color.AsRGBA())
					pk.UpdateChange(e)
				})
			})
		}
	})
}

// SetRamp sets the ramp being edited.
func (pk *Picker) SetRamp(r *ramp.Ramp) *Picker {
	pk.Ramp = r
	pk.Update()
	return pk
}

// Editor returns the child [Editor].
func (pk *Picker) Editor() *Editor {
	return pk.editor
}

// Button represents a [ramp.Ramp] value with a button that displays the
// ramp gradient and opens a dialog [Picker] for editing it.
type Button struct {
	core.Button

	// Ramp is the ramp represented by the button.
	Ramp *ramp.Ramp `set:"-"`
}

func (bt *Button) WidgetValue() any { return &bt.Ramp }

func (bt *Button) Init() {
	bt.Button.Init()
	bt.SetType(core.ButtonTonal).SetText("Edit ramp").SetIcon(icons.Gradient)
	bt.Styler(func(s *styles.Style) {
		if bt.Ramp != nil {
			s.Background = bt.Ramp.Gradient()
			s.Color = colors.Uniform(hct.ContrastColor(bt.Ramp.ColorAt(0.5), hct.ContrastAAA))
		}
	})
	core.InitValueButton(bt, false, func(d *core.Body) {
		d.SetTitle("Edit ramp")
		if bt.Ramp == nil {
			bt.Ramp = ramp.NewColor()
		}
		pk := NewPicker(d).SetRamp(bt.Ramp)
		pk.OnChange(func(e events.Event) {
			bt.Update()
		})
	})
}

// SetRamp sets the ramp represented by the button.
func (bt *Button) SetRamp(r *ramp.Ramp) *Button {
	bt.Ramp = r
	bt.Update()
	return bt
}
