//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"deepsea/internal/core"
)

// Tunable is what the tuning panel edits; *sim.World satisfies it.
type Tunable interface {
	Name() string
	core.ParameterSource
	core.ParameterControlsProvider
	core.FloatParameterSetter
}

// TuningPanel renders the live parameter controls on the right edge of the
// view.
type TuningPanel struct {
	src        Tunable
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []controlState
	panelOffsetX int
	title        string

	pixel *ebiten.Image
}

// NewTuningPanel constructs a panel of the given width for src.
func NewTuningPanel(src Tunable, width int) *TuningPanel {
	if width < 0 {
		width = 0
	}
	tp := &TuningPanel{src: src, width: width}
	if width > 0 {
		tp.pixel = ebiten.NewImage(1, 1)
		tp.pixel.Fill(color.White)
	}
	tp.title = buildTitle(src.Name())
	controls := src.ParameterControls()
	tp.controls = make([]controlState, len(controls))
	for i, ctrl := range controls {
		tp.controls[i] = controlState{control: ctrl, value: "--"}
	}
	tp.layoutControls()
	return tp
}

// Width returns the panel width in pixels.
func (tp *TuningPanel) Width() int {
	if tp == nil {
		return 0
	}
	return tp.width
}

// Update refreshes the cached snapshot and handles clicks on the buttons.
func (tp *TuningPanel) Update(panelOffsetX int) {
	if tp == nil {
		return
	}
	tp.panelOffsetX = panelOffsetX
	tp.snapshot = tp.src.Parameters()
	tp.refreshControlValues()
	tp.handleInput()
}

// Contains reports whether a screen point lies on the panel.
func (tp *TuningPanel) Contains(x, y int) bool {
	return tp != nil && tp.width > 0 && x >= tp.panelOffsetX && y >= 0 && y < tp.lastHeight
}

// Draw paints the panel at offsetX with the given height.
func (tp *TuningPanel) Draw(screen *ebiten.Image, offsetX, height int) {
	if tp == nil || tp.width <= 0 || height <= 0 {
		return
	}
	if tp.panel == nil || tp.panel.Bounds().Dx() != tp.width || tp.lastHeight != height {
		tp.panel = ebiten.NewImage(tp.width, height)
		tp.lastHeight = height
	}
	tp.panel.Fill(color.RGBA{R: 0, G: 20, B: 40, A: 220})
	tp.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(tp.panel, op)
}

func (tp *TuningPanel) refreshControlValues() {
	if len(tp.controls) == 0 {
		return
	}
	paramMap := map[string]core.Parameter{}
	for _, group := range tp.snapshot.Groups {
		for _, param := range group.Params {
			paramMap[param.Key] = param
		}
	}
	for i := range tp.controls {
		state := &tp.controls[i]
		param, ok := paramMap[state.control.Key]
		if !ok || state.control.Type != core.ParamTypeFloat {
			state.hasValue = false
			state.value = "--"
			continue
		}
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			state.hasValue = false
			state.value = "--"
			continue
		}
		state.floatValue = parsed
		state.value = formatFloat(state.control, parsed)
		state.hasValue = true
	}
}

func (tp *TuningPanel) handleInput() {
	if len(tp.controls) == 0 {
		return
	}
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < tp.panelOffsetX {
		return
	}
	px := mx - tp.panelOffsetX
	for i := range tp.controls {
		state := &tp.controls[i]
		if !state.hasValue {
			continue
		}
		if pointInRect(px, my, state.minusRect) {
			tp.applyAdjustment(state, -1)
			return
		}
		if pointInRect(px, my, state.plusRect) {
			tp.applyAdjustment(state, 1)
			return
		}
	}
}

func (tp *TuningPanel) applyAdjustment(state *controlState, direction int) {
	target, ok := adjusted(state, direction)
	if !ok {
		return
	}
	if tp.src.SetFloatParameter(state.control.Key, target) {
		state.floatValue = target
		state.value = formatFloat(state.control, target)
	}
}

func (tp *TuningPanel) drawControls() {
	if tp.panel == nil {
		return
	}
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(tp.panel, tp.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 220, B: 235, A: 255})
	if len(tp.controls) == 0 {
		text.Draw(tp.panel, "No adjustable parameters", face, panelPadding, headerY+infoSpacing, dimText)
		return
	}
	for i := range tp.controls {
		state := &tp.controls[i]
		labelY := state.top + labelBaseline
		text.Draw(tp.panel, state.control.Label, face, panelPadding, labelY, brightText)
		valueColor := brightText
		if !state.hasValue {
			valueColor = dimText
		}
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(tp.panel, state.value, face, valueX, labelY, valueColor)

		_, minus := adjusted(state, -1)
		_, plus := adjusted(state, 1)
		tp.drawButton(state.minusRect, "-", state.hasValue && minus)
		tp.drawButton(state.plusRect, "+", state.hasValue && plus)
	}
}

func (tp *TuningPanel) drawButton(rect image.Rectangle, label string, enabled bool) {
	if tp.pixel == nil {
		return
	}
	bg := color.RGBA{R: 30, G: 70, B: 100, A: 255}
	fg := color.RGBA{R: 230, G: 240, B: 250, A: 255}
	if !enabled {
		bg = color.RGBA{R: 20, G: 40, B: 56, A: 255}
		fg = color.RGBA{R: 110, G: 130, B: 145, A: 255}
	}
	fillRect(tp.panel, tp.pixel, rect, bg)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(tp.panel, label, face, x, y, fg)
}

func (tp *TuningPanel) layoutControls() {
	if len(tp.controls) == 0 || tp.width <= 0 {
		return
	}
	for i := range tp.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(tp.width-panelPadding-buttonSize, buttonY, tp.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		tp.controls[i].top = top
		tp.controls[i].minusRect = minusRect
		tp.controls[i].plusRect = plusRect
	}
}

func fillRect(dst, pixel *ebiten.Image, rect image.Rectangle, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(pixel, op)
}

var (
	brightText = color.RGBA{R: 220, G: 230, B: 240, A: 255}
	dimText    = color.RGBA{R: 150, G: 165, B: 180, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	controlsTop    = panelPadding + headerBaseline + 14
)
