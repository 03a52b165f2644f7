//go:build ebiten

package render

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// waterShaderSource darkens the view edges with depth, ripples faint
// caustics near the surface and lights the flashlight spot.
var waterShaderSource = []byte(`//kage:unit pixels

package main

var Time float
var Depth float
var Flashlight float
var Resolution vec2

func Fragment(dstPos vec4, srcPos vec2, color vec4) vec4 {
	uv := dstPos.xy / Resolution
	c := (uv - vec2(0.5)) * vec2(Resolution.x/Resolution.y, 1)
	d := length(c)
	dark := clamp(Depth/20.0, 0.0, 1.0)

	vignette := smoothstep(0.35, 0.95, d) * (0.3 + 0.5*dark)
	caustic := sin(uv.x*40.0+Time*1.3) * sin(uv.y*30.0-Time*0.9) * 0.04 * (1.0 - dark)
	beam := Flashlight * (1.0 - smoothstep(0.1, 0.3, d)) * 0.15

	a := clamp(vignette-caustic, 0.0, 1.0)
	return vec4(beam, beam, beam*0.85, a)
}
`)

// WaterShader draws the full-screen water pass over the scene.
type WaterShader struct {
	shader *ebiten.Shader
}

// NewWaterShader compiles the water pass.
func NewWaterShader() (*WaterShader, error) {
	s, err := ebiten.NewShader(waterShaderSource)
	if err != nil {
		return nil, fmt.Errorf("compile water shader: %w", err)
	}
	return &WaterShader{shader: s}, nil
}

// Draw applies the pass to dst.
func (ws *WaterShader) Draw(dst *ebiten.Image, seconds, depth float64, flashlight bool) {
	if ws == nil {
		return
	}
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	op := &ebiten.DrawRectShaderOptions{Uniforms: WaterUniforms(seconds, depth, flashlight, w, h)}
	dst.DrawRectShader(w, h, ws.shader, op)
}
