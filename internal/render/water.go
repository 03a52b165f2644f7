package render

// WaterUniforms returns the uniform values for the water shader.
func WaterUniforms(seconds, depth float64, flashlight bool, w, h int) map[string]any {
	light := float32(0)
	if flashlight {
		light = 1
	}
	return map[string]any{
		"Time":       float32(seconds),
		"Depth":      float32(depth),
		"Flashlight": light,
		"Resolution": []float32{float32(w), float32(h)},
	}
}
