package core

// ParamType enumerates parameter value kinds shown on the tuning panel.
type ParamType string

const (
	ParamTypeInt    ParamType = "int"
	ParamTypeFloat  ParamType = "float"
	ParamTypeBool   ParamType = "bool"
	ParamTypeString ParamType = "string"
)

// Parameter is one read-only value reported by the world.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup clusters related parameters under a heading.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot captures the world's reported values for one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParameterControl describes a value the tuning panel may adjust. Step and
// bounds apply to float controls.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterSource reports values for the overlay.
type ParameterSource interface {
	Parameters() ParameterSnapshot
}

// ParameterControlsProvider exposes the adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// FloatParameterSetter applies a float control change and reports whether
// the key was recognised.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}
