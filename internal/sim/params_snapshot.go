package sim

import (
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"deepsea/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	p := w.cfg.Params
	l := w.cfg.Layout
	groups := []core.ParameterGroup{
		{
			Name: "Session",
			Params: []core.Parameter{
				stringParam("scene", "Scene", w.cfg.Name),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("flashlight", "Flashlight", w.flashlight),
			},
		},
		{
			Name: "Fish",
			Params: []core.Parameter{
				intParam("schools", "Schools", l.Schools),
				intParam("fish", "Fish", len(w.store.Fish)),
				floatParam("max_speed", "Max speed", p.Flock.MaxSpeed),
				floatParam("steer_gain", "Steer gain", p.Flock.SteerGain),
				floatParam("avoid_radius", "Avoid radius", p.Flock.AvoidRadius),
				floatParam("avoid_strength", "Avoid strength", p.Flock.AvoidStrength),
			},
		},
		{
			Name: "Bubbles",
			Params: []core.Parameter{
				intParam("bubbles", "Bubbles", len(w.store.Bubbles)),
				floatParam("bubble_ceiling", "Ceiling", p.Drift.Ceiling),
				floatParam("wobble", "Wobble", p.Drift.WobbleAmplitude),
				intParam("recycled", "Recycled", w.recycled),
			},
		},
		{
			Name: "Seaweed",
			Params: []core.Parameter{
				intParam("segments", "Segments", len(w.store.Seaweed)),
				floatParam("sway_amplitude", "Sway amplitude", p.SwayAmplitude),
			},
		},
		{
			Name: "Diver",
			Params: []core.Parameter{
				floatParam("dive_speed", "Dive speed", p.Diver.Speed),
				floatParam("look_sensitivity", "Look sensitivity", p.Diver.LookSensitivity),
				floatParam("oxygen", "Oxygen", w.vitals.Oxygen()),
				floatParam("low_oxygen", "Low oxygen", p.Vitals.LowOxygen),
				floatParam("replenish", "Replenish", p.Vitals.Replenish),
				intParam("discovered", "Discovered", len(w.discoveries.Log())),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the tuning panel may adjust.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		floatControl("max_speed", "Max speed", 0.01, 0.01, 1),
		floatControl("avoid_radius", "Avoid radius", 1, 0, 50),
		floatControl("avoid_strength", "Avoid strength", 0.01, 0, 0.2),
		floatControl("wobble", "Wobble", 0.005, 0, 0.1),
		floatControl("sway_amplitude", "Sway amplitude", 0.05, 0, 1),
		floatControl("dive_speed", "Dive speed", 1, 1, 60),
		floatControl("oxygen", "Oxygen", 5, 0, 100),
	}
}

// SetFloatParameter applies a tuning panel change. Values outside the control
// bounds are clamped; unknown keys report false.
func (w *World) SetFloatParameter(key string, value float64) bool {
	for _, c := range w.ParameterControls() {
		if c.Key != key {
			continue
		}
		if c.HasMin || c.HasMax {
			value = mgl64.Clamp(value, c.Min, c.Max)
		}
		break
	}
	switch key {
	case "max_speed":
		w.cfg.Params.Flock.MaxSpeed = value
	case "avoid_radius":
		w.cfg.Params.Flock.AvoidRadius = value
	case "avoid_strength":
		w.cfg.Params.Flock.AvoidStrength = value
	case "wobble":
		w.cfg.Params.Drift.WobbleAmplitude = value
	case "sway_amplitude":
		w.cfg.Params.SwayAmplitude = value
	case "dive_speed":
		w.cfg.Params.Diver.Speed = value
	case "oxygen":
		w.vitals.SetOxygen(value)
		w.stats.Oxygen = w.vitals.Oxygen()
		w.hud.SetValue(ElementOxygen, w.stats.Oxygen)
	default:
		return false
	}
	return true
}

func floatControl(key, label string, step, lo, hi float64) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeFloat,
		Step:   step,
		Min:    lo,
		Max:    hi,
		HasMin: true,
		HasMax: true,
	}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}
