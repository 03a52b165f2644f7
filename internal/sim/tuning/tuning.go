// Package tuning loads scene presets from YAML. Documents are validated
// against an embedded JSON schema before they are decoded over the defaults,
// so a preset only needs the keys it changes.
package tuning

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"deepsea/internal/sim"
)

//go:embed schema.json
var schemaJSON string

//go:embed presets/*.yaml
var presetFS embed.FS

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
	schemaErr  error
)

func compiled() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = jsonschema.CompileString("schema.json", schemaJSON)
	})
	return schema, schemaErr
}

type vec3 [3]float64

func (v vec3) vec() mgl64.Vec3 { return mgl64.Vec3(v) }

type File struct {
	Name          string      `yaml:"name"`
	Seed          int64       `yaml:"seed"`
	Start         vec3        `yaml:"start"`
	NotifySeconds float64     `yaml:"notify_seconds"`
	SwayAmplitude float64     `yaml:"sway_amplitude"`
	Flock         Flock       `yaml:"flock"`
	Drift         Drift       `yaml:"drift"`
	Vitals        Vitals      `yaml:"vitals"`
	Diver         Diver       `yaml:"diver"`
	Layout        Layout      `yaml:"layout"`
	Discoveries   []Discovery `yaml:"discoveries"`
}

type Flock struct {
	MaxSpeed       float64 `yaml:"max_speed"`
	FacingMinSpeed float64 `yaml:"facing_min_speed"`
	SteerGain      float64 `yaml:"steer_gain"`
	Jitter         vec3    `yaml:"jitter"`
	SchoolDrift    vec3    `yaml:"school_drift"`
	SchoolMin      vec3    `yaml:"school_min"`
	SchoolMax      vec3    `yaml:"school_max"`
	AvoidRadius    float64 `yaml:"avoid_radius"`
	AvoidStrength  float64 `yaml:"avoid_strength"`
}

type Drift struct {
	Ceiling      float64 `yaml:"ceiling"`
	RecycleNudge float64 `yaml:"recycle_nudge"`
	Wobble       float64 `yaml:"wobble"`
}

type Rate struct {
	Below    float64 `yaml:"below"`
	PerFrame float64 `yaml:"per_frame"`
}

type Vitals struct {
	MaxDepth    float64 `yaml:"max_depth"`
	SurfaceBand float64 `yaml:"surface_band"`
	Replenish   float64 `yaml:"replenish"`
	LowOxygen   float64 `yaml:"low_oxygen"`
	BaseRate    float64 `yaml:"base_rate"`
	Rates       []Rate  `yaml:"rates"`
}

type Diver struct {
	Speed           float64 `yaml:"speed"`
	Damping         float64 `yaml:"damping"`
	LookSensitivity float64 `yaml:"look_sensitivity"`
	MinY            float64 `yaml:"min_y"`
	MaxY            float64 `yaml:"max_y"`
}

type Wreck struct {
	Enabled  bool    `yaml:"enabled"`
	Position vec3    `yaml:"position"`
	Yaw      float64 `yaml:"yaw"`
}

type Layout struct {
	FloorY            float64 `yaml:"floor_y"`
	FloorSize         float64 `yaml:"floor_size"`
	FloorSegments     int     `yaml:"floor_segments"`
	FloorRelief       float64 `yaml:"floor_relief"`
	Spread            float64 `yaml:"spread"`
	CoralFormations   int     `yaml:"coral_formations"`
	CoralPiecesMin    int     `yaml:"coral_pieces_min"`
	CoralPiecesMax    int     `yaml:"coral_pieces_max"`
	SeaweedClusters   int     `yaml:"seaweed_clusters"`
	StrandsMin        int     `yaml:"strands_min"`
	StrandsMax        int     `yaml:"strands_max"`
	StrandHeightMin   float64 `yaml:"strand_height_min"`
	StrandHeightMax   float64 `yaml:"strand_height_max"`
	Schools           int     `yaml:"schools"`
	SchoolSizeMin     int     `yaml:"school_size_min"`
	SchoolSizeMax     int     `yaml:"school_size_max"`
	SchoolSpread      float64 `yaml:"school_spread"`
	BubbleEmitters    int     `yaml:"bubble_emitters"`
	BubblesPerEmitter int     `yaml:"bubbles_per_emitter"`
	BubbleOriginY     float64 `yaml:"bubble_origin_y"`
	Wreck             Wreck   `yaml:"wreck"`
}

type Discovery struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Position    vec3    `yaml:"position"`
	Radius      float64 `yaml:"radius"`
}

// Load reads a preset file from disk.
func Load(p string) (sim.Config, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		return sim.Config{}, err
	}
	return Parse(raw, p)
}

// Preset returns an embedded preset by name.
func Preset(name string) (sim.Config, error) {
	raw, err := presetFS.ReadFile(path.Join("presets", name+".yaml"))
	if err != nil {
		return sim.Config{}, fmt.Errorf("unknown scene preset %q (have %s)", name, strings.Join(Presets(), ", "))
	}
	return Parse(raw, name+".yaml")
}

// Presets lists the embedded preset names.
func Presets() []string {
	entries, err := presetFS.ReadDir("presets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names
}

// Resolve treats ref as a file path when it names a YAML file and as a
// preset name otherwise.
func Resolve(ref string) (sim.Config, error) {
	if strings.HasSuffix(ref, ".yaml") || strings.HasSuffix(ref, ".yml") {
		return Load(ref)
	}
	return Preset(ref)
}

// Parse validates raw against the schema and decodes it over the defaults.
func Parse(raw []byte, source string) (sim.Config, error) {
	if err := Validate(raw); err != nil {
		return sim.Config{}, fmt.Errorf("%s: %w", source, err)
	}
	f := FromConfig(sim.DefaultConfig())
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return sim.Config{}, fmt.Errorf("%s: %w", source, err)
	}
	return f.Config(), nil
}

// Validate checks a YAML document against the preset schema.
func Validate(raw []byte) error {
	s, err := compiled()
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("parse yaml: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}
	// The validator only understands JSON-shaped values.
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("convert yaml: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// FromConfig converts a config into its file form.
func FromConfig(c sim.Config) File {
	p := c.Params
	l := c.Layout
	f := File{
		Name:          c.Name,
		Seed:          c.Seed,
		Start:         vec3(c.Start),
		NotifySeconds: p.NotifyDuration.Seconds(),
		SwayAmplitude: p.SwayAmplitude,
		Flock: Flock{
			MaxSpeed:       p.Flock.MaxSpeed,
			FacingMinSpeed: p.Flock.FacingMinSpeed,
			SteerGain:      p.Flock.SteerGain,
			Jitter:         vec3(p.Flock.Jitter),
			SchoolDrift:    vec3(p.Flock.SchoolDrift),
			SchoolMin:      vec3(p.Flock.SchoolMin),
			SchoolMax:      vec3(p.Flock.SchoolMax),
			AvoidRadius:    p.Flock.AvoidRadius,
			AvoidStrength:  p.Flock.AvoidStrength,
		},
		Drift: Drift{
			Ceiling:      p.Drift.Ceiling,
			RecycleNudge: p.Drift.RecycleNudge,
			Wobble:       p.Drift.WobbleAmplitude,
		},
		Vitals: Vitals{
			MaxDepth:    p.Vitals.MaxDepth,
			SurfaceBand: p.Vitals.SurfaceBand,
			Replenish:   p.Vitals.Replenish,
			LowOxygen:   p.Vitals.LowOxygen,
			BaseRate:    p.Vitals.BaseRate,
		},
		Diver: Diver{
			Speed:           p.Diver.Speed,
			Damping:         p.Diver.Damping,
			LookSensitivity: p.Diver.LookSensitivity,
			MinY:            p.Diver.MinY,
			MaxY:            p.Diver.MaxY,
		},
		Layout: Layout{
			FloorY:            l.FloorY,
			FloorSize:         l.FloorSize,
			FloorSegments:     l.FloorSegments,
			FloorRelief:       l.FloorRelief,
			Spread:            l.Spread,
			CoralFormations:   l.CoralFormations,
			CoralPiecesMin:    l.CoralPiecesMin,
			CoralPiecesMax:    l.CoralPiecesMax,
			SeaweedClusters:   l.SeaweedClusters,
			StrandsMin:        l.StrandsMin,
			StrandsMax:        l.StrandsMax,
			StrandHeightMin:   l.StrandHeightMin,
			StrandHeightMax:   l.StrandHeightMax,
			Schools:           l.Schools,
			SchoolSizeMin:     l.SchoolSizeMin,
			SchoolSizeMax:     l.SchoolSizeMax,
			SchoolSpread:      l.SchoolSpread,
			BubbleEmitters:    l.BubbleEmitters,
			BubblesPerEmitter: l.BubblesPerEmitter,
			BubbleOriginY:     l.BubbleOriginY,
			Wreck: Wreck{
				Enabled:  l.Wreck.Enabled,
				Position: vec3(l.Wreck.Position),
				Yaw:      l.Wreck.Yaw,
			},
		},
	}
	for _, r := range p.Vitals.Rates {
		f.Vitals.Rates = append(f.Vitals.Rates, Rate{Below: r.Below, PerFrame: r.PerFrame})
	}
	for _, d := range c.Discoveries {
		f.Discoveries = append(f.Discoveries, Discovery{
			Name:        d.Name,
			Description: d.Description,
			Position:    vec3(d.Position),
			Radius:      d.Radius,
		})
	}
	return f
}

// Config converts the file form into a simulation config. Rates are sorted
// deepest first.
func (f File) Config() sim.Config {
	c := sim.Config{
		Name:  f.Name,
		Seed:  f.Seed,
		Start: f.Start.vec(),
		Params: sim.Params{
			Flock: sim.FlockParams{
				MaxSpeed:       f.Flock.MaxSpeed,
				FacingMinSpeed: f.Flock.FacingMinSpeed,
				SteerGain:      f.Flock.SteerGain,
				Jitter:         f.Flock.Jitter.vec(),
				SchoolDrift:    f.Flock.SchoolDrift.vec(),
				SchoolMin:      f.Flock.SchoolMin.vec(),
				SchoolMax:      f.Flock.SchoolMax.vec(),
				AvoidRadius:    f.Flock.AvoidRadius,
				AvoidStrength:  f.Flock.AvoidStrength,
			},
			Drift: sim.DriftParams{
				Ceiling:         f.Drift.Ceiling,
				RecycleNudge:    f.Drift.RecycleNudge,
				WobbleAmplitude: f.Drift.Wobble,
			},
			SwayAmplitude: f.SwayAmplitude,
			Vitals: sim.VitalParams{
				MaxDepth:    f.Vitals.MaxDepth,
				SurfaceBand: f.Vitals.SurfaceBand,
				Replenish:   f.Vitals.Replenish,
				LowOxygen:   f.Vitals.LowOxygen,
				BaseRate:    f.Vitals.BaseRate,
			},
			Diver: sim.DiverParams{
				Speed:           f.Diver.Speed,
				Damping:         f.Diver.Damping,
				LookSensitivity: f.Diver.LookSensitivity,
				MinY:            f.Diver.MinY,
				MaxY:            f.Diver.MaxY,
			},
			NotifyDuration: time.Duration(f.NotifySeconds * float64(time.Second)),
		},
		Layout: sim.Layout{
			FloorY:            f.Layout.FloorY,
			FloorSize:         f.Layout.FloorSize,
			FloorSegments:     f.Layout.FloorSegments,
			FloorRelief:       f.Layout.FloorRelief,
			Spread:            f.Layout.Spread,
			CoralFormations:   f.Layout.CoralFormations,
			CoralPiecesMin:    f.Layout.CoralPiecesMin,
			CoralPiecesMax:    f.Layout.CoralPiecesMax,
			SeaweedClusters:   f.Layout.SeaweedClusters,
			StrandsMin:        f.Layout.StrandsMin,
			StrandsMax:        f.Layout.StrandsMax,
			StrandHeightMin:   f.Layout.StrandHeightMin,
			StrandHeightMax:   f.Layout.StrandHeightMax,
			Schools:           f.Layout.Schools,
			SchoolSizeMin:     f.Layout.SchoolSizeMin,
			SchoolSizeMax:     f.Layout.SchoolSizeMax,
			SchoolSpread:      f.Layout.SchoolSpread,
			BubbleEmitters:    f.Layout.BubbleEmitters,
			BubblesPerEmitter: f.Layout.BubblesPerEmitter,
			BubbleOriginY:     f.Layout.BubbleOriginY,
			Wreck: sim.WreckLayout{
				Enabled:  f.Layout.Wreck.Enabled,
				Position: f.Layout.Wreck.Position.vec(),
				Yaw:      f.Layout.Wreck.Yaw,
			},
		},
	}
	for _, r := range f.Vitals.Rates {
		c.Params.Vitals.Rates = append(c.Params.Vitals.Rates, sim.DepthRate{Below: r.Below, PerFrame: r.PerFrame})
	}
	sort.SliceStable(c.Params.Vitals.Rates, func(i, j int) bool {
		return c.Params.Vitals.Rates[i].Below > c.Params.Vitals.Rates[j].Below
	})
	for _, d := range f.Discoveries {
		c.Discoveries = append(c.Discoveries, sim.DiscoveryPoint{
			Name:        d.Name,
			Description: d.Description,
			Position:    d.Position.vec(),
			Radius:      d.Radius,
		})
	}
	return c
}
