package sim

import (
	"math"
	"strconv"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Params holds the tunable constants of the per-frame update model.
type Params struct {
	Flock          FlockParams
	Drift          DriftParams
	SwayAmplitude  float64
	Vitals         VitalParams
	Diver          DiverParams
	NotifyDuration time.Duration
}

// WreckLayout places the shipwreck.
type WreckLayout struct {
	Enabled  bool
	Position mgl64.Vec3
	Yaw      float64
}

// Layout controls procedural placement at reset.
type Layout struct {
	FloorY        float64
	FloorSize     float64
	FloorSegments int
	FloorRelief   float64
	Spread        float64

	CoralFormations int
	CoralPiecesMin  int
	CoralPiecesMax  int

	SeaweedClusters int
	StrandsMin      int
	StrandsMax      int
	StrandHeightMin float64
	StrandHeightMax float64

	Schools       int
	SchoolSizeMin int
	SchoolSizeMax int
	SchoolSpread  float64

	BubbleEmitters    int
	BubblesPerEmitter int
	BubbleOriginY     float64

	Wreck WreckLayout
}

// Config controls a session.
type Config struct {
	Name        string
	Seed        int64
	Start       mgl64.Vec3
	Params      Params
	Layout      Layout
	Discoveries []DiscoveryPoint
}

// DefaultDiscoveries returns the five points of interest of the reef.
func DefaultDiscoveries() []DiscoveryPoint {
	return []DiscoveryPoint{
		{
			Name:        "Ancient Coral Formation",
			Description: "A rare coral formation estimated to be over 500 years old.",
			Position:    mgl64.Vec3{20, -15, -30},
			Radius:      10,
		},
		{
			Name:        "Underwater Cave",
			Description: "A mysterious cave with glowing minerals inside.",
			Position:    mgl64.Vec3{-40, -18, 25},
			Radius:      8,
		},
		{
			Name:        "Shipwreck Treasure",
			Description: "Gold coins and artifacts from a long-lost trading vessel.",
			Position:    mgl64.Vec3{0, -19, -80},
			Radius:      15,
		},
		{
			Name:        "Bioluminescent Algae",
			Description: "A rare species that produces a beautiful blue glow.",
			Position:    mgl64.Vec3{-60, -10, -20},
			Radius:      12,
		},
		{
			Name:        "School of Rare Fish",
			Description: "A group of fish thought to be extinct for centuries.",
			Position:    mgl64.Vec3{70, -5, 10},
			Radius:      10,
		},
	}
}

// DefaultConfig returns the standard reef.
func DefaultConfig() Config {
	return Config{
		Name:  "reef",
		Seed:  1337,
		Start: mgl64.Vec3{0, 0, 30},
		Params: Params{
			Flock: FlockParams{
				MaxSpeed:       0.2,
				FacingMinSpeed: 0.01,
				SteerGain:      0.001,
				Jitter:         mgl64.Vec3{0.01, 0.005, 0.01},
				SchoolDrift:    mgl64.Vec3{0.05, 0.02, 0.05},
				SchoolMin:      mgl64.Vec3{-80, -15, -80},
				SchoolMax:      mgl64.Vec3{80, 10, 80},
				AvoidRadius:    10,
				AvoidStrength:  0.02,
			},
			Drift: DriftParams{
				Ceiling:         20,
				RecycleNudge:    1,
				WobbleAmplitude: 0.01,
			},
			SwayAmplitude: 0.1,
			Vitals: VitalParams{
				MaxDepth:    20,
				SurfaceBand: 2,
				Replenish:   0.1,
				LowOxygen:   10,
				BaseRate:    0.01,
				Rates: []DepthRate{
					{Below: 15, PerFrame: 0.05},
					{Below: 10, PerFrame: 0.03},
					{Below: 5, PerFrame: 0.02},
				},
			},
			Diver: DiverParams{
				Speed:           15,
				Damping:         10,
				LookSensitivity: 0.002,
				MinY:            -18,
				MaxY:            15,
			},
			NotifyDuration: 5 * time.Second,
		},
		Layout: Layout{
			FloorY:            -20,
			FloorSize:         1000,
			FloorSegments:     100,
			FloorRelief:       5,
			Spread:            100,
			CoralFormations:   20,
			CoralPiecesMin:    3,
			CoralPiecesMax:    7,
			SeaweedClusters:   30,
			StrandsMin:        3,
			StrandsMax:        7,
			StrandHeightMin:   5,
			StrandHeightMax:   10,
			Schools:           5,
			SchoolSizeMin:     5,
			SchoolSizeMax:     14,
			SchoolSpread:      50,
			BubbleEmitters:    10,
			BubblesPerEmitter: 5,
			BubbleOriginY:     -19,
			Wreck: WreckLayout{
				Enabled:  true,
				Position: mgl64.Vec3{30, -17, -30},
				Yaw:      math.Pi / 4,
			},
		},
		Discoveries: DefaultDiscoveries(),
	}
}

// FromMap applies flag-style key/value overrides on top of base. Unknown keys
// and unparsable values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	floats := map[string]*float64{
		"max_speed":        &c.Params.Flock.MaxSpeed,
		"steer_gain":       &c.Params.Flock.SteerGain,
		"avoid_radius":     &c.Params.Flock.AvoidRadius,
		"avoid_strength":   &c.Params.Flock.AvoidStrength,
		"bubble_ceiling":   &c.Params.Drift.Ceiling,
		"wobble":           &c.Params.Drift.WobbleAmplitude,
		"sway_amplitude":   &c.Params.SwayAmplitude,
		"max_depth":        &c.Params.Vitals.MaxDepth,
		"surface_band":     &c.Params.Vitals.SurfaceBand,
		"replenish":        &c.Params.Vitals.Replenish,
		"low_oxygen":       &c.Params.Vitals.LowOxygen,
		"dive_speed":       &c.Params.Diver.Speed,
		"look_sensitivity": &c.Params.Diver.LookSensitivity,
	}
	ints := map[string]*int{
		"schools":             &c.Layout.Schools,
		"school_size_min":     &c.Layout.SchoolSizeMin,
		"school_size_max":     &c.Layout.SchoolSizeMax,
		"bubble_emitters":     &c.Layout.BubbleEmitters,
		"bubbles_per_emitter": &c.Layout.BubblesPerEmitter,
		"seaweed_clusters":    &c.Layout.SeaweedClusters,
		"coral_formations":    &c.Layout.CoralFormations,
	}
	for key, raw := range cfg {
		if ptr, ok := floats[key]; ok {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil && parsed >= 0 {
				*ptr = parsed
			}
			continue
		}
		if ptr, ok := ints[key]; ok {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
				*ptr = parsed
			}
			continue
		}
		if key == "seed" {
			if parsed, err := strconv.ParseInt(raw, 10, 64); err == nil {
				c.Seed = parsed
			}
		}
	}
	if c.Layout.SchoolSizeMax < c.Layout.SchoolSizeMin {
		c.Layout.SchoolSizeMax = c.Layout.SchoolSizeMin
	}
	return c
}
