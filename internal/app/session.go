package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"deepsea/internal/audio"
	"deepsea/internal/hud"
	"deepsea/internal/scene"
	"deepsea/internal/sim"
	"deepsea/internal/sim/tuning"
)

// Session bundles a world with the collaborators every front-end needs: the
// scene graph it spawns into, the HUD model and the audio cues.
type Session struct {
	World *sim.World
	Graph *scene.Graph
	Panel *hud.Panel
	Audio *audio.Player
	Seed  int64

	log zerolog.Logger
}

// NewSession resolves the scene preset named by cfg and builds a populated
// world. Extra HUDs receive the same readouts as the panel. An audio device
// that fails to open is logged and left silent.
func NewSession(cfg *Config, log zerolog.Logger, extra ...sim.HUD) (*Session, error) {
	sc, err := tuning.Resolve(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("scene %q: %w", cfg.Scene, err)
	}

	s := &Session{
		Graph: scene.New(),
		Panel: hud.NewPanel(),
		Audio: audio.NewPlayer(cfg.Volume),
		Seed:  cfg.Seed,
		log:   log,
	}
	if cfg.Sound {
		if err := s.Audio.Initialize(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, continuing without sound")
		}
	}

	huds := append([]sim.HUD{s.Panel, s.Audio}, extra...)
	s.World = sim.New(sc, s.Graph, hud.Tee(huds...))
	s.World.SetLogger(log.With().Str("scene", sc.Name).Logger())
	s.World.Reset(cfg.Seed)

	log.Info().
		Str("scene", sc.Name).
		Int64("seed", cfg.Seed).
		Int("nodes", s.Graph.Count()).
		Msg("session ready")
	return s, nil
}

// Reset repopulates the world with the session seed.
func (s *Session) Reset() {
	s.Panel.Close()
	s.World.Reset(s.Seed)
	s.log.Info().Int64("seed", s.Seed).Msg("session reset")
}

// Close releases the scene, drops pending notifications and silences audio.
func (s *Session) Close() {
	s.World.Close()
	s.Panel.Close()
	s.Audio.Cleanup()
	s.log.Info().
		Int("discovered", len(s.World.Discovered())).
		Int("nodes", s.Graph.Count()).
		Msg("session closed")
}
