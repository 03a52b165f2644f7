package app

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deepsea/internal/audio"
	"deepsea/internal/core"
	"deepsea/internal/hud"
	"deepsea/internal/sim"
)

func quietConfig() *Config {
	cfg := NewConfig()
	cfg.Sound = false
	return cfg
}

func TestSessionPopulatesGraph(t *testing.T) {
	s, err := NewSession(quietConfig(), zerolog.Nop())
	require.NoError(t, err)

	assert.Equal(t, "reef", s.World.Name())
	assert.NotZero(t, s.Graph.Count())
	assert.NotEmpty(t, s.World.Fish())

	s.Close()
	assert.Zero(t, s.Graph.Count(), "close should release every node")
}

func TestSessionUnknownScene(t *testing.T) {
	cfg := quietConfig()
	cfg.Scene = "kelp-forest"
	_, err := NewSession(cfg, zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kelp-forest")
}

func TestSessionResetKeepsNodeCount(t *testing.T) {
	s, err := NewSession(quietConfig(), zerolog.Nop())
	require.NoError(t, err)
	before := s.Graph.Count()

	s.Reset()
	assert.Equal(t, before, s.Graph.Count(), "reset must release the old scene before repopulating")
}

func TestSessionRoutesDiscoveryToPanelAndExtras(t *testing.T) {
	extra := hud.NewPanel()
	s, err := NewSession(quietConfig(), zerolog.Nop(), extra)
	require.NoError(t, err)

	s.World.PlaceViewpoint(mgl64.Vec3{20, -15, -30})
	clock := core.NewClock(60)
	s.World.Step(clock.Next(core.Input{Engaged: true}))

	for _, p := range []*hud.Panel{s.Panel, extra} {
		n, ok := p.Notice()
		require.True(t, ok)
		assert.Equal(t, "Ancient Coral Formation", n.Title)
		assert.Equal(t, sim.NoticeDiscovery, n.Kind)
	}
	cue, played := s.Audio.Last()
	assert.Equal(t, 1, played)
	assert.Equal(t, audio.CueDiscovery, cue)
}
