// Package audio plays short synthesized cues for HUD events.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"deepsea/internal/sim"
)

const sampleRate = beep.SampleRate(44100)

// Cue names a sound.
type Cue int

const (
	CueNone Cue = iota
	CueDiscovery
	CueWarning
	CueClick
)

// Player implements sim.HUD by turning notifications into sounds. Until
// Initialize succeeds it only records which cue it would have played.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	gain        float64
	initialized bool
	last        Cue
	played      int
	light       bool
}

// NewPlayer returns a silent player at the given gain in [0, 1].
func NewPlayer(gain float64) *Player {
	return &Player{mixer: &beep.Mixer{}, gain: gain}
}

// Initialize opens the audio device.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences everything.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Clear()
	p.initialized = false
}

func (p *Player) SetValue(sim.Element, float64) {}

func (p *Player) Notify(n sim.Notification) {
	switch n.Kind {
	case sim.NoticeWarning:
		p.play(CueWarning, Alarm(sampleRate, p.gain))
	default:
		p.play(CueDiscovery, Chime(sampleRate, p.gain))
	}
}

// SetFlashlight clicks only when the state changes.
func (p *Player) SetFlashlight(on bool) {
	p.mu.Lock()
	changed := p.light != on
	p.light = on
	p.mu.Unlock()
	if changed {
		p.play(CueClick, Click(sampleRate, p.gain, on))
	}
}

func (p *Player) play(c Cue, s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.last = c
	p.played++
	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Last returns the most recent cue and the total count.
func (p *Player) Last() (Cue, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.last, p.played
}
