package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
)

type oscillator struct {
	freq     float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
}

// Tone returns a fixed-length oscillator.
func Tone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{freq: freq, length: rate.N(d), wave: wave, rate: rate}
}

func (o *oscillator) Stream(samples [][2]float64) (int, bool) {
	if o.position >= o.length {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.length {
			return i, true
		}
		var v float64
		switch o.wave {
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(o.phase-0.5) - 1
		default:
			v = math.Sin(2 * math.Pi * o.phase)
		}
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fade applies a linear attack and release over a fixed length.
type fade struct {
	s        beep.Streamer
	position int
	length   int
	attack   int
	release  int
}

// Fade shapes s with a linear attack and release.
func Fade(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &fade{s: s, length: rate.N(d), attack: rate.N(attack), release: rate.N(release)}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if f.attack > 0 && f.position < f.attack {
			vol = float64(f.position) / float64(f.attack)
		}
		if left := f.length - f.position; f.release > 0 && left < f.release {
			vol = math.Max(0, float64(left)/float64(f.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		f.position++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v)}
}

// Chime is the rising two-note discovery cue.
func Chime(rate beep.SampleRate, gain float64) beep.Streamer {
	note := func(freq float64) beep.Streamer {
		d := 180 * time.Millisecond
		fund := Fade(Tone(freq, d, WaveSine, rate), d, 5*time.Millisecond, 120*time.Millisecond, rate)
		over := Fade(Tone(freq*2, d, WaveSine, rate), d, 5*time.Millisecond, 60*time.Millisecond, rate)
		return beep.Mix(volume(fund, 0.7), volume(over, 0.3))
	}
	return volume(beep.Seq(note(659.25), note(987.77)), gain)
}

// Alarm is the low-oxygen cue: three short square pulses.
func Alarm(rate beep.SampleRate, gain float64) beep.Streamer {
	var parts []beep.Streamer
	for i := 0; i < 3; i++ {
		on := 120 * time.Millisecond
		parts = append(parts,
			Fade(Tone(440, on, WaveSquare, rate), on, 5*time.Millisecond, 20*time.Millisecond, rate),
			beep.Silence(rate.N(80*time.Millisecond)),
		)
	}
	return volume(beep.Seq(parts...), gain*0.5)
}

// Click is the flashlight switch cue.
func Click(rate beep.SampleRate, gain float64, on bool) beep.Streamer {
	freq := 1200.0
	if !on {
		freq = 800
	}
	d := 30 * time.Millisecond
	return volume(Fade(Tone(freq, d, WaveTriangle, rate), d, time.Millisecond, 20*time.Millisecond, rate), gain*0.4)
}
