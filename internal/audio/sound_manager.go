package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"tank-battle/internal/defs"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// tone describes a synthesized effect: a frequency sweep with optional
// noise, faded out over its duration.
type tone struct {
	from, to float64 // Hz
	duration time.Duration
	noise    float64 // 0..1 share of noise in the mix
	volume   float64
}

var tones = map[string]tone{
	defs.SoundShoot:         {from: 880, to: 220, duration: 90 * time.Millisecond, noise: 0.2, volume: 0.25},
	defs.SoundExplosion:     {from: 120, to: 40, duration: 400 * time.Millisecond, noise: 0.8, volume: 0.35},
	defs.SoundPlayerHit:     {from: 300, to: 80, duration: 250 * time.Millisecond, noise: 0.5, volume: 0.35},
	defs.SoundBrickBreak:    {from: 200, to: 150, duration: 80 * time.Millisecond, noise: 0.9, volume: 0.2},
	defs.SoundPowerUpPickup: {from: 440, to: 1320, duration: 200 * time.Millisecond, volume: 0.25},
	defs.SoundPowerUpAppear: {from: 660, to: 990, duration: 120 * time.Millisecond, volume: 0.15},
	defs.SoundLevelComplete: {from: 523, to: 1046, duration: 600 * time.Millisecond, volume: 0.25},
	defs.SoundGameOver:      {from: 392, to: 98, duration: 900 * time.Millisecond, volume: 0.3},
}

// Known reports whether name is a sound the manager can play.
func Known(name string) bool {
	_, ok := tones[name]
	return ok
}

// SoundManager plays the game's synthesized effects through one mixer.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences everything.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play starts the named effect. Unknown names and an uninitialized manager
// are silently ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	streamer, ok := Streamer(name)
	if !ok {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// Streamer returns a finite streamer for the named effect.
func Streamer(name string) (beep.Streamer, bool) {
	t, ok := tones[name]
	if !ok {
		return nil, false
	}
	n := sampleRate.N(t.duration)
	return beep.Take(n, NewSweepGenerator(sampleRate, t, n)), true
}

// SweepGenerator renders a tone.
type SweepGenerator struct {
	sr    beep.SampleRate
	tone  tone
	total int
	pos   int
	phase float64
	seed  uint32
}

func NewSweepGenerator(sr beep.SampleRate, t tone, total int) *SweepGenerator {
	return &SweepGenerator{sr: sr, tone: t, total: total, seed: 0x9e3779b9}
}

func (g *SweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		progress := math.Min(float64(g.pos)/float64(g.total), 1)
		freq := g.tone.from + (g.tone.to-g.tone.from)*progress
		g.phase += 2 * math.Pi * freq / float64(g.sr)

		// xorshift noise, cheap and reproducible
		g.seed ^= g.seed << 13
		g.seed ^= g.seed >> 17
		g.seed ^= g.seed << 5
		noise := float64(g.seed)/float64(math.MaxUint32)*2 - 1

		sample := (1-g.tone.noise)*math.Sin(g.phase) + g.tone.noise*noise
		sample *= g.tone.volume * (1 - progress)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *SweepGenerator) Err() error {
	return nil
}
