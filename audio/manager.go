package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Manager owns the speaker and plays the game's sound effects. A
// disabled manager, or one whose speaker failed to initialize, plays
// nothing but keeps every method safe to call.
type Manager struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

// NewManager initializes the speaker. Audio failure is not fatal; a
// headless or soundless host still gets a playable game.
func NewManager(enabled bool) *Manager {
	m := &Manager{mixer: &beep.Mixer{}}
	if !enabled {
		return m
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return m
	}
	speaker.Play(m.mixer)
	m.enabled = true
	return m
}

// Enabled reports whether effects will actually play.
func (m *Manager) Enabled() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.enabled
}

func (m *Manager) play(s beep.Streamer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// Reveal plays the cell uncover click.
func (m *Manager) Reveal() { m.play(CreateRevealSound(sampleRate)) }

// Flag plays the flag ding.
func (m *Manager) Flag() { m.play(CreateFlagSound(sampleRate)) }

// Explosion plays the mine detonation rumble.
func (m *Manager) Explosion() { m.play(CreateExplosionSound(sampleRate)) }

// Win plays the board-cleared chime.
func (m *Manager) Win() { m.play(CreateWinSound(sampleRate)) }

// Close stops playback and releases the speaker.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.enabled {
		return
	}
	speaker.Close()
	m.enabled = false
}
