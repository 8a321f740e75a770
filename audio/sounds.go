package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Effect durations and envelope timings.
const (
	revealDuration = 40 * time.Millisecond
	revealAttack   = 2 * time.Millisecond
	revealRelease  = 25 * time.Millisecond

	flagDuration = 120 * time.Millisecond
	flagAttack   = 2 * time.Millisecond
	flagRelease  = 90 * time.Millisecond

	explosionDuration = 500 * time.Millisecond
	explosionHalfLife = 80 * time.Millisecond

	winNoteDuration = 90 * time.Millisecond
	winNoteAttack   = 3 * time.Millisecond
	winNoteRelease  = 60 * time.Millisecond
)

// CreateRevealSound generates a soft click for uncovering a cell
func CreateRevealSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(660.0, revealDuration, WaveSine, rate)
	shaped := NewEnvelope(osc, revealDuration, revealAttack, revealRelease, rate)
	return newVolume(shaped, 0.3)
}

// CreateFlagSound generates a short ding for planting a flag
func CreateFlagSound(rate beep.SampleRate) beep.Streamer {
	// Fundamental (A5)
	fund := NewOscillator(880.0, flagDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, flagDuration, flagAttack, flagRelease, rate)

	// Harmonic (Octave up)
	over := NewOscillator(1760.0, flagDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, flagDuration, flagAttack, flagRelease/2, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, 0.5)
}

// CreateExplosionSound generates a low rumbling burst for a detonated
// mine, dying off exponentially with the rumble outlasting the crack
func CreateExplosionSound(rate beep.SampleRate) beep.Streamer {
	noise := NewOscillator(0, explosionDuration, WaveNoise, rate)
	noiseShaped := NewDecay(noise, explosionDuration, explosionHalfLife, rate)

	rumble := NewOscillator(60.0, explosionDuration, WaveSaw, rate)
	rumbleShaped := NewDecay(rumble, explosionDuration, 2*explosionHalfLife, rate)

	mixed := beep.Mix(
		newVolume(noiseShaped, 0.6),
		newVolume(rumbleShaped, 0.4),
	)
	return newVolume(mixed, 0.8)
}

// CreateWinSound generates a rising three-note chime for clearing the
// board
func CreateWinSound(rate beep.SampleRate) beep.Streamer {
	// C6, E6, G6
	freqs := []float64{1046.50, 1318.51, 1567.98}
	notes := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		osc := NewOscillator(f, winNoteDuration, WaveSquare, rate)
		notes[i] = NewEnvelope(osc, winNoteDuration, winNoteAttack, winNoteRelease, rate)
	}
	return newVolume(beep.Seq(notes...), 0.4)
}
