package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestOscillatorSine verifies sine wave generation
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 100 {
		t.Errorf("Expected to stream 100 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}

	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square wave samples are full scale
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, ok := osc.Stream(samples)

	if !ok {
		t.Error("Expected stream to return ok=true")
	}
	if n != 50 {
		t.Errorf("Expected to stream 50 samples, got %d", n)
	}

	for i := 0; i < n; i++ {
		val := samples[i][0]
		if val != -1.0 && val != 1.0 {
			t.Errorf("Square wave sample %d should be -1.0 or 1.0, got %f", i, val)
		}
	}
}

// TestOscillatorEnds verifies the stream terminates after its duration
func TestOscillatorEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 10*time.Millisecond, WaveSine, rate)

	// 10ms at 1kHz is exactly 10 samples
	samples := make([][2]float64, 20)
	n, ok := osc.Stream(samples)

	if ok {
		t.Error("Expected stream to end within one read")
	}
	if n != 10 {
		t.Errorf("Expected 10 samples before end, got %d", n)
	}
}

// TestEnvelopeShaping verifies attack ramps up and release ramps down
func TestEnvelopeShaping(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	// A constant full-scale source makes the envelope directly visible
	src := NewOscillator(0, duration, WaveSquare, rate)
	env := NewEnvelope(src, duration, 20*time.Millisecond, 20*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Expected attack to start silent, got %f", samples[0][0])
	}
	if samples[10][0] >= samples[19][0] {
		t.Error("Expected attack to ramp up")
	}
	if samples[50][0] != 1.0 {
		t.Errorf("Expected sustain at full scale, got %f", samples[50][0])
	}
	if samples[90][0] >= samples[85][0] {
		t.Error("Expected release to ramp down")
	}
}

// TestDecayHalvesGain verifies the exponential falloff hits half
// scale after one half-life
func TestDecayHalvesGain(t *testing.T) {
	rate := beep.SampleRate(1000)
	duration := 100 * time.Millisecond

	// a constant full-scale source makes the falloff directly visible
	src := NewOscillator(0, duration, WaveSquare, rate)
	d := NewDecay(src, duration, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := d.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 1.0 {
		t.Errorf("Expected full scale at the start, got %f", samples[0][0])
	}
	if diff := samples[10][0] - 0.5; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("Expected half scale after one half-life, got %f", samples[10][0])
	}
	for i := 1; i < n; i++ {
		if samples[i][0] >= samples[i-1][0] {
			t.Fatalf("Expected a monotonic falloff, sample %d rose to %f", i, samples[i][0])
		}
	}
}

// TestDecayEnds verifies the stream terminates after its duration
func TestDecayEnds(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := NewOscillator(0, time.Second, WaveSquare, rate)
	d := NewDecay(src, 10*time.Millisecond, 5*time.Millisecond, rate)

	samples := make([][2]float64, 20)
	n, ok := d.Stream(samples)
	if ok || n != 10 {
		t.Errorf("Expected the decay to end after 10 samples, got n=%d ok=%v", n, ok)
	}
}

// TestEffectBuilders verifies every effect produces a playable stream
func TestEffectBuilders(t *testing.T) {
	rate := beep.SampleRate(48000)
	effects := map[string]beep.Streamer{
		"reveal":    CreateRevealSound(rate),
		"flag":      CreateFlagSound(rate),
		"explosion": CreateExplosionSound(rate),
		"win":       CreateWinSound(rate),
	}
	for name, s := range effects {
		t.Run(name, func(t *testing.T) {
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			samples := make([][2]float64, 64)
			n, ok := s.Stream(samples)
			if !ok || n != 64 {
				t.Errorf("Expected a full first read, got n=%d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
			}
		})
	}
}

// TestDisabledManager verifies a silent manager is safe to use
func TestDisabledManager(t *testing.T) {
	m := NewManager(false)
	if m.Enabled() {
		t.Error("Expected disabled manager")
	}
	m.Reveal()
	m.Flag()
	m.Explosion()
	m.Win()
	m.Close()
}
