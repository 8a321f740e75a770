package ui

import "time"

// fpsWindow is the number of frames the monitor averages over.
const fpsWindow = 100

// FPSMonitor tracks frame render times. The reading is not stable
// until the window has filled with real frames.
type FPSMonitor struct {
	data []time.Time
}

// NewFPSMonitor seeds the window as if frames had been arriving at
// the target rate already, so the first readings are plausible.
func NewFPSMonitor(framerate int) *FPSMonitor {
	rate := framerate
	if rate == 0 {
		rate = 100
	}
	now := time.Now()
	m := &FPSMonitor{data: make([]time.Time, fpsWindow)}
	for i := range m.data {
		m.data[i] = now.Add(time.Duration(i) * time.Second / time.Duration(rate))
	}
	return m
}

// Tick records a rendered frame.
func (m *FPSMonitor) Tick() {
	m.data = append(m.data[1:], time.Now())
}

// FPS returns the frame rate averaged over the window.
func (m *FPSMonitor) FPS() float64 {
	elapsed := m.data[len(m.data)-1].Sub(m.data[1]).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(len(m.data)-2) / elapsed
}

// LastFrame returns the time the most recent frame was rendered.
func (m *FPSMonitor) LastFrame() time.Time {
	return m.data[len(m.data)-1]
}
