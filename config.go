// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringmpsc

// Config configures Channel construction: per-ring capacity, the fan-in
// width, and whether to pay for metrics collection.
//
// Zero value is invalid — use one of the presets below, or set RingBits
// and MaxProducers explicitly before calling NewChannel.
type Config struct {
	// RingBits determines per-ring capacity: capacity = 1 << RingBits.
	RingBits uint

	// MaxProducers is the fixed number of rings the channel embeds.
	// Registrations beyond this count fail with ErrAtCapacity.
	MaxProducers int

	// EnableMetrics switches every ring's counters from NoopMetrics to
	// a live RingMetrics instance. Leave false on the hot path unless
	// the counters are actually being read.
	EnableMetrics bool
}

// LowLatency returns a preset sized to stay L1-resident: 4096 slots per
// ring, up to 32 producers.
func LowLatency() Config {
	return Config{RingBits: 12, MaxProducers: 32}
}

// Default returns a general-purpose preset: 65536 slots per ring, up to
// 64 producers.
func Default() Config {
	return Config{RingBits: 16, MaxProducers: 64}
}

// HighThroughput returns a preset favoring sustained fan-in over memory
// footprint: 262144 slots per ring, up to 128 producers.
func HighThroughput() Config {
	return Config{RingBits: 18, MaxProducers: 128}
}

// ringCapacity returns the per-ring slot count implied by RingBits.
func (c Config) ringCapacity() int {
	return 1 << c.RingBits
}

// roundToPow2 rounds n up to the next power of 2. n must be >= 1.
func roundToPow2(n int) int {
	if n < 2 {
		return 2
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n |= n >> 32
	return n + 1
}
