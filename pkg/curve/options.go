package curve

import "fmt"

// Threshold defaults. These are heuristic policy, not geometry: they
// encode how much of a component may be noise and how large a gap the
// repair step may bridge, all relative to the component's median edge
// length or total length.
const (
	// DefaultNoiseMaxEdges is the largest edge count a component may
	// have and still count as spurious grazing contact.
	DefaultNoiseMaxEdges = 3

	// DefaultNoiseLengthFactor bounds a noise component's total length
	// as a multiple of its median edge length.
	DefaultNoiseLengthFactor = 2.0

	// DefaultLoopMinEdges is the fewest edges a strong loop candidate
	// may have.
	DefaultLoopMinEdges = 4

	// DefaultLoopLengthFactor is the least total length of a strong
	// loop candidate as a multiple of its median edge length.
	DefaultLoopLengthFactor = 4.0

	// DefaultGapMedianFactor bounds a repairable gap as a multiple of
	// the median edge length.
	DefaultGapMedianFactor = 3.0

	// DefaultGapTotalFactor bounds a repairable gap as a fraction of
	// the component's total length.
	DefaultGapTotalFactor = 0.25
)

// Options are the regularizer's classification and repair thresholds.
// The zero value means defaults.
type Options struct {
	NoiseMaxEdges     int
	NoiseLengthFactor float64
	LoopMinEdges      int
	LoopLengthFactor  float64
	GapMedianFactor   float64
	GapTotalFactor    float64
}

// DefaultOptions returns the default thresholds.
func DefaultOptions() Options {
	return Options{
		NoiseMaxEdges:     DefaultNoiseMaxEdges,
		NoiseLengthFactor: DefaultNoiseLengthFactor,
		LoopMinEdges:      DefaultLoopMinEdges,
		LoopLengthFactor:  DefaultLoopLengthFactor,
		GapMedianFactor:   DefaultGapMedianFactor,
		GapTotalFactor:    DefaultGapTotalFactor,
	}
}

// normalize fills zero fields with defaults and rejects negatives.
func (o Options) normalize() (Options, error) {
	d := DefaultOptions()
	if o.NoiseMaxEdges == 0 {
		o.NoiseMaxEdges = d.NoiseMaxEdges
	}
	if o.NoiseLengthFactor == 0 {
		o.NoiseLengthFactor = d.NoiseLengthFactor
	}
	if o.LoopMinEdges == 0 {
		o.LoopMinEdges = d.LoopMinEdges
	}
	if o.LoopLengthFactor == 0 {
		o.LoopLengthFactor = d.LoopLengthFactor
	}
	if o.GapMedianFactor == 0 {
		o.GapMedianFactor = d.GapMedianFactor
	}
	if o.GapTotalFactor == 0 {
		o.GapTotalFactor = d.GapTotalFactor
	}
	if o.NoiseMaxEdges < 0 || o.NoiseLengthFactor < 0 || o.LoopMinEdges < 0 ||
		o.LoopLengthFactor < 0 || o.GapMedianFactor < 0 || o.GapTotalFactor < 0 {
		return o, fmt.Errorf("curve: thresholds must not be negative: %+v", o)
	}
	return o, nil
}
