// Package prng implements the small linear congruential generator that
// drives cell spawning. Output is fully determined by the seed, which keeps
// the animation reproducible in tests and previews.
package prng

// stateMask keeps the generator inside its 15-bit period.
const stateMask = 32767

// PRNG is a 15-bit LCG using the classic 214013/2531011 constants.
// It is not safe for concurrent use.
type PRNG struct {
	state uint32
}

// New creates a generator seeded with the given value.
func New(seed int32) *PRNG {
	p := &PRNG{}
	p.Seed(seed)
	return p
}

// Seed resets the generator state. Only the low 15 bits of value are kept.
func (p *PRNG) Seed(value int32) {
	p.state = uint32(value) & stateMask
}

// State returns the current internal state.
func (p *PRNG) State() int32 {
	return int32(p.state)
}

// Intn advances the generator and returns a value in [0, max).
// Panics if max is not positive.
func (p *PRNG) Intn(max int) int {
	if max <= 0 {
		panic("prng: Intn called with non-positive max")
	}
	// Bits 16..30 only depend on the low 32 bits of the product, so uint32
	// wraparound gives the same sequence as wider arithmetic.
	p.state = ((p.state*214013 + 2531011) >> 16) & stateMask
	return int(p.state) % max
}
