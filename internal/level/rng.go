package level

// Rng is a deterministic linear congruential stream. Two streams built from
// the same seed and advanced the same number of times return identical values,
// which is what lets a level be regenerated from its number alone.
//
// Arithmetic is done on uint32 so the recurrence wraps modulo 2^32.
type Rng struct {
	state uint32
}

const (
	lcgMultiplier = 1664525
	lcgIncrement  = 1013904223
	lcgModulus    = 1 << 32
)

// NewRng creates a stream seeded with seed.
func NewRng(seed uint32) *Rng {
	return &Rng{state: seed}
}

// Next advances the stream and returns a value in [0, 1).
func (r *Rng) Next() float64 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return float64(r.state) / lcgModulus
}

// Intn returns an index in [0, n) by scaling the next value.
// It consumes exactly one draw.
func (r *Rng) Intn(n int) int {
	if n <= 0 {
		r.Next()
		return 0
	}
	return int(r.Next() * float64(n))
}

// State returns the current internal state.
func (r *Rng) State() uint32 {
	return r.state
}
