package vmath

// FastRand is a xorshift64 generator
// Every system rolling randomness shares one instance so a seed replays a run
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1)
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns a uniform value in [lo, hi)
func (r *FastRand) Range(lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// Chance runs a Bernoulli trial with success probability p
func (r *FastRand) Chance(p float64) bool {
	return r.Float64() < p
}

// State exposes the generator state for replay headers
func (r *FastRand) State() uint64 {
	return r.state
}
