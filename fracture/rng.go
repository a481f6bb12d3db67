package fracture

// rng is a xorshift64 generator. Seed generation and slice patterns must be
// reproducible across runs and platforms from a caller-supplied integer seed,
// so the state transition is pinned here instead of deferring to math/rand,
// whose stream is not a compatibility promise we control.
type rng struct {
	state uint64
}

func newRng(seed int64) *rng {
	state := uint64(seed)
	if state == 0 {
		// xorshift has a zero fixed point
		state = 0xDEADBEEFCAFEBABE
	}
	return &rng{state: state}
}

func (r *rng) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// float returns a uniform value in [0, 1) built from the top 24 bits.
func (r *rng) float() float64 {
	return float64(r.next()>>40) / float64(uint64(1)<<24)
}

// rangef returns a uniform value in [min, max).
func (r *rng) rangef(min, max float64) float64 {
	return min + r.float()*(max-min)
}

// intn returns a uniform integer in [0, n). n must be positive.
func (r *rng) intn(n int) int {
	return int(r.next() % uint64(n))
}
