package battle

// PRNG is a seedable, deterministic 64-bit generator. Two PRNGs constructed
// with the same seed and Policy produce identical sequences for every method
// below — the engine must never observe the system clock or any other
// ambient source of randomness (spec.md §4.1).
//
// Unlike randgen (crypto/rand, reseeded from the OS on every call — see
// randgen/randnumgen.go), this type cannot be swapped for crypto/rand
// without losing reproducibility, which is the engine's core contract
// (spec.md §8, law 4). See DESIGN.md for why randgen was kept separate
// instead of merged into this type.
type PRNG struct {
	state uint64

	// Policy controls beta-test-only overrides. It is threaded explicitly
	// rather than toggled through a package-level variable so that two
	// concurrently running battles (spec.md §5) never share mutable state.
	Policy PRNGPolicy
}

// PRNGPolicy holds process-wide toggles that would otherwise live in global
// state. spec.md §9 flags the source's global "beta-test mode" switch as
// something a systems port should thread through explicitly instead.
type PRNGPolicy struct {
	// FixedMedian replaces every sampled stat/speed multiplier with the
	// midpoint of its range, so tests can assert decisive ordering instead
	// of a probabilistic one.
	FixedMedian bool
}

// NewPRNG constructs a PRNG from a seed with the default policy.
func NewPRNG(seed uint64) *PRNG {
	return &PRNG{state: seed}
}

// NewPRNGWithPolicy constructs a PRNG from a seed and an explicit policy.
func NewPRNGWithPolicy(seed uint64, policy PRNGPolicy) *PRNG {
	return &PRNG{state: seed, Policy: policy}
}

// NextU64 advances the generator and returns the next 64-bit value, using
// the SplitMix64 mixing function.
func (p *PRNG) NextU64() uint64 {
	p.state += 0x9E3779B97F4A7C15
	z := p.state
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}

// IntInRange returns a uniform integer in the closed interval [lo, hi].
// lo must be <= hi.
func (p *PRNG) IntInRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	span := uint64(hi-lo) + 1
	return lo + int(p.NextU64()%span)
}

// PercentChance returns true iff a uniform roll in [1, 100] is <= pct.
// pct <= 0 is always false; pct >= 100 is always true.
func (p *PRNG) PercentChance(pct int) bool {
	if pct <= 0 {
		return false
	}
	if pct >= 100 {
		return true
	}
	return p.IntInRange(1, 100) <= pct
}

// Probability returns true iff NextU64()/2^64 < prob.
func (p *PRNG) Probability(prob float64) bool {
	if prob <= 0 {
		return false
	}
	if prob >= 1 {
		return true
	}
	const denom = 1.8446744073709552e19 // 2^64
	return float64(p.NextU64())/denom < prob
}

// StatMultiplier returns a luck-scaled multiplier in
// [max(0.40, 0.40+luck/100), 1.00], sampled via IntInRange(lo, 100)/100.
func (p *PRNG) StatMultiplier(luck int) float64 {
	lo := 40 + luck
	if lo < 40 {
		lo = 40
	}
	if lo > 100 {
		lo = 100
	}
	if p.Policy.FixedMedian {
		return float64(lo+100) / 2.0 / 100.0
	}
	return float64(p.IntInRange(lo, 100)) / 100.0
}

// SpeedMultiplier returns a luck-scaled multiplier in
// [max(0, (luck-10)/50), 1.00].
func (p *PRNG) SpeedMultiplier(luck int) float64 {
	lo := (luck - 10) * 2
	if lo < 0 {
		lo = 0
	}
	if lo > 100 {
		lo = 100
	}
	if p.Policy.FixedMedian {
		return float64(lo+100) / 2.0 / 100.0
	}
	return float64(p.IntInRange(lo, 100)) / 100.0
}
