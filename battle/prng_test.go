package battle

import "testing"

func TestPRNGDeterministic(t *testing.T) {
	a := NewPRNG(42)
	b := NewPRNG(42)
	for i := 0; i < 100; i++ {
		if a.NextU64() != b.NextU64() {
			t.Fatalf("two PRNGs with the same seed diverged at iteration %d", i)
		}
	}
}

func TestIntInRangeBounds(t *testing.T) {
	p := NewPRNG(7)
	for i := 0; i < 1000; i++ {
		v := p.IntInRange(3, 9)
		if v < 3 || v > 9 {
			t.Fatalf("IntInRange(3,9) returned out-of-bounds value %d", v)
		}
	}
}

func TestPercentChanceBounds(t *testing.T) {
	p := NewPRNG(1)
	if p.PercentChance(0) {
		t.Error("PercentChance(0) should never succeed")
	}
	if !p.PercentChance(100) {
		t.Error("PercentChance(100) should always succeed")
	}
}

func TestStatMultiplierRange(t *testing.T) {
	p := NewPRNG(99)
	for _, luck := range []int{-50, 0, 10, 50} {
		for i := 0; i < 200; i++ {
			m := p.StatMultiplier(luck)
			if m < 0.40 || m > 1.00 {
				t.Fatalf("StatMultiplier(%d) = %f, out of [0.40, 1.00]", luck, m)
			}
		}
	}
}

func TestStatMultiplierFixedMedian(t *testing.T) {
	p := NewPRNGWithPolicy(1, PRNGPolicy{FixedMedian: true})
	first := p.StatMultiplier(0)
	second := p.StatMultiplier(0)
	if first != second {
		t.Errorf("FixedMedian should make StatMultiplier deterministic, got %f then %f", first, second)
	}
}

func TestSpeedMultiplierRange(t *testing.T) {
	p := NewPRNG(5)
	for _, luck := range []int{0, 10, 60} {
		for i := 0; i < 200; i++ {
			m := p.SpeedMultiplier(luck)
			if m < 0 || m > 1.00 {
				t.Fatalf("SpeedMultiplier(%d) = %f, out of [0, 1.00]", luck, m)
			}
		}
	}
}
