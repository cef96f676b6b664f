package battle

import "testing"

func TestComputeHitChanceDecaysPerHitIndex(t *testing.T) {
	ctx := newTestContext(nil, nil)
	ctx.RNG = NewPRNGWithPolicy(1, PRNGPolicy{FixedMedian: true})
	attacker := &Actor{Snapshot: CombatSnapshot{HitScore: 0}}
	defender := &Actor{Snapshot: CombatSnapshot{EvasionScore: 0}}

	first := ComputeHitChance(ctx, attacker, defender, 0)
	third := ComputeHitChance(ctx, attacker, defender, 2)
	if third > first {
		t.Errorf("later hits in a burst should not be more accurate: first=%d third=%d", first, third)
	}
}

func TestComputeHitChanceClampedToBounds(t *testing.T) {
	ctx := newTestContext(nil, nil)
	ctx.RNG = NewPRNGWithPolicy(1, PRNGPolicy{FixedMedian: true})

	attacker := &Actor{Snapshot: CombatSnapshot{HitScore: 1000}}
	defender := &Actor{Snapshot: CombatSnapshot{EvasionScore: 0}}
	if got := ComputeHitChance(ctx, attacker, defender, 0); got > 95 {
		t.Errorf("hit chance should clamp at 95, got %d", got)
	}

	weak := &Actor{Snapshot: CombatSnapshot{HitScore: -1000}}
	tough := &Actor{Snapshot: CombatSnapshot{EvasionScore: 1000}}
	if got := ComputeHitChance(ctx, weak, tough, 0); got < 5 {
		t.Errorf("hit chance should clamp at floor 5, got %d", got)
	}
}

func TestAbsorbBarrierReducesToCeilThird(t *testing.T) {
	defender := &Actor{Barrier: map[DamageType]int{DamagePhysical: 2}}
	reduced := absorbBarrier(defender, DamagePhysical, 50)
	if reduced != 17 {
		t.Errorf("expected barrier to reduce damage to ceil(50/3)=17, got %d", reduced)
	}
	if defender.Barrier[DamagePhysical] != 1 {
		t.Errorf("expected barrier charge to decrement to 1, got %d", defender.Barrier[DamagePhysical])
	}
}

func TestAbsorbBarrierPrefersGuardOverPersistent(t *testing.T) {
	defender := &Actor{
		GuardActive:  true,
		Barrier:      map[DamageType]int{DamagePhysical: 1},
		GuardBarrier: map[DamageType]int{DamagePhysical: 1},
	}
	absorbBarrier(defender, DamagePhysical, 50)
	if defender.GuardBarrier[DamagePhysical] != 0 {
		t.Errorf("expected guard barrier to be consumed first, got %d remaining", defender.GuardBarrier[DamagePhysical])
	}
	if defender.Barrier[DamagePhysical] != 1 {
		t.Errorf("persistent barrier should be untouched while guard barrier covers the hit, got %d", defender.Barrier[DamagePhysical])
	}
}

func TestAbsorbBarrierGuardAloneHalves(t *testing.T) {
	defender := &Actor{GuardActive: true}
	reduced := absorbBarrier(defender, DamagePhysical, 50)
	if reduced != 25 {
		t.Errorf("expected bare guardActive to halve damage, got %d", reduced)
	}
}

func TestResolvePhysicalHitMostlyHitsAgainstZeroEvasion(t *testing.T) {
	const trials = 200
	hits := 0
	for seed := uint64(1); seed <= trials; seed++ {
		ctx := newTestContext(nil, nil)
		ctx.RNG = NewPRNG(seed)
		attacker := &Actor{Snapshot: CombatSnapshot{PhysicalAttackScore: 100, HitScore: 100}}
		defender := &Actor{Snapshot: CombatSnapshot{MaxHP: 1000, PhysicalDefenseScore: 20, EvasionScore: 0}, CurrentHP: 1000}

		result := ResolvePhysicalHit(ctx, attacker, defender, 0)
		if !result.Hit {
			continue
		}
		hits++
		if result.Amount <= 0 {
			t.Errorf("seed %d: expected positive damage on a hit, got %d", seed, result.Amount)
		}
		if defender.CurrentHP != 1000-result.Amount {
			t.Errorf("seed %d: expected defender HP to be reduced by the resolved amount", seed)
		}
	}
	// Against zero evasion baseRatio is 1, so the hit chance is the ratio of
	// the two luck rolls (each in [0.40, 1.00]) clamped to [5%, 95%]; averaged
	// over both rolls that comes to about 85%.
	if hits < trials*3/4 {
		t.Errorf("expected at least a 75%% hit rate against zero evasion, got %d/%d", hits, trials)
	}
}

func TestFlooredAttackCountMinimumOne(t *testing.T) {
	snap := &CombatSnapshot{AttackCount: 0.3}
	if got := snap.FlooredAttackCount(); got != 1 {
		t.Errorf("expected floored attack count to clamp to 1, got %d", got)
	}
}
