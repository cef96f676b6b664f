package battle

import "testing"

func newTestContext(players, enemies []*Actor) *Context {
	return NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(123))
}

func TestSelectActionCandidatesFallsBackToDefend(t *testing.T) {
	actor := &Actor{Side: SidePlayer, ActionRates: ActionRates{}}
	ctx := newTestContext([]*Actor{actor}, []*Actor{{Side: SideEnemy, CurrentHP: 1, Snapshot: CombatSnapshot{MaxHP: 1}}})

	candidates := SelectActionCandidates(ctx, actor)
	if len(candidates) != 1 || candidates[0] != ActionDefend {
		t.Fatalf("expected sole candidate defend when all rates are zero, got %v", candidates)
	}
}

func TestSelectActionCandidatesZeroesUnusableChannels(t *testing.T) {
	actor := &Actor{
		Side:        SidePlayer,
		ActionRates: ActionRates{Attack: 50, PriestMagic: 50, MageMagic: 50, Breath: 50},
		Snapshot:    CombatSnapshot{BreathDamageScore: 0},
		Resources:   map[ResourceKey]int{},
	}
	ctx := newTestContext([]*Actor{actor}, []*Actor{{Side: SideEnemy, CurrentHP: 1, Snapshot: CombatSnapshot{MaxHP: 1}}})

	candidates := SelectActionCandidates(ctx, actor)
	for _, c := range candidates {
		if c == ActionBreath || c == ActionPriestMagic || c == ActionMageMagic {
			t.Errorf("candidate %v should have been zeroed (no breath score / no charges), got %v", c, candidates)
		}
	}
	if len(candidates) == 0 {
		t.Fatal("expected at least physicalAttack as a candidate")
	}
}

func TestSelectActionCandidatesEnemySpecialSkillOverride(t *testing.T) {
	actor := &Actor{
		Side:                   SideEnemy,
		EnemySkillIDs:          []uint16{1},
		EnemySkillUsesRemaining: map[uint16]int{1: 2},
		ActionRates:            ActionRates{Attack: 100},
	}
	ctx := newTestContext([]*Actor{{Side: SidePlayer, CurrentHP: 1, Snapshot: CombatSnapshot{MaxHP: 1}}}, []*Actor{actor})
	ctx.EnemySkillDefs[1] = EnemySkillDefinition{ID: 1, ChancePercent: 100, UsesPerBattle: 2}

	candidates := SelectActionCandidates(ctx, actor)
	if len(candidates) != 1 || candidates[0] != ActionEnemySpecialSkill {
		t.Fatalf("expected enemy special skill override, got %v", candidates)
	}
}

func TestSelectActionCandidatesSkipsExhaustedEnemySkill(t *testing.T) {
	actor := &Actor{
		Side:                   SideEnemy,
		EnemySkillIDs:          []uint16{1},
		EnemySkillUsesRemaining: map[uint16]int{1: 0},
		ActionRates:            ActionRates{Attack: 100},
	}
	ctx := newTestContext([]*Actor{{Side: SidePlayer, CurrentHP: 1, Snapshot: CombatSnapshot{MaxHP: 1}}}, []*Actor{actor})
	ctx.EnemySkillDefs[1] = EnemySkillDefinition{ID: 1, ChancePercent: 100, UsesPerBattle: 2}

	candidates := SelectActionCandidates(ctx, actor)
	for _, c := range candidates {
		if c == ActionEnemySpecialSkill {
			t.Fatalf("exhausted enemy skill should not be selectable, got %v", candidates)
		}
	}
}
