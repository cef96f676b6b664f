package battle

import "testing"

func simpleFighter(side Side, hp, atk, hitScore int) *Actor {
	return &Actor{
		Side:      side,
		CurrentHP: hp,
		Snapshot: CombatSnapshot{
			MaxHP:                hp,
			PhysicalAttackScore:  atk,
			PhysicalDefenseScore: 0,
			HitScore:             hitScore,
			AttackCount:          1,
		},
		ActionRates: ActionRates{Attack: 100},
		Resources:   map[ResourceKey]int{},
	}
}

func TestRunBattlePlayerVictory(t *testing.T) {
	players := []*Actor{simpleFighter(SidePlayer, 1000, 500, 1000)}
	enemies := []*Actor{simpleFighter(SideEnemy, 10, 1, -1000)}
	ctx := NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(1))

	log := RunBattle(ctx)

	if log.Outcome != OutcomeVictory {
		t.Fatalf("expected victory against a weak enemy, got outcome %d", log.Outcome)
	}
	last := log.Entries[len(log.Entries)-1]
	if last.Declaration.Kind != ActionVictory {
		t.Errorf("expected final log entry to be the victory sentinel, got %v", last.Declaration.Kind)
	}
}

func TestRunBattlePlayerDefeat(t *testing.T) {
	players := []*Actor{simpleFighter(SidePlayer, 10, 1, -1000)}
	enemies := []*Actor{simpleFighter(SideEnemy, 1000, 500, 1000)}
	ctx := NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(2))

	log := RunBattle(ctx)

	if log.Outcome != OutcomeDefeat {
		t.Fatalf("expected defeat against a strong enemy, got outcome %d", log.Outcome)
	}
}

func TestRunBattleTurnCapEndsInRetreat(t *testing.T) {
	// Both sides have zero attack, so every landed hit deals only the minimum
	// 1 damage; one hit per turn cannot take 50 HP within MaxTurns, so neither
	// side is ever wiped and the battle must hit the turn cap.
	players := []*Actor{simpleFighter(SidePlayer, 50, 0, -1000)}
	enemies := []*Actor{simpleFighter(SideEnemy, 50, 0, -1000)}
	ctx := NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(3))

	log := RunBattle(ctx)

	if log.Outcome != OutcomeRetreat {
		t.Fatalf("expected turn-cap retreat when neither side can be defeated, got outcome %d", log.Outcome)
	}
	if log.Turns > MaxTurns {
		t.Errorf("turn count should never exceed MaxTurns=%d, got %d", MaxTurns, log.Turns)
	}
}

func TestRunBattleDeterministicGivenSameSeed(t *testing.T) {
	build := func() *Context {
		players := []*Actor{simpleFighter(SidePlayer, 200, 30, 60)}
		enemies := []*Actor{simpleFighter(SideEnemy, 200, 30, 60)}
		return NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
			map[uint16]EnemySkillDefinition{}, NewPRNG(99))
	}

	logA := RunBattle(build())
	logB := RunBattle(build())

	if logA.Outcome != logB.Outcome || logA.Turns != logB.Turns || len(logA.Entries) != len(logB.Entries) {
		t.Fatalf("two identically-seeded battles diverged: %+v vs %+v", logA, logB)
	}
}

func TestRunBattleEnemyRetreatEndsInWithdrawThenRetreat(t *testing.T) {
	players := []*Actor{simpleFighter(SidePlayer, 1000, 500, 1000)}
	enemies := []*Actor{simpleFighter(SideEnemy, 1000, 500, 1000)}
	enemies[0].Effects.Misc.RetreatChancePercent = 100

	ctx := NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(5))

	log := RunBattle(ctx)

	if log.Outcome != OutcomeRetreat {
		t.Fatalf("expected retreat outcome when an enemy's retreatChancePercent=100, got %d", log.Outcome)
	}
	if len(log.Entries) < 2 {
		t.Fatalf("expected at least a withdraw and a retreat entry, got %d entries", len(log.Entries))
	}
	last := log.Entries[len(log.Entries)-1]
	secondToLast := log.Entries[len(log.Entries)-2]
	if last.Declaration.Kind != ActionRetreat {
		t.Errorf("expected the final entry to be the retreat sentinel, got %v", last.Declaration.Kind)
	}
	if secondToLast.Declaration.Kind != ActionWithdraw {
		t.Errorf("expected a withdraw sentinel immediately before retreat, got %v", secondToLast.Declaration.Kind)
	}
	withdrawCount := 0
	for _, e := range log.Entries {
		if e.Declaration.Kind == ActionWithdraw {
			withdrawCount++
		}
	}
	if withdrawCount != 1 {
		t.Errorf("expected exactly one withdraw entry, got %d", withdrawCount)
	}
}

func TestRunBattlePreemptiveWipeSkipsTurnStart(t *testing.T) {
	player := simpleFighter(SidePlayer, 1000, 5000, 1000)
	player.Effects.Combat.SpecialAttacks = []SpecialAttackDefinition{{Preemptive: true, ChancePercent: 100}}
	enemy := simpleFighter(SideEnemy, 10, 0, -1000)

	ctx := NewContext([]*Actor{player}, []*Actor{enemy}, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(6))

	log := RunBattle(ctx)

	if log.Outcome != OutcomeVictory {
		t.Fatalf("expected a preemptive victory, got outcome %d", log.Outcome)
	}
	for _, e := range log.Entries {
		if e.Declaration.Kind == ActionTurnStart {
			t.Errorf("expected zero turnStart entries when the battle is won preemptively")
		}
	}
}

func TestComputeOrderFirstStrikePrecedesSameSpeedActors(t *testing.T) {
	a := simpleFighter(SidePlayer, 100, 10, 10)
	a.PartyMemberID = 1
	a.Agility = 50
	a.Luck = 5
	b := simpleFighter(SidePlayer, 100, 10, 10)
	b.PartyMemberID = 2
	b.Agility = 50
	b.Luck = 5
	b.Effects.Combat.FirstStrike = true

	ctx := newTestContext([]*Actor{a, b}, nil)
	order := ComputeOrder(ctx)

	if len(order) != 2 {
		t.Fatalf("expected both actors in order, got %d", len(order))
	}
	bRef := ctx.refOf(SidePlayer, 1)
	if order[0] != bRef {
		t.Errorf("expected the firstStrike actor first regardless of speed ties, got order %v", order)
	}
}

func TestRunBattleInitialHPRecorded(t *testing.T) {
	players := []*Actor{simpleFighter(SidePlayer, 77, 10, 10)}
	enemies := []*Actor{simpleFighter(SideEnemy, 88, 10, 10)}
	ctx := NewContext(players, enemies, map[uint8]StatusEffectDefinition{}, map[uint16]SkillDefinition{},
		map[uint16]EnemySkillDefinition{}, NewPRNG(4))

	log := RunBattle(ctx)

	if len(log.InitialHP.Player) != 1 || log.InitialHP.Player[0].HP != 77 {
		t.Errorf("expected recorded initial player HP 77, got %+v", log.InitialHP.Player)
	}
	if len(log.InitialHP.Enemy) != 1 || log.InitialHP.Enemy[0].HP != 88 {
		t.Errorf("expected recorded initial enemy HP 88, got %+v", log.InitialHP.Enemy)
	}
}
