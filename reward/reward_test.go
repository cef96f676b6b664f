package reward

import (
	"math/rand"
	"testing"

	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
)

func TestScaleByOutcome(t *testing.T) {
	table := Table{Gold: 100, Experience: 200}

	if got := table.ScaleByOutcome(battle.OutcomeVictory); got != table {
		t.Errorf("victory should not scale rewards, got %+v", got)
	}
	if got := table.ScaleByOutcome(battle.OutcomeRetreat); got != (Table{}) {
		t.Errorf("retreat should zero rewards, got %+v", got)
	}
	if got := table.ScaleByOutcome(battle.OutcomeDefeat); got != (Table{Gold: 50, Experience: 100}) {
		t.Errorf("defeat should halve rewards, got %+v", got)
	}
}

func TestGrowthChanceMonotonic(t *testing.T) {
	grades := []GrowthGrade{GradeF, GradeE, GradeD, GradeC, GradeB, GradeA, GradeS}
	prev := -1
	for _, g := range grades {
		chance := GrowthChance(g)
		if chance <= prev {
			t.Fatalf("GrowthChance(%d) = %d, expected strictly increasing from previous %d", g, chance, prev)
		}
		prev = chance
	}
}

func TestAwardExperienceMultiLevel(t *testing.T) {
	state := &ExperienceState{Level: 1, XPToNextLevel: 100}
	profile := GrowthProfile{Strength: GradeS, Wisdom: GradeF}
	rng := rand.New(rand.NewSource(1))

	AwardExperience(state, profile, 300, rng)

	if state.Level != 3 {
		t.Errorf("expected level 3 after 300 xp against a 100*level curve (100 + 200), got %d", state.Level)
	}
	if state.CurrentXP < 0 || state.CurrentXP >= state.XPToNextLevel {
		t.Errorf("leftover xp %d should be less than xp needed for next level %d", state.CurrentXP, state.XPToNextLevel)
	}
}

func TestRollGoldVarianceStaysInBand(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := RollGoldVariance(1000, 10)
		if got < 900 || got > 1100 {
			t.Fatalf("RollGoldVariance(1000, 10) = %d, expected within [900, 1100]", got)
		}
	}
}

func TestDistributeExperienceSkipsDead(t *testing.T) {
	roster := []*battle.Actor{
		{CurrentHP: 10, Snapshot: battle.CombatSnapshot{MaxHP: 10}},
		{CurrentHP: 0, Snapshot: battle.CombatSnapshot{MaxHP: 10}},
		{CurrentHP: 5, Snapshot: battle.CombatSnapshot{MaxHP: 10}},
	}

	shares := DistributeExperience(roster, 100)

	if shares[1] != 0 {
		t.Errorf("defeated actor should receive no experience, got %d", shares[1])
	}
	if shares[0]+shares[2] != 100 {
		t.Errorf("total distributed should equal totalXP, got %d", shares[0]+shares[2])
	}
}
