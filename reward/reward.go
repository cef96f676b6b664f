// Package reward turns a finished battle.BattleLog into gold, experience,
// and stat-growth outcomes for the surviving party. It runs strictly after
// battle.RunBattle returns: nothing here feeds back into the deterministic
// core, and it carries its own non-deterministic rng, generalized from
// tactical/combatresolution/resolution.go's ResolveCombatToOverworld/
// GrantRewards and tactical/squads/experience.go's AwardExperience/
// GrowthChance.
package reward

import (
	"math/rand"

	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
	"github.com/Osakana3610/Osakana-Guild-sub002/randgen"
)

// RollGoldVariance applies +/-variancePercent of jitter to base gold, using
// randgen's crypto/rand-backed roller rather than battle.PRNG: gold payout
// is not part of the deterministic battle contract, so it is free to draw
// from an unseedable source (grounded on randgen/randnumgen.go's
// GetRandomBetween).
func RollGoldVariance(baseGold, variancePercent int) int {
	if baseGold <= 0 || variancePercent <= 0 {
		return baseGold
	}
	spread := baseGold * variancePercent / 100
	low := baseGold - spread
	high := baseGold + spread
	if high <= low {
		return baseGold
	}
	return randgen.GetRandomBetween(low, high)
}

// Table is the gold/experience pool earned from a single battle, scaled by
// outcome before its Experience is split by DistributeExperience (grounded on
// owencounter.RewardTable, referenced by resolution.go).
type Table struct {
	Gold       int
	Experience int
}

// ScaleByOutcome halves Gold and Experience on anything short of a clean
// victory, and zeroes both on a retreat (grounded on resolution.go's
// victory/partial-reward branching, generalized from "weakened vs
// destroyed" to the engine's victory/defeat/retreat outcomes).
func (t Table) ScaleByOutcome(outcome battle.Outcome) Table {
	switch outcome {
	case battle.OutcomeVictory:
		return t
	case battle.OutcomeRetreat:
		return Table{}
	default: // OutcomeDefeat
		return Table{Gold: t.Gold / 2, Experience: t.Experience / 2}
	}
}

// GrowthGrade is a letter grade scale for per-stat level-up odds (grounded
// on tactical/squads/experience.go's GrowthGrade/GrowthChance).
type GrowthGrade int

const (
	GradeF GrowthGrade = iota
	GradeE
	GradeD
	GradeC
	GradeB
	GradeA
	GradeS
)

// GrowthChance returns the percent chance (0-100) of gaining +1 to a stat on
// level up for the given grade (grounded on experience.go's GrowthChance).
func GrowthChance(grade GrowthGrade) int {
	switch grade {
	case GradeS:
		return 90
	case GradeA:
		return 75
	case GradeB:
		return 60
	case GradeC:
		return 45
	case GradeD:
		return 30
	case GradeE:
		return 15
	default: // GradeF
		return 5
	}
}

// GrowthProfile holds one party member's per-stat growth grades, used to
// roll stat gains on level up.
type GrowthProfile struct {
	Strength GrowthGrade
	Wisdom   GrowthGrade
	Spirit   GrowthGrade
	Vitality GrowthGrade
	Agility  GrowthGrade
	Luck     GrowthGrade
}

// ExperienceState is the persistent leveling state for one party member,
// carried across battles by the caller (grounded on experience.go's
// ExperienceData).
type ExperienceState struct {
	Level         int
	CurrentXP     int
	XPToNextLevel int
}

// StatGains records which stats rolled a +1 on a single level-up check.
type StatGains struct {
	Strength, Wisdom, Spirit, Vitality, Agility, Luck int
}

// AwardExperience adds amount XP to state, processing every level-up the
// gain crosses (multi-level jumps included), and rolling independent
// per-stat growth checks for each level gained (grounded on experience.go's
// AwardExperience/rollStatGrowth, spec.md's non-determinism boundary: this
// uses a caller-supplied *rand.Rand, never battle.PRNG, since leveling is
// not part of the deterministic battle contract).
func AwardExperience(state *ExperienceState, profile GrowthProfile, amount int, rng *rand.Rand) StatGains {
	if amount <= 0 {
		return StatGains{}
	}
	state.CurrentXP += amount

	var gains StatGains
	for state.XPToNextLevel > 0 && state.CurrentXP >= state.XPToNextLevel {
		state.CurrentXP -= state.XPToNextLevel
		state.Level++
		state.XPToNextLevel = xpForLevel(state.Level)
		rollStatGrowth(&gains, profile, rng)
	}
	return gains
}

// xpForLevel is a placeholder curve; the stat compiler collaborator owns
// the authoritative curve, this is a reasonable default for standalone
// reward calculation.
func xpForLevel(level int) int {
	return 100 * level
}

func rollStatGrowth(gains *StatGains, profile GrowthProfile, rng *rand.Rand) {
	if rng.Intn(100) < GrowthChance(profile.Strength) {
		gains.Strength++
	}
	if rng.Intn(100) < GrowthChance(profile.Wisdom) {
		gains.Wisdom++
	}
	if rng.Intn(100) < GrowthChance(profile.Spirit) {
		gains.Spirit++
	}
	if rng.Intn(100) < GrowthChance(profile.Vitality) {
		gains.Vitality++
	}
	if rng.Intn(100) < GrowthChance(profile.Agility) {
		gains.Agility++
	}
	if rng.Intn(100) < GrowthChance(profile.Luck) {
		gains.Luck++
	}
}

// DistributeExperience splits totalXP evenly across every survivor in
// roster, awarding the remainder to the first survivors in roster order
// (grounded on resolution.go's grantExperience, which distributes across
// every alive unit in every surviving squad).
func DistributeExperience(roster []*battle.Actor, totalXP int) []int {
	alive := make([]int, 0, len(roster))
	for i, a := range roster {
		if a.IsAlive() {
			alive = append(alive, i)
		}
	}
	shares := make([]int, len(roster))
	if len(alive) == 0 || totalXP <= 0 {
		return shares
	}
	base := totalXP / len(alive)
	remainder := totalXP % len(alive)
	for i, idx := range alive {
		shares[idx] = base
		if i < remainder {
			shares[idx]++
		}
	}
	return shares
}
