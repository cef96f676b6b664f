// Package statcompiler is the stat-compiler collaborator the engine assumes
// exists (spec.md §6): the thing that turns a unit's base attributes,
// equipment, and learned skills into the compiled battle.CombatSnapshot and
// battle.SkillEffects a battle.Actor carries. The engine never recomputes a
// snapshot mid-battle; everything here runs once, before battle.RunBattle.
//
// This package is intentionally a stub: it implements attribute-to-score
// formulas generalized from tactical/squads/squadcomponents.go's Attributes
// and squadcombat.go's calculateUnitDamageByID (which derives attack/defense
// scores from raw Strength/Dexterity/etc rather than storing them directly),
// scaled down to the subset battle.CombatSnapshot actually needs. A real stat
// compiler would also read equipment and skill trees; this one takes base
// attributes directly, which is enough to build the rosters
// battle.RunBattle expects for testing and simulation.
package statcompiler

import "github.com/Osakana3610/Osakana-Guild-sub002/battle"

// BaseAttributes is the raw, player-editable stat block for one unit.
type BaseAttributes struct {
	Strength int
	Wisdom   int
	Spirit   int
	Vitality int
	Agility  int
	Luck     int
}

// CompileSnapshot derives a CombatSnapshot from raw attributes (grounded on
// squadcombat.go's attacker/defender attribute reads feeding directly into
// its damage formula, generalized into explicit linear scalings per score).
func CompileSnapshot(attrs BaseAttributes) battle.CombatSnapshot {
	return battle.CombatSnapshot{
		MaxHP:                 attrs.Vitality * 10,
		PhysicalAttackScore:   attrs.Strength * 3,
		MagicalAttackScore:    attrs.Wisdom * 3,
		PhysicalDefenseScore:  attrs.Vitality * 2,
		MagicalDefenseScore:   attrs.Spirit * 2,
		HitScore:              attrs.Agility,
		EvasionScore:          attrs.Agility / 2,
		CriticalChancePercent: attrs.Luck / 5,
		AttackCount:           1,
		MagicalHealingScore:   attrs.Wisdom * 2,
		TrapRemovalScore:      attrs.Agility / 3,
		AdditionalDamageScore: 0,
		BreathDamageScore:     0,
		IsMartialEligible:     attrs.Strength >= attrs.Wisdom,
	}
}

// CompileActionRates returns a caster-shaped actor's default per-channel
// lottery weights: physical attackers weight Attack heavily, casters split
// between priestMagic/mageMagic based on Wisdom vs Spirit, breath stays at
// zero unless the caller overrides it for a breath-capable unit.
func CompileActionRates(attrs BaseAttributes, hasPriestMagic, hasMageMagic bool) battle.ActionRates {
	rates := battle.ActionRates{Attack: 100}
	if hasPriestMagic {
		rates.PriestMagic = attrs.Spirit
	}
	if hasMageMagic {
		rates.MageMagic = attrs.Wisdom
	}
	return rates
}

// BuildActor assembles a ready-to-battle Actor from raw inputs (grounded on
// the roster-construction shape every tools/combat_simulator suite needs
// before it can call battle.RunBattle).
func BuildActor(side battle.Side, slot int, id int, name string, attrs BaseAttributes, effects battle.SkillEffects, rates battle.ActionRates) *battle.Actor {
	snap := CompileSnapshot(attrs)
	actor := &battle.Actor{
		Side:          side,
		FormationSlot: slot,
		Name:          name,
		Strength:      attrs.Strength,
		Wisdom:        attrs.Wisdom,
		Spirit:        attrs.Spirit,
		Vitality:      attrs.Vitality,
		Agility:       attrs.Agility,
		Luck:          attrs.Luck,
		Snapshot:      snap,
		CurrentHP:     snap.MaxHP,
		ActionRates:   rates,
		Resources:     make(map[battle.ResourceKey]int),
		Effects:       effects,
	}
	if side == battle.SidePlayer {
		actor.PartyMemberID = id
	} else {
		actor.EnemyMasterID = id
	}
	return actor
}
