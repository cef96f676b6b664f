package battlelog

import (
	"fmt"

	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
)

// BattleSummary aggregates per-actor totals across an entire battle
// (grounded on battle_summary.go's GenerateEngagementSummary/UnitActionSummary,
// adapted from per-engagement squad summaries to a per-battle, per-actor-ref
// aggregation over battle.ActionEntry).
type BattleSummary struct {
	Actors []ActorSummary `json:"actors"`
}

// ActorSummary is one actor's aggregated contribution to the battle.
type ActorSummary struct {
	ActorRef     int    `json:"actor_ref"`
	Actions      int    `json:"actions"`
	Hits         int    `json:"hits"`
	TotalDamage  int    `json:"total_damage"`
	TotalHealing int    `json:"total_healing"`
	Narrative    string `json:"narrative"`
}

var damageEffectKinds = map[battle.EffectKind]bool{
	battle.EffectPhysicalDamage:      true,
	battle.EffectMagicDamage:         true,
	battle.EffectBreathDamage:        true,
	battle.EffectEnemySpecialDamage:  true,
	battle.EffectReactionAttack:      true,
	battle.EffectFollowUp:           true,
}

var healEffectKinds = map[battle.EffectKind]bool{
	battle.EffectMagicHeal:          true,
	battle.EffectHealParty:          true,
	battle.EffectHealSelf:           true,
	battle.EffectEnemySpecialHeal:   true,
	battle.EffectResurrection:       true,
	battle.EffectRescue:             true,
	battle.EffectNecromancer:        true,
}

// GenerateBattleSummary builds per-actor aggregates from a finished log.
func GenerateBattleSummary(log *battle.BattleLog) *BattleSummary {
	totals := make(map[battle.ActorRef]*ActorSummary)
	order := make([]battle.ActorRef, 0)

	ensure := func(ref battle.ActorRef) *ActorSummary {
		if s, ok := totals[ref]; ok {
			return s
		}
		s := &ActorSummary{ActorRef: int(ref)}
		totals[ref] = s
		order = append(order, ref)
		return s
	}

	for _, entry := range log.Entries {
		if entry.ActorRef == nil {
			continue
		}
		actorSummary := ensure(*entry.ActorRef)
		actorSummary.Actions++

		for _, eff := range entry.Effects {
			if damageEffectKinds[eff.Kind] {
				actorSummary.Hits++
				actorSummary.TotalDamage += eff.Value
				if eff.TargetRef != nil {
					ensure(*eff.TargetRef) // register the target even if it never acts itself
				}
			}
			if healEffectKinds[eff.Kind] {
				actorSummary.TotalHealing += eff.Value
			}
		}
	}

	for _, ref := range order {
		s := totals[ref]
		s.Narrative = fmt.Sprintf("actor %d: %d actions, %d damage dealt, %d healing done",
			s.ActorRef, s.Actions, s.TotalDamage, s.TotalHealing)
	}

	summary := &BattleSummary{Actors: make([]ActorSummary, 0, len(order))}
	for _, ref := range order {
		summary.Actors = append(summary.Actors, *totals[ref])
	}
	return summary
}
