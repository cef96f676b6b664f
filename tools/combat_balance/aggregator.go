package main

import (
	"sort"

	"github.com/Osakana3610/Osakana-Guild-sub002/tactical/combat/battlelog"
)

// damageEffectKinds and healEffectKinds classify the effect-kind names
// battlelog.EffectRecord.Kind can hold (grounded on
// tactical/combat/battlelog/names.go's effectKindName; mirrors the
// damage/heal split battle_summary.go draws for its own per-actor totals).
var damageEffectKinds = map[string]bool{
	"physicalDamage":     true,
	"magicDamage":        true,
	"breathDamage":       true,
	"enemySpecialDamage": true,
	"reactionAttack":     true,
	"followUp":           true,
}

var healEffectKinds = map[string]bool{
	"magicHeal":       true,
	"healParty":       true,
	"healSelf":        true,
	"resurrection":    true,
	"rescue":          true,
	"necromancer":     true,
	"enemySpecialHeal": true,
}

// MatchupKey identifies a unique attacker->target damage matchup, keyed by
// actor ref rather than unit name (grounded on
// tools/combat_balance/aggregator.go's MatchupKey; the engine has no unit
// name in its log, only battle.ActorRef per spec.md §3).
type MatchupKey struct {
	AttackerRef int
	TargetRef   int
	EffectKind  string
}

// MatchupStats accumulates damage statistics for a matchup.
type MatchupStats struct {
	TotalHits   int
	TotalDamage int
	BattlesSeen map[string]bool
}

// HealKey identifies a unique healer->target heal matchup.
type HealKey struct {
	HealerRef int
	TargetRef int
	EffectKind string
}

// HealStats accumulates healing statistics for a matchup.
type HealStats struct {
	TotalHeals  int
	TotalAmount int
	BattlesSeen map[string]bool
}

// AggregateResult holds the final aggregated data across every loaded
// battle record.
type AggregateResult struct {
	Matchups     map[MatchupKey]*MatchupStats
	HealMatchups map[HealKey]*HealStats
	TotalBattles int
}

// Aggregate processes all battle records and builds matchup statistics.
func Aggregate(records []*battlelog.BattleRecord) *AggregateResult {
	result := &AggregateResult{
		Matchups:     make(map[MatchupKey]*MatchupStats),
		HealMatchups: make(map[HealKey]*HealStats),
		TotalBattles: len(records),
	}

	for _, record := range records {
		battleID := record.BattleID
		if battleID == "" {
			battleID = record.ExportedAt.String()
		}
		processRecord(battleID, record, result)
	}

	return result
}

// processRecord walks every entry in one battle, attributing each effect
// with a non-nil TargetRef to the entry's own ActorRef.
func processRecord(battleID string, record *battlelog.BattleRecord, result *AggregateResult) {
	for _, entry := range record.Entries {
		if entry.ActorRef == nil {
			continue
		}
		attacker := *entry.ActorRef
		for _, eff := range entry.Effects {
			if eff.TargetRef == nil {
				continue
			}
			target := *eff.TargetRef

			switch {
			case damageEffectKinds[eff.Kind]:
				key := MatchupKey{AttackerRef: attacker, TargetRef: target, EffectKind: eff.Kind}
				stats, ok := result.Matchups[key]
				if !ok {
					stats = &MatchupStats{BattlesSeen: make(map[string]bool)}
					result.Matchups[key] = stats
				}
				stats.TotalHits++
				stats.TotalDamage += eff.Value
				stats.BattlesSeen[battleID] = true
			case healEffectKinds[eff.Kind]:
				key := HealKey{HealerRef: attacker, TargetRef: target, EffectKind: eff.Kind}
				stats, ok := result.HealMatchups[key]
				if !ok {
					stats = &HealStats{BattlesSeen: make(map[string]bool)}
					result.HealMatchups[key] = stats
				}
				stats.TotalHeals++
				stats.TotalAmount += eff.Value
				stats.BattlesSeen[battleID] = true
			}
		}
	}
}

// SortedKeys returns matchup keys sorted by (AttackerRef, TargetRef, EffectKind).
func SortedKeys(matchups map[MatchupKey]*MatchupStats) []MatchupKey {
	keys := make([]MatchupKey, 0, len(matchups))
	for k := range matchups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].AttackerRef != keys[j].AttackerRef {
			return keys[i].AttackerRef < keys[j].AttackerRef
		}
		if keys[i].TargetRef != keys[j].TargetRef {
			return keys[i].TargetRef < keys[j].TargetRef
		}
		return keys[i].EffectKind < keys[j].EffectKind
	})
	return keys
}

// SortedHealKeys returns heal keys sorted by (HealerRef, TargetRef, EffectKind).
func SortedHealKeys(matchups map[HealKey]*HealStats) []HealKey {
	keys := make([]HealKey, 0, len(matchups))
	for k := range matchups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].HealerRef != keys[j].HealerRef {
			return keys[i].HealerRef < keys[j].HealerRef
		}
		if keys[i].TargetRef != keys[j].TargetRef {
			return keys[i].TargetRef < keys[j].TargetRef
		}
		return keys[i].EffectKind < keys[j].EffectKind
	})
	return keys
}
