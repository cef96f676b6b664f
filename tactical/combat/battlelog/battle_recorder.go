// Package battlelog renders a finished battle.BattleLog into a
// human- and machine-readable record for post-combat analysis. It never
// mutates or re-derives battle outcomes; everything here is read-only
// projection of the engine's own append-only log.
package battlelog

import (
	"fmt"
	"time"

	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
)

// BattleRecord is the root structure exported to JSON for post-combat
// analysis (grounded on tactical/combat/battlelog/battle_recorder.go's
// BattleRecord, adapted from ecs.EntityID/squads.CombatLog to
// battle.ActorRef/battle.BattleLog).
type BattleRecord struct {
	BattleID   string    `json:"battle_id"`
	ExportedAt time.Time `json:"exported_at"`
	Outcome    string    `json:"outcome"`
	Turns      int       `json:"turns"`
	Entries    []EntryRecord `json:"entries"`
	Summary    *BattleSummary `json:"summary"`
}

// EntryRecord is one rendered ActionEntry.
type EntryRecord struct {
	Turn        int            `json:"turn"`
	ActorRef    *int           `json:"actor_ref,omitempty"`
	Action      string         `json:"action"`
	Effects     []EffectRecord `json:"effects,omitempty"`
}

// EffectRecord is one rendered Effect.
type EffectRecord struct {
	Kind      string `json:"kind"`
	TargetRef *int   `json:"target_ref,omitempty"`
	Value     int    `json:"value,omitempty"`
	StatusID  *int   `json:"status_id,omitempty"`
}

// outcomeName renders a battle.Outcome the way the wire contract names it
// (spec.md §3, §6).
func outcomeName(o battle.Outcome) string {
	switch o {
	case battle.OutcomeVictory:
		return "victory"
	case battle.OutcomeDefeat:
		return "defeat"
	case battle.OutcomeRetreat:
		return "retreat"
	default:
		return "unknown"
	}
}

// RenderBattleRecord converts a finished battle.BattleLog into a
// BattleRecord ready for JSON export or summarization. battleID should be
// caller-supplied (e.g. a UUID or sequence number) since the engine itself
// never stamps one (spec.md §5: two concurrent battles share no state, so
// identity is the caller's concern, not the core's).
func RenderBattleRecord(battleID string, log *battle.BattleLog) *BattleRecord {
	record := &BattleRecord{
		BattleID:   battleID,
		ExportedAt: time.Now(),
		Outcome:    outcomeName(log.Outcome),
		Turns:      log.Turns,
		Entries:    make([]EntryRecord, 0, len(log.Entries)),
	}
	for _, e := range log.Entries {
		record.Entries = append(record.Entries, renderEntry(e))
	}
	record.Summary = GenerateBattleSummary(log)
	return record
}

func renderEntry(e battle.ActionEntry) EntryRecord {
	rec := EntryRecord{
		Turn:   e.Turn,
		Action: actionKindName(e.Declaration.Kind),
	}
	if e.ActorRef != nil {
		v := int(*e.ActorRef)
		rec.ActorRef = &v
	}
	for _, eff := range e.Effects {
		rec.Effects = append(rec.Effects, renderEffect(eff))
	}
	return rec
}

func renderEffect(eff battle.Effect) EffectRecord {
	rec := EffectRecord{Kind: effectKindName(eff.Kind), Value: eff.Value}
	if eff.TargetRef != nil {
		v := int(*eff.TargetRef)
		rec.TargetRef = &v
	}
	if eff.StatusID != nil {
		v := int(*eff.StatusID)
		rec.StatusID = &v
	}
	return rec
}

// generateBattleFilename builds a stable, collision-resistant filename from
// a record (grounded on battle_export.go's generateBattleFilename).
func generateBattleFilename(record *BattleRecord) string {
	if record.BattleID != "" {
		return record.BattleID + ".json"
	}
	return fmt.Sprintf("battle_%s.json", record.ExportedAt.Format("20060102_150405.000"))
}
