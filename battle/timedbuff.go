package battle

// ApplyTimedBuff installs def on actor for its BaseDuration, immediately
// applying its static StatModifiers (spec.md §4.9). Additive aggregators
// (HitScoreAdditivePerTurn etc.) are applied separately each matching turn
// by ReapplyEveryTurnBuffs.
func ApplyTimedBuff(actor *Actor, def *TimedBuffDefinition) {
	applyStatModifiers(&actor.Snapshot, def.StatModifiers)
	actor.TimedBuffs = append(actor.TimedBuffs, ActiveTimedBuff{
		Def:            def,
		RemainingTurns: def.BaseDuration,
		appliedMods:    def.StatModifiers,
	})
}

// ApplyBattleStartBuffs installs every battleStart-triggered timed buff on
// actor (spec.md §4.9, called once before turn 1).
func ApplyBattleStartBuffs(actor *Actor, defs []*TimedBuffDefinition) {
	for _, def := range defs {
		if def.Trigger == TimedBuffBattleStart {
			ApplyTimedBuff(actor, def)
		}
	}
}

// ReapplyEveryTurnBuffs re-applies the additive-aggregator portion of every
// active everyTurn buff on actor, then ticks its remaining duration down,
// expiring (and exactly reversing) any buff that runs out (spec.md §4.9,
// §4.10 step 6).
func ReapplyEveryTurnBuffs(ctx *Context, actorRef ActorRef, actor *Actor) {
	kept := actor.TimedBuffs[:0]
	for _, buf := range actor.TimedBuffs {
		if buf.Def.Trigger == TimedBuffEveryTurn {
			extra := StatModifierSet{
				HitScore:              buf.Def.HitScoreAdditivePerTurn,
				AttackCount:           buf.Def.AttackCountPercentPerTurn * float64(actor.Snapshot.AttackCount) / 100.0,
				PhysicalAttackScore:   int(float64(actor.Snapshot.PhysicalAttackScore) * buf.Def.AttackPercentPerTurn / 100.0),
				PhysicalDefenseScore:  int(float64(actor.Snapshot.PhysicalDefenseScore) * buf.Def.DefensePercentPerTurn / 100.0),
			}
			applyStatModifiers(&actor.Snapshot, extra)
			buf.appliedMods = sumMods(buf.appliedMods, extra)
		}

		buf.RemainingTurns--
		if buf.RemainingTurns > 0 {
			kept = append(kept, buf)
			continue
		}
		applyStatModifiers(&actor.Snapshot, buf.appliedMods.negate())
		id := uint16(buf.Def.ID)
		ctx.appendEntry(&actorRef, ActionDeclaration{Kind: ActionTurnStart},
			[]Effect{{Kind: EffectBuffExpire, Value: int(id)}})
	}
	actor.TimedBuffs = kept
}

func sumMods(a, b StatModifierSet) StatModifierSet {
	return StatModifierSet{
		MaxHP:                 a.MaxHP + b.MaxHP,
		PhysicalAttackScore:   a.PhysicalAttackScore + b.PhysicalAttackScore,
		MagicalAttackScore:    a.MagicalAttackScore + b.MagicalAttackScore,
		PhysicalDefenseScore:  a.PhysicalDefenseScore + b.PhysicalDefenseScore,
		MagicalDefenseScore:   a.MagicalDefenseScore + b.MagicalDefenseScore,
		HitScore:              a.HitScore + b.HitScore,
		EvasionScore:          a.EvasionScore + b.EvasionScore,
		CriticalChancePercent: a.CriticalChancePercent + b.CriticalChancePercent,
		AttackCount:           a.AttackCount + b.AttackCount,
		AdditionalDamageScore: a.AdditionalDamageScore + b.AdditionalDamageScore,
		BreathDamageScore:     a.BreathDamageScore + b.BreathDamageScore,
	}
}
