package battle

// ApplyStatus applies def to actor, honoring stacking rules: a non-stackable
// status already present is refreshed to the longer of its current and new
// duration; a stackable status is appended as a new instance, each ticking
// and expiring independently (spec.md §4.8).
func ApplyStatus(ctx *Context, actor *Actor, def StatusEffectDefinition, source ActorRef) {
	if !def.Stackable {
		for i := range actor.Statuses {
			if actor.Statuses[i].ID == def.ID {
				if def.DurationTurns > actor.Statuses[i].RemainingTurns {
					actor.Statuses[i].RemainingTurns = def.DurationTurns
				}
				return
			}
		}
	}
	actor.Statuses = append(actor.Statuses, StatusEffect{
		ID:             def.ID,
		RemainingTurns: def.DurationTurns,
		Source:         source,
		StackValue:     1,
	})
}

// TickStatuses advances every active status on actor by one turn: applies
// tick damage, decrements remaining duration, and removes any status that
// has expired, logging an expiry effect for each (spec.md §4.8, §4.10 step 6).
func TickStatuses(ctx *Context, actorRef ActorRef, actor *Actor, defs map[uint8]StatusEffectDefinition) {
	kept := actor.Statuses[:0]
	for _, st := range actor.Statuses {
		def, ok := defs[st.ID]
		if !ok {
			continue // unknown definition: drop silently
		}
		if def.TickDamagePercent > 0 && actor.IsAlive() {
			dmg := int(float64(actor.Snapshot.MaxHP) * def.TickDamagePercent / 100.0)
			if dmg < 1 {
				dmg = 1
			}
			actor.ApplyDamage(dmg)
			ctx.appendEntry(&actorRef, ActionDeclaration{Kind: ActionTurnStart},
				[]Effect{{Kind: EffectDamageSelf, Value: dmg, StatusID: &st.ID}})
		}
		st.RemainingTurns--
		if st.RemainingTurns > 0 {
			kept = append(kept, st)
			continue
		}
		id := st.ID
		ctx.appendEntry(&actorRef, ActionDeclaration{Kind: ActionTurnStart},
			[]Effect{{Kind: EffectStatusExpire, StatusID: &id}})
	}
	actor.Statuses = kept
}
