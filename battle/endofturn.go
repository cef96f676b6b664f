package battle

// RunEndOfTurn executes the seven ordered end-of-turn operations for each
// side in turn, players first (spec.md §4.10): party heal, self
// heal/damage, spell-charge recovery, auto-resurrection, necromancer revive,
// status/buff ticks, and guard reset. Order matters: a party heal can save
// an actor that a self-damage tick would otherwise finish off this same
// turn, and auto-resurrection runs after self-damage but before status tick
// damage, so an actor felled by a status tick is first rolled for
// resurrection at the next turn's end.
func RunEndOfTurn(ctx *Context) {
	for _, side := range []Side{SidePlayer, SideEnemy} {
		runPartyHeal(ctx, side)
		runSelfHealDamage(ctx, side)
		runSpellChargeRecovery(ctx, side)
		runAutoResurrection(ctx, side)
		runNecromancerRevive(ctx, side)
		runStatusAndBuffTicks(ctx, side)
		runGuardReset(ctx, side)
	}
}

// runPartyHeal applies each living actor's EndOfTurnHealingPercent to every
// ally on their side (spec.md §4.10 step 1).
func runPartyHeal(ctx *Context, side Side) {
	for _, la := range ctx.living(side) {
		pct := la.Actor.Effects.Misc.EndOfTurnHealingPercent
		if pct <= 0 {
			continue
		}
		selfRef := ctx.refOf(la.Side, la.Index)
		for _, ally := range ctx.living(side) {
			heal := int(float64(ally.Actor.Snapshot.MaxHP) * pct / 100.0)
			if heal <= 0 {
				continue
			}
			ally.Actor.HealTo(heal)
			allyRef := ctx.refOf(ally.Side, ally.Index)
			ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionTurnStart},
				[]Effect{{Kind: EffectHealParty, TargetRef: &allyRef, Value: heal}})
		}
	}
}

// runSelfHealDamage applies each living actor's EndOfTurnSelfHPPercent to
// itself: positive heals, negative damages (spec.md §4.10 step 2).
func runSelfHealDamage(ctx *Context, side Side) {
	for _, la := range ctx.living(side) {
		pct := la.Actor.Effects.Misc.EndOfTurnSelfHPPercent
		if pct == 0 {
			continue
		}
		ref := ctx.refOf(la.Side, la.Index)
		amount := int(float64(la.Actor.Snapshot.MaxHP) * pct / 100.0)
		if amount > 0 {
			la.Actor.HealTo(amount)
			ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart}, []Effect{{Kind: EffectHealSelf, Value: amount}})
		} else if amount < 0 {
			la.Actor.ApplyDamage(-amount)
			ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart}, []Effect{{Kind: EffectDamageSelf, Value: -amount}})
		}
	}
}

// runSpellChargeRecovery evaluates each living actor's per-turn charge
// recovery rolls and periodic charge modifiers (spec.md §4.10 step 3).
func runSpellChargeRecovery(ctx *Context, side Side) {
	for _, la := range ctx.living(side) {
		actor := la.Actor
		ref := ctx.refOf(la.Side, la.Index)
		for _, cr := range actor.Effects.Spell.ChargeRecoveries {
			if !ctx.RNG.PercentChance(cr.BaseChancePercent) {
				continue
			}
			if actor.Resources == nil {
				actor.Resources = make(map[ResourceKey]int)
			}
			actor.Resources[cr.Resource]++
			ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart},
				[]Effect{{Kind: EffectSpellChargeRecover, Value: 1}})
		}
		for i, cm := range actor.Effects.Spell.ChargeModifiers {
			if actor.SpellRegenUsed == nil {
				actor.SpellRegenUsed = make(map[uint16]int)
			}
			key := uint16(i)
			if cm.Interval <= 0 || ctx.Turn%cm.Interval != 0 {
				continue
			}
			if actor.SpellRegenUsed[key] >= cm.MaxTriggers {
				continue
			}
			if actor.Resources == nil {
				actor.Resources = make(map[ResourceKey]int)
			}
			next := actor.Resources[cm.Resource] + cm.Amount
			if cm.Cap > 0 && next > cm.Cap {
				next = cm.Cap
			}
			actor.Resources[cm.Resource] = next
			actor.SpellRegenUsed[key]++
			ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart},
				[]Effect{{Kind: EffectSpellChargeRecover, Value: cm.Amount}})
		}
	}
}

// runAutoResurrection rolls every ResurrectionActive entry against each
// currently-defeated actor on side (spec.md §4.10 step 4).
func runAutoResurrection(ctx *Context, side Side) {
	roster := ctx.rosterOf(side)
	for i, actor := range roster {
		if actor.IsAlive() {
			continue
		}
		for entryIdx, active := range actor.Effects.Resurrection.Actives {
			if actor.ActiveResurrectionTriggersUsed == nil {
				actor.ActiveResurrectionTriggersUsed = make(map[int]int)
			}
			if active.MaxTriggers > 0 && actor.ActiveResurrectionTriggersUsed[entryIdx] >= active.MaxTriggers {
				continue
			}
			if !ctx.RNG.PercentChance(active.ChancePercent) {
				continue
			}
			hp := resurrectionHP(actor, active)
			actor.HealTo(hp)
			actor.ActiveResurrectionTriggersUsed[entryIdx]++
			ref := ctx.refOf(side, i)
			ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart}, []Effect{{Kind: EffectResurrection, Value: hp}})
			break
		}
	}
}

// resurrectionHP returns the HP an auto-resurrection entry revives to:
// HPScalePercent of MaxHP when set, otherwise a flat 5% (spec.md §4.10 step 4).
func resurrectionHP(actor *Actor, active ResurrectionActive) int {
	pct := active.HPScalePercent
	if pct <= 0 {
		pct = 5
	}
	hp := actor.Snapshot.MaxHP * pct / 100
	if hp < 1 {
		hp = 1
	}
	return hp
}

// runNecromancerRevive revives one defeated actor on side, at most once
// every NecromancerInterval turns, if any living actor on that side carries
// a non-zero NecromancerInterval (spec.md §4.10 step 5).
func runNecromancerRevive(ctx *Context, side Side) {
	interval := 0
	for _, la := range ctx.living(side) {
		if v := la.Actor.Effects.Resurrection.NecromancerInterval; v > 0 {
			interval = v
			break
		}
	}
	if interval <= 0 {
		return
	}
	if ctx.necromancerTurnCounter == nil {
		ctx.necromancerTurnCounter = make(map[Side]int)
	}
	ctx.necromancerTurnCounter[side]++
	if ctx.necromancerTurnCounter[side] < interval {
		return
	}
	ctx.necromancerTurnCounter[side] = 0

	roster := ctx.rosterOf(side)
	for i, actor := range roster {
		if actor.IsAlive() {
			continue
		}
		hp := actor.Snapshot.MaxHP / 2
		if hp < 1 {
			hp = 1
		}
		actor.HealTo(hp)
		ref := ctx.refOf(side, i)
		ctx.appendEntry(&ref, ActionDeclaration{Kind: ActionTurnStart}, []Effect{{Kind: EffectNecromancer, Value: hp}})
		return
	}
}

// runStatusAndBuffTicks ticks status effects and everyTurn timed buffs for
// every living actor on side (spec.md §4.10 step 6).
func runStatusAndBuffTicks(ctx *Context, side Side) {
	roster := ctx.rosterOf(side)
	for i, actor := range roster {
		if !actor.IsAlive() {
			continue
		}
		ref := ctx.refOf(side, i)
		TickStatuses(ctx, ref, actor, ctx.StatusDefs)
		ReapplyEveryTurnBuffs(ctx, ref, actor)
	}
}

// runGuardReset clears guard state for every actor on side (spec.md §4.10
// step 7); this runs even for defeated actors so a revived actor starts
// clean.
func runGuardReset(ctx *Context, side Side) {
	for _, actor := range ctx.rosterOf(side) {
		actor.ResetGuard()
	}
}
