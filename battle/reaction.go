package battle

// ReactionEvent describes a single moment that may provoke reactions
// (spec.md §4.7). Not every field is populated for every trigger.
type ReactionEvent struct {
	Trigger    ReactionTrigger
	Subject    ActorRef // the actor the event happened to
	SubjectSide Side
	Attacker   *ActorRef // who dealt the damage/attack, if any
	Killer     *ActorRef // who landed the killing blow, if any
	DamageType DamageType
}

// DispatchReactions evaluates every reaction definition on actors eligible
// for ev's trigger and resolves the ones that fire (spec.md §4.7). Chain
// suppression prevents damage dealt by a reaction (or follow-up) from itself
// provoking further reactions; rescue is evaluated independently and is
// never suppressed by the chain flag.
func DispatchReactions(ctx *Context, ev ReactionEvent) {
	if ev.Trigger == TriggerAllyDefeated {
		resolveRescue(ctx, ev)
	}

	if ctx.reactionChainActive {
		return
	}

	candidates := reactionCandidates(ctx, ev)
	for _, c := range candidates {
		for i := range c.actor.Effects.Combat.Reactions {
			def := c.actor.Effects.Combat.Reactions[i]
			if def.Trigger != ev.Trigger {
				continue
			}
			resolveReaction(ctx, c.side, c.index, c.actor, def, ev)
		}
	}
}

type reactionCandidate struct {
	side  Side
	index int
	actor *Actor
}

// reactionCandidates returns the actors eligible to react to ev, per
// trigger semantics: self-triggers react only as the subject; ally-triggers
// react as every living ally on the subject's side other than the subject
// itself (spec.md §4.7).
func reactionCandidates(ctx *Context, ev ReactionEvent) []reactionCandidate {
	switch ev.Trigger {
	case TriggerSelfDamagedPhysical, TriggerSelfDamagedMagical, TriggerSelfEvadePhysical, TriggerSelfKilledEnemy:
		if actor, side, idx, ok := ctx.find(ev.Subject); ok && actor.IsAlive() {
			return []reactionCandidate{{side, idx, actor}}
		}
		return nil
	default: // ally-scoped triggers
		var out []reactionCandidate
		for _, la := range ctx.living(ev.SubjectSide) {
			if ctx.refOf(la.Side, la.Index) == ev.Subject {
				continue
			}
			out = append(out, reactionCandidate{la.Side, la.Index, la.Actor})
		}
		return out
	}
}

// resolveReaction rolls def's chance and, on success, resolves a scaled
// attack (or martial follow-up) against the target selected by def's
// TargetMode (spec.md §4.7).
func resolveReaction(ctx *Context, side Side, index int, actor *Actor, def ReactionDefinition, ev ReactionEvent) {
	if !ctx.RNG.PercentChance(def.BaseChancePercent) {
		return
	}

	targetRef, ok := resolveReactionTarget(ctx, side, def.TargetMode, ev)
	if !ok {
		return
	}
	target, _, _, ok := ctx.find(targetRef)
	if !ok || !target.IsAlive() {
		return
	}

	ctx.reactionChainActive = true
	defer func() { ctx.reactionChainActive = false }()

	scaled := scaleActorForReaction(actor, def)
	result := resolveHit(ctx, &scaled, target, 0, def.DamageType)

	kind := EffectReactionAttack
	if def.IsMartialFollowUp {
		kind = EffectFollowUp
	}
	selfRef := ctx.refOf(side, index)
	effects := []Effect{{Kind: kind, TargetRef: &targetRef, Value: result.Amount}}
	ctx.appendEntry(&selfRef, ActionDeclaration{Kind: actionKindForDamage(def.DamageType)}, effects)
}

// scaleActorForReaction returns a value copy of actor with its snapshot
// scaled by the reaction definition's multipliers, so the shared damage
// pipeline can resolve the reaction attack without mutating the source actor
// (spec.md §4.7: reactions deal scaled, not full, damage).
func scaleActorForReaction(actor *Actor, def ReactionDefinition) Actor {
	scaled := *actor
	snap := actor.Snapshot
	if def.AttackCountMultiplier > 0 {
		snap.AttackCount *= def.AttackCountMultiplier
	}
	if def.CriticalChancePercentMultiplier > 0 {
		snap.CriticalChancePercent = int(float64(snap.CriticalChancePercent) * def.CriticalChancePercentMultiplier)
	}
	if def.AccuracyMultiplier > 0 {
		snap.HitScore = int(float64(snap.HitScore) * def.AccuracyMultiplier)
	}
	scaled.Snapshot = snap
	return scaled
}

func actionKindForDamage(dt DamageType) ActionKind {
	switch dt {
	case DamageMagical:
		return ActionMageMagic
	case DamageBreath:
		return ActionBreath
	default:
		return ActionPhysicalAttack
	}
}

// resolveReactionTarget maps a ReactionTargetMode to a concrete ref.
func resolveReactionTarget(ctx *Context, reactorSide Side, mode ReactionTargetMode, ev ReactionEvent) (ActorRef, bool) {
	switch mode {
	case ReactionTargetAttacker:
		if ev.Attacker != nil {
			return *ev.Attacker, true
		}
		return 0, false
	case ReactionTargetKiller:
		if ev.Killer != nil {
			return *ev.Killer, true
		}
		return 0, false
	default: // ReactionTargetRandomEnemy
		pool := ctx.living(otherSide(reactorSide))
		if len(pool) == 0 {
			return 0, false
		}
		picked := pool[ctx.RNG.IntInRange(0, len(pool)-1)]
		return ctx.refOf(picked.Side, picked.Index), true
	}
}

// resolveRescue checks every living ally on the defeated actor's side for a
// rescue capability and applies the first one that fires, reviving the
// fallen actor; rescue runs independently of, and never suppresses, the
// normal allyDefeated reaction pass (spec.md §4.7 "Rescue").
func resolveRescue(ctx *Context, ev ReactionEvent) {
	fallen, side, _, ok := ctx.find(ev.Subject)
	if !ok || fallen.IsAlive() {
		return
	}
	for _, la := range ctx.living(side) {
		for _, rc := range la.Actor.Effects.Resurrection.RescueCapabilities {
			if !rescueEligible(la.Actor, rc) {
				continue
			}
			if !rc.Guaranteed && !ctx.RNG.PercentChance(rc.ChancePercent) {
				continue
			}
			hp := fallen.Snapshot.MaxHP * rc.RevivePercentOfMaxHP / 100
			if hp < 1 {
				hp = 1
			}
			fallen.CurrentHP = 0
			fallen.HealTo(hp)
			rescuerRef := ctx.refOf(la.Side, la.Index)
			fallenRef := ev.Subject
			ctx.appendEntry(&rescuerRef, ActionDeclaration{Kind: ActionPriestMagic},
				[]Effect{{Kind: EffectRescue, TargetRef: &fallenRef, Value: hp}})
			return
		}
	}
}

func rescueEligible(rescuer *Actor, rc RescueCapability) bool {
	if rc.RequiresPriestMagic && !hasUsableSpell(rescuer, "priest") {
		return false
	}
	return true
}
