package battle

// RunBattle executes a full battle to completion against ctx's rosters and
// returns the finished log (spec.md §4.11). ctx must be freshly constructed
// via NewContext, with every actor's battleStart timed buffs already
// installed via ApplyBattleStartBuffs; RunBattle mutates every actor in
// ctx.Players/ctx.Enemies in place and takes ownership of ctx.Log until it
// returns.
func RunBattle(ctx *Context) *BattleLog {
	recordInitialHP(ctx)
	ctx.appendSentinel(ActionBattleStart, nil, nil)

	for i := range ctx.Enemies {
		ref := ctx.refOf(SideEnemy, i)
		ctx.appendSentinel(ActionEnemyAppear, &ref, nil)
	}

	resolvePreemptiveSpecials(ctx)

	if outcome, done := checkWipeOnly(ctx); done {
		return finish(ctx, outcome)
	}

	for ctx.Turn = 1; ctx.Turn <= MaxTurns; ctx.Turn++ {
		ctx.appendSentinel(ActionTurnStart, nil, nil)

		order := ComputeOrder(ctx)
		for _, ref := range order {
			actor, side, index, ok := ctx.find(ref)
			if !ok || !actor.IsAlive() {
				continue
			}
			takeTurn(ctx, side, index, actor)
			if ctx.allDefeated(SideEnemy) || ctx.allDefeated(SidePlayer) {
				break
			}
		}

		if ctx.allDefeated(SideEnemy) {
			return finish(ctx, OutcomeVictory)
		}
		if ctx.allDefeated(SidePlayer) {
			return finish(ctx, OutcomeDefeat)
		}
		if retreated(ctx) {
			return finishWithdraw(ctx)
		}

		RunEndOfTurn(ctx)
	}

	// Turn cap reached with neither side wiped: the battle is scored as a
	// retreat (spec.md §4.11 "turn-precedence retreat > victory > defeat"),
	// with no withdraw sentinel — that only precedes a mid-battle retreat.
	// The loop leaves ctx.Turn one past the cap, so it is reset to the last
	// turn actually played before the log records it.
	ctx.Turn = MaxTurns
	return finish(ctx, OutcomeRetreat)
}

func recordInitialHP(ctx *Context) {
	for i, a := range ctx.Players {
		ctx.Log.InitialHP.Player = append(ctx.Log.InitialHP.Player, HPSnapshot{Ref: ctx.refOf(SidePlayer, i), HP: a.CurrentHP})
	}
	for i, a := range ctx.Enemies {
		ctx.Log.InitialHP.Enemy = append(ctx.Log.InitialHP.Enemy, HPSnapshot{Ref: ctx.refOf(SideEnemy, i), HP: a.CurrentHP})
	}
}

// resolvePreemptiveSpecials resolves every actor's preemptive special
// attacks before turn 1 begins, in roster order (spec.md §4.11).
func resolvePreemptiveSpecials(ctx *Context) {
	for _, side := range []Side{SidePlayer, SideEnemy} {
		for i, a := range ctx.rosterOf(side) {
			if !a.IsAlive() {
				continue
			}
			for _, sp := range a.Effects.Combat.SpecialAttacks {
				if !sp.Preemptive || !ctx.RNG.PercentChance(sp.ChancePercent) {
					continue
				}
				executeOffensiveAction(ctx, side, i, a, ActionPhysicalAttack)
			}
		}
	}
}

// takeTurn resolves one actor's turn: action selection, resolution
// fallback, and resulting reaction dispatch (spec.md §4.11).
func takeTurn(ctx *Context, side Side, index int, actor *Actor) {
	selfRef := ctx.refOf(side, index)

	if actor.IsActionLocked(ctx.StatusDefs) {
		ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionDefend}, []Effect{{Kind: EffectLogOnly}})
		return
	}

	candidates := SelectActionCandidates(ctx, actor)
	for _, kind := range candidates {
		if resolveAction(ctx, side, index, actor, kind) {
			return
		}
	}
	// defend always succeeds; guaranteed present as the final fallback
	executeDefend(ctx, selfRef, actor)
}

// resolveAction attempts to execute kind for actor, returning false if the
// action turns out to be infeasible (no living target), in which case the
// turn loop falls through to the next candidate (spec.md §4.4 step 4,
// §4.11).
func resolveAction(ctx *Context, side Side, index int, actor *Actor, kind ActionKind) bool {
	switch kind {
	case ActionDefend:
		selfRef := ctx.refOf(side, index)
		executeDefend(ctx, selfRef, actor)
		return true
	case ActionEnemySpecialSkill:
		return executeEnemySpecialSkill(ctx, side, index, actor)
	case ActionPriestMagic:
		return executePriestMagic(ctx, side, index, actor)
	case ActionMageMagic, ActionPhysicalAttack, ActionBreath:
		return executeOffensiveAction(ctx, side, index, actor, kind)
	default:
		return false
	}
}

func executeDefend(ctx *Context, selfRef ActorRef, actor *Actor) {
	actor.GuardActive = true
	ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionDefend}, []Effect{{Kind: EffectLogOnly}})
}

// executeOffensiveAction resolves a physical, magical, or breath attack:
// pick a target, spend a charge if applicable, resolve every hit in the
// burst, log it, and dispatch the resulting reactions (spec.md §4.6, §4.7).
func executeOffensiveAction(ctx *Context, side Side, index int, actor *Actor, kind ActionKind) bool {
	if kind == ActionMageMagic && !hasUsableSpell(actor, "mage") {
		return false
	}
	targetRef, ok := SelectOffensiveTarget(ctx, actor, side)
	if !ok {
		return false
	}
	if kind == ActionMageMagic {
		spendCharge(actor, "mage")
	}

	selfRef := ctx.refOf(side, index)
	target, targetSide, targetIdx, ok := ctx.find(targetRef)
	if !ok {
		return false
	}

	dt := damageTypeForAction(kind)
	hits := actor.Snapshot.FlooredAttackCount()
	var effects []Effect
	if ctx.PendingCover != nil {
		effects = append(effects, *ctx.PendingCover)
		ctx.PendingCover = nil
	}
	var lastResult DamageResult
	killed := false
	for h := 0; h < hits; h++ {
		if !target.IsAlive() {
			break
		}
		lastResult = resolveHitByType(ctx, actor, target, h, dt)
		effects = append(effects, effectForHit(dt, targetRef, lastResult))
		if !target.IsAlive() {
			killed = true
		}
		fireHitReactions(ctx, selfRef, targetRef, targetSide, side, lastResult, dt)
		if lastResult.Parried || lastResult.Blocked {
			break
		}
	}

	ctx.appendEntry(&selfRef, ActionDeclaration{Kind: kind}, effects)

	if killed {
		killerRef := selfRef
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerSelfKilledEnemy, Subject: selfRef, SubjectSide: side})
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerAllyDefeated, Subject: targetRef, SubjectSide: targetSide, Killer: &killerRef})
	}
	_ = targetIdx
	return true
}

func resolveHitByType(ctx *Context, attacker, defender *Actor, hitIndex int, dt DamageType) DamageResult {
	switch dt {
	case DamageMagical:
		return ResolveMagicalHit(ctx, attacker, defender, hitIndex)
	case DamageBreath:
		return ResolveBreathHit(ctx, attacker, defender, hitIndex)
	default:
		return ResolvePhysicalHit(ctx, attacker, defender, hitIndex)
	}
}

func damageTypeForAction(kind ActionKind) DamageType {
	switch kind {
	case ActionMageMagic:
		return DamageMagical
	case ActionBreath:
		return DamageBreath
	default:
		return DamagePhysical
	}
}

func effectForHit(dt DamageType, target ActorRef, result DamageResult) Effect {
	kind := EffectPhysicalDamage
	switch dt {
	case DamageMagical:
		kind = EffectMagicDamage
	case DamageBreath:
		kind = EffectBreathDamage
	}
	return Effect{Kind: kind, TargetRef: &target, Value: result.Amount}
}

// fireHitReactions dispatches the per-hit reaction triggers a single
// resolved hit can provoke (spec.md §4.7).
func fireHitReactions(ctx *Context, attackerRef, targetRef ActorRef, targetSide, attackerSide Side, result DamageResult, dt DamageType) {
	if !result.Hit {
		if dt == DamagePhysical {
			DispatchReactions(ctx, ReactionEvent{Trigger: TriggerSelfEvadePhysical, Subject: targetRef, SubjectSide: targetSide, Attacker: &attackerRef})
		}
		return
	}
	switch dt {
	case DamagePhysical:
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerSelfDamagedPhysical, Subject: targetRef, SubjectSide: targetSide, Attacker: &attackerRef, DamageType: dt})
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerAllyDamagedPhysical, Subject: targetRef, SubjectSide: targetSide, Attacker: &attackerRef, DamageType: dt})
	case DamageMagical:
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerSelfDamagedMagical, Subject: targetRef, SubjectSide: targetSide, Attacker: &attackerRef, DamageType: dt})
		DispatchReactions(ctx, ReactionEvent{Trigger: TriggerAllyMagicAttack, Subject: targetRef, SubjectSide: targetSide, Attacker: &attackerRef, DamageType: dt})
	}
}

func spendCharge(actor *Actor, channel string) {
	for key, count := range actor.Resources {
		if key.Channel == channel && count > 0 {
			actor.Resources[key] = count - 1
			return
		}
	}
}

// executePriestMagic resolves a heal-oriented priest action against the
// lowest-HP ally; it is infeasible (falls through) only when no charge is
// available (spec.md §4.4, §4.5).
func executePriestMagic(ctx *Context, side Side, index int, actor *Actor) bool {
	if !hasUsableSpell(actor, "priest") {
		return false
	}
	targetRef, ok := SelectHealTarget(ctx, side, false)
	if !ok {
		return false
	}
	spendCharge(actor, "priest")

	target, _, _, _ := ctx.find(targetRef)
	heal := actor.Snapshot.MagicalHealingScore
	if heal < 1 {
		heal = 1
	}
	target.HealTo(heal)

	selfRef := ctx.refOf(side, index)
	ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionPriestMagic},
		[]Effect{{Kind: EffectMagicHeal, TargetRef: &targetRef, Value: heal}})
	return true
}

// executeEnemySpecialSkill resolves whichever enemy special skill
// usableEnemySpecialSkills selected, decrementing its uses-per-battle
// counter (spec.md §4.4, §6).
func executeEnemySpecialSkill(ctx *Context, side Side, index int, actor *Actor) bool {
	usable := usableEnemySpecialSkills(ctx, actor)
	if len(usable) == 0 {
		return false
	}
	id := usable[ctx.RNG.IntInRange(0, len(usable)-1)]
	def := ctx.EnemySkillDefs[id]

	if actor.EnemySkillUsesRemaining == nil {
		actor.EnemySkillUsesRemaining = make(map[uint16]int)
	}
	if _, tracked := actor.EnemySkillUsesRemaining[id]; !tracked {
		actor.EnemySkillUsesRemaining[id] = def.UsesPerBattle
	}
	actor.EnemySkillUsesRemaining[id]--

	selfRef := ctx.refOf(side, index)
	switch def.Type {
	case EnemySkillHeal:
		targetRef, ok := SelectHealTarget(ctx, side, false)
		if !ok {
			return false
		}
		target, _, _, _ := ctx.find(targetRef)
		heal := actor.Snapshot.MaxHP * def.HealPercent / 100
		if heal < 1 {
			heal = 1
		}
		target.HealTo(heal)
		ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionEnemySpecialSkill},
			[]Effect{{Kind: EffectEnemySpecialHeal, TargetRef: &targetRef, Value: heal}})
	case EnemySkillBuff:
		ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionEnemySpecialSkill},
			[]Effect{{Kind: EffectEnemySpecialBuff, TargetRef: &selfRef}})
	case EnemySkillStatus:
		targets := SelectStatusTargets(ctx, otherSide(side), 1)
		if len(targets) == 0 {
			return false
		}
		if ctx.RNG.PercentChance(def.StatusChancePercent) {
			if target, _, _, ok := ctx.find(targets[0]); ok {
				ApplyStatus(ctx, target, ctx.StatusDefs[def.StatusID], selfRef)
			}
		}
		ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionEnemySpecialSkill},
			[]Effect{{Kind: EffectStatusInflict, TargetRef: &targets[0], StatusID: &def.StatusID}})
	default: // EnemySkillPhysical / EnemySkillBreath
		dt := DamagePhysical
		if def.Type == EnemySkillBreath {
			dt = DamageBreath
		}
		targetRef, ok := SelectOffensiveTarget(ctx, actor, side)
		if !ok {
			return false
		}
		target, targetSide, _, _ := ctx.find(targetRef)
		hits := def.HitCount
		if hits < 1 {
			hits = 1
		}
		var effects []Effect
		if ctx.PendingCover != nil {
			effects = append(effects, *ctx.PendingCover)
			ctx.PendingCover = nil
		}
		killed := false
		for h := 0; h < hits; h++ {
			if !target.IsAlive() {
				break
			}
			scaled := *actor
			scaled.Snapshot.PhysicalAttackScore = int(float64(scaled.Snapshot.PhysicalAttackScore) * def.DamageDealtMultiplier)
			scaled.Snapshot.BreathDamageScore = int(float64(scaled.Snapshot.BreathDamageScore) * def.DamageDealtMultiplier)
			result := resolveHitByType(ctx, &scaled, target, h, dt)
			effects = append(effects, effectForHit(dt, targetRef, result))
			if !target.IsAlive() {
				killed = true
			}
			fireHitReactions(ctx, selfRef, targetRef, targetSide, side, result, dt)
			if result.Parried || result.Blocked {
				break
			}
		}
		ctx.appendEntry(&selfRef, ActionDeclaration{Kind: ActionEnemySpecialSkill}, effects)
		if killed {
			killerRef := selfRef
			DispatchReactions(ctx, ReactionEvent{Trigger: TriggerSelfKilledEnemy, Subject: selfRef, SubjectSide: side})
			DispatchReactions(ctx, ReactionEvent{Trigger: TriggerAllyDefeated, Subject: targetRef, SubjectSide: targetSide, Killer: &killerRef})
		}
	}
	return true
}

// checkWipeOnly reports whether either side is already wiped out, with no
// retreat check: used only for the preemptive-specials check before turn 1
// (spec.md §4.11 "if either side wiped out here, finalize and return").
func checkWipeOnly(ctx *Context) (Outcome, bool) {
	playersDown := ctx.allDefeated(SidePlayer)
	enemiesDown := ctx.allDefeated(SideEnemy)
	if playersDown && enemiesDown {
		return OutcomeDefeat, true // simultaneous wipe favors the harsher outcome
	}
	if enemiesDown {
		return OutcomeVictory, true
	}
	if playersDown {
		return OutcomeDefeat, true
	}
	return 0, false
}

// retreated checks enemy retreat once per turn, after every actor has acted
// (spec.md §4.11 "check enemy retreat (misc.retreatChancePercent on any
// enemy...)"): any living enemy's retreatChancePercent rolling true ends the
// battle.
func retreated(ctx *Context) bool {
	for _, la := range ctx.living(SideEnemy) {
		if pct := la.Actor.Effects.Misc.RetreatChancePercent; pct > 0 && ctx.RNG.PercentChance(pct) {
			return true
		}
	}
	return false
}

func finish(ctx *Context, outcome Outcome) *BattleLog {
	ctx.Log.Outcome = outcome
	ctx.Log.Turns = ctx.Turn

	kind := ActionVictory
	switch outcome {
	case OutcomeDefeat:
		kind = ActionDefeat
	case OutcomeRetreat:
		kind = ActionRetreat
	}
	ctx.appendSentinel(kind, nil, nil)
	return ctx.Log
}

// finishWithdraw ends the battle via a mid-battle enemy retreat, which logs
// a withdraw sentinel immediately before the retreat sentinel (spec.md
// §4.11: "log.append(withdraw); log.append(retreat)"). The turn-cap path in
// RunBattle calls finish directly and skips the withdraw sentinel.
func finishWithdraw(ctx *Context) *BattleLog {
	ctx.appendSentinel(ActionWithdraw, nil, nil)
	return finish(ctx, OutcomeRetreat)
}
