package battle

// SelectOffensiveTarget picks the enemy (or side-appropriate) target for an
// attacking actor's offensive action (spec.md §4.5). It honors a forced
// sacrifice override, protected/hostile filters, targetingWeight-weighted
// draw, and cover redirection, returning ok=false only when the opposing
// side has no living actor left.
func SelectOffensiveTarget(ctx *Context, attacker *Actor, attackerSide Side) (ActorRef, bool) {
	defenderSide := otherSide(attackerSide)

	if forced := ctx.SacrificeTargets[defenderSide]; forced != nil {
		if target, _, _, ok := ctx.find(*forced); ok && target.IsAlive() {
			ctx.SacrificeTargets[defenderSide] = nil
			return *forced, true
		}
		ctx.SacrificeTargets[defenderSide] = nil
	}

	pool := ctx.living(defenderSide)
	if len(pool) == 0 {
		return 0, false
	}

	pool = applyTargetFilters(ctx, attacker, pool)
	if len(pool) == 0 {
		pool = ctx.living(defenderSide)
	}

	chosen := weightedDraw(ctx, pool)
	original := ctx.refOf(chosen.Side, chosen.Index)
	chosen = applyCoverRedirect(ctx, chosen, defenderSide, original)
	return ctx.refOf(chosen.Side, chosen.Index), true
}

// otherSide returns the side opposite to s.
func otherSide(s Side) Side {
	if s == SidePlayer {
		return SideEnemy
	}
	return SidePlayer
}

// applyTargetFilters narrows pool by the attacker's protected/hostile target
// lists (spec.md §4.5): a protected list, if non-empty, restricts the pool to
// only those ids; a hostile list, if non-empty, excludes those ids. Both may
// combine; an empty result signals "fall back to the unfiltered pool".
func applyTargetFilters(ctx *Context, attacker *Actor, pool []livingActor) []livingActor {
	protected := attacker.Effects.Misc.PartyProtectedTargets
	hostile := attacker.Effects.Misc.PartyHostileTargets
	if len(protected) == 0 && len(hostile) == 0 {
		return pool
	}

	out := pool[:0:0]
	for _, la := range pool {
		id := memberID(la.Actor)
		if len(protected) > 0 && !containsInt(protected, id) {
			continue
		}
		if len(hostile) > 0 && containsInt(hostile, id) {
			continue
		}
		out = append(out, la)
	}
	return out
}

func memberID(a *Actor) int {
	if a.Side == SidePlayer {
		return a.PartyMemberID
	}
	return a.EnemyMasterID
}

func containsInt(list []int, v int) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

// weightedDraw picks one livingActor from pool, weighted by each candidate's
// TargetingWeight (default 1.0 when unset by the stat compiler).
func weightedDraw(ctx *Context, pool []livingActor) livingActor {
	if len(pool) == 1 {
		return pool[0]
	}
	total := 0.0
	weights := make([]float64, len(pool))
	for i, la := range pool {
		w := la.Actor.Effects.Misc.TargetingWeight
		if w <= 0 {
			w = 1.0
		}
		weights[i] = w
		total += w
	}
	if total <= 0 {
		return pool[ctx.RNG.IntInRange(0, len(pool)-1)]
	}
	target := float64(ctx.RNG.IntInRange(1, int(total*1000))) / 1000.0
	cumulative := 0.0
	for i, w := range weights {
		cumulative += w
		if target <= cumulative {
			return pool[i]
		}
	}
	return pool[len(pool)-1]
}

// applyCoverRedirect checks whether a front-row ally on the defending side
// intercepts an attack meant for a back-row ally (spec.md §4.5 "Cover").
// CoverRowsBehind must be set on a candidate and, if CoverCondition requires
// it, the candidate's own HP ratio must satisfy the gate. A successful
// redirect stashes a cover Effect on ctx, bound to the cover actor and the
// original target, for the caller to fold into the action's effects list.
func applyCoverRedirect(ctx *Context, chosen livingActor, defenderSide Side, original ActorRef) livingActor {
	if chosen.Actor.FormationSlot <= 1 {
		return chosen // front row already, nothing to cover
	}
	roster := ctx.rosterOf(defenderSide)
	for i, a := range roster {
		if !a.IsAlive() || i == chosen.Index {
			continue
		}
		if a.FormationSlot >= chosen.Actor.FormationSlot {
			continue
		}
		if !a.Effects.Misc.CoverRowsBehind {
			continue
		}
		if a.Effects.Misc.CoverCondition == CoverConditionAllyHPBelow50 && a.HPRatio() >= 0.5 {
			continue
		}
		coverRef := ctx.refOf(defenderSide, i)
		ctx.PendingCover = &Effect{
			Kind:      EffectCover,
			TargetRef: &coverRef,
			Extra:     map[string]any{"originalTarget": original},
		}
		return livingActor{defenderSide, i, a}
	}
	return chosen
}

// SelectHealTarget picks the lowest-HP-ratio living ally for a healer
// (spec.md §4.5 "Healing target selection"). If requireHalfHP is set and no
// ally is below 50% HP, it returns ok=false (the caster should not heal).
func SelectHealTarget(ctx *Context, side Side, requireHalfHP bool) (ActorRef, bool) {
	pool := ctx.living(side)
	if len(pool) == 0 {
		return 0, false
	}
	best := pool[0]
	for _, la := range pool[1:] {
		if la.Actor.HPRatio() < best.Actor.HPRatio() {
			best = la
		}
	}
	if requireHalfHP && best.Actor.HPRatio() >= 0.5 {
		return 0, false
	}
	return ctx.refOf(best.Side, best.Index), true
}

// SelectStatusTargets draws up to n distinct living actors from side without
// replacement, for area status-inflicting actions (spec.md §4.5 "Status
// target selection": bounded, cross-side capable, no replacement).
func SelectStatusTargets(ctx *Context, side Side, n int) []ActorRef {
	pool := ctx.living(side)
	if n > len(pool) {
		n = len(pool)
	}
	refs := make([]ActorRef, 0, n)
	remaining := append([]livingActor{}, pool...)
	for i := 0; i < n; i++ {
		idx := ctx.RNG.IntInRange(0, len(remaining)-1)
		picked := remaining[idx]
		refs = append(refs, ctx.refOf(picked.Side, picked.Index))
		remaining[idx] = remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
	}
	return refs
}
