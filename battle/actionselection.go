package battle

// canonicalChannelOrder is the fixed priority order used both for the
// post-lottery fallback chain and, indirectly, via hasUsableSpell, for
// zeroing unavailable channels (spec.md §4.4).
var canonicalChannelOrder = []ActionKind{ActionPriestMagic, ActionMageMagic, ActionPhysicalAttack, ActionBreath}

// hasUsableSpell reports whether actor holds at least one charge in the
// given resource channel ("priest" or "mage").
func hasUsableSpell(actor *Actor, channel string) bool {
	for key, count := range actor.Resources {
		if key.Channel == channel && count > 0 {
			return true
		}
	}
	return false
}

// usableEnemySpecialSkills returns the ids of special skills this enemy can
// currently use: uses-per-battle not exhausted and chance roll succeeds.
// Preconditions beyond that (e.g. a status-type skill needing a valid
// target) are left to the resolver, same as every other action kind.
func usableEnemySpecialSkills(ctx *Context, actor *Actor) []uint16 {
	var usable []uint16
	for _, id := range actor.EnemySkillIDs {
		def, ok := ctx.EnemySkillDefs[id]
		if !ok {
			continue // unknown definition: skip silently (spec.md §7)
		}
		if remaining, tracked := actor.EnemySkillUsesRemaining[id]; tracked && remaining <= 0 {
			continue
		}
		if !ctx.RNG.PercentChance(def.ChancePercent) {
			continue
		}
		usable = append(usable, id)
	}
	return usable
}

// SelectActionCandidates returns an ordered, never-empty list of ActionKind
// candidates for actor's turn (spec.md §4.4).
func SelectActionCandidates(ctx *Context, actor *Actor) []ActionKind {
	if actor.Side == SideEnemy {
		if usable := usableEnemySpecialSkills(ctx, actor); len(usable) > 0 {
			return []ActionKind{ActionEnemySpecialSkill}
		}
	}

	rates := actor.ActionRates
	if actor.Snapshot.BreathDamageScore <= 0 {
		rates.Breath = 0
	}
	if !hasUsableSpell(actor, "priest") {
		rates.PriestMagic = 0
	}
	if !hasUsableSpell(actor, "mage") {
		rates.MageMagic = 0
	}

	weights := map[ActionKind]int{
		ActionPriestMagic:    rates.PriestMagic,
		ActionMageMagic:      rates.MageMagic,
		ActionPhysicalAttack: rates.Attack,
		ActionBreath:         rates.Breath,
	}

	total := 0
	for _, k := range canonicalChannelOrder {
		if w := weights[k]; w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return []ActionKind{ActionDefend}
	}

	roll := ctx.RNG.IntInRange(1, total)
	var winner ActionKind
	cumulative := 0
	for _, k := range canonicalChannelOrder {
		w := weights[k]
		if w <= 0 {
			continue
		}
		cumulative += w
		if roll <= cumulative {
			winner = k
			break
		}
	}

	winnerIdx := 0
	for i, k := range canonicalChannelOrder {
		if k == winner {
			winnerIdx = i
			break
		}
	}
	candidates := append([]ActionKind{}, canonicalChannelOrder[winnerIdx:]...)

	filtered := candidates[:0:0]
	for _, k := range candidates {
		if actionPreconditionMet(actor, k) {
			filtered = append(filtered, k)
		}
	}
	if len(filtered) == 0 {
		return []ActionKind{ActionDefend}
	}
	return filtered
}

// actionPreconditionMet checks the cheap, actor-local preconditions
// (resource/score availability) that ActionSelection is responsible for;
// target-availability failures are instead caught when the turn loop
// actually tries to resolve the action (spec.md §4.4 step 4, §4.11).
func actionPreconditionMet(actor *Actor, kind ActionKind) bool {
	switch kind {
	case ActionPriestMagic:
		return hasUsableSpell(actor, "priest")
	case ActionMageMagic:
		return hasUsableSpell(actor, "mage")
	case ActionBreath:
		return actor.Snapshot.BreathDamageScore > 0
	case ActionPhysicalAttack:
		return true
	default:
		return true
	}
}
