package battle

import "math"

// actionOrderShuffleSpeed is the sentinel speed assigned to an actor whose
// skill effects request shuffled turn order (spec.md §4.6.1).
const actionOrderShuffleSpeed = 5000.0

// ComputeOrder computes every living actor's speed and a stable tiebreaker
// for this turn's action order (spec.md §4.6.1). firstStrike actors are
// ordered ahead of every other actor regardless of speed; actionOrderShuffle
// replaces an actor's speed with the sentinel value.
func ComputeOrder(ctx *Context) []ActorRef {
	type entry struct {
		ref   ActorRef
		speed float64
		tie   int
		first bool
	}
	var entries []entry
	tie := 0
	for _, side := range []Side{SidePlayer, SideEnemy} {
		for i, a := range ctx.rosterOf(side) {
			if !a.IsAlive() {
				continue
			}
			speed := float64(a.Agility) * ctx.RNG.SpeedMultiplier(a.Luck)
			if a.Effects.Combat.ActionOrderShuffle {
				speed = actionOrderShuffleSpeed
			}
			if mult := a.Effects.Combat.ActionOrderMultiplier; mult != 0 {
				speed *= mult
			}
			ref := ctx.refOf(side, i)
			entries = append(entries, entry{ref, speed, tie, a.Effects.Combat.FirstStrike})
			ctx.ActionOrderSnapshot[ref] = OrderInfo{Speed: speed, Tiebreaker: tie}
			tie++
		}
	}

	// Stable sort: first-strike actors first (by descending speed within that
	// group), then everyone else by descending speed; ties broken by the
	// order actors were enumerated in (player roster before enemy roster,
	// array order within each), matching the deterministic-tiebreak invariant
	// (spec.md §4.6.1).
	entryBefore := func(a, b entry) bool {
		if a.first != b.first {
			return a.first
		}
		if a.speed != b.speed {
			return a.speed > b.speed
		}
		return a.tie < b.tie
	}
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entryBefore(entries[j], entries[j-1]); j-- {
			entries[j-1], entries[j] = entries[j], entries[j-1]
		}
	}

	refs := make([]ActorRef, len(entries))
	for i, e := range entries {
		refs[i] = e.ref
	}
	return refs
}

// specHitIndex converts the engine's 0-origin hitIndex to spec.md §4.6's
// 1-origin burst position.
func specHitIndex(hitIndex int) int {
	return hitIndex + 1
}

// hitAccuracyModifier is the multiplicative per-hit accuracy factor folded
// into rawChance (spec.md §4.6.2): full accuracy for the first two hits of a
// burst, 0.6 at the third, decaying by a further 10% per hit after that.
func hitAccuracyModifier(hitIndex int) float64 {
	idx := specHitIndex(hitIndex)
	if idx <= 2 {
		return 1.0
	}
	if idx == 3 {
		return 0.6
	}
	return 0.6 * math.Pow(0.9, float64(idx-3))
}

// damageModifier is the multiplicative multi-hit damage decay (spec.md
// §4.6.3): full damage for the first two hits, then 0.9 per hit after that.
func damageModifier(hitIndex int) float64 {
	idx := specHitIndex(hitIndex)
	if idx <= 2 {
		return 1.0
	}
	return math.Pow(0.9, float64(idx-2))
}

// ComputeHitChance returns the percent chance [0,100] that attacker's attack
// against defender, at the given hit index (0 = first hit), connects
// (spec.md §4.6.2). accuracyMultiplier has no separate field at this layer:
// reaction.go's scaleActorForReaction already bakes a reaction's own
// AccuracyMultiplier into the attacker's HitScore before calling in here, so
// an ordinary action's implicit multiplier is 1.0.
func ComputeHitChance(ctx *Context, attacker, defender *Actor, hitIndex int) int {
	attackerRoll := ctx.RNG.StatMultiplier(attacker.Luck)
	defenderRoll := ctx.RNG.StatMultiplier(defender.Luck)

	aScore := float64(attacker.Snapshot.HitScore)
	dScore := float64(defender.Snapshot.EvasionScore)
	baseRatio := 0.5
	if sum := aScore + dScore; sum != 0 {
		baseRatio = aScore / sum
	}
	randomFactor := 1.0
	if defenderRoll != 0 {
		randomFactor = attackerRoll / defenderRoll
	}
	luckModifier := float64(attacker.Luck-defender.Luck) * 0.002

	rawChance := (baseRatio*randomFactor + luckModifier) * hitAccuracyModifier(hitIndex)

	finalChance := rawChance
	if finalChance < 0.05 {
		finalChance = 0.05
	}
	if finalChance > 0.95 {
		finalChance = 0.95
	}

	pct := int(math.Round(finalChance * 100))
	if cap := defender.Effects.Misc.DodgeCapMax; cap > 0 {
		if minHit := 100 - cap; pct < minHit {
			pct = minHit
		}
	}
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// DamageResult is the outcome of a single resolved hit.
type DamageResult struct {
	Hit      bool
	Critical bool
	Amount   int
	Parried  bool
	Blocked  bool
	Evaded   bool
}

// ResolvePhysicalHit resolves one physical-damage hit from attacker against
// defender, including crit, initial-strike bonus, per-channel multipliers,
// barrier/guard absorption, and the post-hit parry/shield-block checks
// (spec.md §4.6.2, §4.6.3, §4.6.4).
func ResolvePhysicalHit(ctx *Context, attacker, defender *Actor, hitIndex int) DamageResult {
	return resolveHit(ctx, attacker, defender, hitIndex, DamagePhysical)
}

// ResolveMagicalHit resolves one magical-damage hit, identical in shape to
// ResolvePhysicalHit but keyed on the magical attack/defense scores and
// without parry/shield-block (those only intercept physical per
// spec.md §4.6.4).
func ResolveMagicalHit(ctx *Context, attacker, defender *Actor, hitIndex int) DamageResult {
	return resolveHit(ctx, attacker, defender, hitIndex, DamageMagical)
}

// ResolveBreathHit resolves one breath-damage hit.
func ResolveBreathHit(ctx *Context, attacker, defender *Actor, hitIndex int) DamageResult {
	return resolveHit(ctx, attacker, defender, hitIndex, DamageBreath)
}

// resolveHit runs the full per-hit pipeline for one channel (spec.md
// §4.6.3-4.6.4): hit roll, luck-scaled attack/defense power, the crit
// defense-halving recompute and critBonus, the initial-strike bonus, the
// per-hit damageModifier decay, dealt/taken multipliers, the defender's
// per-damage-type Resistances multiplier (when one is set), the flat
// additionalDamageScore additive, then parry/shield-block and barrier/guard
// reduction immediately before the HP commit.
func resolveHit(ctx *Context, attacker, defender *Actor, hitIndex int, dt DamageType) DamageResult {
	chance := ComputeHitChance(ctx, attacker, defender, hitIndex)
	if !ctx.RNG.PercentChance(chance) {
		return DamageResult{Hit: false, Evaded: true}
	}

	attackScore, defenseScore := scoresFor(attacker, defender, dt)
	attackPower := float64(attackScore) * ctx.RNG.StatMultiplier(attacker.Luck)
	defensePower := float64(defenseScore) * ctx.RNG.StatMultiplier(defender.Luck)
	baseDamage := attackPower - defensePower
	if baseDamage < 1 {
		baseDamage = 1
	}

	critical := ctx.RNG.PercentChance(attacker.Snapshot.CriticalChancePercent)
	if critical {
		defensePower *= 0.5
		baseDamage = attackPower - defensePower
		if baseDamage < 1 {
			baseDamage = 1
		}
		critBonus := 1 + float64(attacker.Effects.Damage.CriticalPercent)/100
		if critBonus < 0 {
			critBonus = 0
		}
		critMultiplier := attacker.Effects.Damage.CriticalMultiplier
		if critMultiplier < 0 {
			critMultiplier = 0
		}
		baseDamage = baseDamage * critBonus * critMultiplier * defender.Effects.Damage.CriticalTakenMultiplierOrDefault()
	}

	// Initial-strike bonus: the bigger the raw score gap in the attacker's
	// favor, the more multi-hit bursts are worth landing (spec.md §4.6.3).
	steps := math.Floor((float64(attackScore) - float64(defenseScore)*3) / 1000)
	initialBonus := 1.0 + steps*0.1
	if initialBonus < 1.0 {
		initialBonus = 1.0
	}
	if initialBonus > 3.4 {
		initialBonus = 3.4
	}

	damage := baseDamage * initialBonus * damageModifier(hitIndex) *
		attacker.Effects.Damage.dealtMul(dt) * defender.Effects.Damage.takenMul(dt)
	if r, ok := defender.Resistances[dt]; ok {
		damage *= r
	}
	damage += float64(attacker.Snapshot.AdditionalDamageScore)
	amount := int(math.Round(damage))
	if amount < 1 {
		amount = 1
	}

	blocked := false
	if dt == DamagePhysical {
		if tryParry(ctx, defender, hitIndex) {
			return DamageResult{Hit: true, Parried: true, Amount: 0}
		}
		blocked = tryShieldBlock(ctx, attacker, defender, hitIndex)
	}

	amount = absorbBarrier(defender, dt, amount)
	defender.ApplyDamage(amount)
	return DamageResult{Hit: true, Critical: critical, Amount: amount, Blocked: blocked}
}

func scoresFor(attacker, defender *Actor, dt DamageType) (int, int) {
	switch dt {
	case DamageMagical:
		return attacker.Snapshot.MagicalAttackScore, defender.Snapshot.MagicalDefenseScore
	case DamageBreath:
		return attacker.Snapshot.BreathDamageScore, defender.Snapshot.MagicalDefenseScore
	default:
		return attacker.Snapshot.PhysicalAttackScore, defender.Snapshot.PhysicalDefenseScore
	}
}

// absorbBarrier applies the barrier/guard reduction step that runs after
// damage is computed but before it commits (spec.md §4.6.3): a guard-backed
// barrier charge or a plain persistent barrier charge both reduce damage to
// ceil(amount/3), checked in that preference order; bare guardActive with no
// charge left only halves.
func absorbBarrier(defender *Actor, dt DamageType, amount int) int {
	if defender.GuardActive && defender.GuardBarrier != nil && defender.GuardBarrier[dt] > 0 {
		defender.GuardBarrier[dt]--
		return ceilThird(amount)
	}
	if defender.Barrier != nil && defender.Barrier[dt] > 0 {
		defender.Barrier[dt]--
		return ceilThird(amount)
	}
	if defender.GuardActive {
		half := amount / 2
		if half < 1 {
			half = 1
		}
		return half
	}
	return amount
}

func ceilThird(amount int) int {
	reduced := (amount + 2) / 3
	if reduced < 1 {
		reduced = 1
	}
	return reduced
}

// tryParry fires on any hit that is not the first of its burst (spec.md
// §4.6.4); success ends the burst with no damage for this hit.
func tryParry(ctx *Context, defender *Actor, hitIndex int) bool {
	if hitIndex == 0 || !defender.Effects.Combat.ParryEnabled {
		return false
	}
	chance := 10 + 0.25*float64(defender.Snapshot.AdditionalDamageScore) + float64(defender.Effects.Combat.ParryBonusPercent)
	return ctx.RNG.PercentChance(int(math.Round(chance)))
}

// tryShieldBlock fires only on the first hit of a burst (spec.md §4.6.4);
// success applies full damage for this hit but reports Blocked so the caller
// stops the burst after it.
func tryShieldBlock(ctx *Context, attacker, defender *Actor, hitIndex int) bool {
	if hitIndex != 0 || !defender.Effects.Combat.ShieldBlockEnabled {
		return false
	}
	chance := 30 - 0.5*float64(attacker.Snapshot.AdditionalDamageScore) + float64(defender.Effects.Combat.ShieldBlockBonusPercent)
	return ctx.RNG.PercentChance(int(math.Round(chance)))
}

// CriticalTakenMultiplierOrDefault returns TakenMultiplier for crits, or 1.0
// when unset, matching spec.md §4.6.3's "halved, not zeroed" default.
func (d DamageEffects) CriticalTakenMultiplierOrDefault() float64 {
	if d.CriticalTakenMultiplier <= 0 {
		return 1.0
	}
	return d.CriticalTakenMultiplier
}
