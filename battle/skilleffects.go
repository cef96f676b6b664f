package battle

// SkillEffects is the aggregated, per-actor bundle of passive modifiers
// compiled once before battle starts and treated as read-only thereafter
// (spec.md §3, §9). The stat compiler collaborator (spec.md §6) is
// responsible for producing this; the core never recomputes it.
type SkillEffects struct {
	Combat       CombatEffects
	Damage       DamageEffects
	Misc         MiscEffects
	Spell        SpellEffects
	Resurrection ResurrectionEffects
}

// CombatEffects covers turn-order, defensive reactions, and extra-action
// modifiers (spec.md §3).
type CombatEffects struct {
	FirstStrike              bool
	ActionOrderShuffle       bool // applied to self: sentinel speed
	ActionOrderShuffleEnemy  bool // applied to the opposing side
	ActionOrderMultiplier    float64

	ParryEnabled        bool
	ParryBonusPercent   int
	ShieldBlockEnabled  bool
	ShieldBlockBonusPercent int

	Reactions []ReactionDefinition

	SpecialAttacks []SpecialAttackDefinition

	ExtraActions          int
	NextTurnExtraActions  int

	BarrierCharges map[DamageType]int
}

// DamageEffects covers per-channel multipliers applied in the damage
// pipeline (spec.md §4.6.3).
type DamageEffects struct {
	DealtMultiplier map[DamageType]float64
	TakenMultiplier map[DamageType]float64

	CriticalPercent         int // additive to the crit-bonus formula
	CriticalMultiplier      float64
	CriticalTakenMultiplier float64
}

// dealtMul / takenMul return 1.0 for an unset channel so callers never need
// a nil check.
func (d DamageEffects) dealtMul(t DamageType) float64 {
	if d.DealtMultiplier == nil {
		return 1.0
	}
	if v, ok := d.DealtMultiplier[t]; ok {
		return v
	}
	return 1.0
}

func (d DamageEffects) takenMul(t DamageType) float64 {
	if d.TakenMultiplier == nil {
		return 1.0
	}
	if v, ok := d.TakenMultiplier[t]; ok {
		return v
	}
	return 1.0
}

// MiscEffects covers targeting, end-of-turn regen, and battle-level odds
// (spec.md §3).
type MiscEffects struct {
	EndOfTurnHealingPercent float64
	EndOfTurnSelfHPPercent  float64

	TargetingWeight float64 // default 1.0

	CoverRowsBehind    bool
	CoverCondition     CoverCondition

	PartyProtectedTargets []int // party member ids / enemy master ids, filter semantics per spec.md §4.5
	PartyHostileTargets   []int

	RetreatChancePercent int
	DodgeCapMax          int
}

// SpellEffects covers spell-charge economy (spec.md §3).
type SpellEffects struct {
	ChargeRecoveries []ChargeRecovery
	ChargeModifiers  []ChargeModifier
	BreathExtraCharges int
}

// ChargeRecovery is a per-turn chance to recover one charge of a channel.
type ChargeRecovery struct {
	Resource         ResourceKey
	BaseChancePercent int
}

// ChargeModifier is a periodic regen rule: every Interval turns, add Amount
// charges (capped at Cap), up to MaxTriggers times per battle.
type ChargeModifier struct {
	Resource    ResourceKey
	Interval    int
	Amount      int
	Cap         int
	MaxTriggers int
}

// ResurrectionEffects covers rescue capabilities and auto-revive odds
// (spec.md §3, §4.7, §4.10).
type ResurrectionEffects struct {
	RescueCapabilities   []RescueCapability
	NecromancerInterval  int // 0 disables
	Actives              []ResurrectionActive
}

// RescueCapability lets a same-side actor revive an ally the instant it is
// defeated, in addition to any reaction that also fires (spec.md §4.7).
type RescueCapability struct {
	MinLevel               int
	RequiresPriestMagic    bool
	Guaranteed             bool
	ChancePercent          int
	RevivePercentOfMaxHP   int
}

// ResurrectionActive is one roll-per-entry auto-resurrection rule evaluated
// at end of turn for a defeated actor (spec.md §4.10 step 4).
type ResurrectionActive struct {
	ChancePercent int
	HPScalePercent int // 0 means "use MaxHP5Percent" literal below
	MaxHP5Percent  bool
	MaxTriggers    int
}

// ReactionTrigger enumerates the events a reaction may fire on
// (spec.md §4.7).
type ReactionTrigger int

const (
	TriggerSelfDamagedPhysical ReactionTrigger = iota
	TriggerSelfDamagedMagical
	TriggerSelfEvadePhysical
	TriggerAllyDamagedPhysical
	TriggerAllyDefeated
	TriggerSelfKilledEnemy
	TriggerAllyMagicAttack
)

// ReactionTargetMode enumerates how a reaction resolves its target.
type ReactionTargetMode int

const (
	ReactionTargetAttacker ReactionTargetMode = iota
	ReactionTargetKiller
	ReactionTargetRandomEnemy
)

// ReactionDefinition is one reaction rule attached to an actor's
// SkillEffects.Combat.Reactions (spec.md §4.7).
type ReactionDefinition struct {
	Trigger    ReactionTrigger
	TargetMode ReactionTargetMode
	DamageType DamageType

	BaseChancePercent int

	AttackCountMultiplier          float64
	CriticalChancePercentMultiplier float64
	AccuracyMultiplier             float64

	IsMartialFollowUp bool // martial follow-ups dispatch through the same machinery but never stack/recurse
}

// SpecialAttackDefinition is a pre-turn (preemptive) or in-turn special
// attack a skill grants (spec.md §4.11).
type SpecialAttackDefinition struct {
	Preemptive    bool
	ChancePercent int
}

// StatusEffectDefinition is the read-only master-data record for a status
// effect (spec.md §6).
type StatusEffectDefinition struct {
	ID                uint8
	Name              string
	DurationTurns     int
	TickDamagePercent float64 // percent of MaxHP, applied each turn end
	ActionLocked      bool
	Stackable         bool
	Tags              []string
	StatModifiers     StatModifierSet
}

// SkillDefinition is kept for log rendering and reaction resolution
// (spec.md §6); the compiled SkillEffects is what the core actually reads.
type SkillDefinition struct {
	ID   uint16
	Name string
}

// EnemySkillType enumerates enemy special-skill behaviors (spec.md §6).
type EnemySkillType int

const (
	EnemySkillPhysical EnemySkillType = iota
	EnemySkillBreath
	EnemySkillStatus
	EnemySkillHeal
	EnemySkillBuff
)

// EnemySkillDefinition describes one usable enemy special skill
// (spec.md §6).
type EnemySkillDefinition struct {
	ID                   uint16
	Name                 string
	Type                 EnemySkillType
	ChancePercent        int
	UsesPerBattle        int
	DamageDealtMultiplier float64
	HitCount             int
	Element              string
	StatusID             uint8
	StatusChancePercent  int
	HealPercent          int
	BuffType             string
	BuffMultiplier       float64
}
