package battle

// ActorRef is a stable integer reference to an actor for the lifetime of a
// battle, encoding both side and slot (spec.md §3 "Actor Reference", §9
// "Actor references"). Player refs are the 1-origin party member id;
// enemy refs are 1000*(arrayIndex+1) + enemyMasterIndex, so enemies remain
// distinguishable even when two copies of the same master are present.
//
// This is a systems-language analogue of a direct object reference: a
// cheap, copyable descriptor that survives array mutation and that the
// reaction dispatcher and log can pass around without holding a pointer
// into either slice.
type ActorRef int

const enemyRefBase = 1000

// PlayerRef builds the ref for a player at the given stable party-member id.
func PlayerRef(partyMemberID int) ActorRef {
	return ActorRef(partyMemberID)
}

// EnemyRef builds the ref for an enemy at arrayIndex (0-origin) with the
// given enemy-master index.
func EnemyRef(arrayIndex, enemyMasterIndex int) ActorRef {
	return ActorRef(enemyRefBase*(arrayIndex+1) + enemyMasterIndex)
}

// SideOf derives the side from a ref's numeric range (spec.md §3: player
// refs are < 128, enemy refs are >= enemyRefBase).
func (r ActorRef) SideOf() Side {
	if int(r) >= enemyRefBase {
		return SideEnemy
	}
	return SidePlayer
}

// EffectKind enumerates every observable impact an action can have
// (spec.md §3 "Action Entry").
type EffectKind int

const (
	EffectPhysicalDamage EffectKind = iota
	EffectMagicDamage
	EffectBreathDamage
	EffectMagicHeal
	EffectResurrection
	EffectStatusInflict
	EffectStatusExpire
	EffectEnemySpecialDamage
	EffectEnemySpecialHeal
	EffectEnemySpecialBuff
	EffectReactionAttack
	EffectFollowUp
	EffectRescue
	EffectNecromancer
	EffectHealParty
	EffectHealSelf
	EffectDamageSelf
	EffectBuffExpire
	EffectSpellChargeRecover
	EffectCover
	EffectEnemyAppear
	EffectLogOnly
)

// Effect is one observable impact of an action, logged against its target.
type Effect struct {
	Kind     EffectKind
	TargetRef *ActorRef
	Value    int
	StatusID *uint8
	Extra    map[string]any
}

// ActionDeclaration records what an actor attempted to do on its turn.
type ActionDeclaration struct {
	Kind  ActionKind
	Extra map[string]any
}

// ActionEntry is one append-only record in the battle log (spec.md §3).
type ActionEntry struct {
	Turn        int
	ActorRef    *ActorRef
	Declaration ActionDeclaration
	Effects     []Effect
}

// Outcome is the fixed, externally observable result of a battle
// (spec.md §3, §6). These numeric values are part of the wire contract.
type Outcome int

const (
	OutcomeVictory Outcome = 0
	OutcomeDefeat  Outcome = 1
	OutcomeRetreat Outcome = 2
)

// HPSnapshot captures an actor's HP at a point in time (battle start, for
// the log's initialHP record).
type HPSnapshot struct {
	Ref ActorRef
	HP  int
}

// BattleLog is the append-only, structured record of a single battle
// (spec.md §3, §4.12). It is the sole externally observable record of the
// run; ownership transfers to the caller when runBattle returns.
type BattleLog struct {
	Outcome    Outcome
	Turns      int
	InitialHP  InitialHP
	Entries    []ActionEntry
}

// InitialHP snapshots both rosters' HP at battle start.
type InitialHP struct {
	Player []HPSnapshot
	Enemy  []HPSnapshot
}

func newBattleLog() *BattleLog {
	return &BattleLog{Entries: make([]ActionEntry, 0, 64)}
}

// appendEntry records an entry stamped with the context's current turn.
func (ctx *Context) appendEntry(actor *ActorRef, decl ActionDeclaration, effects []Effect) {
	ctx.Log.Entries = append(ctx.Log.Entries, ActionEntry{
		Turn:        ctx.Turn,
		ActorRef:    actor,
		Declaration: decl,
		Effects:     effects,
	})
}

// appendSentinel records a sentinel entry with no actor (or, for
// enemyAppear, the enemy's own ref) and no non-logOnly effects
// (spec.md §4.12).
func (ctx *Context) appendSentinel(kind ActionKind, actor *ActorRef, extra map[string]any) {
	ctx.appendEntry(actor, ActionDeclaration{Kind: kind, Extra: extra}, []Effect{{Kind: EffectLogOnly}})
}
