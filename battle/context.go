package battle

// MaxTurns is the hard turn cap (spec.md §4.3): "Maximum turn count is a
// compile-time constant, 20."
const MaxTurns = 20

// OrderInfo is one actor's computed speed and tiebreaker for a single
// turn's action order (spec.md §4.6.1).
type OrderInfo struct {
	Speed      float64
	Tiebreaker int
}

// Context is the mutable per-battle state every component reads and writes
// (spec.md §4.3). It owns the rosters, the PRNG, the action-entry log, and
// transient per-turn data. Two Contexts never share mutable state (spec.md
// §5), so battles can run concurrently as long as each gets its own.
type Context struct {
	Players []*Actor
	Enemies []*Actor

	RNG *PRNG

	StatusDefs     map[uint8]StatusEffectDefinition
	SkillDefs      map[uint16]SkillDefinition
	EnemySkillDefs map[uint16]EnemySkillDefinition

	Turn int
	Log  *BattleLog

	ActionOrderSnapshot map[ActorRef]OrderInfo

	// SacrificeTargets holds a forced-target override for the next
	// offensive target selection against the given side (spec.md §4.5).
	SacrificeTargets map[Side]*ActorRef

	// PendingCover is set by applyCoverRedirect when a cover actor
	// intercepts a target draw; the next offensive action's caller consumes
	// and clears it, folding it into that action's effects list.
	PendingCover *Effect

	// reactionChainActive suppresses reactions from firing off damage dealt
	// by another reaction or follow-up (spec.md §4.7 "Chain suppression").
	// It lives in runtime state, never in SkillEffects, exactly as spec.md
	// §4.2 requires.
	reactionChainActive bool

	// necromancerTurnCounter tracks turns-since-last-check per side for the
	// necromancer periodic revive (spec.md §4.10 step 5).
	necromancerTurnCounter map[Side]int
}

// NewContext constructs a Context ready to run a single battle.
func NewContext(players, enemies []*Actor, statusDefs map[uint8]StatusEffectDefinition,
	skillDefs map[uint16]SkillDefinition, enemySkillDefs map[uint16]EnemySkillDefinition, rng *PRNG) *Context {
	return &Context{
		Players:                players,
		Enemies:                enemies,
		RNG:                    rng,
		StatusDefs:             statusDefs,
		SkillDefs:              skillDefs,
		EnemySkillDefs:         enemySkillDefs,
		Log:                    newBattleLog(),
		ActionOrderSnapshot:    make(map[ActorRef]OrderInfo),
		SacrificeTargets:       make(map[Side]*ActorRef),
		necromancerTurnCounter: make(map[Side]int),
	}
}

// rosterOf returns the slice for a side.
func (ctx *Context) rosterOf(side Side) []*Actor {
	if side == SidePlayer {
		return ctx.Players
	}
	return ctx.Enemies
}

// opposingRosterOf returns the slice for the side opposite to side.
func (ctx *Context) opposingRosterOf(side Side) []*Actor {
	if side == SidePlayer {
		return ctx.Enemies
	}
	return ctx.Players
}

// refOf computes the ActorRef for an actor at the given side/index.
func (ctx *Context) refOf(side Side, index int) ActorRef {
	if side == SidePlayer {
		return PlayerRef(ctx.Players[index].PartyMemberID)
	}
	return EnemyRef(index, ctx.Enemies[index].EnemyMasterID)
}

// find resolves an ActorRef to its actor and (side, index), or ok=false if
// the ref no longer resolves (it always should, for any ref this package
// produced from a live roster).
func (ctx *Context) find(ref ActorRef) (actor *Actor, side Side, index int, ok bool) {
	if ref.SideOf() == SidePlayer {
		for i, a := range ctx.Players {
			if PlayerRef(a.PartyMemberID) == ref {
				return a, SidePlayer, i, true
			}
		}
		return nil, SidePlayer, -1, false
	}
	for i, a := range ctx.Enemies {
		if EnemyRef(i, a.EnemyMasterID) == ref {
			return a, SideEnemy, i, true
		}
	}
	return nil, SideEnemy, -1, false
}

// allDefeated reports whether every actor on a side has 0 HP.
func (ctx *Context) allDefeated(side Side) bool {
	for _, a := range ctx.rosterOf(side) {
		if a.IsAlive() {
			return false
		}
	}
	return true
}

// livingActor is one (side, index, actor) triple; living returns one for
// every living actor on a side.
type livingActor struct {
	Side  Side
	Index int
	Actor *Actor
}

func (ctx *Context) living(side Side) []livingActor {
	roster := ctx.rosterOf(side)
	out := make([]livingActor, 0, len(roster))
	for i, a := range roster {
		if a.IsAlive() {
			out = append(out, livingActor{side, i, a})
		}
	}
	return out
}
