// Package config holds the engine's compile-time tunables and the loader
// for its one piece of persisted, user-adjustable state. Graphics,
// profiling, and asset-path constants have no battle-side analog and are
// replaced below by tunables for the turn cap and beta-test mode that
// actually matter to combat.
package config

// Logging and diagnostics
const (
	// EnableCombatLog is a presentation toggle for callers of the battlelog
	// package; no package in this module reads it, and battle.RunBattle
	// always produces its full BattleLog regardless of its value.
	EnableCombatLog = true
)

// Turn and roster limits, mirroring the engine's compile-time constants
// (battle.MaxTurns is the authoritative source; this constant exists so
// callers building tools/CLIs don't need to import battle just to print it).
const (
	MaxTurns          = 20
	MaxPartySize      = 6
	MaxEnemyRosterSize = 8
)

// Default starting attributes for a newly created party member, in this
// engine's strength/wisdom/spirit/vitality/agility/luck stat block.
const (
	DefaultStrength = 15
	DefaultWisdom   = 0
	DefaultSpirit   = 0
	DefaultVitality = 10
	DefaultAgility  = 20
	DefaultLuck     = 10
)

// DefaultStartingGold seeds a new roster's purse.
const DefaultStartingGold = 100000
