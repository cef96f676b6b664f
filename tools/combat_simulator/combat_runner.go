package main

import (
	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
)

// runScenario builds both rosters and runs the battle to completion
// (grounded on tools/combat_simulator/combat_runner.go's RunBattle).
func runScenario(s Scenario) *battle.BattleLog {
	players := buildRoster(battle.SidePlayer, s.Players)
	enemies := buildRoster(battle.SideEnemy, s.Enemies)

	statusDefs := map[uint8]battle.StatusEffectDefinition{}
	skillDefs := map[uint16]battle.SkillDefinition{}
	enemySkillDefs := map[uint16]battle.EnemySkillDefinition{}

	ctx := battle.NewContext(players, enemies, statusDefs, skillDefs, enemySkillDefs, battle.NewPRNG(s.Seed))
	return battle.RunBattle(ctx)
}
