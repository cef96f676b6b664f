package main

import (
	"github.com/Osakana3610/Osakana-Guild-sub002/battle"
	"github.com/Osakana3610/Osakana-Guild-sub002/statcompiler"
)

// buildRoster converts a scenario's raw attribute list into a ready
// battle.Actor slice for one side (grounded on
// tools/combat_simulator/squad_factory.go's createScenarioSquads, reduced
// from ECS squad/grid construction to a flat actor-array builder since this
// engine has no component store per spec.md §3, §9).
func buildRoster(side battle.Side, attrs []statcompiler.BaseAttributes) []*battle.Actor {
	roster := make([]*battle.Actor, 0, len(attrs))
	for i, a := range attrs {
		hasPriest := a.Spirit > 0
		hasMage := a.Wisdom > 0
		rates := statcompiler.CompileActionRates(a, hasPriest, hasMage)
		roster = append(roster, statcompiler.BuildActor(side, i+1, i+1, "", a, battle.SkillEffects{}, rates))
	}
	return roster
}
