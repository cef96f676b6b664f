package main

import "github.com/Osakana3610/Osakana-Guild-sub002/statcompiler"

// Scenario describes one battle to simulate: a party and an enemy roster,
// each a plain list of base attributes, plus the seed the battle runs on
// (grounded on tools/combat_simulator/scenarios.go's scenario-table shape,
// reduced from squad/grid composition to this engine's flat actor rosters).
type Scenario struct {
	Name    string
	Seed    uint64
	Players []statcompiler.BaseAttributes
	Enemies []statcompiler.BaseAttributes
}

// Suite groups related scenarios under one name for --suite filtering.
type Suite struct {
	Name      string
	Scenarios []Scenario
}

// AllSuites returns the built-in scenario suites (grounded on
// suite_duels.go/suite_compositions.go's suite-table pattern, collapsed to
// a handful of representative fights instead of a combinatorial sweep).
func AllSuites() []Suite {
	return []Suite{
		{
			Name: "duels",
			Scenarios: []Scenario{
				{
					Name: "even_match",
					Seed: 1,
					Players: []statcompiler.BaseAttributes{
						{Strength: 15, Wisdom: 5, Spirit: 5, Vitality: 12, Agility: 10, Luck: 10},
					},
					Enemies: []statcompiler.BaseAttributes{
						{Strength: 14, Wisdom: 5, Spirit: 5, Vitality: 12, Agility: 9, Luck: 10},
					},
				},
				{
					Name: "glass_cannon_vs_tank",
					Seed: 2,
					Players: []statcompiler.BaseAttributes{
						{Strength: 25, Wisdom: 0, Spirit: 0, Vitality: 6, Agility: 15, Luck: 10},
					},
					Enemies: []statcompiler.BaseAttributes{
						{Strength: 8, Wisdom: 0, Spirit: 0, Vitality: 25, Agility: 5, Luck: 10},
					},
				},
			},
		},
		{
			Name: "party_encounters",
			Scenarios: []Scenario{
				{
					Name: "four_v_three",
					Seed: 3,
					Players: []statcompiler.BaseAttributes{
						{Strength: 16, Vitality: 12, Agility: 12, Luck: 10},
						{Strength: 6, Wisdom: 18, Vitality: 8, Agility: 10, Luck: 10},
						{Strength: 6, Spirit: 18, Vitality: 8, Agility: 9, Luck: 10},
						{Strength: 12, Vitality: 10, Agility: 14, Luck: 10},
					},
					Enemies: []statcompiler.BaseAttributes{
						{Strength: 14, Vitality: 14, Agility: 10, Luck: 10},
						{Strength: 14, Vitality: 14, Agility: 10, Luck: 10},
						{Strength: 14, Vitality: 14, Agility: 10, Luck: 10},
					},
				},
			},
		},
	}
}
