package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

// WriteCSV writes the aggregated matchup data to a CSV file (grounded on
// tools/combat_balance/csv_writer.go, retargeted from hit/dodge/crit HitResult
// breakdowns the engine's log doesn't carry to a hits/damage-per-effect-kind
// report, since battle.Effect only records successful impacts per spec.md
// §3, §4.6 -- misses never reach the log).
func WriteCSV(path string, result *AggregateResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"AttackerRef", "TargetRef", "EffectKind",
		"TotalHits", "TotalDamage", "AvgDmgPerHit", "BattlesSampled",
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, key := range SortedKeys(result.Matchups) {
		stats := result.Matchups[key]
		avgDmg := safeAvg(stats.TotalDamage, stats.TotalHits)

		row := []string{
			fmt.Sprintf("%d", key.AttackerRef),
			fmt.Sprintf("%d", key.TargetRef),
			key.EffectKind,
			fmt.Sprintf("%d", stats.TotalHits),
			fmt.Sprintf("%d", stats.TotalDamage),
			fmt.Sprintf("%.2f", avgDmg),
			fmt.Sprintf("%d", len(stats.BattlesSeen)),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	if len(result.HealMatchups) > 0 {
		if err := w.Write([]string{""}); err != nil {
			return fmt.Errorf("failed to write separator: %w", err)
		}

		healHeader := []string{
			"# Heal",
			"HealerRef", "TargetRef", "EffectKind",
			"TotalHeals", "TotalAmount", "AvgHealPerAction", "BattlesSampled",
		}
		if err := w.Write(healHeader); err != nil {
			return fmt.Errorf("failed to write heal header: %w", err)
		}

		for _, key := range SortedHealKeys(result.HealMatchups) {
			hstats := result.HealMatchups[key]
			avgHeal := safeAvg(hstats.TotalAmount, hstats.TotalHeals)

			row := []string{
				"",
				fmt.Sprintf("%d", key.HealerRef),
				fmt.Sprintf("%d", key.TargetRef),
				key.EffectKind,
				fmt.Sprintf("%d", hstats.TotalHeals),
				fmt.Sprintf("%d", hstats.TotalAmount),
				fmt.Sprintf("%.2f", avgHeal),
				fmt.Sprintf("%d", len(hstats.BattlesSeen)),
			}
			if err := w.Write(row); err != nil {
				return fmt.Errorf("failed to write heal row: %w", err)
			}
		}
	}

	return nil
}

// safeAvg computes numerator/denominator as float64, returning 0.0 on
// division by zero.
func safeAvg(numerator, denominator int) float64 {
	if denominator == 0 {
		return 0.0
	}
	return float64(numerator) / float64(denominator)
}
