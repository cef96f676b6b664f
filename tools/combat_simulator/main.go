// Command combat_simulator runs canned battle scenarios through the battle
// engine and reports outcome distributions, keeping
// tools/combat_simulator/main.go's flag/suite/scenario loop shape (adapted
// from ECS squad construction to battle.Context + battle.RunBattle).
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Osakana3610/Osakana-Guild-sub002/tactical/combat/battlelog"
)

func main() {
	suiteFlag := flag.String("suite", "", "run only the named suite (default: all)")
	listFlag := flag.Bool("list", false, "list available suites and scenarios, then exit")
	exportDir := flag.String("export-dir", "", "directory to export per-battle JSON records to (default: no export)")
	flag.Parse()

	suites := AllSuites()

	if *listFlag {
		for _, suite := range suites {
			fmt.Printf("%s:\n", suite.Name)
			for _, sc := range suite.Scenarios {
				fmt.Printf("  %s (seed %d, %d vs %d)\n", sc.Name, sc.Seed, len(sc.Players), len(sc.Enemies))
			}
		}
		return
	}

	totalRun := 0
	outcomes := map[string]int{"victory": 0, "defeat": 0, "retreat": 0}

	for _, suite := range suites {
		if *suiteFlag != "" && suite.Name != *suiteFlag {
			continue
		}
		fmt.Printf("=== suite: %s ===\n", suite.Name)
		for _, sc := range suite.Scenarios {
			log := runScenario(sc)
			record := battlelog.RenderBattleRecord(fmt.Sprintf("%s-%s", suite.Name, sc.Name), log)
			outcomes[record.Outcome]++
			totalRun++

			fmt.Printf("%-24s outcome=%-8s turns=%d\n", sc.Name, record.Outcome, record.Turns)

			if *exportDir != "" {
				if err := battlelog.ExportBattleJSON(record, *exportDir); err != nil {
					fmt.Fprintf(os.Stderr, "export %s: %v\n", sc.Name, err)
					os.Exit(1)
				}
			}
		}
	}

	if totalRun == 0 {
		fmt.Fprintf(os.Stderr, "no scenarios matched suite %q\n", *suiteFlag)
		os.Exit(1)
	}

	fmt.Printf("\n%d battles run: %d victories, %d defeats, %d retreats\n",
		totalRun, outcomes["victory"], outcomes["defeat"], outcomes["retreat"])
}
