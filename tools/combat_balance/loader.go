package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Osakana3610/Osakana-Guild-sub002/tactical/combat/battlelog"
)

// LoadBattleRecord reads and parses one battlelog.ExportBattleJSON output
// (grounded on tools/combat_balance/loader.go's LoadBattleRecord, retargeted
// from the ECS squad BattleRecord to battlelog.BattleRecord).
func LoadBattleRecord(path string) (*battlelog.BattleRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var record battlelog.BattleRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	return &record, nil
}

// FindAllBattles finds all JSON battle files in the specified directory.
// Returns a sorted list of full paths.
func FindAllBattles(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasSuffix(name, ".json") {
			files = append(files, filepath.Join(dir, name))
		}
	}

	sort.Strings(files)
	return files, nil
}
