package battlelog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ExportBattleJSON writes record to a JSON file under outputDir, creating
// the directory if needed (grounded on battle_export.go's ExportBattleJSON).
func ExportBattleJSON(record *BattleRecord, outputDir string) error {
	if record == nil {
		return fmt.Errorf("cannot export nil battle record")
	}

	if err := ensureOutputDir(outputDir); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	filePath := filepath.Join(outputDir, generateBattleFilename(record))

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal battle record: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write battle log file: %w", err)
	}

	fmt.Printf("Combat log exported to: %s\n", filePath)
	return nil
}

func ensureOutputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("output directory cannot be empty")
	}
	return os.MkdirAll(dir, 0755)
}
