package defs

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadLevelOverrides replaces level table entries with the ones found under
// the "levels" configuration key. A missing key leaves the table untouched.
func LoadLevelOverrides() error {
	if !viper.IsSet("levels") {
		return nil
	}

	var levelDefs []LevelDefinition
	if err := viper.UnmarshalKey("levels", &levelDefs); err != nil {
		return fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	for _, def := range levelDefs {
		if err := def.validate(); err != nil {
			return fmt.Errorf("invalid level %d: %w", def.Level, err)
		}
	}
	for _, def := range levelDefs {
		LevelPatterns[def.Level] = def
	}
	return nil
}

func (d LevelDefinition) validate() error {
	if d.Level <= 0 {
		return fmt.Errorf("level number must be positive")
	}
	if d.EnemyCount <= 0 {
		return fmt.Errorf("enemy count must be positive, got %d", d.EnemyCount)
	}
	if d.TerrainDensity < 0 || d.TerrainDensity > 1 {
		return fmt.Errorf("terrain density %.2f outside [0,1]", d.TerrainDensity)
	}
	total := 0.0
	for class, w := range d.EnemyWeights {
		if w < 0 {
			return fmt.Errorf("negative weight for %s", class)
		}
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("enemy weights sum to zero")
	}
	return nil
}
