package defs

import "sort"

// LevelDefinition describes one level: how many enemies it sends, how dense
// the random terrain is and how the enemy subtypes are weighted.
type LevelDefinition struct {
	Level          int                   `json:"level" mapstructure:"level"`
	EnemyCount     int                   `json:"enemies" mapstructure:"enemies"`
	TerrainDensity float64               `json:"terrain_density" mapstructure:"terrain_density"`
	EnemyWeights   map[TankClass]float64 `json:"enemy_types" mapstructure:"enemy_types"`
}

// LevelPatterns is the level table keyed by level number.
var LevelPatterns = map[int]LevelDefinition{
	1: {Level: 1, EnemyCount: 5, TerrainDensity: 0.1, EnemyWeights: map[TankClass]float64{ClassNormal: 0.7, ClassFast: 0.3, ClassHeavy: 0, ClassElite: 0}},
	2: {Level: 2, EnemyCount: 8, TerrainDensity: 0.15, EnemyWeights: map[TankClass]float64{ClassNormal: 0.5, ClassFast: 0.3, ClassHeavy: 0.2, ClassElite: 0}},
	3: {Level: 3, EnemyCount: 10, TerrainDensity: 0.2, EnemyWeights: map[TankClass]float64{ClassNormal: 0.4, ClassFast: 0.3, ClassHeavy: 0.2, ClassElite: 0.1}},
	4: {Level: 4, EnemyCount: 12, TerrainDensity: 0.25, EnemyWeights: map[TankClass]float64{ClassNormal: 0.3, ClassFast: 0.3, ClassHeavy: 0.2, ClassElite: 0.2}},
	5: {Level: 5, EnemyCount: 15, TerrainDensity: 0.3, EnemyWeights: map[TankClass]float64{ClassNormal: 0.2, ClassFast: 0.3, ClassHeavy: 0.2, ClassElite: 0.3}},
}

// Level returns the definition for level n. ok is false when the table has
// no such level, which callers treat as the end of the run.
func Level(n int) (LevelDefinition, bool) {
	def, ok := LevelPatterns[n]
	return def, ok
}

// MaxLevel returns the highest level number in the table.
func MaxLevel() int {
	max := 0
	for n := range LevelPatterns {
		if n > max {
			max = n
		}
	}
	return max
}

// WeightedClasses returns the level's weights as a slice ordered by class
// name so that weighted draws are reproducible for a given seed.
func (d LevelDefinition) WeightedClasses() []ClassWeight {
	out := make([]ClassWeight, 0, len(d.EnemyWeights))
	for class, w := range d.EnemyWeights {
		out = append(out, ClassWeight{Class: class, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Class < out[j].Class })
	return out
}

// ClassWeight is one entry of a weighted enemy table.
type ClassWeight struct {
	Class  TankClass
	Weight float64
}
