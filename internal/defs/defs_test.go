package defs

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadJSON(t *testing.T, doc string) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigType("json")
	require.NoError(t, viper.ReadConfig(strings.NewReader(doc)))
}

func restoreLevels(t *testing.T) {
	saved := make(map[int]LevelDefinition, len(LevelPatterns))
	for k, v := range LevelPatterns {
		saved[k] = v
	}
	t.Cleanup(func() { LevelPatterns = saved })
}

func TestLevelTable(t *testing.T) {
	assert.Equal(t, 5, MaxLevel())
	def, ok := Level(3)
	require.True(t, ok)
	assert.Equal(t, 10, def.EnemyCount)
	assert.Equal(t, 0.2, def.TerrainDensity)

	_, ok = Level(6)
	assert.False(t, ok)
}

func TestWeightedClasses_SortedByName(t *testing.T) {
	got := LevelPatterns[2].WeightedClasses()
	require.Len(t, got, 4)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].Class, got[i].Class)
	}
}

func TestProfileFor(t *testing.T) {
	heavy := ProfileFor(ClassHeavy)
	assert.Equal(t, 2.0, heavy.Speed)
	assert.Equal(t, int64(1500), heavy.ShootDelayMs)
	assert.Equal(t, 300, heavy.Points)

	odd := ProfileFor("boss")
	assert.Equal(t, TankClass("boss"), odd.Class)
	assert.Equal(t, ProfileFor(ClassNormal).Speed, odd.Speed)
}

func TestTerrainDefinitions(t *testing.T) {
	assert.True(t, TerrainFor(TerrainBrick).Destructible)
	assert.True(t, TerrainFor(TerrainBase).Destructible)
	assert.False(t, TerrainFor(TerrainSteel).Destructible)
	assert.True(t, TerrainGrass.Passable())
	assert.False(t, TerrainWater.Passable())
}

func TestLoadLevelOverrides(t *testing.T) {
	restoreLevels(t)
	loadJSON(t, `{"levels": [
		{"level": 2, "enemies": 3, "terrain_density": 0.5, "enemy_types": {"elite": 1}},
		{"level": 6, "enemies": 20, "terrain_density": 0.35, "enemy_types": {"heavy": 0.5, "elite": 0.5}}
	]}`)

	require.NoError(t, LoadLevelOverrides())

	two, _ := Level(2)
	assert.Equal(t, 3, two.EnemyCount)
	assert.Equal(t, map[TankClass]float64{ClassElite: 1}, two.EnemyWeights)
	assert.Equal(t, 6, MaxLevel())
	one, _ := Level(1)
	assert.Equal(t, 5, one.EnemyCount, "untouched levels keep their values")
}

func TestLoadLevelOverrides_NoKey(t *testing.T) {
	restoreLevels(t)
	loadJSON(t, `{"logLevel": "debug"}`)

	require.NoError(t, LoadLevelOverrides())
	assert.Equal(t, 5, MaxLevel())
}

func TestLoadLevelOverrides_Invalid(t *testing.T) {
	cases := map[string]string{
		"zero enemies": `{"levels": [{"level": 1, "enemies": 0, "terrain_density": 0.1, "enemy_types": {"normal": 1}}]}`,
		"density":      `{"levels": [{"level": 1, "enemies": 4, "terrain_density": 1.5, "enemy_types": {"normal": 1}}]}`,
		"zero weights": `{"levels": [{"level": 1, "enemies": 4, "terrain_density": 0.1, "enemy_types": {"normal": 0}}]}`,
		"level number": `{"levels": [{"level": 0, "enemies": 4, "terrain_density": 0.1, "enemy_types": {"normal": 1}}]}`,
		"not a list":   `{"levels": "many"}`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			restoreLevels(t)
			loadJSON(t, doc)

			assert.Error(t, LoadLevelOverrides())
			one, _ := Level(1)
			assert.Equal(t, 5, one.EnemyCount, "a rejected file changes nothing")
		})
	}
}
