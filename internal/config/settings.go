package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// FileName is the settings file looked up in the config directory.
const FileName = "tankbattle.cfg.json"

// Settings is the typed view over the runtime configuration.
type Settings struct {
	LogLevel          string
	Seed              int64
	AudioEnabled      bool
	StartFromMenu     bool
	WindowScale       float64
	LevelTransitionMs int64
}

// SetDefaults registers default values. Load calls it; tests can call it
// directly after viper.Reset.
func SetDefaults() {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("seed", 0)
	viper.SetDefault("audio.enabled", true)
	viper.SetDefault("startFromMenu", true)
	viper.SetDefault("window.scale", 1.0)
	viper.SetDefault("levelTransitionMs", LevelTransitionMs)
}

// Load reads configuration from the JSON file in configDir and the
// TANKBATTLE_* environment. Nested keys use underscores, so audio.enabled is
// TANKBATTLE_AUDIO_ENABLED. Defaults stay in effect when the file is missing,
// but the read error is still returned so the caller can report it.
func Load(configDir string) error {
	SetDefaults()

	viper.SetEnvPrefix("TANKBATTLE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Current returns the active settings.
func Current() Settings {
	return Settings{
		LogLevel:          viper.GetString("logLevel"),
		Seed:              viper.GetInt64("seed"),
		AudioEnabled:      viper.GetBool("audio.enabled"),
		StartFromMenu:     viper.GetBool("startFromMenu"),
		WindowScale:       viper.GetFloat64("window.scale"),
		LevelTransitionMs: viper.GetInt64("levelTransitionMs"),
	}
}
