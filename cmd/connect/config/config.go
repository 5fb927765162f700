// Package config loads the game settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Set of player kinds.
const (
	KindHuman = "human"
	KindAI    = "ai"
)

// Set of user interfaces.
const (
	UITerminal = "tui"
	UIConsole  = "console"
)

// Config represents the settings for a session of games.
type Config struct {
	PlayerX     string
	PlayerO     string
	NameX       string
	NameO       string
	First       string
	Seed        int64
	UI          string
	Color       string
	DebugLog    string
	Sound       bool
	AudioFolder string
	SnapshotDir string
}

// Load reads an optional .env file and then the CONNECT4_ variables from
// the environment. Missing values take their defaults.
func Load(envFiles ...string) Config {
	if err := godotenv.Load(envFiles...); err != nil && !os.IsNotExist(err) {
		log.Printf("load env file: %s", err)
	}

	return Config{
		PlayerX:     GetEnv("CONNECT4_PLAYER_X", ""),
		PlayerO:     GetEnv("CONNECT4_PLAYER_O", ""),
		NameX:       GetEnv("CONNECT4_NAME_X", ""),
		NameO:       GetEnv("CONNECT4_NAME_O", ""),
		First:       GetEnv("CONNECT4_FIRST", "X"),
		Seed:        GetEnvAsInt64("CONNECT4_SEED", 0),
		UI:          GetEnv("CONNECT4_UI", UIConsole),
		Color:       GetEnv("CONNECT4_COLOR", "auto"),
		DebugLog:    GetEnv("CONNECT4_DEBUG_LOG", ""),
		Sound:       GetEnvAsBool("CONNECT4_SOUND", false),
		AudioFolder: GetEnv("CONNECT4_AUDIO_FOLDER", "audio"),
		SnapshotDir: GetEnv("CONNECT4_SNAPSHOT_DIR", ""),
	}
}

// GetEnv returns the value of the variable or the default when unset.
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// GetEnvAsInt64 returns the variable as an integer or the default when it
// is unset or malformed.
func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsBool returns the variable as a boolean or the default when it is
// unset or malformed.
func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
