package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	MazeWidth        int    // Width of the maze printed at startup
	MazeHeight       int    // Height of the maze printed at startup
	MazeSeed         *int64 // Seed for the startup maze; nil picks one from the clock
	MazeMaxDimension int    // Largest width or height accepted by the generator
	Serve            bool   // Serve the REST API instead of printing a single maze
	HostIP           string // Host IP for the server
	RESTPort         int    // Port for the REST API
	GinMode          string // Mode for the Gin framework (e.g., release, debug, test)
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	cfg, err := load(os.LookupEnv)
	if err != nil {
		log.Fatalf("[APP] [FATAL] %v", err)
	}
	return cfg
}

// load populates a Config from lookup, falling back to defaults for unset keys.
func load(lookup func(string) (string, bool)) (Config, error) {
	var (
		cfg Config
		err error
	)

	if cfg.MazeWidth, err = getEnvAsIntWithDefault(lookup, "MAZE_WIDTH", 20); err != nil {
		return Config{}, err
	}
	if cfg.MazeHeight, err = getEnvAsIntWithDefault(lookup, "MAZE_HEIGHT", 20); err != nil {
		return Config{}, err
	}
	if cfg.MazeMaxDimension, err = getEnvAsIntWithDefault(lookup, "MAZE_MAX_DIMENSION", 500); err != nil {
		return Config{}, err
	}
	if cfg.RESTPort, err = getEnvAsIntWithDefault(lookup, "REST_PORT", 8080); err != nil {
		return Config{}, err
	}
	if cfg.Serve, err = getEnvAsBoolWithDefault(lookup, "SERVE", false); err != nil {
		return Config{}, err
	}
	if raw, exists := lookup("MAZE_SEED"); exists && raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("environment variable MAZE_SEED must be an integer: %w", err)
		}
		cfg.MazeSeed = &seed
	}

	cfg.HostIP = getEnvWithDefault(lookup, "HOST_IP", "0.0.0.0")
	cfg.GinMode = getEnvWithDefault(lookup, "GIN_MODE", "release")

	return cfg, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault parses an integer environment variable, or returns defaultValue if not set.
func getEnvAsIntWithDefault(lookup func(string) (string, bool), key string, defaultValue int) (int, error) {
	valueStr, exists := lookup(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}

// getEnvAsBoolWithDefault parses a boolean environment variable, or returns defaultValue if not set.
func getEnvAsBoolWithDefault(lookup func(string) (string, bool), key string, defaultValue bool) (bool, error) {
	valueStr, exists := lookup(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return value, nil
}
