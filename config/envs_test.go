package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := load(lookupFrom(nil))
		require.NoError(t, err)

		assert.Equal(t, 20, cfg.MazeWidth)
		assert.Equal(t, 20, cfg.MazeHeight)
		assert.Nil(t, cfg.MazeSeed)
		assert.Equal(t, 500, cfg.MazeMaxDimension)
		assert.False(t, cfg.Serve)
		assert.Equal(t, "0.0.0.0", cfg.HostIP)
		assert.Equal(t, 8080, cfg.RESTPort)
		assert.Equal(t, "release", cfg.GinMode)
	})

	t.Run("Overrides", func(t *testing.T) {
		cfg, err := load(lookupFrom(map[string]string{
			"MAZE_WIDTH":  "7",
			"MAZE_HEIGHT": "3",
			"MAZE_SEED":   "-12",
			"SERVE":       "true",
			"REST_PORT":   "9000",
			"GIN_MODE":    "debug",
		}))
		require.NoError(t, err)

		assert.Equal(t, 7, cfg.MazeWidth)
		assert.Equal(t, 3, cfg.MazeHeight)
		require.NotNil(t, cfg.MazeSeed)
		assert.Equal(t, int64(-12), *cfg.MazeSeed)
		assert.True(t, cfg.Serve)
		assert.Equal(t, 9000, cfg.RESTPort)
		assert.Equal(t, "debug", cfg.GinMode)
	})

	t.Run("Malformed values", func(t *testing.T) {
		for key, value := range map[string]string{
			"MAZE_WIDTH": "wide",
			"MAZE_SEED":  "0x",
			"SERVE":      "maybe",
			"REST_PORT":  "",
		} {
			_, err := load(lookupFrom(map[string]string{key: value}))
			assert.Error(t, err, key)
		}
	})
}
