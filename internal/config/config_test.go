package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestMustLoad(t *testing.T) {
	t.Run("Fills defaults for missing keys", func(t *testing.T) {
		// Given: a config file with only the log level
		path := writeConfig(t, "log-level: debug\n")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: the rest comes from env-default tags
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "8080", conf.SocketPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, RecordsRedis, conf.Storage.Records)
		assert.Equal(t, 30*time.Second, conf.Game.GracePeriod)
		assert.Equal(t, 15, conf.Game.DefaultBoardSize)
		assert.Equal(t, 2*time.Minute, conf.Presence.HeartbeatWindow)
		assert.Equal(t, 60*time.Second, conf.Presence.CleanupInterval)
		assert.Equal(t, 2*time.Minute, conf.Challenge.TTL)
	})

	t.Run("File values and environment override defaults", func(t *testing.T) {
		// Given: a config file with custom values and an env override
		path := writeConfig(t, `
socket-port: "7000"
game:
  grace-period: 45s
  max-board-size: 19
storage:
  records: postgres
`)
		t.Setenv("REDIS_HOST", "cache")

		// When: it is loaded
		conf := MustLoad(path)

		// Then: both sources are applied
		assert.Equal(t, "7000", conf.SocketPort)
		assert.Equal(t, 45*time.Second, conf.Game.GracePeriod)
		assert.Equal(t, 19, conf.Game.MaxBoardSize)
		assert.Equal(t, RecordsPostgres, conf.Storage.Records)
		assert.Equal(t, "cache:6379", conf.Redis.GetRedisAddr())
	})

	t.Run("Panics when file is missing", func(t *testing.T) {
		assert.Panics(t, func() {
			MustLoad(filepath.Join(t.TempDir(), "missing.yml"))
		})
	})
}
