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
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	p := writeConfig(t, `
[storage]
type = "memory"

[http]
port = "9000"
allowed_origins = ["https://admin.tastyhub.io"]
rate_limit = 5
rate_window = "30s"

[auth]
jwt_secret = "s3cret"

[redis]
addr = "localhost:6379"
ttl = "2m"

[warmup]
worker_interval = "90s"
periods = ["day", "year"]
`)

	c, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, c.Storage.Type)
	assert.Equal(t, "9000", c.HTTP.Port)
	assert.Equal(t, []string{"https://admin.tastyhub.io"}, c.HTTP.AllowedOrigins)
	assert.Equal(t, 5, c.HTTP.RateLimit)
	assert.Equal(t, 30*time.Second, c.HTTP.RateWindow)
	assert.Equal(t, 30*time.Second, c.HTTP.RequestTimeout)
	assert.Equal(t, "s3cret", c.Auth.JWTSecret)
	assert.Equal(t, "24h", c.Auth.JWTTTL)
	assert.Equal(t, "UTC", c.Dashboard.Timezone)
	assert.Equal(t, 2*time.Minute, c.Redis.TTL)
	assert.Equal(t, "dashboard.changes", c.NATS.Subject)
	assert.Equal(t, 90*time.Second, c.Warmup.WorkerInterval)
	assert.Equal(t, []string{"day", "year"}, c.Warmup.Periods)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_TYPE", "MySQL")
	t.Setenv("MYSQL_DSN", "u:p@tcp(db:3306)/dash?parseTime=true")
	t.Setenv("AUTH_JWT_SECRET", "from-env")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("WARMUP_WORKER_INTERVAL", "0s")
	p := writeConfig(t, `
[auth]
jwt_secret = "from-file"
`)

	c, err := LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, StorageMySQL, c.Storage.Type)
	assert.Equal(t, "u:p@tcp(db:3306)/dash?parseTime=true", c.DB.DSN)
	assert.Equal(t, "from-env", c.Auth.JWTSecret)
	assert.Equal(t, "redis:6379", c.Redis.Addr)
	assert.Equal(t, "nats://nats:4222", c.NATS.URL)
	assert.Equal(t, time.Duration(0), c.Warmup.WorkerInterval)
}

func TestLoadConfigDSNFromParts(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("MYSQL_HOST", "db")
	t.Setenv("MYSQL_USER", "dash")
	t.Setenv("MYSQL_PASSWORD", "pw")
	t.Setenv("MYSQL_DATABASE", "dashboard")

	c, err := LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, "dash:pw@tcp(db:3306)/dashboard?charset=utf8mb4&parseTime=true", c.DB.DSN)
}

func TestLoadConfigInvalidStorage(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	_, err := LoadConfig(writeConfig(t, "[storage]\ntype = \"mongo\"\n"))
	assert.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "[storage]\ntype = \"mysql\"\n"))
	assert.ErrorContains(t, err, "mysql.dsn")
}

func TestLoadConfigSeedNeedsMemory(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	c, err := LoadConfig(writeConfig(t, "[storage]\ntype = \"memory\"\nseed = true\n"))
	require.NoError(t, err)
	assert.True(t, c.Storage.Seed)

	_, err = LoadConfig(writeConfig(t, "[storage]\ntype = \"mysql\"\nseed = true\n[mysql]\ndsn = \"u:p@tcp(db)/d\"\n"))
	assert.ErrorContains(t, err, "storage.seed")
}

func TestRequirePersistent(t *testing.T) {
	c := &Config{Storage: StorageConfig{Type: StorageMemory}}
	assert.ErrorContains(t, c.RequirePersistent("seed"), "seed needs mysql storage")

	c.Storage.Type = StorageMySQL
	assert.NoError(t, c.RequirePersistent("seed"))
}
