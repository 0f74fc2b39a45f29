package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
api:
  port: "9090"
  jwt_signing_key: "file-key"
  secrets_key: "file-secrets"
  allowed_cors_domains:
    - "https://admin.example.com"
database:
  driver: sqlite
  dsn: "/tmp/backoffice.db"
broker:
  driver: kafka
  kafka_brokers:
    - "localhost:9092"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "9090", conf.API.Port)
	assert.Equal(t, []string{"https://admin.example.com"}, conf.API.AllowedCORSDomains)
	assert.Equal(t, 12*time.Hour, conf.API.TokenTTL)
	assert.Equal(t, "sqlite", conf.Database.Driver)
	assert.Equal(t, "kafka", conf.Broker.Driver)
	assert.Equal(t, "backoffice.events", conf.Broker.KafkaTopic)
	assert.Equal(t, 7*24*time.Hour, conf.Onboarding.StaleAfter)
	assert.Equal(t, "0 9 * * *", conf.Onboarding.SweepSchedule)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("API_JWT_SIGNING_KEY", "env-key")

	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)
	assert.Equal(t, "env-key", conf.API.JWTSigningKey)
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	_, err := Load(writeConfig(t, `
api:
  jwt_signing_key: k
  secrets_key: s
database:
  driver: oracle
`))
	assert.Error(t, err)
}

func TestLoadRequiresSigningKey(t *testing.T) {
	_, err := Load(writeConfig(t, `
database:
  driver: postgres
`))
	assert.Error(t, err)
}

func TestValidateRequiresCORSOrigin(t *testing.T) {
	conf, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	conf.API.AllowedCORSDomains = nil
	assert.ErrorContains(t, conf.Validate(), "api.allowed_cors_domains")
}
