package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ApplicationRounds/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9000

[database]
dbname = "rounds"
password = "from-file"

[schedule]
first_hour = 8
last_hour = 20
default_policy = "longest"
`)
	t.Setenv(envDBPassword, "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, domain.Window{FirstHour: 8, LastHour: 20}, cfg.Schedule.Window())
	assert.Equal(t, domain.PolicyLongest, cfg.Schedule.Policy())
	assert.Equal(t, "UTC", cfg.Schedule.Timezone)
	assert.Contains(t, cfg.Database.DSN(), "dbname=rounds")
	assert.Contains(t, cfg.Database.DSN(), "password=from-env")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, ErrReadConfig)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"window":   "[database]\ndbname = \"x\"\n[schedule]\nfirst_hour = 20\nlast_hour = 10\n",
		"policy":   "[database]\ndbname = \"x\"\n[schedule]\ndefault_policy = \"median\"\n",
		"timezone": "[database]\ndbname = \"x\"\n[schedule]\ntimezone = \"Mars/Olympus\"\n",
		"dbname":   "[server]\nhttp_port = 8080\n",
		"redis":    "[database]\ndbname = \"x\"\n[redis]\nenabled = true\naddr = \"\"\n",
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
