package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 8081
read_timeout = 5
write_timeout = 5
idle_timeout = 30
shutdown_timeout = 10

[database]
host = "localhost"
port = 5432
user = "domes"
password = "secret"
dbname = "domes"
sslmode = "disable"
max_open_conns = 20
max_idle_conns = 5
conn_max_lifetime = 300

[logs]
level = "INFO"
file = ""

[metrics]
enabled = true
service_name = "domes-booking"

[pricing]
total_domes = 8
base_rate = 450.5
currency = "USD"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleConfig)

	cfg, err := load(path, filepath.Join(dir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.HTTPPort)
	assert.Equal(t, "domes", cfg.Database.DBName)
	assert.Equal(t, 20, cfg.Database.MaxOpenConns)
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, "host=localhost port=5432 user=domes password=secret dbname=domes sslmode=disable", cfg.Database.DSN())

	pricing := cfg.Pricing()
	assert.Equal(t, 8, pricing.TotalDomesFallback)
	assert.Equal(t, 450.5, pricing.BaseRate)
	assert.Equal(t, "USD", pricing.Currency)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleConfig)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "from-env")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TOTAL_DOMES", "4")
	t.Setenv("BASE_RATE_PEN", "380")

	cfg, err := load(path, filepath.Join(dir, ".env"))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "from-env", cfg.Database.Password)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, 4, cfg.Pricing().TotalDomesFallback)
	assert.Equal(t, 380.0, cfg.Pricing().BaseRate)
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleConfig)
	envFile := writeFile(t, dir, ".env", "DB_USER=from_dotenv\nDB_NAME=domes_dev\n")

	// godotenv пишет в окружение процесса, восстанавливаем после теста
	t.Setenv("DB_USER", "")
	t.Setenv("DB_NAME", "")
	require.NoError(t, os.Unsetenv("DB_USER"))
	require.NoError(t, os.Unsetenv("DB_NAME"))

	cfg, err := load(path, envFile)
	require.NoError(t, err)

	assert.Equal(t, "from_dotenv", cfg.Database.User)
	assert.Equal(t, "domes_dev", cfg.Database.DBName)
}

func TestLoad_InvalidPricingFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleConfig)

	t.Setenv("TOTAL_DOMES", "seis")
	t.Setenv("BASE_RATE_PEN", "-10")
	t.Setenv("CURRENCY", "NOPE")

	cfg, err := load(path, filepath.Join(dir, ".env"))
	require.NoError(t, err)

	pricing := cfg.Pricing()
	assert.Equal(t, 6, pricing.TotalDomesFallback)
	assert.Equal(t, 420.0, pricing.BaseRate)
	assert.Equal(t, "PEN", pricing.Currency)
}

func TestPricing_Defaults(t *testing.T) {
	cfg := &Config{}
	pricing := cfg.Pricing()

	assert.Equal(t, 6, pricing.TotalDomesFallback)
	assert.Equal(t, 420.0, pricing.BaseRate)
	assert.Equal(t, "PEN", pricing.Currency)

	cfg.PricingFile.BaseRate = math.Inf(1)
	cfg.PricingFile.TotalDomes = -3
	assert.Equal(t, 420.0, cfg.Pricing().BaseRate)
	assert.Equal(t, 6, cfg.Pricing().TotalDomesFallback)
}

func TestLoad_ValidationError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", `
[database]
host = "localhost"
user = "domes"
dbname = "domes"
sslmode = "sometimes"
`)

	_, err := load(path, filepath.Join(dir, ".env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SSLMode")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := load(filepath.Join(t.TempDir(), "missing.toml"), ".env.missing")
	assert.Error(t, err)
}

func TestLoad_BadIntegerEnv(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.toml", sampleConfig)
	t.Setenv("DB_PORT", "five-four-three-two")

	_, err := load(path, filepath.Join(dir, ".env"))
	assert.ErrorContains(t, err, "DB_PORT")
}

func TestLoad_PricingWrongTypesFallBack(t *testing.T) {
	dir := t.TempDir()
	base := sampleConfig[:strings.Index(sampleConfig, "[pricing]")]

	cases := []struct {
		name       string
		pricing    string
		wantDomes  int
		wantRate   float64
		wantSymbol string
	}{
		{"text rate", "[pricing]\nbase_rate = \"abc\"\ntotal_domes = 4\n", 4, 420, "PEN"},
		{"fractional domes", "[pricing]\ntotal_domes = 6.5\nbase_rate = 300\n", 6, 300, "PEN"},
		{"numeric strings", "[pricing]\ntotal_domes = \"5\"\nbase_rate = \"399.9\"\n", 5, 399.9, "PEN"},
		{"integer rate", "[pricing]\nbase_rate = 500\n", 6, 500, "PEN"},
		{"wrong currency type", "[pricing]\ncurrency = 604\n", 6, 420, "PEN"},
		{"whole float domes", "[pricing]\ntotal_domes = 7.0\n", 7, 420, "PEN"},
		{"no section", "", 6, 420, "PEN"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeFile(t, dir, "config.toml", base+tc.pricing)

			cfg, err := load(path, filepath.Join(dir, ".env"))
			require.NoError(t, err)

			pricing := cfg.Pricing()
			assert.Equal(t, tc.wantDomes, pricing.TotalDomesFallback)
			assert.Equal(t, tc.wantRate, pricing.BaseRate)
			assert.Equal(t, tc.wantSymbol, pricing.Currency)
		})
	}
}
