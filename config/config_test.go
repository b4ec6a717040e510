package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfigAppliesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	minimal := []byte(`
database:
  mysql:
    host: 127.0.0.1
    user: root
    dbname: ecommerce
jwt:
  secret: test
`)
	require.NoError(t, os.WriteFile(path, minimal, 0644))

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, 6, cfg.JWT.ExpireHours)
	assert.Equal(t, 50, cfg.Database.Mysql.MaxOpenConns)
	assert.Equal(t, 10, cfg.Database.Mysql.MaxIdleConns)
	assert.Equal(t, "ecom.events", cfg.MQ.Exchange)
	assert.Equal(t, 8, cfg.MQ.ChannelPoolSize)
	assert.Equal(t, 1000, cfg.RateLimits.Global.RPS)
	assert.Equal(t, 1000, cfg.RateLimits.Order.Burst)
}

func TestInitConfigReadsValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	full := []byte(`
server:
  port: 9090
  mode: release
database:
  mysql:
    host: db.internal
    port: 3307
    user: ecom
    password: pw
    dbname: shop
    max_open_conns: 5
jwt:
  secret: supersecret
  expire_hours: 12
log:
  level: warn
  format: text
admin:
  email: admin@shop.io
  password: pw
`)
	require.NoError(t, os.WriteFile(path, full, 0644))

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Mysql.Host)
	assert.Equal(t, 3307, cfg.Database.Mysql.Port)
	assert.Equal(t, 5, cfg.Database.Mysql.MaxOpenConns)
	assert.Equal(t, 12, cfg.JWT.ExpireHours)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "admin@shop.io", cfg.Admin.Email)
}

func TestInitConfigMissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
