package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  env: test
  serviceName: bookstore
  log:
    level: debug
http:
  port: 8080
mongo:
  uri: mongodb://db:27017
  database: books_test
secretKey:
  access: file-secret
auth:
  tokenTTL: 1h
`

func TestLoadWithEnv_FileAndEnvOverlay(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
	t.Setenv("SECRETKEY_ACCESS", "env-secret")
	t.Setenv("MONGO_URI", "mongodb://override:27017")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "debug", cfg.Env.Log.Level)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.SecretKey.Access)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://override:27017", cfg.Mongo.URI)
	assert.Equal(t, "books_test", cfg.Mongo.Database)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadWithEnv[Config]("missing")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultHTTPPort, cfg.HTTP.Port)
	assert.Equal(t, defaultMongoDatabase, cfg.Mongo.Database)
	assert.Equal(t, defaultConnectTimeout, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, defaultSlowThreshold, cfg.Mongo.SlowThreshold)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
	assert.Equal(t, defaultPageSize, cfg.Books.PageSize)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:  &AuthConfig{BcryptCost: 12, TokenTTL: time.Minute},
		Books: &BooksConfig{PageSize: 10},
	}
	applyDefaults(cfg)

	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Books.PageSize)
}
