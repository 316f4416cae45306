package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-gm-api/internal/config"
	"github.com/KirkDiggler/rpg-gm-api/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("", nil)
	s.Require().NoError(err)

	s.Equal(8080, cfg.HTTP.Port)
	s.Equal(50051, cfg.GRPC.Port)
	s.Equal(config.StorageRedis, cfg.Storage)
	s.Equal([]string{"localhost:6379"}, cfg.Redis.Addrs)
	s.Equal("X-Owner-ID", cfg.HTTP.OwnerHeader)
	s.Equal(30*time.Second, cfg.HTTP.ShutdownTimeout)
	s.Equal(1024, cfg.Library.CacheSize)
}

func (s *ConfigTestSuite) TestFileThenEnvThenFlags() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "gm-api.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(`
http:
  port: 9000
storage: memory
redis:
  draft_ttl: 48h
library:
  path: /data/pf2e.db
log:
  level: debug
`), 0o600))

	s.T().Setenv("GMAPI_LOG_LEVEL", "warn")
	s.T().Setenv("GMAPI_GRPC_PORT", "6000")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("http-port", 8080, "")
	s.Require().NoError(flags.Parse([]string{"--http-port=9100"}))

	cfg, err := config.Load(path, flags)
	s.Require().NoError(err)

	s.Equal(9100, cfg.HTTP.Port)
	s.Equal(6000, cfg.GRPC.Port)
	s.Equal(config.StorageMemory, cfg.Storage)
	s.Equal(48*time.Hour, cfg.Redis.DraftTTL)
	s.Equal("/data/pf2e.db", cfg.Library.Path)
	s.Equal("warn", cfg.Log.Level)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(filepath.Join(s.T().TempDir(), "missing.yaml"), nil)
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	cfg := &config.Config{
		HTTP:    config.HTTPConfig{Port: 0, OwnerHeader: "X-Owner-ID"},
		Storage: "postgres",
		Library: config.LibraryConfig{Path: "lib.db", CacheSize: 10},
		Log:     config.LogConfig{Format: "json"},
	}

	err := cfg.Validate()
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	s.Require().True(ok)
	s.Contains(fields, "http.port")
	s.Contains(fields, "storage")
}
