package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/yjkwon/todo-service/internal/platform/config"
)

func writeConfigDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	return dir
}

const baseYAML = `
server:
  host: 0.0.0.0
  port: 8080
log:
  level: info
  format: json
store:
  driver: memory
`

func TestLoad_Defaults(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"test.yaml": "",
	})

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Client.Retry.MaxAttempts != 3 {
		t.Errorf("Retry.MaxAttempts = %d, want default 3", cfg.Client.Retry.MaxAttempts)
	}
	if cfg.Cache.PageLimit != 20 {
		t.Errorf("Cache.PageLimit = %d, want default 20", cfg.Cache.PageLimit)
	}
	if cfg.Client.Timeout != 30*time.Second {
		t.Errorf("Client.Timeout = %v, want default 30s", cfg.Client.Timeout)
	}
}

func TestLoad_ProfileOverridesBase(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"local.yaml": `
log:
  level: debug
  format: text
store:
  driver: sqlite
  path: /tmp/todos.db
`,
	})

	cfg, err := config.Load("local", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Store.Driver != "sqlite" {
		t.Errorf("Store.Driver = %q, want sqlite", cfg.Store.Driver)
	}
	// Base values not overridden by the profile survive.
	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080 from base", cfg.Server.Port)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"test.yaml": "",
	})

	t.Setenv("APP_SERVER_PORT", "9090")
	t.Setenv("APP_STORE_DRIVER", "sqlite")
	t.Setenv("APP_STORE_PATH", "/tmp/env.db")
	t.Setenv("APP_SERVER_READ_TIMEOUT", "7s")

	cfg, err := config.Load("test", config.WithConfigDir(dir))
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090 from env", cfg.Server.Port)
	}
	if cfg.Store.Driver != "sqlite" || cfg.Store.Path != "/tmp/env.db" {
		t.Errorf("Store = %+v, want sqlite at /tmp/env.db", cfg.Store)
	}
	// Keys with field-internal underscores resolve against known config
	// keys instead of being split on every underscore.
	if cfg.Server.ReadTimeout != 7*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 7s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_InvalidProfile(t *testing.T) {
	tests := []string{"", "  ", "../etc", "a/b", `a\b`}

	for _, profile := range tests {
		if _, err := config.Load(profile); err == nil {
			t.Errorf("Load(%q) = nil error, want rejection", profile)
		}
	}
}

func TestLoad_MissingBaseFile(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{"test.yaml": ""})

	_, err := config.Load("test", config.WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load = nil error, want missing base config error")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"test.yaml": `
log:
  level: loud
`,
	})

	_, err := config.Load("test", config.WithConfigDir(dir))
	if err == nil {
		t.Fatal("Load = nil error, want validation failure")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("err = %v, want log.level mentioned", err)
	}
}

func TestValidate_StoreDriver(t *testing.T) {
	dir := writeConfigDir(t, map[string]string{
		"base.yaml": baseYAML,
		"test.yaml": `
store:
  driver: postgres
`,
	})

	_, err := config.Load("test", config.WithConfigDir(dir))
	if err == nil || !strings.Contains(err.Error(), "store.driver") {
		t.Errorf("err = %v, want store.driver rejection", err)
	}
}
