package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "ENV_FILE", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS"} {
		os.Unsetenv(key)
	}

	cfg := Load()

	if cfg.HTTPAddr != ":8080" {
		t.Errorf("Expected HTTPAddr :8080, got %s", cfg.HTTPAddr)
	}
	if cfg.EnvFile != ".env" {
		t.Errorf("Expected EnvFile .env, got %s", cfg.EnvFile)
	}
	if cfg.StaticDir != "static" {
		t.Errorf("Expected StaticDir static, got %s", cfg.StaticDir)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Expected info/text logging, got %s/%s", cfg.Log.Level, cfg.Log.Format)
	}
	if !reflect.DeepEqual(cfg.CORSOrigins, []string{"*"}) {
		t.Errorf("Expected wildcard CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoadCustomValues(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":5000")
	t.Setenv("STATIC_DIR", "public")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	if cfg.HTTPAddr != ":5000" {
		t.Errorf("Expected HTTPAddr :5000, got %s", cfg.HTTPAddr)
	}
	if cfg.StaticDir != "public" {
		t.Errorf("Expected StaticDir public, got %s", cfg.StaticDir)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Expected json log format, got %s", cfg.Log.Format)
	}
	want := []string{"https://a.example", "https://b.example"}
	if !reflect.DeepEqual(cfg.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v; want %v", cfg.CORSOrigins, want)
	}
}

func TestLoadFromINI(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "ENV_FILE", "STATIC_DIR", "LOG_LEVEL", "LOG_FORMAT", "CORS_ORIGINS"} {
		os.Unsetenv(key)
	}

	iniPath := filepath.Join(t.TempDir(), "azdns.ini")
	iniContent := `[http]
addr = :7070

[app]
static_dir = web

[log]
level = debug
`
	if err := os.WriteFile(iniPath, []byte(iniContent), 0o644); err != nil {
		t.Fatalf("write INI file: %v", err)
	}

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}

	if cfg.HTTPAddr != ":7070" {
		t.Errorf("Expected HTTPAddr :7070, got %s", cfg.HTTPAddr)
	}
	if cfg.StaticDir != "web" {
		t.Errorf("Expected StaticDir web, got %s", cfg.StaticDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %s", cfg.Log.Level)
	}
	// Values absent from the INI keep their defaults.
	if cfg.EnvFile != ".env" {
		t.Errorf("Expected default EnvFile, got %s", cfg.EnvFile)
	}
}

func TestLoadFromINIEnvOverride(t *testing.T) {
	iniPath := filepath.Join(t.TempDir(), "azdns.ini")
	if err := os.WriteFile(iniPath, []byte("[http]\naddr = :7070\n"), 0o644); err != nil {
		t.Fatalf("write INI file: %v", err)
	}

	t.Setenv("HTTP_ADDR", ":6060")

	cfg, err := LoadFromINI(iniPath)
	if err != nil {
		t.Fatalf("LoadFromINI() failed: %v", err)
	}
	if cfg.HTTPAddr != ":6060" {
		t.Errorf("Environment must win over INI: got %s", cfg.HTTPAddr)
	}
}

func TestLoadFromINIMissingFile(t *testing.T) {
	if _, err := LoadFromINI(filepath.Join(t.TempDir(), "absent.ini")); err == nil {
		t.Error("Expected error for missing INI file")
	}
}

func TestSplitOrigins(t *testing.T) {
	tests := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://x.example", []string{"https://x.example"}},
		{"a, b ,c", []string{"a", "b", "c"}},
		{" , ", []string{"*"}},
		{"", []string{"*"}},
	}
	for _, tt := range tests {
		if got := splitOrigins(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitOrigins(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}
