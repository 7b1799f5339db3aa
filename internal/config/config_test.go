package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/team-registry/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `foo=bar, uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_PyroscopeRequiresServerAddress(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestLoad_WorkerCountsMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("REPORT_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for REPORT_WORKERS=0")
	}

	t.Setenv("REPORT_WORKERS", "2")
	t.Setenv("IMPORT_WORKERS", "abc")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for non-numeric IMPORT_WORKERS")
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("dev seeds demo data by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SEED_DEMO_DATA", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SeedDemoData {
			t.Fatalf("expected SeedDemoData=true in dev by default")
		}
	})

	t.Run("prod starts empty by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("SEED_DEMO_DATA", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SeedDemoData {
			t.Fatalf("expected SeedDemoData=false in prod by default")
		}
	})
}

func TestLoad_ParsesValues(t *testing.T) {
	t.Setenv("APP_ENV", " Stage ")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")
	t.Setenv("CACHE_TTL", "2m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	t.Setenv("APP_LOG_LEVEL", "debug")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvStage {
		t.Fatalf("unexpected AppEnv: %q", cfg.AppEnv)
	}
	if cfg.HTTPAddr != ":9090" || cfg.ReadTimeout != 3*time.Second {
		t.Fatalf("unexpected http settings: %q %s", cfg.HTTPAddr, cfg.ReadTimeout)
	}
	if cfg.CacheTTL != 2*time.Minute {
		t.Fatalf("unexpected CacheTTL: %s", cfg.CacheTTL)
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://b.example.com" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
	if cfg.LogLevel != logging.LevelDebug {
		t.Fatalf("unexpected LogLevel: %s", cfg.LogLevel)
	}
	if cfg.MetricsEnabled {
		t.Fatalf("expected MetricsEnabled=false")
	}
	if cfg.PyroscopeAppName != "team-registry-api" {
		t.Fatalf("expected pyroscope app name to default to service name, got %q", cfg.PyroscopeAppName)
	}
}

func TestLoad_InvalidDurations(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("CACHE_TTL", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative CACHE_TTL")
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("TEAM_REGISTRY_DOTENV_PROBE=from-file\nSERVICE_VERSION=from-file\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("TEAM_REGISTRY_DOTENV_PROBE", "")
	t.Setenv("SERVICE_VERSION", "from-env")
	os.Unsetenv("TEAM_REGISTRY_DOTENV_PROBE")

	if err := LoadDotEnv(filepath.Join(dir, "missing.env"), path); err != nil {
		t.Fatalf("load dotenv: %v", err)
	}
	if got := os.Getenv("TEAM_REGISTRY_DOTENV_PROBE"); got != "from-file" {
		t.Fatalf("expected probe from file, got %q", got)
	}
	if got := os.Getenv("SERVICE_VERSION"); got != "from-env" {
		t.Fatalf("expected existing env to win, got %q", got)
	}
}
