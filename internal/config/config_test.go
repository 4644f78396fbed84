package config

import (
	"flag"
	"os"
	"strings"
	"testing"
)

// resetFlagSet создаёт новый FlagSet перед каждым вызовом NewConfig,
// чтобы избежать повторной регистрации одних и тех же флагов между тестами.
func resetFlagSet(t *testing.T) {
	t.Helper()
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	// подавляем вывод парсера флагов в тестах
	flag.CommandLine.SetOutput(os.Stderr)
}

func TestNewConfig_DefaultsWhenEnvEmpty(t *testing.T) {
	t.Setenv("DATABASE_URI", "")
	t.Setenv("AUTH_SECRET", "")
	t.Setenv("TOKEN_TTL_HOURS", "")
	t.Setenv("POSTER_MAX_MB", "")
	t.Setenv("S3_REGION", "")
	t.Setenv("S3_BUCKET", "")
	t.Setenv("BASE_URL", "")
	t.Setenv("ENABLE_HTTPS", "")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.AuthSecret != "dev-secret-key" {
		t.Fatalf("AuthSecret default expected 'dev-secret-key', got %q", cfg.AuthSecret)
	}
	if cfg.TokenTTLHours != 24 {
		t.Fatalf("TokenTTLHours default expected 24, got %d", cfg.TokenTTLHours)
	}
	if cfg.PosterMaxSizeMB != 25 {
		t.Fatalf("PosterMaxSizeMB default expected 25, got %d", cfg.PosterMaxSizeMB)
	}
	if cfg.S3Region != "us-east-1" {
		t.Fatalf("S3Region default expected 'us-east-1', got %q", cfg.S3Region)
	}
	if cfg.S3Bucket != "filmoteka" {
		t.Fatalf("S3Bucket default expected 'filmoteka', got %q", cfg.S3Bucket)
	}
	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("BaseURL default expected 'localhost:8081', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "http://localhost:8081" {
		t.Fatalf("ServerURL default expected 'http://localhost:8081', got %q", cfg.ServerURL)
	}
}

func TestNewConfig_BaseURLAndHTTPS(t *testing.T) {
	t.Setenv("BASE_URL", "example.com:443")
	t.Setenv("ENABLE_HTTPS", "true")
	t.Setenv("AUTH_SECRET", "top")
	t.Setenv("POSTER_MAX_MB", "10")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "example.com:443" {
		t.Fatalf("BaseURL expected 'example.com:443', got %q", cfg.BaseURL)
	}
	if cfg.ServerURL != "https://example.com:443" {
		t.Fatalf("ServerURL expected 'https://example.com:443', got %q", cfg.ServerURL)
	}
	if cfg.AuthSecret != "top" {
		t.Fatalf("AuthSecret expected from env 'top', got %q", cfg.AuthSecret)
	}
	if cfg.PosterMaxSizeMB != 10 {
		t.Fatalf("PosterMaxSizeMB expected 10, got %d", cfg.PosterMaxSizeMB)
	}
}

func TestNewConfig_InvalidBaseURLFallback(t *testing.T) {
	// Невалидный BASE_URL (со схемой) должен откатиться на localhost:8081
	t.Setenv("BASE_URL", "http://bad:8080")
	t.Setenv("ENABLE_HTTPS", "false")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.BaseURL != "localhost:8081" {
		t.Fatalf("invalid BASE_URL must fallback to 'localhost:8081', got %q", cfg.BaseURL)
	}
	if !strings.HasPrefix(cfg.ServerURL, "http://localhost:8081") {
		t.Fatalf("ServerURL must reflect fallback base, got %q", cfg.ServerURL)
	}
}

func TestNewConfig_S3FromEnv(t *testing.T) {
	t.Setenv("S3_ENDPOINT", "http://localhost:9000")
	t.Setenv("S3_REGION", "eu-west-1")
	t.Setenv("S3_BUCKET", "posters")
	t.Setenv("S3_PUBLIC_URL", "https://cdn.example.com/posters")

	resetFlagSet(t)
	cfg := NewConfig()

	if cfg.S3Endpoint != "http://localhost:9000" {
		t.Fatalf("S3Endpoint expected from env, got %q", cfg.S3Endpoint)
	}
	if cfg.S3Region != "eu-west-1" {
		t.Fatalf("S3Region expected 'eu-west-1', got %q", cfg.S3Region)
	}
	if cfg.S3Bucket != "posters" {
		t.Fatalf("S3Bucket expected 'posters', got %q", cfg.S3Bucket)
	}
	if cfg.S3PublicURL != "https://cdn.example.com/posters" {
		t.Fatalf("S3PublicURL expected from env, got %q", cfg.S3PublicURL)
	}
}
