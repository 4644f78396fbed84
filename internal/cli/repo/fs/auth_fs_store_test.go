package fs

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// withTempConfig переопределяет пользовательский каталог конфигурации на
// время теста, чтобы файл токена создавался в temp.
func withTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if runtime.GOOS == "windows" {
		t.Setenv("APPDATA", dir)
	} else {
		t.Setenv("XDG_CONFIG_HOME", dir)
	}
	return dir
}

func TestAuthFSStore_SaveLoadClear(t *testing.T) {
	dir := withTempConfig(t)
	store := AuthFSStore{}

	if err := store.Save("tok-123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "Filmoteka", "auth_token")); err != nil {
		t.Fatalf("token file not created: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-123" {
		t.Fatalf("expected 'tok-123', got %q", got)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(); err == nil {
		t.Fatalf("expected error loading cleared token")
	}
	// повторный Clear — не ошибка
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear must be no-op: %v", err)
	}
}

func TestAuthFSStore_LoadTrimsTrailingWhitespace(t *testing.T) {
	dir := withTempConfig(t)

	p := filepath.Join(dir, "Filmoteka")
	if err := os.MkdirAll(p, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(p, "auth_token"), []byte("tok-abc\r\n  "), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := AuthFSStore{}.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "tok-abc" {
		t.Fatalf("expected trimmed 'tok-abc', got %q", got)
	}
}

func TestAuthFSStore_LoadEmptyFile(t *testing.T) {
	dir := withTempConfig(t)

	p := filepath.Join(dir, "Filmoteka")
	if err := os.MkdirAll(p, 0o700); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(p, "auth_token"), nil, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := (AuthFSStore{}).Load(); err == nil {
		t.Fatalf("expected error for empty token file")
	}
}
