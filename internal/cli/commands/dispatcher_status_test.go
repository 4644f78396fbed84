package commands

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	fsrepo "Filmoteka/internal/cli/repo/fs"
	"Filmoteka/internal/config"
)

func TestDispatch_UnknownAndHelp(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)

	cfg := &config.Config{}

	if code := Dispatch(context.Background(), cfg, []string{"no-such-command"}); code != 2 {
		t.Fatalf("unknown command must exit 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Unknown command") {
		t.Fatalf("expected unknown command message, got %q", buf.String())
	}

	buf.Reset()
	if code := Dispatch(context.Background(), cfg, []string{"help", "login"}); code != 0 {
		t.Fatalf("help login must exit 0, got %d", code)
	}
	if !strings.Contains(buf.String(), "login <email> <password>") {
		t.Fatalf("expected login usage, got %q", buf.String())
	}

	buf.Reset()
	if code := Dispatch(context.Background(), cfg, nil); code != 2 {
		t.Fatalf("no args must exit 2, got %d", code)
	}
}

func TestDispatch_UsageErrorExitCode(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)

	// login без аргументов → ErrUsage → exit 2 с подсказкой
	if code := Dispatch(context.Background(), &config.Config{}, []string{"login"}); code != 2 {
		t.Fatalf("usage error must exit 2, got %d", code)
	}
	if !strings.Contains(buf.String(), "Usage: login") {
		t.Fatalf("expected usage hint, got %q", buf.String())
	}
}

func TestStatus_Run(t *testing.T) {
	withTempConfig(t)
	buf := captureOut(t)

	// без токена
	if err := (statusCmd{}).Run(context.Background(), &config.Config{}, nil); err != nil {
		t.Fatalf("status without token must not fail: %v", err)
	}
	if !strings.Contains(buf.String(), "Not logged in") {
		t.Fatalf("expected 'Not logged in', got %q", buf.String())
	}

	// с токеном
	if err := (fsrepo.AuthFSStore{}).Save("tok-123"); err != nil {
		t.Fatalf("save token: %v", err)
	}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Fatalf("expected bearer header, got %q", got)
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true,"message":"ok","data":{"name":"Alice","email":"alice@example.com"}}`))
	}))
	defer ts.Close()

	buf.Reset()
	if err := (statusCmd{}).Run(context.Background(), &config.Config{ServerURL: ts.URL}, nil); err != nil {
		t.Fatalf("status: %v", err)
	}
	if !strings.Contains(buf.String(), "Alice <alice@example.com>") {
		t.Fatalf("expected profile line, got %q", buf.String())
	}

	// просроченная сессия
	ts401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts401.Close()

	buf.Reset()
	if err := (statusCmd{}).Run(context.Background(), &config.Config{ServerURL: ts401.URL}, nil); err != nil {
		t.Fatalf("expired session must not fail: %v", err)
	}
	if !strings.Contains(buf.String(), "Session expired") {
		t.Fatalf("expected expired message, got %q", buf.String())
	}
}
