package httpserver_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/Takeda-Takumi/domain-modeling-made-functional/internal/platform/httpserver"
)

func TestConfigFromEnv(t *testing.T) {
	t.Run("default address", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "")
		cfg := httpserver.ConfigFromEnv()
		if cfg.Addr != ":8080" {
			t.Errorf("Addr = %q, want :8080", cfg.Addr)
		}
	})

	t.Run("override address", func(t *testing.T) {
		t.Setenv("HTTP_ADDR", "127.0.0.1:9090")
		cfg := httpserver.ConfigFromEnv()
		if cfg.Addr != "127.0.0.1:9090" {
			t.Errorf("Addr = %q, want 127.0.0.1:9090", cfg.Addr)
		}
		if cfg.ShutdownTimeout != httpserver.DefaultConfig().ShutdownTimeout {
			t.Errorf("ShutdownTimeout = %v, want default", cfg.ShutdownTimeout)
		}
	})
}

func TestServer_RunStopsOnContextCancel(t *testing.T) {
	cfg := httpserver.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	cfg.ShutdownTimeout = time.Second

	server := httpserver.New(cfg, http.NewServeMux(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx)
	}()

	// Give the listener a moment to come up before stopping it.
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil after graceful shutdown", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down after context cancellation")
	}
}

func TestServer_RunReportsListenFailure(t *testing.T) {
	cfg := httpserver.DefaultConfig()
	cfg.Addr = "256.256.256.256:0"

	server := httpserver.New(cfg, http.NewServeMux(), nil)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(context.Background())
	}()

	select {
	case err := <-done:
		if err == nil {
			t.Error("Run returned nil for an unusable listen address")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return for an unusable listen address")
	}
}
