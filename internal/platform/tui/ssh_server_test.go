package tui

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-life/internal/logging"
)

func TestNewSSHServer(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")
	cfg.Logger = logging.Discard()

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("unexpected address %q", srv.Addr())
	}
	if err := srv.Shutdown(); err != nil {
		t.Errorf("Shutdown() failed: %v", err)
	}
}

func TestSessionsOwnSeparateUniverses(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Pattern = "glider"
	srv := &SSHServer{config: cfg, logger: logging.Discard()}

	a, err := NewModel(srv.sessionOptions(40, 20))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	b, err := NewModel(srv.sessionOptions(40, 20))
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}

	if a.Universe() == b.Universe() {
		t.Fatal("sessions must not share a universe")
	}
	a.Universe().Tick()
	if b.Universe().Generation() != 1 {
		t.Error("advancing one session changed another")
	}
	if a.TickRate() != cfg.Life.Simulation.TickRate {
		t.Errorf("session tick rate %d, expected %d", a.TickRate(), cfg.Life.Simulation.TickRate)
	}
}
