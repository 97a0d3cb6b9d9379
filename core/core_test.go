package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestInitLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snakefx.log")

	log, err := InitLogger(path, "info")
	if err != nil {
		t.Fatalf("Expected logger, got error %v", err)
	}
	log.Infow("run started", "run", "abc")
	log.Debugw("filtered out")
	SyncLogger(log)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file, got %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "run started") {
		t.Errorf("Expected info entry in log, got %q", out)
	}
	if strings.Contains(out, "filtered out") {
		t.Errorf("Expected debug entry filtered at info level, got %q", out)
	}
}

func TestInitLoggerRejectsBadLevel(t *testing.T) {
	if _, err := InitLogger(filepath.Join(t.TempDir(), "x.log"), "loud"); err == nil {
		t.Error("Expected error for unknown level")
	}
}

type fakeTerminal struct{ finalized chan struct{} }

func (f *fakeTerminal) Fini() { close(f.finalized) }

func TestGoRestoresTerminalOnPanic(t *testing.T) {
	term := &fakeTerminal{finalized: make(chan struct{})}
	exited := make(chan int, 1)

	crashExit = func(code int) { exited <- code }
	defer func() { crashExit = os.Exit }()
	RegisterCrashTerminal(term)

	Go(func() { panic("boom") })

	select {
	case code := <-exited:
		if code != 1 {
			t.Errorf("Expected exit code 1, got %d", code)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected crash handler to exit")
	}

	select {
	case <-term.finalized:
	default:
		t.Error("Expected terminal finalized before exit")
	}
}
