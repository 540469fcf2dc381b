package istty_test

import (
	"os"
	"testing"

	"github.com/creack/pty"
	"pkt.systems/prism/internal/istty"
)

func TestIsTerminalPTY(t *testing.T) {
	_, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	defer tty.Close()
	if !istty.IsTerminal(int(tty.Fd())) {
		t.Fatalf("expected pty slave to be a terminal")
	}
}

func TestIsTerminalPipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	defer r.Close()
	defer w.Close()
	if istty.IsTerminal(int(w.Fd())) {
		t.Fatalf("pipe reported as terminal")
	}
}

func TestIsTerminalNegativeFd(t *testing.T) {
	if istty.IsTerminal(-1) {
		t.Fatalf("negative fd reported as terminal")
	}
}
