//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"
	"testing"
	"time"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	kerrors "github.com/islml/kaze/internal/errors"
)

// openPTY returns a pty pair or skips the test when the host has none.
func openPTY(t *testing.T) (ptmx, tty *os.File) {
	t.Helper()

	ptmx, tty, err := pty.Open()
	if err != nil {
		t.Skipf("pty not available: %v", err)
	}
	t.Cleanup(func() {
		_ = tty.Close()
		_ = ptmx.Close()
	})
	return ptmx, tty
}

func getTermios(t *testing.T, f *os.File) *unix.Termios {
	t.Helper()

	tio, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	if err != nil {
		t.Fatalf("IoctlGetTermios error = %v", err)
	}
	return tio
}

func TestEnterNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "plain")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	s, err := Enter(f, f)
	if err == nil {
		s.Close()
		t.Fatal("expected error entering raw mode on a regular file")
	}
	if !kerrors.IsTerminal(err) {
		t.Errorf("expected TerminalError, got %T: %v", err, err)
	}
}

func TestEnterInstallsRawMode(t *testing.T) {
	_, tty := openPTY(t)

	before := getTermios(t, tty)
	if before.Lflag&unix.ECHO == 0 {
		t.Skip("pty starts without echo; cannot observe the change")
	}

	s, err := Enter(tty, tty)
	if err != nil {
		t.Fatalf("Enter error = %v", err)
	}
	defer s.Close()

	raw := getTermios(t, tty)
	for name, bit := range map[string]uint64{
		"ECHO":   uint64(unix.ECHO),
		"ICANON": uint64(unix.ICANON),
		"ISIG":   uint64(unix.ISIG),
		"IEXTEN": uint64(unix.IEXTEN),
	} {
		if uint64(raw.Lflag)&bit != 0 {
			t.Errorf("lflag %s still set in raw mode", name)
		}
	}
	for name, bit := range map[string]uint64{
		"IXON":  uint64(unix.IXON),
		"ICRNL": uint64(unix.ICRNL),
	} {
		if uint64(raw.Iflag)&bit != 0 {
			t.Errorf("iflag %s still set in raw mode", name)
		}
	}
	if uint64(raw.Oflag)&uint64(unix.OPOST) != 0 {
		t.Error("oflag OPOST still set in raw mode")
	}
	if raw.Cc[unix.VMIN] != 0 || raw.Cc[unix.VTIME] != 1 {
		t.Errorf("VMIN/VTIME = %d/%d, want 0/1", raw.Cc[unix.VMIN], raw.Cc[unix.VTIME])
	}
	if !s.active {
		t.Error("session should be active after Enter")
	}
}

func TestCloseRestoresOriginalMode(t *testing.T) {
	_, tty := openPTY(t)

	before := getTermios(t, tty)

	s, err := Enter(tty, tty)
	if err != nil {
		t.Fatalf("Enter error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close error = %v", err)
	}

	after := getTermios(t, tty)
	if after.Lflag != before.Lflag || after.Iflag != before.Iflag || after.Oflag != before.Oflag {
		t.Errorf("flags not restored: before %+v, after %+v", before, after)
	}
	if s.active {
		t.Error("session should be inactive after Close")
	}

	// Second close is a no-op.
	if err := s.Close(); err != nil {
		t.Errorf("second Close error = %v", err)
	}
}

func TestReadTimesOutWithoutInput(t *testing.T) {
	ptmx, tty := openPTY(t)

	s, err := Enter(tty, tty)
	if err != nil {
		t.Fatalf("Enter error = %v", err)
	}
	defer s.Close()

	buf := make([]byte, 1)
	start := time.Now()
	n, err := s.Read(buf)
	if err != nil {
		t.Fatalf("Read error = %v", err)
	}
	if n != 0 {
		t.Fatalf("expected timeout with 0 bytes, got %d", n)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("timed read took %v", elapsed)
	}

	if _, err := ptmx.Write([]byte{'x'}); err != nil {
		t.Fatal(err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		n, err = s.Read(buf)
		if err != nil {
			t.Fatalf("Read error = %v", err)
		}
		if n == 1 {
			break
		}
	}
	if n != 1 || buf[0] != 'x' {
		t.Errorf("expected to read 'x', got n=%d %q", n, buf[:n])
	}
}

func TestWindowSizeFromKernel(t *testing.T) {
	ptmx, tty := openPTY(t)

	if err := pty.Setsize(ptmx, &pty.Winsize{Rows: 30, Cols: 100}); err != nil {
		t.Skipf("cannot set pty size: %v", err)
	}

	s, err := Enter(tty, tty)
	if err != nil {
		t.Fatalf("Enter error = %v", err)
	}
	defer s.Close()

	rows, cols, err := s.WindowSize()
	if err != nil {
		t.Fatalf("WindowSize error = %v", err)
	}
	if rows != 30 || cols != 100 {
		t.Errorf("WindowSize = %dx%d, want 30x100", rows, cols)
	}
}

func TestWriteReachesDevice(t *testing.T) {
	ptmx, tty := openPTY(t)

	s, err := Enter(tty, tty)
	if err != nil {
		t.Fatalf("Enter error = %v", err)
	}
	defer s.Close()

	if _, err := s.Write([]byte("hi")); err != nil {
		t.Fatalf("Write error = %v", err)
	}

	buf := make([]byte, 2)
	if _, err := io.ReadFull(ptmx, buf); err != nil {
		t.Fatalf("reading pty master: %v", err)
	}
	if string(buf) != "hi" {
		t.Errorf("master read %q, want %q", buf, "hi")
	}
}
