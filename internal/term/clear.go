package term

import (
	"io"
	"os"
	"os/exec"
	"runtime"
)

// clearCommands maps a platform identifier to its clear invocation.
// Platforms not listed fall back to clear(1).
var clearCommands = map[string][]string{
	"windows": {"cmd", "/c", "cls"},
}

var defaultClear = []string{"clear"}

func commandFor(goos string) []string {
	if argv, ok := clearCommands[goos]; ok {
		return argv
	}
	return defaultClear
}

// Screen clears the terminal viewport between redraws.
type Screen struct {
	argv []string
	out  io.Writer
}

// NewScreen resolves the clear command for the current platform once.
func NewScreen(out io.Writer) *Screen {
	if out == nil {
		out = os.Stdout
	}
	return &Screen{argv: commandFor(runtime.GOOS), out: out}
}

// Clear issues the platform clear command. Best-effort: if the command
// is missing or fails, prior output is simply left on screen.
func (s *Screen) Clear() {
	cmd := exec.Command(s.argv[0], s.argv[1:]...)
	cmd.Stdout = s.out
	_ = cmd.Run()
}
