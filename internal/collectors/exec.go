package collectors

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Runner spawns an external utility and returns its standard output. A non-zero
// exit status is reported as an error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Run implements Runner.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return out, fmt.Errorf("command %q: %w", strings.Join(append([]string{name}, args...), " "), err)
	}
	return out, nil
}

// RunCommand runs a full command line (program first) through r.
func RunCommand(ctx context.Context, r Runner, cmdline []string, extra ...string) ([]byte, error) {
	if len(cmdline) == 0 {
		return nil, errors.New("empty command line")
	}
	args := append(append([]string{}, cmdline[1:]...), extra...)
	return r.Run(ctx, cmdline[0], args...)
}
