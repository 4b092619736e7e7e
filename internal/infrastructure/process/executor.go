package process

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"codex.dev/cli/internal/application/ports"
)

// Executor runs external commands synchronously. There is no timeout: a hung
// child blocks the caller.
type Executor struct {
	workDir string
	env     []string
}

// NewExecutorWithOptions creates an executor running in workDir with env.
// An empty workDir inherits the current directory; a nil env inherits the
// process environment.
func NewExecutorWithOptions(workDir string, env []string) *Executor {
	if env == nil {
		env = os.Environ()
	}

	return &Executor{
		workDir: workDir,
		env:     env,
	}
}

// Run executes name with args and returns its trimmed stdout
func (e *Executor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = e.workDir
	cmd.Env = e.env

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return "", fmt.Errorf("failed to run %s: %w: %s", name, err, msg)
		}
		return "", fmt.Errorf("failed to run %s: %w", name, err)
	}

	return strings.TrimSpace(string(out)), nil
}

var _ ports.CommandRunner = (*Executor)(nil)
