package gitstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"
)

// ErrGitUnavailable is returned when no git binary is on PATH. Versioning
// degrades gracefully: callers proceed without committing.
var ErrGitUnavailable = errors.New("git is not available")

// runner executes git subprocesses. Host configuration is neutralized by
// pointing GIT_CONFIG_GLOBAL and GIT_CONFIG_SYSTEM at the null device, and
// arguments are always passed as an argv list — nothing goes through a shell.
type runner struct {
	once    sync.Once
	gitPath string
	lookErr error
}

func (r *runner) resolve() error {
	r.once.Do(func() {
		r.gitPath, r.lookErr = exec.LookPath("git")
	})
	if r.lookErr != nil {
		return ErrGitUnavailable
	}
	return nil
}

// run executes git in dir and returns trimmed stdout. extraEnv entries are
// appended as KEY=VALUE pairs.
func (r *runner) run(ctx context.Context, dir string, extraEnv []string, args ...string) (string, error) {
	if err := r.resolve(); err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, r.gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_CONFIG_GLOBAL="+os.DevNull,
		"GIT_CONFIG_SYSTEM="+os.DevNull,
		"GIT_TERMINAL_PROMPT=0",
	)
	cmd.Env = append(cmd.Env, extraEnv...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", args[0], msg)
	}
	return strings.TrimRight(stdout.String(), "\n"), nil
}
