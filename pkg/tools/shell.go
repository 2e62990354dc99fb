package tools

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// ErrShellDisabled is returned when a shell tool runs without
// pipeline.allowShellTools being enabled.
var ErrShellDisabled = errors.New("shell tools are disabled")

// maxShellCapture bounds combined stdout/stderr kept from a shell tool.
const maxShellCapture = 64 << 10

// invokeShell runs the tool command with the project directory as working
// directory. Disabled by default; opt-in via pipeline.allowShellTools.
func (r *Runner) invokeShell(ctx context.Context, def Definition, params map[string]string, projectDir string) (string, error) {
	cfg := r.settings.Pipeline(ctx)
	if !cfg.AllowShellTools {
		return "", ErrShellDisabled
	}
	if projectDir == "" {
		return "", fmt.Errorf("shell tool %q requires a project directory", def.Name)
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.ShellTimeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, "sh", "-c", interpolate(def.Command, params))
	cmd.Dir = projectDir

	var out cappedBuffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	text := strings.TrimSpace(out.String())
	if ctx.Err() == context.DeadlineExceeded {
		return "", fmt.Errorf("shell tool %q timed out after %dms", def.Name, cfg.ShellTimeoutMs)
	}
	if err != nil {
		return "", fmt.Errorf("shell tool %q failed: %w: %s", def.Name, err, truncate(text, 500))
	}
	return text, nil
}

// cappedBuffer keeps only the first maxShellCapture bytes and silently drops
// the rest, so a chatty command cannot exhaust memory.
type cappedBuffer struct {
	buf bytes.Buffer
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if room := maxShellCapture - b.buf.Len(); room > 0 {
		if len(p) > room {
			p = p[:room]
		}
		b.buf.Write(p)
	}
	return n, nil
}

func (b *cappedBuffer) String() string {
	return b.buf.String()
}
