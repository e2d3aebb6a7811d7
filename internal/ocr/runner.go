package ocr

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/joseph-ayodele/request-ocr/internal/common"
)

// Runner executes pdftoppm and tesseract. Tests swap in a fake.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// CommandError keeps the tail of stderr next to the exit error.
type CommandError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *CommandError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("%s: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", e.Command, e.Err, e.Stderr)
}

func (e *CommandError) Unwrap() error { return e.Err }

const stderrTail = 2 << 10

type execRunner struct {
	logger *slog.Logger
}

func (r execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	log := common.LoggerFrom(ctx, r.logger).With("cmd", filepath.Base(name))
	start := time.Now()

	cmd := exec.CommandContext(ctx, name, args...)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb

	if err := cmd.Run(); err != nil {
		tail := lastBytes(errb.String(), stderrTail)
		log.Error("ocr command failed", "duration_ms", time.Since(start).Milliseconds(), "error", err, "stderr", tail)
		return out.Bytes(), errb.Bytes(), &CommandError{Command: filepath.Base(name), Stderr: tail, Err: err}
	}
	log.Debug("ocr command ok", "duration_ms", time.Since(start).Milliseconds(), "stdout_bytes", out.Len())
	return out.Bytes(), errb.Bytes(), nil
}

// lastBytes keeps the end of s, where tools print the actual failure.
func lastBytes(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
