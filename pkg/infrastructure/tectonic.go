package infrastructure

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// DefaultCompileTimeout is the hard wall clock applied to a single tectonic
// invocation.
const DefaultCompileTimeout = 30 * time.Second

// TectonicCompiler shells out to the Tectonic LaTeX engine. Each Compile
// call works in its own temp directory and leaves nothing behind.
type TectonicCompiler struct {
	Path    string
	Timeout time.Duration
}

func NewTectonicCompiler() *TectonicCompiler {
	path := os.Getenv("TECTONIC_PATH")
	if path == "" {
		path = "tectonic"
	}
	return &TectonicCompiler{Path: path, Timeout: DefaultCompileTimeout}
}

// Compile writes the source to disk, runs tectonic and returns the produced
// PDF bytes. Failure modes are kept distinct: a missing binary yields
// ErrCompilerUnavailable (never retried upstream), a timeout yields a
// timeout-flagged CompilationError, and a normal compile failure carries the
// toolchain's combined output as logs.
func (c *TectonicCompiler) Compile(ctx context.Context, latex string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	texPath := filepath.Join(tmpDir, "resume.tex")
	if err := os.WriteFile(texPath, []byte(latex), 0o644); err != nil {
		return nil, err
	}

	cctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, c.Path, "--noninteractive", "--chatter", "minimal", texPath)
	cmd.Dir = tmpDir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if cctx.Err() == context.DeadlineExceeded {
			return nil, &domain.CompilationError{
				Message: "compiler timed out",
				Logs:    fmt.Sprintf("tectonic exceeded the %s wall clock limit", c.Timeout),
				Timeout: true,
			}
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return nil, &domain.CompilationError{
				Message: "tectonic failed",
				Logs:    stdout.String() + "\n" + stderr.String(),
			}
		}
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrCompilerUnavailable, c.Path)
		}
		return nil, err
	}

	pdf, err := os.ReadFile(filepath.Join(tmpDir, "resume.pdf"))
	if err != nil {
		return nil, &domain.CompilationError{
			Message: "tectonic produced no PDF",
			Logs:    stdout.String() + "\n" + stderr.String(),
		}
	}
	return pdf, nil
}
