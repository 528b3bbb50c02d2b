package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// Compiler turns a LaTeX document into PDF bytes. Implementations classify
// their failures: *domain.CompilationError when the toolchain ran and
// rejected the input (retryable), domain.ErrCompilerUnavailable when it
// could not run at all (fatal).
type Compiler interface {
	Compile(ctx context.Context, latex string) ([]byte, error)
}

// Fixer repairs a document given the compiler's error logs, returning a
// replacement full-document text.
type Fixer interface {
	FixDocument(ctx context.Context, latex, errorLogs string) (string, error)
}

// DefaultMaxRetries bounds the self-correction loop: up to three compile
// attempts with two fix rounds in between.
const DefaultMaxRetries = 2

// CompileLoop alternates the compiler and the AI fixer until the document
// compiles or the retry budget runs out.
type CompileLoop struct {
	compiler Compiler
	fixer    Fixer
	logger   *zap.Logger
}

func NewCompileLoop(c Compiler, f Fixer, logger *zap.Logger) *CompileLoop {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CompileLoop{compiler: c, fixer: f, logger: logger}
}

// CompileWithRetry makes at most maxRetries+1 compile calls and maxRetries
// fixer calls. Only compile failures (timeouts included) consume the budget;
// an unavailable compiler or a malformed fixer response aborts immediately.
// The last compile error is propagated unchanged, logs and all.
func (l *CompileLoop) CompileWithRetry(ctx context.Context, latex string, maxRetries int) ([]byte, error) {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}

	current := latex
	for attempt := 0; ; attempt++ {
		pdf, err := l.compiler.Compile(ctx, current)
		if err == nil {
			if attempt > 0 {
				l.logger.Info("document compiled after self-correction", zap.Int("attempt", attempt))
			}
			return pdf, nil
		}

		var cerr *domain.CompilationError
		if !errors.As(err, &cerr) {
			return nil, err
		}
		if attempt == maxRetries {
			return nil, err
		}

		l.logger.Warn("compile failed, asking fixer for a repair",
			zap.Int("attempt", attempt),
			zap.Bool("timeout", cerr.Timeout))

		fixed, ferr := l.fixer.FixDocument(ctx, current, cerr.Logs)
		if ferr != nil {
			return nil, ferr
		}
		current = fixed
	}
}
