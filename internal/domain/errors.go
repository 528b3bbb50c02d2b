package domain

import (
	"errors"
	"fmt"
)

// ErrCompilerUnavailable means the LaTeX toolchain binary could not be
// started at all. It is fatal and never consumes a retry.
var ErrCompilerUnavailable = errors.New("latex compiler not available")

// Session store lookup failures.
var (
	ErrSessionNotFound = errors.New("refinement session not found")
	ErrVariantNotFound = errors.New("variant not found in session")
)

// StructuralError means the input document could not be patched because the
// segmenter found no structure to anchor on (e.g. no document-end marker to
// insert before).
type StructuralError struct {
	Reason string
}

func (e *StructuralError) Error() string {
	return "document structure error: " + e.Reason
}

// CompilationError means the compiler ran and rejected the document. Logs
// carries the toolchain output for display and for the AI fixer. Timeout
// marks the wall-clock variant; it consumes the retry budget like any other
// compile failure.
type CompilationError struct {
	Message string
	Logs    string
	Timeout bool
}

func (e *CompilationError) Error() string {
	return fmt.Sprintf("compilation failed: %s", e.Message)
}

// GeneratorResponseError means the AI service answered, but the payload did
// not match the expected shape. Distinct from compile failures so the retry
// loop never consumes attempts on it.
type GeneratorResponseError struct {
	Reason string
	Raw    string
}

func (e *GeneratorResponseError) Error() string {
	return "malformed generator response: " + e.Reason
}
