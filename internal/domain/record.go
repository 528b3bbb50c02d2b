package domain

import (
	"time"

	"github.com/google/uuid"
)

// ResumeRecord is the persisted trace of a successfully compiled document:
// which flow produced it, the source that compiled, and how large the PDF
// came out. Best-effort history only; the core never reads it back.
type ResumeRecord struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Source    string    `json:"source"` // "generate", "edit" or "apply"
	LatexCode string    `json:"latex_code"`
	PDFSize   int       `json:"pdf_size"`
	CreatedAt time.Time `json:"created_at"`
}
