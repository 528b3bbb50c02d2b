package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ayush99392003/resume-maker/internal/domain"
	"github.com/Ayush99392003/resume-maker/internal/latex"
)

// ErrTemplateNotFound is returned by Generate for an unknown template name.
var ErrTemplateNotFound = errors.New("template not found")

// ContentGenerator is the AI collaborator behind every edit operation.
type ContentGenerator interface {
	GenerateResume(ctx context.Context, bio, templateLatex string) (*domain.DocumentUpdate, error)
	EditSection(ctx context.Context, sectionName, sectionContent, command string) (*domain.DocumentUpdate, error)
	EditDocument(ctx context.Context, latex, command, jobDescription string) (*domain.DocumentUpdate, error)
	GenerateProposals(ctx context.Context, latex, command, sectionName string) ([]domain.DraftVariant, error)
	SqueezeLayout(ctx context.Context, latex string) (*domain.DocumentUpdate, error)
}

// SessionStore keeps proposal sets between the propose and apply requests.
type SessionStore interface {
	CreateSession(originalLatex, sectionName string, variants []domain.DraftVariant) string
	GetSession(sessionID string) (*domain.RefinementProposal, error)
	GetVariant(sessionID, variantID string) (domain.DraftVariant, error)
}

// History persists finished documents. A nil History disables persistence;
// failures are logged and never surfaced to the caller.
type History interface {
	SaveResume(ctx context.Context, rec *domain.ResumeRecord) error
}

// EditResult is the outcome of any operation that produces a document and
// its compiled PDF.
type EditResult struct {
	LatexCode string
	PDF       []byte
	Summary   string
}

// Editor orchestrates the edit flows: template fill, section and full-doc
// edits, proposal rounds and the self-correcting compile loop. It is
// constructed once at startup and shared across requests; all state lives in
// the collaborators.
type Editor struct {
	gen        ContentGenerator
	loop       *CompileLoop
	sessions   SessionStore
	templates  *TemplateManager
	history    History
	maxRetries int
	logger     *zap.Logger
}

func NewEditor(gen ContentGenerator, loop *CompileLoop, sessions SessionStore, templates *TemplateManager, history History, maxRetries int, logger *zap.Logger) *Editor {
	if maxRetries < 0 {
		maxRetries = DefaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Editor{
		gen:        gen,
		loop:       loop,
		sessions:   sessions,
		templates:  templates,
		history:    history,
		maxRetries: maxRetries,
		logger:     logger,
	}
}

// Compile compiles a document once, without the AI fix loop.
func (e *Editor) Compile(ctx context.Context, latexCode string) ([]byte, error) {
	return e.loop.CompileWithRetry(ctx, latexCode, 0)
}

// Generate fills the named template from the user's bio and compiles the
// result with self-correction.
func (e *Editor) Generate(ctx context.Context, bio, templateName string) (*EditResult, error) {
	tpl := e.templates.Get(templateName)
	if tpl == "" {
		return nil, ErrTemplateNotFound
	}

	update, err := e.gen.GenerateResume(ctx, bio, tpl)
	if err != nil {
		return nil, err
	}

	pdf, err := e.loop.CompileWithRetry(ctx, update.LatexCode, e.maxRetries)
	if err != nil {
		return nil, err
	}

	e.saveHistory(ctx, "generate", templateName, update.LatexCode, len(pdf))
	return &EditResult{LatexCode: update.LatexCode, PDF: pdf, Summary: update.SummaryOfChanges}, nil
}

// Edit applies a user command to the document. When sectionName names an
// existing section only that section is regenerated and patched in place;
// otherwise the whole document is rewritten. Either way the result goes
// through the compile loop.
func (e *Editor) Edit(ctx context.Context, currentLatex, command, jobDescription, sectionName string) (*EditResult, error) {
	newLatex := ""
	summary := ""

	if sectionName != "" {
		if content, ok := latex.Sections(currentLatex)[sectionName]; ok {
			update, err := e.gen.EditSection(ctx, sectionName, content, command)
			if err != nil {
				return nil, err
			}
			patched, err := latex.ReplaceSection(currentLatex, sectionName, update.LatexCode)
			if err != nil {
				return nil, err
			}
			newLatex = patched
			summary = update.SummaryOfChanges
		}
	}

	if newLatex == "" {
		update, err := e.gen.EditDocument(ctx, currentLatex, command, jobDescription)
		if err != nil {
			return nil, err
		}
		newLatex = update.LatexCode
		summary = update.SummaryOfChanges
	}

	pdf, err := e.loop.CompileWithRetry(ctx, newLatex, e.maxRetries)
	if err != nil {
		return nil, err
	}

	e.saveHistory(ctx, "edit", sectionName, newLatex, len(pdf))
	return &EditResult{LatexCode: newLatex, PDF: pdf, Summary: summary}, nil
}

// Squeeze asks the AI for a layout-optimized version of the document and
// compiles it.
func (e *Editor) Squeeze(ctx context.Context, currentLatex string) (*EditResult, error) {
	update, err := e.gen.SqueezeLayout(ctx, currentLatex)
	if err != nil {
		return nil, err
	}
	pdf, err := e.loop.CompileWithRetry(ctx, update.LatexCode, e.maxRetries)
	if err != nil {
		return nil, err
	}
	return &EditResult{LatexCode: update.LatexCode, PDF: pdf, Summary: update.SummaryOfChanges}, nil
}

// Propose generates alternative edits and parks them in a session. The
// session remembers whether the variants target a section or the whole
// document, so Apply knows how to splice the chosen one back in.
func (e *Editor) Propose(ctx context.Context, currentLatex, command, sectionName string) (string, []domain.DraftVariant, error) {
	target := currentLatex
	effectiveSection := ""
	if sectionName != "" {
		if content, ok := latex.Sections(currentLatex)[sectionName]; ok {
			target = content
			effectiveSection = sectionName
		}
	}

	variants, err := e.gen.GenerateProposals(ctx, target, command, effectiveSection)
	if err != nil {
		return "", nil, err
	}

	id := e.sessions.CreateSession(currentLatex, effectiveSection, variants)
	e.logger.Info("created refinement session",
		zap.String("session_id", id),
		zap.Int("variants", len(variants)),
		zap.String("section", effectiveSection))
	return id, variants, nil
}

// Apply patches the chosen variant into the session's original document and
// compiles the result.
func (e *Editor) Apply(ctx context.Context, sessionID, variantID string) (*EditResult, error) {
	sess, err := e.sessions.GetSession(sessionID)
	if err != nil {
		return nil, err
	}
	variant, err := e.sessions.GetVariant(sessionID, variantID)
	if err != nil {
		return nil, err
	}

	newLatex := variant.LatexCode
	if sess.SectionName != "" {
		newLatex, err = latex.ReplaceSection(sess.OriginalLatex, sess.SectionName, variant.LatexCode)
		if err != nil {
			return nil, err
		}
	}

	pdf, err := e.loop.CompileWithRetry(ctx, newLatex, e.maxRetries)
	if err != nil {
		return nil, err
	}

	e.saveHistory(ctx, "apply", sess.SectionName, newLatex, len(pdf))
	return &EditResult{LatexCode: newLatex, PDF: pdf, Summary: variant.Summary}, nil
}

// saveHistory is best-effort: persistence problems never fail a request.
func (e *Editor) saveHistory(ctx context.Context, source, title, latexCode string, pdfSize int) {
	if e.history == nil {
		return
	}
	rec := &domain.ResumeRecord{
		ID:        uuid.New(),
		Title:     title,
		Source:    source,
		LatexCode: latexCode,
		PDFSize:   pdfSize,
		CreatedAt: time.Now(),
	}
	if err := e.history.SaveResume(ctx, rec); err != nil {
		e.logger.Warn("failed to persist resume record", zap.Error(err))
	}
}
