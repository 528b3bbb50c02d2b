package http

import (
	"context"
	"encoding/base64"
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/Ayush99392003/resume-maker/internal/adapter/repository"
	"github.com/Ayush99392003/resume-maker/internal/domain"
	"github.com/Ayush99392003/resume-maker/internal/latex"
	"github.com/Ayush99392003/resume-maker/internal/usecase"
)

type Handler struct {
	editor    *usecase.Editor
	scorer    *usecase.Scorer
	templates *usecase.TemplateManager
	history   *repository.ResumesRepo
	logger    *zap.Logger
}

func NewHandler(editor *usecase.Editor, scorer *usecase.Scorer, templates *usecase.TemplateManager, history *repository.ResumesRepo, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{editor: editor, scorer: scorer, templates: templates, history: history, logger: logger}
}

func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Root)
	app.Post("/compile", h.Compile)
	app.Post("/generate", h.Generate)
	app.Post("/edit", h.Edit)
	app.Post("/edit/proposals", h.Proposals)
	app.Post("/edit/apply", h.Apply)
	app.Post("/squeeze", h.Squeeze)
	app.Post("/score", h.Score)
	app.Post("/validate", h.Validate)
	app.Post("/format", h.Format)
	app.Get("/templates", h.Templates)
	app.Get("/resumes/recent", h.RecentResumes)
}

func (h *Handler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "AI LaTeX Resume Maker API is running"})
}

type compileReq struct {
	LatexCode string `json:"latex_code"`
}

func (h *Handler) Compile(c *fiber.Ctx) error {
	var req compileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	pdf, err := h.editor.Compile(c.Context(), req.LatexCode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"pdf_base64": base64.StdEncoding.EncodeToString(pdf)})
}

type generateReq struct {
	Bio          string `json:"bio"`
	TemplateName string `json:"template_name"`
}

func (h *Handler) Generate(c *fiber.Ctx) error {
	var req generateReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	if req.TemplateName == "" {
		req.TemplateName = "classic"
	}
	res, err := h.editor.Generate(c.Context(), req.Bio, req.TemplateName)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(editResponse(res))
}

type editReq struct {
	CurrentLatex   string `json:"current_latex"`
	Command        string `json:"command"`
	JobDescription string `json:"job_description,omitempty"`
	SectionName    string `json:"section_name,omitempty"`
}

func (h *Handler) Edit(c *fiber.Ctx) error {
	var req editReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	res, err := h.editor.Edit(c.Context(), req.CurrentLatex, req.Command, req.JobDescription, req.SectionName)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(editResponse(res))
}

func (h *Handler) Proposals(c *fiber.Ctx) error {
	var req editReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	id, variants, err := h.editor.Propose(c.Context(), req.CurrentLatex, req.Command, req.SectionName)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"session_id": id, "variants": variants})
}

type applyReq struct {
	SessionID string `json:"session_id"`
	VariantID string `json:"variant_id"`
}

func (h *Handler) Apply(c *fiber.Ctx) error {
	var req applyReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	res, err := h.editor.Apply(c.Context(), req.SessionID, req.VariantID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(editResponse(res))
}

func (h *Handler) Squeeze(c *fiber.Ctx) error {
	var req compileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	res, err := h.editor.Squeeze(c.Context(), req.LatexCode)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(editResponse(res))
}

type scoreReq struct {
	ResumeText     string `json:"resume_text"`
	JobDescription string `json:"job_description"`
}

func (h *Handler) Score(c *fiber.Ctx) error {
	var req scoreReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	report, err := h.scorer.Score(c.Context(), req.ResumeText, req.JobDescription)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(report)
}

func (h *Handler) Validate(c *fiber.Ctx) error {
	var req compileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.JSON(latex.CheckHealth(req.LatexCode))
}

func (h *Handler) Format(c *fiber.Ctx) error {
	var req compileReq
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "invalid payload")
	}
	return c.JSON(fiber.Map{"latex_code": latex.Format(req.LatexCode)})
}

func (h *Handler) Templates(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"templates": h.templates.List()})
}

func (h *Handler) RecentResumes(c *fiber.Ctx) error {
	if h.history == nil {
		return c.JSON(fiber.Map{"resumes": []domain.ResumeRecord{}})
	}
	records, err := h.history.Recent(c.Context(), c.QueryInt("limit", 20))
	if err != nil {
		h.logger.Warn("history listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "history unavailable"})
	}
	if records == nil {
		records = []domain.ResumeRecord{}
	}
	return c.JSON(fiber.Map{"resumes": records})
}

func editResponse(res *usecase.EditResult) fiber.Map {
	return fiber.Map{
		"latex_code": res.LatexCode,
		"pdf_base64": base64.StdEncoding.EncodeToString(res.PDF),
		"summary":    res.Summary,
	}
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// fail maps domain error kinds to HTTP statuses. Compile failures keep
// their logs so the client can show the user what went wrong.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var cerr *domain.CompilationError
	var serr *domain.StructuralError
	var gerr *domain.GeneratorResponseError

	switch {
	case errors.Is(err, usecase.ErrTemplateNotFound),
		errors.Is(err, domain.ErrSessionNotFound),
		errors.Is(err, domain.ErrVariantNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrCompilerUnavailable):
		h.logger.Error("compiler unavailable", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.As(err, &serr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": serr.Error()})
	case errors.As(err, &gerr):
		h.logger.Error("generator returned malformed output", zap.String("reason", gerr.Reason))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": gerr.Error()})
	case errors.As(err, &cerr):
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": cerr.Error(),
			"logs":  cerr.Logs,
		})
	case errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusRequestTimeout).JSON(fiber.Map{"error": "request cancelled"})
	default:
		h.logger.Error("request failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
