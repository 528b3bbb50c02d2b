// Package ai is the HTTP client for the internal ai-service. All document
// generation, editing, repair and scoring intelligence lives behind that
// service; this package only shapes prompts, enforces response schemas and
// classifies failures.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient() *Client {
	base := os.Getenv("AI_SERVICE_URL")
	if base == "" {
		base = "http://ai-service:8000"
	}
	return &Client{BaseURL: base, HTTP: &http.Client{Timeout: 60 * time.Second}}
}

// doPostWithRetry performs an HTTP POST to the given path with retry/backoff.
// Only transport errors are retried; any HTTP response is returned as-is.
func (c *Client) doPostWithRetry(ctx context.Context, path string, body []byte) (*http.Response, error) {
	attempts := 3
	var lastErr error
	for i := 0; i < attempts; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.HTTP.Do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		// exponential backoff before retrying
		if i < attempts-1 {
			backoff := time.Duration(1<<i) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}
	return nil, lastErr
}

// callChat sends one prompt to the chat endpoint and returns the raw output
// text. The service wraps model output as {"agent": ..., "output": ...}.
func (c *Client) callChat(ctx context.Context, prompt string) (string, error) {
	chatReq := map[string]interface{}{
		"agent": "auto",
		"input": prompt,
	}
	b, err := json.Marshal(chatReq)
	if err != nil {
		return "", err
	}

	resp, err := c.doPostWithRetry(ctx, "/v1/chat", b)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}

	var chatResp struct {
		Agent  string `json:"agent"`
		Output string `json:"output"`
	}
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", &domain.GeneratorResponseError{Reason: "invalid chat envelope: " + err.Error(), Raw: string(respBytes)}
	}
	return chatResp.Output, nil
}

// extractJSON returns the substring from the first opening bracket to the
// last matching close, for model output wrapped in prose or code fences.
func extractJSON(s string) string {
	closer := "}"
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")
	start := objStart
	if objStart < 0 || (arrStart >= 0 && arrStart < objStart) {
		closer = "]"
		start = arrStart
	}
	if start < 0 {
		return ""
	}
	end := strings.LastIndex(s, closer)
	if end <= start {
		return ""
	}
	return s[start : end+1]
}

// decodeValidated parses output as JSON (with substring extraction fallback)
// and validates it against schema before unmarshaling into v.
func decodeValidated(output, schema string, v interface{}) error {
	raw := strings.TrimSpace(output)
	if !json.Valid([]byte(raw)) {
		raw = extractJSON(output)
		if raw == "" || !json.Valid([]byte(raw)) {
			return &domain.GeneratorResponseError{Reason: "response is not JSON", Raw: output}
		}
	}
	if err := validateAgainst(schema, raw); err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return &domain.GeneratorResponseError{Reason: err.Error(), Raw: raw}
	}
	return nil
}

const updateInstruction = "Respond with ONLY a single JSON object with keys " +
	`"latex_code" (string), "summary_of_changes" (string) and ` +
	`"is_complete_document" (boolean). No commentary, no markdown, no code fences.`

// GenerateResume fills a LaTeX template with data from the user's bio and
// returns the full document.
func (c *Client) GenerateResume(ctx context.Context, bio, templateLatex string) (*domain.DocumentUpdate, error) {
	prompt := "You are a LaTeX expert. Fill the provided LaTeX template with data from the user bio. " +
		updateInstruction + " Set is_complete_document to true.\n\n" +
		"Template:\n" + templateLatex + "\n\nBio:\n" + bio
	return c.requestUpdate(ctx, prompt)
}

// EditSection rewrites a single section's content according to the command.
// The returned latex_code is the new section body only, not a full document.
func (c *Client) EditSection(ctx context.Context, sectionName, sectionContent, command string) (*domain.DocumentUpdate, error) {
	prompt := "Rewrite the LaTeX section below according to the instruction. Return ONLY the new " +
		"content for this section in latex_code (no \\section marker, not the full document) and set " +
		"is_complete_document to false. " + updateInstruction + "\n\n" +
		"Section: " + sectionName + "\nCurrent content:\n" + sectionContent + "\n\nInstruction: " + command
	return c.requestUpdate(ctx, prompt)
}

// EditDocument rewrites the whole document according to the command,
// optionally tailoring it to a job description.
func (c *Client) EditDocument(ctx context.Context, latex, command, jobDescription string) (*domain.DocumentUpdate, error) {
	prompt := "Apply the instruction to the full LaTeX document below and return the FULL updated " +
		"document in latex_code with is_complete_document true. " + updateInstruction + "\n\n"
	if jobDescription != "" {
		prompt += "Target job description:\n" + jobDescription + "\n\n"
	}
	prompt += "Document:\n" + latex + "\n\nInstruction: " + command
	return c.requestUpdate(ctx, prompt)
}

// SqueezeLayout asks for a layout-optimized full document (margins, spacing,
// font sizes) that fits more content on the page.
func (c *Client) SqueezeLayout(ctx context.Context, latex string) (*domain.DocumentUpdate, error) {
	prompt := "Optimize the provided LaTeX code to fit more content. Adjust margins, line spacing and " +
		"font sizes as needed; keep it professional and readable. Return the FULL document in latex_code. " +
		updateInstruction + "\n\nLaTeX Code:\n" + latex
	return c.requestUpdate(ctx, prompt)
}

// FixDocument asks the service to repair a document that failed to compile
// and returns the replacement full-document text.
func (c *Client) FixDocument(ctx context.Context, brokenLatex, errorLogs string) (string, error) {
	prompt := "Repair the broken LaTeX code based on the compiler logs. Return the FULL corrected " +
		"document in latex_code with is_complete_document true. " + updateInstruction + "\n\n" +
		"Logs:\n" + errorLogs + "\n\nBroken LaTeX:\n" + brokenLatex
	update, err := c.requestUpdate(ctx, prompt)
	if err != nil {
		return "", err
	}
	return update.LatexCode, nil
}

func (c *Client) requestUpdate(ctx context.Context, prompt string) (*domain.DocumentUpdate, error) {
	output, err := c.callChat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var update domain.DocumentUpdate
	if err := decodeValidated(output, documentUpdateSchema, &update); err != nil {
		return nil, err
	}
	return &update, nil
}

// GenerateProposals asks for three distinct variations of the requested
// edit: Standard (safe), Creative (dynamic) and Concise (space-saving).
func (c *Client) GenerateProposals(ctx context.Context, latex, command, sectionName string) ([]domain.DraftVariant, error) {
	scope := "Full Doc"
	if sectionName != "" {
		scope = "Section: " + sectionName
	}
	prompt := "Generate 3 distinct variations for the requested edit: 1. 'Standard' (Safe & Professional), " +
		"2. 'Creative' (Dynamic), 3. 'Concise' (Space-saving). Respond with ONLY a JSON object " +
		`{"proposals": [{"id", "intent", "latex_code", "summary"}, ...]}. Each proposal must contain ` +
		"ONLY the new LaTeX for the target area.\n\n" +
		"Context: " + scope + "\nLaTeX:\n" + latex + "\nCommand: " + command

	output, err := c.callChat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var set struct {
		Proposals []domain.DraftVariant `json:"proposals"`
	}
	if err := decodeValidated(output, proposalSetSchema, &set); err != nil {
		return nil, err
	}
	return set.Proposals, nil
}

// ExtractKeywords pulls professional skills, technologies and qualifications
// out of free text as a flat list.
func (c *Client) ExtractKeywords(ctx context.Context, text string) ([]string, error) {
	prompt := "Extract a list of professional skills, technologies, and qualifications from the " +
		"following text. Respond with ONLY a JSON array of strings.\n\nText:\n" + text

	output, err := c.callChat(ctx, prompt)
	if err != nil {
		return nil, err
	}
	var keywords []string
	if err := decodeValidated(output, keywordListSchema, &keywords); err != nil {
		return nil, err
	}
	return keywords, nil
}

// Embed returns the embedding vector for the given text from the service's
// embedding endpoint.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	b, err := json.Marshal(map[string]string{"input": strings.ReplaceAll(text, "\n", " ")})
	if err != nil {
		return nil, err
	}
	resp, err := c.doPostWithRetry(ctx, "/v1/embed", b)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ai-service returned non-200 status: %d", resp.StatusCode)
	}
	var out struct {
		Embedding []float64 `json:"embedding"`
	}
	if err := json.Unmarshal(respBytes, &out); err != nil {
		return nil, &domain.GeneratorResponseError{Reason: "invalid embed payload: " + err.Error(), Raw: string(respBytes)}
	}
	if len(out.Embedding) == 0 {
		return nil, &domain.GeneratorResponseError{Reason: "empty embedding", Raw: string(respBytes)}
	}
	return out.Embedding, nil
}
