package usecase

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
)

// TemplateManager loads the *.tex files from a directory once at startup
// and serves them by stem name. Placeholders use the [[KEY]] convention.
type TemplateManager struct {
	dir       string
	templates map[string]string
}

func NewTemplateManager(dir string, logger *zap.Logger) *TemplateManager {
	if logger == nil {
		logger = zap.NewNop()
	}
	tm := &TemplateManager{dir: dir, templates: map[string]string{}}

	paths, err := filepath.Glob(filepath.Join(dir, "*.tex"))
	if err != nil {
		logger.Warn("template glob failed", zap.String("dir", dir), zap.Error(err))
		return tm
	}
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if err != nil {
			logger.Warn("skipping unreadable template", zap.String("path", p), zap.Error(err))
			continue
		}
		name := strings.TrimSuffix(filepath.Base(p), ".tex")
		tm.templates[name] = string(b)
	}
	logger.Info("loaded templates", zap.String("dir", dir), zap.Int("count", len(tm.templates)))
	return tm
}

// List returns the available template names, sorted.
func (tm *TemplateManager) List() []string {
	names := make([]string, 0, len(tm.templates))
	for name := range tm.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the raw template content, or "" when the name is unknown.
func (tm *TemplateManager) Get(name string) string {
	return tm.templates[name]
}

// Fill replaces every [[KEY]] placeholder with the matching value. Keys are
// upper-cased before substitution; unmatched placeholders stay in place.
func (tm *TemplateManager) Fill(name string, data map[string]string) string {
	content := tm.Get(name)
	if content == "" {
		return ""
	}
	for key, value := range data {
		content = strings.ReplaceAll(content, "[["+strings.ToUpper(key)+"]]", value)
	}
	return content
}
