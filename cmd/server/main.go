package main

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httpadapter "github.com/Ayush99392003/resume-maker/internal/adapter/http"
	repo "github.com/Ayush99392003/resume-maker/internal/adapter/repository"
	"github.com/Ayush99392003/resume-maker/internal/infrastructure/migration"
	"github.com/Ayush99392003/resume-maker/internal/usecase"
	"github.com/Ayush99392003/resume-maker/pkg/ai"
	infra "github.com/Ayush99392003/resume-maker/pkg/infrastructure"
)

func main() {
	logger, err := newLogger()
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	// infra setup; history persistence is optional
	var history usecase.History
	resumesRepo := repo.NewResumesRepo(nil)
	pool, err := infra.NewResumesPool(ctx)
	if err != nil {
		logger.Warn("resume history DB not available", zap.Error(err))
	} else if err := migration.RunMigrations(ctx, pool, logger); err != nil {
		logger.Warn("migrations failed, history disabled", zap.Error(err))
	} else {
		resumesRepo = repo.NewResumesRepo(pool)
		history = resumesRepo
	}

	aiClient := ai.NewClient()
	compiler := infra.NewTectonicCompiler()
	loop := usecase.NewCompileLoop(compiler, aiClient, logger)
	templates := usecase.NewTemplateManager(envStr("TEMPLATES_DIR", "templates"), logger)
	sessions := repo.NewSessionStore(time.Duration(envInt("SESSION_TTL_MINUTES", 60)) * time.Minute)
	editor := usecase.NewEditor(aiClient, loop, sessions, templates, history, envInt("MAX_COMPILE_RETRIES", usecase.DefaultMaxRetries), logger)
	scorer := usecase.NewScorer(aiClient)

	app := fiber.New()
	httpadapter.NewHandler(editor, scorer, templates, resumesRepo, logger).Register(app)

	port := envStr("PORT", "8000")
	logger.Info("starting server", zap.String("port", port))
	if err := app.Listen(":" + port); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("DEBUG") == "true" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
