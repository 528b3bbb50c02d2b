package migration

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"
	"go.uber.org/zap"
)

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("starting database migrations")

	migrations := []Migration{
		{
			Name: "create_resumes_table",
			Up:   createResumesTable,
		},
		{
			Name: "add_source_to_resumes",
			Up:   addSourceToResumes,
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			logger.Error("migration failed", zap.String("name", m.Name), zap.Error(err))
			return err
		}
		logger.Info("migration completed", zap.String("name", m.Name))
	}
	return nil
}

func createResumesTable(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS resumes (
			id UUID PRIMARY KEY,
			title TEXT NOT NULL DEFAULT 'Resume',
			source TEXT NOT NULL DEFAULT '',
			latex_code TEXT NOT NULL,
			pdf_size INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	_, err := pool.Exec(ctx, query)
	return err
}

// addSourceToResumes covers tables created before the source column existed.
func addSourceToResumes(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE resumes
		ADD COLUMN IF NOT EXISTS source TEXT NOT NULL DEFAULT '';
	`
	_, err := pool.Exec(ctx, query)
	return err
}
