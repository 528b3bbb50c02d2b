package repository

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/Ayush99392003/resume-maker/internal/domain"
)

// ResumesRepo persists compiled documents for history. All writes are
// best-effort from the caller's point of view; a nil pool disables the repo
// entirely so the service can run without a database.
type ResumesRepo struct {
	pool *pgxpool.Pool
}

func NewResumesRepo(pool *pgxpool.Pool) *ResumesRepo {
	return &ResumesRepo{pool: pool}
}

func (r *ResumesRepo) SaveResume(ctx context.Context, rec *domain.ResumeRecord) error {
	if r.pool == nil {
		return nil
	}

	title := rec.Title
	if title == "" {
		title = "Resume"
	}

	_, err := r.pool.Exec(ctx, `INSERT INTO resumes (id, title, source, latex_code, pdf_size, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, source = EXCLUDED.source, latex_code = EXCLUDED.latex_code, pdf_size = EXCLUDED.pdf_size`,
		rec.ID, title, rec.Source, rec.LatexCode, rec.PDFSize, rec.CreatedAt)
	return err
}

// Recent returns the newest records, latex omitted, for history listings.
func (r *ResumesRepo) Recent(ctx context.Context, limit int) ([]domain.ResumeRecord, error) {
	if r.pool == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 20
	}

	rows, err := r.pool.Query(ctx, `SELECT id, title, source, pdf_size, created_at
		FROM resumes ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ResumeRecord
	for rows.Next() {
		var rec domain.ResumeRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Source, &rec.PDFSize, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
