package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/internal/domain/repository"
)

type ResumeRepository struct {
	pool *pgxpool.Pool
}

func NewResumeRepository(pool *pgxpool.Pool) *ResumeRepository {
	return &ResumeRepository{pool: pool}
}

func (r *ResumeRepository) Create(ctx context.Context, d *entity.ResumeDraft) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO resumes (user_id, name, email, phone, linkedin, education, cgpa, skills,
			projects, experience, certifications, summary)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id, created_at
	`, d.UserID, d.Name, d.Email, d.Phone, d.LinkedIn, d.Education, d.CGPA, d.Skills,
		d.Projects, d.Experience, d.Certifications, d.Summary)

	return mapErr(row.Scan(&d.ID, &d.CreatedAt))
}

var _ repository.ResumeRepository = (*ResumeRepository)(nil)
