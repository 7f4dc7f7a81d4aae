package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/internal/domain/repository"
)

const profileColumns = `id, user_id, name, cgpa, interests, skills, resume_text, resume_url,
	summary, gaps, roadmap, keywords, created_at`

type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) *ProfileRepository {
	return &ProfileRepository{pool: pool}
}

func (r *ProfileRepository) CreateWithRecommendations(ctx context.Context, p *entity.Profile, recs []entity.Recommendation) error {
	return pgx.BeginFunc(ctx, r.pool, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
			INSERT INTO profiles (user_id, name, cgpa, interests, skills, resume_text, resume_url,
				summary, gaps, roadmap, keywords)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING id, created_at
		`, p.UserID, p.Name, p.CGPA, p.Interests, p.Skills, p.ResumeText, p.ResumeURL,
			p.Summary, p.Gaps, p.Roadmap, p.Keywords)
		if err := row.Scan(&p.ID, &p.CreatedAt); err != nil {
			return fmt.Errorf("insert profile: %w", mapErr(err))
		}
		return insertRecommendations(ctx, tx, p.ID, recs)
	})
}

func (r *ProfileRepository) Latest(ctx context.Context, userID int64) (*entity.Profile, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+profileColumns+`
		FROM profiles
		WHERE user_id = $1
		ORDER BY id DESC
		LIMIT 1
	`, userID)

	p, err := scanProfile(row)
	if err != nil {
		return nil, mapErr(err)
	}
	return p, nil
}

func (r *ProfileRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]entity.Profile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM profiles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT $2`
		args = append(args, limit)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Profile
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProfileRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM profiles WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	p := &entity.Profile{}
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.CGPA, &p.Interests, &p.Skills, &p.ResumeText,
		&p.ResumeURL, &p.Summary, &p.Gaps, &p.Roadmap, &p.Keywords, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.ProfileRepository = (*ProfileRepository)(nil)
