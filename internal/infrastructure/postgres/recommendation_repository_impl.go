package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/internal/domain/repository"
)

type RecommendationRepository struct {
	pool *pgxpool.Pool
}

func NewRecommendationRepository(pool *pgxpool.Pool) *RecommendationRepository {
	return &RecommendationRepository{pool: pool}
}

func (r *RecommendationRepository) InsertBatch(ctx context.Context, profileID int64, recs []entity.Recommendation) error {
	return insertRecommendations(ctx, r.pool, profileID, recs)
}

func (r *RecommendationRepository) ListForProfile(ctx context.Context, profileID int64) ([]entity.Recommendation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, profile_id, type, data
		FROM recommendations
		WHERE profile_id = $1
		ORDER BY id ASC
	`, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Recommendation, 0, 11)
	for rows.Next() {
		var (
			rec  entity.Recommendation
			typ  string
			data []byte
		)
		if err := rows.Scan(&rec.ID, &rec.ProfileID, &typ, &data); err != nil {
			return nil, err
		}
		rec.Type = entity.RecommendationType(typ)
		rec.Data = data
		out = append(out, rec)
	}
	return out, rows.Err()
}

// insertRecommendations queues one INSERT per record in a single round trip and
// writes the generated ids back into recs.
func insertRecommendations(ctx context.Context, db dbtx, profileID int64, recs []entity.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}
	b := &pgx.Batch{}
	for _, rec := range recs {
		b.Queue(`
			INSERT INTO recommendations (profile_id, type, data)
			VALUES ($1, $2, $3)
			RETURNING id
		`, profileID, string(rec.Type), []byte(rec.Data))
	}

	br := db.SendBatch(ctx, b)
	for i := range recs {
		if err := br.QueryRow().Scan(&recs[i].ID); err != nil {
			_ = br.Close()
			return fmt.Errorf("insert recommendation %d/%d: %w", i+1, len(recs), err)
		}
		recs[i].ProfileID = profileID
	}
	return br.Close()
}

var _ repository.RecommendationRepository = (*RecommendationRepository)(nil)
