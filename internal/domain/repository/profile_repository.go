package repository

import (
	"context"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

// ProfileRepository stores immutable profile submissions.
type ProfileRepository interface {
	// CreateWithRecommendations inserts p, assigns its ID and CreatedAt, then inserts
	// recs for it. Both writes commit together or not at all.
	CreateWithRecommendations(ctx context.Context, p *entity.Profile, recs []entity.Recommendation) error
	Latest(ctx context.Context, userID int64) (*entity.Profile, error)
	// ListByUser returns profiles newest first; limit <= 0 means all.
	ListByUser(ctx context.Context, userID int64, limit int) ([]entity.Profile, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}

// RecommendationRepository is an append-only store of typed recommendations.
type RecommendationRepository interface {
	InsertBatch(ctx context.Context, profileID int64, recs []entity.Recommendation) error
	// ListForProfile returns records in insertion order.
	ListForProfile(ctx context.Context, profileID int64) ([]entity.Recommendation, error)
}

// ResumeRepository stores résumé form drafts.
type ResumeRepository interface {
	Create(ctx context.Context, d *entity.ResumeDraft) error
}
