package application

import (
	"context"
	"time"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

// Generator produces text for a prompt. Failures come back as
// entity.GenerationFailure text, never as an error.
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) string
}

// TextExtractor reads plain text from an uploaded document; "" on any failure.
type TextExtractor interface {
	Extract(data []byte) string
}

// DocumentRenderer lays out lines of text as a PDF.
type DocumentRenderer interface {
	Render(lines []string) ([]byte, error)
}

// JobSource supplies job postings for a new submission.
type JobSource interface {
	Jobs(ctx context.Context) ([]entity.Job, error)
}

// Session is the server-side state bound to a logged in user.
type Session struct {
	ID        string
	UserID    int64
	Email     string
	CreatedAt time.Time
}

// SessionStore keeps per-user session state. Values written with Put live
// until End is called or the session expires.
type SessionStore interface {
	Start(ctx context.Context, userID int64, email string) (*Session, error)
	// Lookup returns ErrSessionNotFound when no session is active.
	Lookup(ctx context.Context, userID int64) (*Session, error)
	Put(ctx context.Context, userID int64, key string, value any) error
	// Get decodes the value into dest and reports whether it was present.
	Get(ctx context.Context, userID int64, key string, dest any) (bool, error)
	End(ctx context.Context, userID int64) error
}

// DocumentArchive keeps a copy of uploaded résumés and returns their URL.
type DocumentArchive interface {
	Archive(ctx context.Context, userID int64, filename string, data []byte) (string, error)
}

// ProfileIndex makes submitted profiles searchable per user.
type ProfileIndex interface {
	Index(ctx context.Context, p *entity.Profile) error
	Search(ctx context.Context, userID int64, query string, limit int) ([]int64, error)
}

// Notifier queues user-facing e-mails.
type Notifier interface {
	Welcome(ctx context.Context, email string) error
	RoadmapReady(ctx context.Context, email string, p *entity.Profile) error
}

// Session value keys.
const (
	sessionQuizSkills    = "quiz_skills"
	sessionQuizQuestions = "quiz_questions"
	sessionLatestResume  = "latest_resume"
)
