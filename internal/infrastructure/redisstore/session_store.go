package redisstore

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/pkg/helpers"
)

// valuePrefix keeps caller values apart from the session's own fields.
const valuePrefix = "v:"

// SessionStore keeps one Redis hash per user at user:session:<id>.
type SessionStore struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewSessionStore(rdb redis.Cmdable, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionStore{rdb: rdb, ttl: ttl}
}

func sessionKey(userID int64) string {
	return "user:session:" + strconv.FormatInt(userID, 10)
}

// Start replaces any previous session of the user.
func (s *SessionStore) Start(ctx context.Context, userID int64, email string) (*application.Session, error) {
	sess := &application.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	key := sessionKey(userID)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, key)
	pipe.HSet(ctx, key, map[string]any{
		"user_id":    userID,
		"email":      email,
		"sid":        sess.ID,
		"created_at": sess.CreatedAt.Format(time.RFC3339Nano),
	})
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return sess, nil
}

func (s *SessionStore) Lookup(ctx context.Context, userID int64) (*application.Session, error) {
	vals, err := s.rdb.HMGet(ctx, sessionKey(userID), "sid", "email", "created_at").Result()
	if err != nil {
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	sid, _ := vals[0].(string)
	if sid == "" {
		return nil, application.ErrSessionNotFound
	}
	email, _ := vals[1].(string)
	created, _ := vals[2].(string)
	at, _ := time.Parse(time.RFC3339Nano, created)
	return &application.Session{ID: sid, UserID: userID, Email: email, CreatedAt: at}, nil
}

// Put refuses to write into a session that does not exist. The existence
// check and the write run as one script.
func (s *SessionStore) Put(ctx context.Context, userID int64, key string, value any) error {
	ok, err := helpers.RedisHSetJSONIfExists(ctx, s.rdb, sessionKey(userID), "sid", valuePrefix+key, value)
	if err != nil {
		return fmt.Errorf("put session value %s: %w", key, err)
	}
	if !ok {
		return application.ErrSessionNotFound
	}
	return nil
}

func (s *SessionStore) Get(ctx context.Context, userID int64, key string, dest any) (bool, error) {
	ok, err := helpers.RedisHGetJSON(ctx, s.rdb, sessionKey(userID), valuePrefix+key, dest)
	if err != nil {
		return false, fmt.Errorf("get session value %s: %w", key, err)
	}
	return ok, nil
}

func (s *SessionStore) End(ctx context.Context, userID int64) error {
	if err := helpers.RedisDel(ctx, s.rdb, sessionKey(userID)); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}
