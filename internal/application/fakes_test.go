package application

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/oksasatya/edupath/internal/domain/entity"
	repo "github.com/oksasatya/edupath/internal/domain/repository"
)

var errBoom = errors.New("boom")

type fakeUsers struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]*entity.User
	err    error
}

func newFakeUsers() *fakeUsers { return &fakeUsers{byID: map[int64]*entity.User{}} }

func (f *fakeUsers) Create(_ context.Context, u *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.byID[u.ID] = &cp
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

// fakeStore implements the profile, recommendation and résumé repositories.
type fakeStore struct {
	mu       sync.Mutex
	profiles []entity.Profile
	recs     []entity.Recommendation
	drafts   []entity.ResumeDraft
	nextRec  int64
	clock    time.Time
	failTx   bool
	failRead bool
	failSave bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{clock: time.Date(2025, 1, 2, 9, 0, 0, 0, time.UTC)}
}

func (f *fakeStore) CreateWithRecommendations(_ context.Context, p *entity.Profile, recs []entity.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failTx {
		return errBoom
	}
	p.ID = int64(len(f.profiles) + 1)
	f.clock = f.clock.Add(time.Minute)
	p.CreatedAt = f.clock
	f.profiles = append(f.profiles, *p)
	for i := range recs {
		f.nextRec++
		recs[i].ID = f.nextRec
		recs[i].ProfileID = p.ID
		f.recs = append(f.recs, recs[i])
	}
	return nil
}

func (f *fakeStore) Latest(ctx context.Context, userID int64) (*entity.Profile, error) {
	ps, err := f.ListByUser(ctx, userID, 1)
	if err != nil {
		return nil, err
	}
	if len(ps) == 0 {
		return nil, repo.ErrNotFound
	}
	return &ps[0], nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID int64, limit int) ([]entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failRead {
		return nil, errBoom
	}
	out := []entity.Profile{}
	for _, p := range f.profiles {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) CountByUser(ctx context.Context, userID int64) (int, error) {
	ps, err := f.ListByUser(ctx, userID, 0)
	return len(ps), err
}

func (f *fakeStore) InsertBatch(_ context.Context, profileID int64, recs []entity.Recommendation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range recs {
		f.nextRec++
		recs[i].ID = f.nextRec
		recs[i].ProfileID = profileID
		f.recs = append(f.recs, recs[i])
	}
	return nil
}

func (f *fakeStore) ListForProfile(_ context.Context, profileID int64) ([]entity.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []entity.Recommendation{}
	for _, r := range f.recs {
		if r.ProfileID == profileID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) Create(_ context.Context, d *entity.ResumeDraft) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failSave {
		return errBoom
	}
	d.ID = int64(len(f.drafts) + 1)
	f.drafts = append(f.drafts, *d)
	return nil
}

type fakeSessions struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	values   map[int64]map[string][]byte
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{sessions: map[int64]*Session{}, values: map[int64]map[string][]byte{}}
}

func (f *fakeSessions) Start(_ context.Context, userID int64, email string) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &Session{ID: uuid.NewString(), UserID: userID, Email: email, CreatedAt: time.Now()}
	f.sessions[userID] = s
	f.values[userID] = map[string][]byte{}
	return s, nil
}

func (f *fakeSessions) Lookup(_ context.Context, userID int64) (*Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.sessions[userID]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

func (f *fakeSessions) Put(_ context.Context, userID int64, key string, value any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.sessions[userID]; !ok {
		return ErrSessionNotFound
	}
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.values[userID][key] = b
	return nil
}

func (f *fakeSessions) Get(_ context.Context, userID int64, key string, dest any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.values[userID][key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, dest)
}

func (f *fakeSessions) End(_ context.Context, userID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sessions, userID)
	delete(f.values, userID)
	return nil
}

type call struct {
	Prompt    string
	MaxTokens int
}

// fakeGenerator answers with reply(prompt) and records every call.
type fakeGenerator struct {
	mu    sync.Mutex
	calls []call
	reply func(prompt string) string
}

func echoGenerator() *fakeGenerator {
	return &fakeGenerator{reply: func(p string) string { return "generated: " + strings.SplitN(p, "\n", 2)[0] }}
}

func failingGenerator() *fakeGenerator {
	return &fakeGenerator{reply: func(string) string { return entity.GenerationFailure("quota exceeded") }}
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string, maxTokens int) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call{Prompt: prompt, MaxTokens: maxTokens})
	return f.reply(prompt)
}

type fakeExtractor struct {
	text  string
	calls int
}

func (f *fakeExtractor) Extract([]byte) string {
	f.calls++
	return f.text
}

type fakeRenderer struct {
	lines []string
	err   error
}

func (f *fakeRenderer) Render(lines []string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lines = lines
	return []byte("%PDF-fake"), nil
}

type fakeArchive struct {
	url string
	err error
}

func (f *fakeArchive) Archive(context.Context, int64, string, []byte) (string, error) {
	return f.url, f.err
}

type fakeIndex struct {
	indexed []int64
	hits    []int64
	err     error
}

func (f *fakeIndex) Index(_ context.Context, p *entity.Profile) error {
	if f.err != nil {
		return f.err
	}
	f.indexed = append(f.indexed, p.ID)
	return nil
}

func (f *fakeIndex) Search(context.Context, int64, string, int) ([]int64, error) {
	return f.hits, f.err
}

type fakeNotifier struct {
	welcomed []string
	ready    []int64
	err      error
}

func (f *fakeNotifier) Welcome(_ context.Context, email string) error {
	f.welcomed = append(f.welcomed, email)
	return f.err
}

func (f *fakeNotifier) RoadmapReady(_ context.Context, _ string, p *entity.Profile) error {
	f.ready = append(f.ready, p.ID)
	return f.err
}
