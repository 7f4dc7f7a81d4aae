package application

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/domain/entity"
	repo "github.com/oksasatya/edupath/internal/domain/repository"
	"github.com/oksasatya/edupath/pkg/helpers"
)

const activityTimeLayout = "2006-01-02 15:04"

var (
	defaultSkillLabels = []string{"Python", "ML", "SQL"}
	skillChartData     = []int{70, 80, 90}
)

type Activity struct {
	Name string `json:"name"`
	Time string `json:"time"`
}

type Goal struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type SkillLevel struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Dashboard is the overview of a user's submissions. Latest is nil when the
// user has not submitted anything yet.
type Dashboard struct {
	Total            int
	Latest           *entity.Profile
	SkillLabels      []string
	SkillData        []int
	RecentActivities []Activity
	Goals            []Goal
	SkillBreakdown   []SkillLevel
	Courses          []string
	Careers          []string
	Jobs             []entity.Job
}

// HistoryEntry is one past submission with its recommendations in insertion order.
type HistoryEntry struct {
	Profile         entity.Profile
	Recommendations []entity.Recommendation
}

// DashboardService serves read-only views over stored submissions. Index is optional.
type DashboardService struct {
	Profiles        repo.ProfileRepository
	Recommendations repo.RecommendationRepository
	Index           ProfileIndex
	Logger          *logrus.Logger
}

// NewDashboardService builds the read views. index may be nil.
func NewDashboardService(profiles repo.ProfileRepository, recs repo.RecommendationRepository, index ProfileIndex, logger *logrus.Logger) *DashboardService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &DashboardService{Profiles: profiles, Recommendations: recs, Index: index, Logger: logger}
}

func emptyDashboard() *Dashboard {
	return &Dashboard{
		SkillLabels:      []string{},
		SkillData:        []int{},
		RecentActivities: []Activity{},
		Goals:            []Goal{},
		SkillBreakdown:   []SkillLevel{},
		Courses:          []string{},
		Careers:          []string{},
		Jobs:             []entity.Job{},
	}
}

func (s *DashboardService) Dashboard(ctx context.Context, userID int64) (*Dashboard, error) {
	fields := logrus.Fields{"user_id": userID}
	total, err := s.Profiles.CountByUser(ctx, userID)
	if err != nil {
		s.Logger.WithError(err).WithFields(fields).Error("count profiles failed")
		return nil, persistence("count profiles", err)
	}
	d := emptyDashboard()
	if total == 0 {
		return d, nil
	}
	d.Total = total

	latest, err := s.Profiles.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return emptyDashboard(), nil
		}
		s.Logger.WithError(err).WithFields(fields).Error("load latest profile failed")
		return nil, persistence("load latest profile", err)
	}
	d.Latest = latest

	skills := latest.SkillList()
	d.SkillLabels = firstN(skills, 5)
	if len(d.SkillLabels) == 0 {
		d.SkillLabels = append([]string(nil), defaultSkillLabels...)
	}
	d.SkillData = append([]int(nil), skillChartData[:min(len(skillChartData), len(d.SkillLabels))]...)
	for _, sk := range firstN(skills, 6) {
		d.SkillBreakdown = append(d.SkillBreakdown, SkillLevel{Name: sk, Level: 75})
	}
	d.Goals = []Goal{{Name: "Apply Jobs", Progress: min(total*30, 100)}}

	recent, err := s.Profiles.ListByUser(ctx, userID, 3)
	if err != nil {
		s.Logger.WithError(err).WithFields(fields).Error("list recent profiles failed")
		return nil, persistence("list recent profiles", err)
	}
	for _, p := range recent {
		d.RecentActivities = append(d.RecentActivities, Activity{Name: p.Name, Time: p.CreatedAt.Format(activityTimeLayout)})
	}

	recs, err := s.Recommendations.ListForProfile(ctx, latest.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("profile_id", latest.ID).Error("load recommendations failed")
		return nil, persistence("load recommendations", err)
	}
	d.Courses, d.Careers, d.Jobs = splitRecommendations(recs, s.Logger)
	return d, nil
}

// History lists every submission newest first.
func (s *DashboardService) History(ctx context.Context, userID int64) ([]HistoryEntry, error) {
	profiles, err := s.Profiles.ListByUser(ctx, userID, 0)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("list profiles failed")
		return nil, persistence("list profiles", err)
	}
	return s.withRecommendations(ctx, profiles)
}

// SearchHistory returns the user's submissions matching query, best match
// first. Without a search index it returns no entries.
func (s *DashboardService) SearchHistory(ctx context.Context, userID int64, query string) ([]HistoryEntry, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("q", "is required")
	}
	if s.Index == nil {
		return []HistoryEntry{}, nil
	}
	ids, err := s.Index.Search(ctx, userID, query, 20)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("search profiles failed")
		return []HistoryEntry{}, nil
	}
	if len(ids) == 0 {
		return []HistoryEntry{}, nil
	}

	profiles, err := s.Profiles.ListByUser(ctx, userID, 0)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("list profiles failed")
		return nil, persistence("list profiles", err)
	}
	byID := make(map[int64]entity.Profile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}
	matched := make([]entity.Profile, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			matched = append(matched, p)
		}
	}
	return s.withRecommendations(ctx, matched)
}

func (s *DashboardService) withRecommendations(ctx context.Context, profiles []entity.Profile) ([]HistoryEntry, error) {
	out := make([]HistoryEntry, 0, len(profiles))
	for _, p := range profiles {
		recs, err := s.Recommendations.ListForProfile(ctx, p.ID)
		if err != nil {
			s.Logger.WithError(err).WithField("profile_id", p.ID).Error("load recommendations failed")
			return nil, persistence("load recommendations", err)
		}
		out = append(out, HistoryEntry{Profile: p, Recommendations: recs})
	}
	return out, nil
}

func firstN(xs []string, n int) []string {
	if len(xs) > n {
		xs = xs[:n]
	}
	return append([]string{}, xs...)
}
