package application

import (
	"context"
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/pkg/helpers"
)

const (
	DefaultRating = 3
	MinRating     = 1
	MaxRating     = 5

	strongThreshold = 4
	gapThreshold    = 2

	BalancedFeedback   = "Balanced profile: focus on specialization"
	FoundationFeedback = "Strong foundation: maintain with advanced challenges"
)

type Question struct {
	Skill    string `json:"skill"`
	Question string `json:"question"`
}

type QuizResult struct {
	Skills          []string       `json:"skills"`
	Scores          map[string]int `json:"scores"`
	Strong          []string       `json:"strong"`
	Gaps            []string       `json:"gaps"`
	StrongFeedback  string         `json:"strong_text"`
	GapPlan         string         `json:"gaps_text"`
	Recommendations string         `json:"recommendations"`
}

// QuizService runs the self-assessment quiz; its state lives in the session.
type QuizService struct {
	Sessions  SessionStore
	Generator Generator
	Logger    *logrus.Logger
}

func NewQuizService(sessions SessionStore, generator Generator, logger *logrus.Logger) *QuizService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &QuizService{Sessions: sessions, Generator: generator, Logger: logger}
}

// capitalize upper-cases the first letter and lower-cases the rest.
func capitalize(s string) string {
	r := []rune(strings.ToLower(s))
	if len(r) > 0 {
		r[0] = unicode.ToUpper(r[0])
	}
	return string(r)
}

func buildQuestions(skills []string) []Question {
	qs := make([]Question, 0, len(skills))
	for _, sk := range skills {
		qs = append(qs, Question{Skill: sk, Question: "How confident are you with " + capitalize(sk) + "?"})
	}
	return qs
}

// Start stores the skills to rate and returns one question per skill.
func (s *QuizService) Start(ctx context.Context, userID int64, skillsCSV string) ([]Question, error) {
	skills := entity.SplitSkills(skillsCSV)
	if len(skills) == 0 {
		return nil, invalid("user_skills", "must list at least one skill")
	}
	questions := buildQuestions(skills)
	if err := s.Sessions.Put(ctx, userID, sessionQuizSkills, skills); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("store quiz skills failed")
		return nil, persistence("store quiz", err)
	}
	if err := s.Sessions.Put(ctx, userID, sessionQuizQuestions, questions); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("store quiz questions failed")
		return nil, persistence("store quiz", err)
	}
	return questions, nil
}

// Current returns the questions of the quiz in progress, or none.
func (s *QuizService) Current(ctx context.Context, userID int64) ([]Question, error) {
	var questions []Question
	if _, err := s.Sessions.Get(ctx, userID, sessionQuizQuestions, &questions); err != nil {
		return nil, persistence("load quiz", err)
	}
	if questions == nil {
		questions = []Question{}
	}
	return questions, nil
}

// Result scores the ratings against the stored skills. Skills without a
// rating count as DefaultRating; ratings for unknown skills are ignored.
func (s *QuizService) Result(ctx context.Context, userID int64, ratings map[string]int) (*QuizResult, error) {
	var skills []string
	if _, err := s.Sessions.Get(ctx, userID, sessionQuizSkills, &skills); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("load quiz skills failed")
		return nil, persistence("load quiz", err)
	}
	if len(skills) == 0 {
		return nil, ErrNoQuizInProgress
	}

	res := &QuizResult{Skills: skills, Scores: make(map[string]int, len(skills)), Strong: []string{}, Gaps: []string{}}
	bad := map[string]string{}
	for _, sk := range skills {
		score, ok := ratings[sk]
		if !ok {
			score = DefaultRating
		}
		if score < MinRating || score > MaxRating {
			bad[sk] = "must be between 1 and 5"
			continue
		}
		res.Scores[sk] = score
		switch {
		case score >= strongThreshold:
			res.Strong = append(res.Strong, sk)
		case score <= gapThreshold:
			res.Gaps = append(res.Gaps, sk)
		}
	}
	if len(bad) > 0 {
		return nil, &ValidationError{Fields: bad}
	}

	if len(res.Strong) > 0 {
		res.StrongFeedback = s.Generator.Generate(ctx, "Leverage these strengths for career growth: "+strings.Join(res.Strong, ", "), 250)
	}
	if res.StrongFeedback == "" {
		res.StrongFeedback = BalancedFeedback
	}
	if len(res.Gaps) > 0 {
		res.GapPlan = s.Generator.Generate(ctx, "3-month improvement plan with courses/projects for gaps: "+strings.Join(res.Gaps, ", "), 400)
	}
	if res.GapPlan == "" {
		res.GapPlan = FoundationFeedback
	}
	res.Recommendations = s.Generator.Generate(ctx, "Suggest 3 free/paid courses + projects for overall skills: "+strings.Join(skills, ", "), 300)
	return res, nil
}
