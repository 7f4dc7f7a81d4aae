package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/domain/entity"
	repo "github.com/oksasatya/edupath/internal/domain/repository"
	"github.com/oksasatya/edupath/pkg/helpers"
)

// DefaultCGPA is stored when the form leaves CGPA blank.
const DefaultCGPA = "7.0"

const (
	summaryPrompt = "3-bullet student summary:\n"
	gapsPrompt    = "3 skill gaps with fixes:\n"
	roadmapPrompt = "6-month roadmap:\n"

	summaryTokens = 150
	gapsTokens    = 250
	roadmapTokens = 800
)

// Upload is a file attached to a form.
type Upload struct {
	Filename string
	Data     []byte
}

type SubmitInput struct {
	Name      string
	CGPA      string
	Interests string
	Skills    string
	Document  *Upload
}

// Submission is a stored profile together with its decoded recommendations.
type Submission struct {
	Profile         *entity.Profile
	Courses         []string
	Careers         []string
	Jobs            []entity.Job
	Recommendations []entity.Recommendation
}

// ProfileService runs the profile submission workflow. Archive, Index and
// Notifier are optional.
type ProfileService struct {
	Profiles        repo.ProfileRepository
	Recommendations repo.RecommendationRepository
	Users           repo.UserRepository
	Extractor       TextExtractor
	Generator       Generator
	Jobs            JobSource
	Archive         DocumentArchive
	Index           ProfileIndex
	Notifier        Notifier
	Logger          *logrus.Logger
}

// isPDFName reports whether an upload is handed to the extractor.
func isPDFName(filename string) bool {
	return strings.HasSuffix(strings.ToLower(strings.TrimSpace(filename)), ".pdf")
}

func profileBlob(cgpa, skills, interests, resume string) string {
	return fmt.Sprintf("CGPA: %s\nSkills: %s\nInterests: %s\nResume: %s", cgpa, skills, interests, resume)
}

// Submit validates the form, generates the analysis and stores the profile
// with its eleven recommendations in one transaction.
func (s *ProfileService) Submit(ctx context.Context, userID int64, in SubmitInput) (*Submission, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("name", "is required")
	}
	cgpa := strings.TrimSpace(in.CGPA)
	if cgpa == "" {
		cgpa = DefaultCGPA
	}
	interests := strings.TrimSpace(in.Interests)
	skills := strings.TrimSpace(in.Skills)

	var resumeText string
	isPDF := in.Document != nil && isPDFName(in.Document.Filename)
	if isPDF {
		resumeText = s.Extractor.Extract(in.Document.Data)
	}

	blob := profileBlob(cgpa, skills, interests, resumeText)
	p := &entity.Profile{
		UserID:     userID,
		Name:       name,
		CGPA:       cgpa,
		Interests:  interests,
		Skills:     skills,
		ResumeText: resumeText,
		Keywords:   Keywords,
	}
	p.Summary = s.Generator.Generate(ctx, summaryPrompt+blob, summaryTokens)
	p.Gaps = s.Generator.Generate(ctx, gapsPrompt+blob, gapsTokens)
	p.Roadmap = s.Generator.Generate(ctx, roadmapPrompt+blob, roadmapTokens)

	jobs, err := s.Jobs.Jobs(ctx)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("job source failed")
		jobs = []entity.Job{}
	}
	recs, err := buildRecommendations(Courses, Careers, jobs)
	if err != nil {
		return nil, err
	}

	if isPDF && s.Archive != nil {
		url, err := s.Archive.Archive(ctx, userID, in.Document.Filename, in.Document.Data)
		if err != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Warn("archive resume failed")
		} else {
			p.ResumeURL = url
		}
	}

	if err := s.Profiles.CreateWithRecommendations(ctx, p, recs); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("store profile failed")
		return nil, persistence("store profile", err)
	}

	s.afterSubmit(ctx, p)

	return &Submission{
		Profile:         p,
		Courses:         append([]string(nil), Courses...),
		Careers:         append([]string(nil), Careers...),
		Jobs:            jobs,
		Recommendations: recs,
	}, nil
}

// afterSubmit runs the best-effort side effects of a stored profile.
func (s *ProfileService) afterSubmit(ctx context.Context, p *entity.Profile) {
	fields := logrus.Fields{"user_id": p.UserID, "profile_id": p.ID}
	if s.Index != nil {
		if err := s.Index.Index(ctx, p); err != nil {
			s.Logger.WithError(err).WithFields(fields).Warn("index profile failed")
		}
	}
	if s.Notifier != nil && s.Users != nil {
		u, err := s.Users.GetByID(ctx, p.UserID)
		if err != nil {
			s.Logger.WithError(err).WithFields(fields).Warn("load user for notification failed")
			return
		}
		if err := s.Notifier.RoadmapReady(ctx, u.Email, p); err != nil {
			s.Logger.WithError(err).WithFields(fields).Warn("queue roadmap email failed")
		}
	}
}

// Latest returns the newest submission of the user.
func (s *ProfileService) Latest(ctx context.Context, userID int64) (*Submission, error) {
	p, err := s.Profiles.Latest(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNoProfile
		}
		s.Logger.WithError(err).WithField("user_id", userID).Error("load latest profile failed")
		return nil, persistence("load latest profile", err)
	}
	recs, err := s.Recommendations.ListForProfile(ctx, p.ID)
	if err != nil {
		s.Logger.WithError(err).WithField("profile_id", p.ID).Error("load recommendations failed")
		return nil, persistence("load recommendations", err)
	}
	sub := &Submission{Profile: p, Recommendations: recs}
	sub.Courses, sub.Careers, sub.Jobs = splitRecommendations(recs, s.Logger)
	return sub, nil
}

// NewProfileService wires the workflow. archive, index and notifier may be nil.
func NewProfileService(profiles repo.ProfileRepository, recs repo.RecommendationRepository, users repo.UserRepository,
	extractor TextExtractor, generator Generator, jobs JobSource, archive DocumentArchive, index ProfileIndex,
	notifier Notifier, logger *logrus.Logger) *ProfileService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	if jobs == nil {
		jobs = StaticJobSource{}
	}
	return &ProfileService{
		Profiles:        profiles,
		Recommendations: recs,
		Users:           users,
		Extractor:       extractor,
		Generator:       generator,
		Jobs:            jobs,
		Archive:         archive,
		Index:           index,
		Notifier:        notifier,
		Logger:          logger,
	}
}

func buildRecommendations(courses, careers []string, jobs []entity.Job) ([]entity.Recommendation, error) {
	recs := make([]entity.Recommendation, 0, len(courses)+len(careers)+len(jobs))
	for _, c := range courses {
		r, err := entity.NewCourse(c)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	for _, c := range careers {
		r, err := entity.NewCareer(c)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	for _, j := range jobs {
		r, err := entity.NewJob(j)
		if err != nil {
			return nil, err
		}
		recs = append(recs, r)
	}
	return recs, nil
}

// splitRecommendations decodes records by type, keeping insertion order.
// Undecodable records are logged and skipped.
func splitRecommendations(recs []entity.Recommendation, log *logrus.Logger) (courses, careers []string, jobs []entity.Job) {
	if log == nil {
		log = helpers.NopLogger()
	}
	courses, careers, jobs = []string{}, []string{}, []entity.Job{}
	for _, r := range recs {
		switch r.Type {
		case entity.RecommendationCourse, entity.RecommendationCareer:
			name, err := r.Name()
			if err != nil {
				log.WithError(err).WithField("recommendation_id", r.ID).Warn("skip recommendation")
				continue
			}
			if r.Type == entity.RecommendationCourse {
				courses = append(courses, name)
			} else {
				careers = append(careers, name)
			}
		case entity.RecommendationJob:
			j, err := r.Job()
			if err != nil {
				log.WithError(err).WithField("recommendation_id", r.ID).Warn("skip recommendation")
				continue
			}
			jobs = append(jobs, j)
		}
	}
	return courses, careers, jobs
}
