package handlers

import (
	"encoding/json"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/edupath/internal/application"
	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/internal/interface/middleware"
)

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(middleware.CtxUserIDKey)
}

type userDTO struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func toUserDTO(u *entity.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

type profileDTO struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name"`
	CGPA       string    `json:"cgpa"`
	Interests  string    `json:"interests"`
	Skills     string    `json:"skills"`
	ResumeText string    `json:"resume_text"`
	ResumeURL  string    `json:"resume_url,omitempty"`
	Summary    string    `json:"summary"`
	Gaps       string    `json:"gaps"`
	Roadmap    string    `json:"roadmap"`
	Keywords   string    `json:"keywords"`
	CreatedAt  time.Time `json:"created_at"`
}

func toProfileDTO(p *entity.Profile) *profileDTO {
	if p == nil {
		return nil
	}
	return &profileDTO{
		ID:         p.ID,
		Name:       p.Name,
		CGPA:       p.CGPA,
		Interests:  p.Interests,
		Skills:     p.Skills,
		ResumeText: p.ResumeText,
		ResumeURL:  p.ResumeURL,
		Summary:    p.Summary,
		Gaps:       p.Gaps,
		Roadmap:    p.Roadmap,
		Keywords:   p.Keywords,
		CreatedAt:  p.CreatedAt,
	}
}

type recommendationDTO struct {
	ID   int64           `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

func toRecommendationDTOs(recs []entity.Recommendation) []recommendationDTO {
	out := make([]recommendationDTO, 0, len(recs))
	for _, r := range recs {
		out = append(out, recommendationDTO{ID: r.ID, Type: string(r.Type), Data: r.Data})
	}
	return out
}

type submissionDTO struct {
	Profile         *profileDTO         `json:"profile"`
	Courses         []string            `json:"courses"`
	Careers         []string            `json:"careers"`
	Jobs            []entity.Job        `json:"jobs"`
	Recommendations []recommendationDTO `json:"recommendations"`
}

func toSubmissionDTO(s *application.Submission) submissionDTO {
	return submissionDTO{
		Profile:         toProfileDTO(s.Profile),
		Courses:         s.Courses,
		Careers:         s.Careers,
		Jobs:            s.Jobs,
		Recommendations: toRecommendationDTOs(s.Recommendations),
	}
}

type dashboardDTO struct {
	Total            int                      `json:"total"`
	Latest           *profileDTO              `json:"latest"`
	SkillLabels      []string                 `json:"skill_labels"`
	SkillData        []int                    `json:"skill_data"`
	RecentActivities []application.Activity   `json:"recent_activities"`
	Goals            []application.Goal       `json:"goals"`
	SkillBreakdown   []application.SkillLevel `json:"skill_breakdown"`
	Courses          []string                 `json:"courses"`
	Careers          []string                 `json:"careers"`
	Jobs             []entity.Job             `json:"jobs"`
}

func toDashboardDTO(d *application.Dashboard) dashboardDTO {
	return dashboardDTO{
		Total:            d.Total,
		Latest:           toProfileDTO(d.Latest),
		SkillLabels:      d.SkillLabels,
		SkillData:        d.SkillData,
		RecentActivities: d.RecentActivities,
		Goals:            d.Goals,
		SkillBreakdown:   d.SkillBreakdown,
		Courses:          d.Courses,
		Careers:          d.Careers,
		Jobs:             d.Jobs,
	}
}

type historyDTO struct {
	Profile         *profileDTO         `json:"profile"`
	Recommendations []recommendationDTO `json:"recommendations"`
}

func toHistoryDTOs(entries []application.HistoryEntry) []historyDTO {
	out := make([]historyDTO, 0, len(entries))
	for i := range entries {
		out = append(out, historyDTO{
			Profile:         toProfileDTO(&entries[i].Profile),
			Recommendations: toRecommendationDTOs(entries[i].Recommendations),
		})
	}
	return out
}
