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

const (
	resumeFormTokens    = 700
	resumeBuilderTokens = 600

	// EducationPlaceholder pre-fills the form's education field.
	EducationPlaceholder = "B.Tech in Computer Science\nYour College Name\n2022 - 2026"
	DefaultTemplate      = "classic"
)

const builderBasePrompt = `
Create a professional, ATS-friendly resume in clean text format.
Include:
- Full Name
- Contact (placeholder)
- Education with CGPA
- Skills
- Projects/Experience
Keep it concise.
`

var builderStyles = map[string]string{
	"classic":  " Use traditional, formal language and structure.",
	"modern":   " Use modern, clean language with strong action verbs.",
	"compact":  " Make it very concise, one-page style, focus on impact.",
	"creative": " Use engaging language with storytelling elements, suitable for design/tech roles.",
}

// ResumeForm mirrors the résumé form fields.
type ResumeForm struct {
	Name           string `json:"name" form:"name"`
	Email          string `json:"email" form:"email"`
	Phone          string `json:"phone" form:"phone"`
	LinkedIn       string `json:"linkedin" form:"linkedin"`
	Education      string `json:"education" form:"education"`
	CGPA           string `json:"cgpa" form:"cgpa"`
	Skills         string `json:"skills" form:"skills"`
	Projects       string `json:"projects" form:"projects"`
	Experience     string `json:"experience" form:"experience"`
	Certifications string `json:"certifications" form:"certifications"`
	Summary        string `json:"summary" form:"summary"`
}

func (f ResumeForm) trimmed() ResumeForm {
	return ResumeForm{
		Name:           strings.TrimSpace(f.Name),
		Email:          strings.TrimSpace(f.Email),
		Phone:          strings.TrimSpace(f.Phone),
		LinkedIn:       strings.TrimSpace(f.LinkedIn),
		Education:      strings.TrimSpace(f.Education),
		CGPA:           strings.TrimSpace(f.CGPA),
		Skills:         strings.TrimSpace(f.Skills),
		Projects:       strings.TrimSpace(f.Projects),
		Experience:     strings.TrimSpace(f.Experience),
		Certifications: strings.TrimSpace(f.Certifications),
		Summary:        strings.TrimSpace(f.Summary),
	}
}

// GeneratedResume is a résumé text ready for display and download.
type GeneratedResume struct {
	Template string `json:"template,omitempty"`
	Text     string `json:"resume"`
	Fallback bool   `json:"fallback"`
}

// ResumeService builds résumé texts and renders the latest one as a PDF.
type ResumeService struct {
	Profiles  repo.ProfileRepository
	Resumes   repo.ResumeRepository
	Sessions  SessionStore
	Generator Generator
	Renderer  DocumentRenderer
	Logger    *logrus.Logger
}

func NewResumeService(profiles repo.ProfileRepository, resumes repo.ResumeRepository, sessions SessionStore,
	generator Generator, renderer DocumentRenderer, logger *logrus.Logger) *ResumeService {
	if logger == nil {
		logger = helpers.NopLogger()
	}
	return &ResumeService{Profiles: profiles, Resumes: resumes, Sessions: sessions, Generator: generator, Renderer: renderer, Logger: logger}
}

// PrefillForm fills the form from the latest profile; an empty form when there is none.
func (s *ResumeService) PrefillForm(ctx context.Context, userID int64) (ResumeForm, error) {
	p, err := s.Profiles.Latest(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return ResumeForm{}, nil
	}
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("load latest profile failed")
		return ResumeForm{}, persistence("load latest profile", err)
	}
	return ResumeForm{
		Name:       p.Name,
		CGPA:       p.CGPA,
		Skills:     p.Skills,
		Projects:   p.ResumeText,
		Experience: p.ResumeText,
		Education:  EducationPlaceholder,
	}, nil
}

// SubmitForm saves the draft, then generates the ATS résumé and keeps it in
// the session for download.
func (s *ResumeService) SubmitForm(ctx context.Context, userID int64, form ResumeForm) (*GeneratedResume, error) {
	f := form.trimmed()
	draft := &entity.ResumeDraft{
		UserID:         userID,
		Name:           f.Name,
		Email:          f.Email,
		Phone:          f.Phone,
		LinkedIn:       f.LinkedIn,
		Education:      f.Education,
		CGPA:           f.CGPA,
		Skills:         f.Skills,
		Projects:       f.Projects,
		Experience:     f.Experience,
		Certifications: f.Certifications,
		Summary:        f.Summary,
	}
	if err := s.Resumes.Create(ctx, draft); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("save resume draft failed")
		return nil, persistence("save resume draft", err)
	}

	out := &GeneratedResume{Text: s.Generator.Generate(ctx, atsPrompt(f), resumeFormTokens)}
	if unusable(out.Text) {
		out.Text, out.Fallback = formFallback(f), true
	}
	if err := s.remember(ctx, userID, out.Text); err != nil {
		return nil, err
	}
	return out, nil
}

// Build writes a résumé from the latest profile in the given style. Unknown
// templates use the classic style.
func (s *ResumeService) Build(ctx context.Context, userID int64, template string) (*GeneratedResume, error) {
	template = strings.ToLower(strings.TrimSpace(template))
	style, ok := builderStyles[template]
	if !ok {
		template, style = DefaultTemplate, builderStyles[DefaultTemplate]
	}

	p, err := s.Profiles.Latest(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrNoProfile
	}
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("load latest profile failed")
		return nil, persistence("load latest profile", err)
	}

	data := fmt.Sprintf("Name: %s\nCGPA: %s\nSkills: %s\nInterests: %s\nResume: %s", p.Name, p.CGPA, p.Skills, p.Interests, p.ResumeText)
	out := &GeneratedResume{Template: template}
	out.Text = s.Generator.Generate(ctx, builderBasePrompt+style+"\n\n"+data, resumeBuilderTokens)
	if unusable(out.Text) {
		out.Text, out.Fallback = profileFallback(p), true
	}
	if err := s.remember(ctx, userID, out.Text); err != nil {
		return nil, err
	}
	return out, nil
}

// Download renders the latest résumé of the session, one paragraph per line.
func (s *ResumeService) Download(ctx context.Context, userID int64) ([]byte, error) {
	var text string
	ok, err := s.Sessions.Get(ctx, userID, sessionLatestResume, &text)
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("load latest resume failed")
		return nil, persistence("load latest resume", err)
	}
	if !ok || strings.TrimSpace(text) == "" {
		return nil, ErrNoResume
	}
	doc, err := s.Renderer.Render(strings.Split(text, "\n"))
	if err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("render resume failed")
		return nil, fmt.Errorf("render resume: %w", err)
	}
	return doc, nil
}

func (s *ResumeService) remember(ctx context.Context, userID int64, text string) error {
	if err := s.Sessions.Put(ctx, userID, sessionLatestResume, text); err != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Error("store latest resume failed")
		return persistence("store latest resume", err)
	}
	return nil
}

func unusable(text string) bool {
	return strings.TrimSpace(text) == "" || strings.Contains(text, strings.TrimSpace(entity.GenerationFailurePrefix))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func profileFallback(p *entity.Profile) string {
	return fmt.Sprintf(`**%s**

email@example.com | +91-9876543210 | linkedin.com/in/yourprofile

**EDUCATION**
B.Tech - CGPA: %s

**SKILLS**
• %s

**EXPERIENCE**
• Add your projects and achievements`, p.Name, p.CGPA, orDefault(p.Skills, "Python, ML, AWS"))
}

func formFallback(f ResumeForm) string {
	return fmt.Sprintf(`**%s**

Email: %s | Phone: %s | LinkedIn: %s

**PROFESSIONAL SUMMARY**
Aspiring software engineer with strong foundation in programming and problem-solving.

**TECHNICAL SKILLS**
• Languages: %s
• Tools: Git, VS Code

**EDUCATION**
%s
CGPA: %s/10

**PROJECTS**
%s

**EXPERIENCE / INTERNSHIPS**
%s

**CERTIFICATIONS**
%s

**ACHIEVEMENTS**
• Strong academic performance
`, strings.ToUpper(f.Name), f.Email, f.Phone, f.LinkedIn,
		orDefault(f.Skills, "Python, Java"),
		f.Education, f.CGPA,
		orDefault(f.Projects, "• Add your projects here"),
		orDefault(f.Experience, "None"),
		orDefault(f.Certifications, "None"))
}

func atsPrompt(f ResumeForm) string {
	return fmt.Sprintf(`
Create a highly professional, ATS-friendly resume in clean text format for a Computer Science fresher in India.

Use ONLY bold uppercase letters for ALL headings (no asterisks, no italics, no markdown).
Use standard bullets (•) for lists.
Keep everything plain text, no tables, no graphics.

Exact structure:

**%[1]s**

Email: %[2]s | Phone: %[3]s | LinkedIn/GitHub: %[4]s

**PROFESSIONAL SUMMARY**
3-4 lines highlighting skills, passion, and career goal. Sound natural and confident.

**TECHNICAL SKILLS**
Group into categories:
• Languages: Python, Java, etc.
• Frameworks/Libraries: React, Django, etc.
• Tools & Technologies: Git, AWS, Docker, etc.

**EDUCATION**
%[5]s
CGPA: %[6]s/10

**PROJECTS**
• Project Title
  Description with tech stack and impact (use numbers like "improved performance by 40%%")

• Project Title
  ...

**EXPERIENCE / INTERNSHIPS** (if any)
Company Name - Role (Duration)
• Achievement 1
• Achievement 2

**CERTIFICATIONS**
• Certification Name - Issuer

**ACHIEVEMENTS**
• Hackathon wins, LeetCode ranking, etc.

Make it concise (1 page), use strong action verbs (Developed, Built, Optimized), quantify achievements.
Sound human-written, vary sentence structure, avoid generic phrases.

Data:
Name: %[7]s
Email: %[2]s
Phone: %[3]s
LinkedIn: %[4]s
Education: %[5]s (CGPA: %[6]s)
Skills: %[8]s
Projects: %[9]s
Experience: %[10]s
Certifications: %[11]s
Summary hint: %[12]s
`, strings.ToUpper(f.Name), f.Email, f.Phone, f.LinkedIn, f.Education, f.CGPA,
		f.Name, f.Skills, f.Projects, f.Experience, f.Certifications, f.Summary)
}
