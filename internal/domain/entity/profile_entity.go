package entity

import (
	"strings"
	"time"
)

// Profile is one career-advice submission. Rows are immutable once written.
type Profile struct {
	ID         int64
	UserID     int64
	Name       string
	CGPA       string
	Interests  string
	Skills     string
	ResumeText string
	ResumeURL  string
	Summary    string
	Gaps       string
	Roadmap    string
	Keywords   string
	CreatedAt  time.Time
}

// SkillList splits the comma separated skills, dropping blanks.
func (p *Profile) SkillList() []string {
	return SplitSkills(p.Skills)
}

// SplitSkills splits a comma separated list and trims every entry.
func SplitSkills(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, s := range parts {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
