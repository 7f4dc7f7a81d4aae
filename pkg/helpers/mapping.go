package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/edupath/pkg/mailer"
	mailtpl "github.com/oksasatya/edupath/pkg/mailer/templates"
)

// SubjectFor picks a subject line for templated jobs that carry none.
func SubjectFor(template string) string {
	switch strings.ToLower(template) {
	case mailtpl.Welcome:
		return "Welcome to EduPath"
	case mailtpl.RoadmapReady:
		return "Your career roadmap is ready"
	default:
		return "Notification"
	}
}

// EnsureRecipientAndEmail fills the template's recipient fields from the job.
func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}
