package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject plus Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "welcome" or "roadmap_ready"
	Data     map[string]any `json:"data,omitempty"`
}

// Templated reports whether the job must be rendered before sending.
func (j EmailJob) Templated() bool { return j.Template != "" }
