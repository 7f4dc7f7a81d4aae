package templates

import (
	"time"

	"github.com/oksasatya/edupath/config"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		d.Time = t.UTC().Format("02 January 2006, 15:04")
	}
}

func WithProfile(id int64, summary string) Option {
	return func(d *EmailData) {
		d.ProfileID = id
		d.Summary = summary
	}
}

// NewBaseEmailData fills the common fields from config, then applies opts.
func NewBaseEmailData(cfg *config.Config, typ, name, email string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           typ,
		AppName:        cfg.AppName,
		AppURL:         cfg.AppURL,
		SupportURL:     cfg.SupportURL,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func NewWelcomeData(cfg *config.Config, email string, opts ...Option) map[string]any {
	return ToMap(NewBaseEmailData(cfg, Welcome, "", email, opts...))
}

func NewRoadmapReadyData(cfg *config.Config, name, email string, profileID int64, summary string, opts ...Option) map[string]any {
	opts = append([]Option{WithProfile(profileID, summary)}, opts...)
	return ToMap(NewBaseEmailData(cfg, RoadmapReady, name, email, opts...))
}
