package messaging

import (
	"context"
	"time"

	"github.com/oksasatya/edupath/config"
	"github.com/oksasatya/edupath/internal/domain/entity"
	"github.com/oksasatya/edupath/pkg/helpers"
	"github.com/oksasatya/edupath/pkg/mailer"
	mailtpl "github.com/oksasatya/edupath/pkg/mailer/templates"
)

// EmailNotifier queues templated e-mail jobs for cmd/email_worker.
type EmailNotifier struct {
	pub helpers.JSONPublisher
	cfg *config.Config
}

func NewEmailNotifier(pub helpers.JSONPublisher, cfg *config.Config) *EmailNotifier {
	return &EmailNotifier{pub: pub, cfg: cfg}
}

func (n *EmailNotifier) Welcome(ctx context.Context, email string) error {
	return n.publish(ctx, mailer.EmailJob{
		To:       email,
		Template: mailtpl.Welcome,
		Data:     mailtpl.NewWelcomeData(n.cfg, email, mailtpl.WithTime(time.Now())),
	})
}

func (n *EmailNotifier) RoadmapReady(ctx context.Context, email string, p *entity.Profile) error {
	summary := p.Summary
	if entity.IsGenerationFailure(summary) {
		summary = ""
	}
	return n.publish(ctx, mailer.EmailJob{
		To:       email,
		Template: mailtpl.RoadmapReady,
		Data:     mailtpl.NewRoadmapReadyData(n.cfg, p.Name, email, p.ID, summary, mailtpl.WithTime(p.CreatedAt)),
	})
}

func (n *EmailNotifier) publish(ctx context.Context, job mailer.EmailJob) error {
	job.Subject = helpers.SubjectFor(job.Template)
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return n.pub.PublishJSON(c, job)
}
