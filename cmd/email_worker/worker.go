package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/pkg/helpers"
	"github.com/oksasatya/edupath/pkg/mailer"
	mailtpl "github.com/oksasatya/edupath/pkg/mailer/templates"
)

type outcome int

const (
	outcomeAck outcome = iota
	// transient failure, requeue
	outcomeRetry
	// poison message, drop
	outcomeDrop
)

type worker struct {
	sender mailer.Sender
	log    *logrus.Logger
}

func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.log.WithError(err).Warn("bad message")
		return outcomeDrop
	}
	if job.To == "" {
		w.log.Warn("message without recipient")
		return outcomeDrop
	}

	helpers.EnsureRecipientAndEmail(&job)

	subject, text, html := job.Subject, job.Text, job.HTML
	if job.Templated() {
		s, t, h, err := mailtpl.Render(job.Template, job.Data)
		if err != nil {
			w.log.WithError(err).WithField("template", job.Template).Warn("render failed")
			return outcomeDrop
		}
		subject, text, html = s, t, h
	}
	if subject == "" {
		subject = helpers.SubjectFor(job.Template)
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := w.sender.Send(c, job.To, subject, text, html); err != nil {
		w.log.WithError(err).WithField("to", job.To).Warn("send failed")
		return outcomeRetry
	}
	return outcomeAck
}
