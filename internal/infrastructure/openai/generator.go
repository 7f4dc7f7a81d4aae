package openai

import (
	"context"
	"errors"
	"strings"

	goopenai "github.com/sashabaranov/go-openai"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/edupath/internal/domain/entity"
)

// NotConfigured is the failure reason reported when no API key is set.
const NotConfigured = "AI not configured. Add OPENAI_API_KEY to .env"

var errNoChoices = errors.New("empty completion")

// ChatClient is the subset of the go-openai client used here.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Generator turns prompts into text through the chat completions API.
// It never returns an error: failures come back as entity.GenerationFailure text.
type Generator struct {
	client ChatClient
	model  string
	calls  *prometheus.CounterVec
	log    *logrus.Logger
}

// NewGenerator builds a generator. An empty apiKey yields a generator that
// reports NotConfigured without touching the network.
func NewGenerator(apiKey, model string, reg prometheus.Registerer, log *logrus.Logger) *Generator {
	var client ChatClient
	if apiKey != "" {
		client = goopenai.NewClient(apiKey)
	}
	return newGenerator(client, model, reg, log)
}

func newGenerator(client ChatClient, model string, reg prometheus.Registerer, log *logrus.Logger) *Generator {
	if model == "" {
		model = goopenai.GPT4oMini
	}
	calls := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "edupath_generation_calls_total",
		Help: "Text generation calls by outcome.",
	}, []string{"outcome"})
	if reg != nil {
		if err := reg.Register(calls); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				calls = are.ExistingCollector.(*prometheus.CounterVec)
			}
		}
	}
	return &Generator{client: client, model: model, calls: calls, log: log}
}

// Generate sends prompt as a single user message capped at maxTokens.
func (g *Generator) Generate(ctx context.Context, prompt string, maxTokens int) string {
	if g.client == nil {
		g.calls.WithLabelValues("failure").Inc()
		return entity.GenerationFailure(NotConfigured)
	}
	resp, err := g.client.CreateChatCompletion(ctx, goopenai.ChatCompletionRequest{
		Model: g.model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: maxTokens,
	})
	if err == nil && len(resp.Choices) == 0 {
		err = errNoChoices
	}
	if err != nil {
		g.calls.WithLabelValues("failure").Inc()
		g.log.WithError(err).WithField("max_tokens", maxTokens).Warn("generation failed")
		return entity.GenerationFailure(err.Error())
	}
	g.calls.WithLabelValues("ok").Inc()
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}
