// Package chatgpt implements service.Drafter with the OpenAI chat completion API.
package chatgpt

import (
	"context"
	"net/http"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"

	"goaltask/internal/config"
	"goaltask/internal/service"
)

const (
	maxTokens   = 256
	temperature = 0.7
)

// Generator drafts a daily task from a goal. It implements service.Drafter.
type Generator struct {
	client openai.Client
	model  string
	log    *zap.Logger
}

var _ service.Drafter = (*Generator)(nil)

// New creates a Generator. The SDK's automatic retries are disabled.
func New(cfg *config.Config, log *zap.Logger) *Generator {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.OpenAIAPIKey),
		option.WithMaxRetries(0),
		option.WithHTTPClient(&http.Client{Timeout: cfg.HTTPTimeout}),
	}
	if cfg.OpenAIBaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.OpenAIBaseURL))
	}

	return &Generator{
		client: openai.NewClient(opts...),
		model:  cfg.OpenAIModel,
		log:    log.Named("chatgpt"),
	}
}

// Draft asks the model for one task. Any failure is logged and replaced by
// service.DefaultDraft; the run always continues.
func (g *Generator) Draft(ctx context.Context, goal string) service.Draft {
	prompt, err := buildPrompt(goal)
	if err != nil {
		g.log.Warn("prompt rendering failed, using default task", zap.Error(err))
		return service.DefaultDraft()
	}
	g.log.Debug("sending prompt", zap.String("model", g.model), zap.Int("prompt_length", len(prompt)))

	resp, err := g.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(g.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(prompt),
		},
		MaxTokens:   openai.Int(maxTokens),
		Temperature: openai.Float(temperature),
	})
	if err != nil {
		g.log.Warn("completion failed, using default task", zap.Error(err))
		return service.DefaultDraft()
	}
	if len(resp.Choices) == 0 {
		g.log.Warn("completion returned no choices, using default task")
		return service.DefaultDraft()
	}

	reply := resp.Choices[0].Message.Content
	g.log.Debug("completion received", zap.String("reply", reply))

	d, stage := ParseReply(reply)
	if stage != StageJSON {
		g.log.Warn("reply was not a JSON object", zap.String("parsed_by", string(stage)))
	}
	return d
}
