package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/candidate-pool/poolctl/internal/util"
)

const (
	defaultModel      = "gemini-2.5-pro"
	defaultMaxRetries = 2
	retryDelay        = 2 * time.Second
)

var wait = util.WaitFor

// contentCaller is the slice of the genai Models API the generator needs.
type contentCaller interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Generator wraps the Google GenAI client for single-shot content requests.
// Temporary server errors are retried; quota errors are returned to the
// caller immediately.
type Generator struct {
	models     contentCaller
	model      string
	maxRetries int
	logger     *zap.Logger
}

// NewGenerator creates a generator configured for the Gemini API backend.
func NewGenerator(ctx context.Context, apiKey, model string, maxRetries int, logger *zap.Logger) (*Generator, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("gemini api key is required")
	}

	cfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		models:     client.Models,
		model:      model,
		maxRetries: maxRetries,
		logger:     logger,
	}, nil
}

// GenerateContent sends a text-only prompt and returns the textual response.
func (g *Generator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}

	return g.generate(ctx, genai.Text(prompt))
}

// GenerateDocument sends the prompt together with an inline document payload
// and returns the textual response.
func (g *Generator) GenerateDocument(ctx context.Context, prompt, mime string, data []byte) (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}

	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", errors.New("prompt must not be empty")
	}
	if len(data) == 0 {
		return "", errors.New("document payload must not be empty")
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{Text: prompt},
			{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
		},
	}}

	return g.generate(ctx, contents)
}

func (g *Generator) Model() string {
	if g == nil {
		return ""
	}
	return g.model
}

func (g *Generator) check() error {
	if g == nil || g.models == nil {
		return errors.New("gemini generator is not initialized")
	}
	return nil
}

func (g *Generator) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	attempts := g.maxRetries
	if attempts <= 0 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			g.logger.Debug("retrying gemini request",
				zap.Int("attempt", attempt),
				zap.Error(lastErr),
			)
			if err := wait(ctx, retryDelay); err != nil {
				return "", fmt.Errorf("waiting to retry: %w", err)
			}
		}

		resp, err := g.models.GenerateContent(ctx, g.model, contents, nil)
		if err != nil {
			lastErr = err
			if !retryable(err) {
				return "", fmt.Errorf("generate content: %w", err)
			}
			continue
		}

		output := collectText(resp)
		if output == "" {
			return "", errors.New("gemini api returned empty response")
		}
		return output, nil
	}

	return "", fmt.Errorf("generate content after %d attempts: %w", attempts, lastErr)
}

// retryable reports whether the request is worth repeating. Quota errors are
// not: the operator has to wait the quota window out anyway.
func retryable(err error) bool {
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Code == http.StatusTooManyRequests {
		return false
	}
	return apiErr.Code >= http.StatusInternalServerError
}

func collectText(resp *genai.GenerateContentResponse) string {
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}
