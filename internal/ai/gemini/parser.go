package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	_ "embed"

	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/ai"
	"github.com/candidate-pool/poolctl/internal/logger"
	"github.com/candidate-pool/poolctl/internal/poolapi"
	"github.com/candidate-pool/poolctl/internal/util"
)

type documentGenerator interface {
	GenerateDocument(ctx context.Context, prompt, mime string, data []byte) (string, error)
	Model() string
}

//go:embed prompt.md
var promptTemplate string

const defaultMaxLogLength = 200

// Parser extracts structured candidate records from CV documents.
type Parser struct {
	generator documentGenerator
	logger    *zap.Logger
	maxLogLen int
}

func NewParser(generator documentGenerator, log *zap.Logger, maxLogLength int) *Parser {
	if maxLogLength <= 0 {
		maxLogLength = defaultMaxLogLength
	}
	if log == nil {
		log = zap.NewNop()
	}

	return &Parser{
		generator: generator,
		logger:    log,
		maxLogLen: maxLogLength,
	}
}

// Parse sends the document to Gemini and decodes the structured response
// into a candidate record.
func (p *Parser) Parse(ctx context.Context, doc ai.Document) (*poolapi.Candidate, error) {
	if len(doc.Data) == 0 {
		return nil, fmt.Errorf("document %q is empty", doc.Name)
	}

	prompt := buildPrompt(doc.Name)

	p.logger.Debug("gemini parse request",
		zap.String(logger.FieldProvider, "gemini"),
		zap.String(logger.FieldModel, p.generator.Model()),
		zap.String("document", doc.Name),
		zap.String("mime", doc.MIME),
		zap.Int("document_bytes", len(doc.Data)),
		zap.String("prompt_preview", util.TruncateForLog(prompt, p.maxLogLen)),
	)

	raw, err := p.generator.GenerateDocument(ctx, prompt, doc.MIME, doc.Data)
	if err != nil {
		return nil, err
	}

	p.logger.Debug("gemini parse response",
		zap.String("document", doc.Name),
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", util.TruncateForLog(raw, p.maxLogLen)),
	)

	return parseCandidate(raw)
}

func buildPrompt(filename string) string {
	template := promptTemplate
	if strings.TrimSpace(template) == "" {
		template = "Extract the candidate record from {{FILENAME}} and answer with JSON only."
	}
	return strings.ReplaceAll(template, "{{FILENAME}}", filename)
}

func parseCandidate(raw string) (*poolapi.Candidate, error) {
	cleaned := extractJSON(raw)

	var record poolapi.Candidate
	if err := json.Unmarshal([]byte(cleaned), &record); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}

	return &record, nil
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}
