package gemini

import (
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/ai"
)

type stubGenerator struct {
	response   string
	err        error
	lastPrompt string
	lastMIME   string
	lastData   []byte
}

func (s *stubGenerator) GenerateDocument(_ context.Context, prompt, mime string, data []byte) (string, error) {
	s.lastPrompt = prompt
	s.lastMIME = mime
	s.lastData = data
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func (s *stubGenerator) Model() string {
	return "stub-model"
}

func TestParserParse(t *testing.T) {
	stub := &stubGenerator{response: "```json\n" + `{
		"full_name": "Fiona Lin",
		"email": "fiona@example.com",
		"years_of_experience": 6,
		"skills": [{"category": "Technical", "skills": ["Go", "SQL"]}]
	}` + "\n```"}

	parser := NewParser(stub, zap.NewNop(), 0)

	doc := ai.Document{Name: "fiona-lin.pdf", MIME: "application/pdf", Data: []byte("%PDF-1.7")}
	record, err := parser.Parse(context.Background(), doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.FullName != "Fiona Lin" {
		t.Fatalf("unexpected name: %q", record.FullName)
	}

	if record.YearsOfExperience != 6 {
		t.Fatalf("unexpected experience: %d", record.YearsOfExperience)
	}

	if len(record.Skills) != 1 || record.Skills[0].Category != "Technical" {
		t.Fatalf("unexpected skills: %+v", record.Skills)
	}

	if stub.lastMIME != "application/pdf" {
		t.Fatalf("unexpected mime: %q", stub.lastMIME)
	}

	if !strings.Contains(stub.lastPrompt, "fiona-lin.pdf") {
		t.Fatalf("expected filename in prompt, got: %s", stub.lastPrompt)
	}

	if !strings.Contains(stub.lastPrompt, "full_name") {
		t.Fatalf("expected output schema in prompt")
	}
}

func TestParserRejectsEmptyDocument(t *testing.T) {
	parser := NewParser(&stubGenerator{}, zap.NewNop(), 0)

	_, err := parser.Parse(context.Background(), ai.Document{Name: "empty.pdf"})
	if err == nil {
		t.Fatal("expected error for empty document")
	}
}

func TestParserRejectsUnparsableResponse(t *testing.T) {
	stub := &stubGenerator{response: "I could not read the document, sorry."}
	parser := NewParser(stub, zap.NewNop(), 0)

	doc := ai.Document{Name: "cv.pdf", MIME: "application/pdf", Data: []byte("x")}
	_, err := parser.Parse(context.Background(), doc)
	if err == nil {
		t.Fatal("expected error for prose response")
	}

	if !strings.Contains(err.Error(), "parse gemini response") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseCandidateHandlesCodeBlock(t *testing.T) {
	raw := "```json\n{\"full_name\": \"Ana Ruiz\", \"email\": \"ana@example.com\"}\n```"

	record, err := parseCandidate(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.FullName != "Ana Ruiz" {
		t.Fatalf("unexpected name: %q", record.FullName)
	}
}

func TestParseCandidateHandlesBareJSON(t *testing.T) {
	record, err := parseCandidate(`{"full_name": "Ana Ruiz"}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if record.FullName != "Ana Ruiz" {
		t.Fatalf("unexpected name: %q", record.FullName)
	}
}
