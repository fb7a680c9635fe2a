package ai

import (
	"context"

	"github.com/gabriel-vasile/mimetype"

	"github.com/candidate-pool/poolctl/internal/poolapi"
)

// Document is one CV file handed to a parser.
type Document struct {
	Name string
	MIME string
	Data []byte
}

// NewDocument builds a document with the content type sniffed from the
// payload itself.
func NewDocument(name string, data []byte) Document {
	return Document{
		Name: name,
		MIME: mimetype.Detect(data).String(),
		Data: data,
	}
}

// Parser turns a CV document into a structured candidate record.
type Parser interface {
	Parse(ctx context.Context, doc Document) (*poolapi.Candidate, error)
}
