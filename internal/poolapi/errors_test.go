package poolapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRemoteErrorParsesDetail(t *testing.T) {
	t.Parallel()

	err := newRemoteError(404, []byte(`{"detail": "Job description with ID 12 not found"}`))

	assert.Equal(t, 404, err.Status)
	assert.Equal(t, "Job description with ID 12 not found", err.Detail)
	assert.Equal(t, "api error: status 404: Job description with ID 12 not found", err.Error())
}

func TestNewRemoteErrorFallsBackOnGarbage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body []byte
	}{
		{name: "html body", body: []byte("<html>Bad Gateway</html>")},
		{name: "empty body", body: nil},
		{name: "json without detail", body: []byte(`{"message": "nope"}`)},
		{name: "blank detail", body: []byte(`{"detail": "   "}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := newRemoteError(502, tt.body)
			assert.Equal(t, "HTTP error 502", err.Detail)
		})
	}
}

func TestCapabilityErrorNamesOperation(t *testing.T) {
	t.Parallel()

	err := &CapabilityError{Op: "job create"}
	assert.Contains(t, err.Error(), "job create is not supported")
}
