package poolapi

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RemoteError is a non-2xx reply from the API. Detail carries the server's
// own message when the body had a parseable one.
type RemoteError struct {
	Status int
	Detail string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Detail)
}

func newRemoteError(status int, body []byte) *RemoteError {
	var payload struct {
		Detail string `json:"detail"`
	}

	if err := json.Unmarshal(body, &payload); err == nil {
		if detail := strings.TrimSpace(payload.Detail); detail != "" {
			return &RemoteError{Status: status, Detail: detail}
		}
	}

	return &RemoteError{Status: status, Detail: fmt.Sprintf("HTTP error %d", status)}
}

// CapabilityError marks an operation the API does not implement. It is a
// final answer: no request was made.
type CapabilityError struct {
	Op string
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("%s is not supported: job postings enter the pool through the ingestion pipeline", e.Op)
}
