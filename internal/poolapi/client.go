package poolapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/mitchellh/mapstructure"
	"go.uber.org/zap"
)

const (
	contentType     = "application/json"
	requestIDHeader = "X-Request-ID"

	candidatesPath = "/candidates"
	jobsPath       = "/jobs"
	healthPath     = "/health"

	// Error payloads are small; cap reads so a broken proxy cannot flood us.
	maxErrorBody = 64 << 10
)

// Client talks to the Candidate Pool Management API.
type Client struct {
	baseURL    string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
}

func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		logger:  logger,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		UserAgent: "poolctl (candidate pool admin cli)",
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// Health probes the API health endpoint.
func (c *Client) Health(ctx context.Context) error {
	return c.getJSON(ctx, healthPath, nil, nil)
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}

	c.setHeaders(req)
	if q != nil {
		req.URL.RawQuery = q.Encode()
	}

	return c.do(req, target)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, payload, target any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}

	c.setHeaders(req)
	if payload != nil {
		req.Header.Set("Content-Type", contentType)
	}

	return c.do(req, target)
}

func (c *Client) do(req *http.Request, target any) error {
	c.logger.Debug("api request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.String("request_id", req.Header.Get(requestIDHeader)),
	)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newRemoteError(resp.StatusCode, body)
	}

	if target == nil {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", contentType)
	req.Header.Set(requestIDHeader, uuid.NewString())
}

// listItems fetches one page of records as loose maps. The API returns bare
// JSON arrays without a pagination envelope.
func (c *Client) listItems(ctx context.Context, path string, q url.Values) ([]map[string]any, error) {
	var items []map[string]any
	if err := c.getJSON(ctx, path, q, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// decodeRecords converts loose API payloads into typed records, matching
// fields by their json tags so records mirror the wire shape.
func decodeRecords(input, result any) error {
	cfg := &mapstructure.DecoderConfig{
		Metadata: nil,
		Result:   result,
		TagName:  "json",
	}

	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}

	return decoder.Decode(input)
}
