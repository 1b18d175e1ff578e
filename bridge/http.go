package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ribgsilva/memo-api/platform/errs"
)

// RequestIDHeader carries the id of a call, for log correlation on both sides
const RequestIDHeader = "X-Request-Id"

// HTTPClient calls the gateway served by app/api
type HTTPClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

type wireError struct {
	Message string `json:"message"`
	Kind    string `json:"kind"`
	Op      string `json:"op"`
	Field   string `json:"field"`
}

func (c *HTTPClient) Call(ctx context.Context, op string, args ...any) (json.RawMessage, error) {
	encoded, err := NewArgs(args...)
	if err != nil {
		return nil, err
	}
	body, err := json.Marshal(encoded)
	if err != nil {
		return nil, &errs.BridgeError{Op: op, Err: err}
	}

	endpoint := fmt.Sprintf("%s/v1/bridge/%s", c.BaseURL, url.PathEscape(op))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &errs.BridgeError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(RequestIDHeader, uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &errs.BridgeError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var we wireError
		if err := json.NewDecoder(resp.Body).Decode(&we); err != nil || we.Message == "" {
			return nil, &errs.BridgeError{Op: op, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
		}
		if we.Op == "" {
			we.Op = op
		}
		return nil, errs.New(we.Kind, we.Op, we.Field, we.Message)
	}

	var reply struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return nil, &errs.BridgeError{Op: op, Err: fmt.Errorf("decode reply: %w", err)}
	}
	return reply.Result, nil
}
