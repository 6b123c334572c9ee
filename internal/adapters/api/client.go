// Package api is the single chokepoint for outbound calls to the
// website-to-chatbot backend. It attaches the bearer credential, handles the
// JSON codec, and folds every non-success response into the closed
// domain.APIError taxonomy so callers never branch on raw status codes.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/vivekpraj/website-to-chatbot-cli/internal/domain"
	"github.com/vivekpraj/website-to-chatbot-cli/internal/ports"
)

const maxResponseBytes = 1 << 20

type Client struct {
	baseURL    string
	httpClient *http.Client
	creds      ports.CredentialStore
}

func NewClient(baseURL string, httpClient *http.Client, creds ports.CredentialStore) (*Client, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if trimmed == "" {
		return nil, fmt.Errorf("api base url is empty")
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Client{
		baseURL:    trimmed,
		httpClient: httpClient,
		creds:      creds,
	}, nil
}

// Do issues one backend call. body is marshaled as JSON when non-nil; a 2xx
// response body is decoded into out when out is non-nil. Every failure comes
// back as a *domain.APIError; none are fatal and the caller decides how to
// present them.
func (c *Client) Do(ctx context.Context, method, path string, body any, out any) error {
	endpoint := c.baseURL + "/" + strings.TrimLeft(path, "/")

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential, ok := c.creds.Get(); ok {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &domain.APIError{
			Kind:   domain.ErrorKindNetwork,
			Detail: err.Error(),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &domain.APIError{
			Kind:   domain.ErrorKindNetwork,
			Detail: fmt.Sprintf("read response body: %v", err),
		}
	}

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		if out == nil || len(data) == 0 {
			return nil
		}
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decode response body: %w", err)
		}
		return nil
	}

	return classify(resp.StatusCode, data)
}

func classify(status int, body []byte) *domain.APIError {
	detail := serverDetail(body)

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &domain.APIError{Kind: domain.ErrorKindAuth, Status: status, Detail: detail}
	case status == http.StatusTooManyRequests:
		return &domain.APIError{Kind: domain.ErrorKindRateLimit, Status: status, Detail: detail}
	case status >= 400 && status < 500:
		return &domain.APIError{Kind: domain.ErrorKindValidation, Status: status, Detail: detail}
	default:
		return &domain.APIError{Kind: domain.ErrorKindServer, Status: status, Detail: detail}
	}
}

// serverDetail pulls the backend's human-readable "detail" field out of an
// error body when one is present.
func serverDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	return payload.Detail
}
