// Package client is the typed HTTP gateway to the playground backend.
// It issues single-attempt requests and normalizes transport and HTTP
// failures into the error kinds in errors.go; retries and sequencing
// are the caller's concern.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/chromasynth/go-seadream/internal/playground"
)

// DefaultBaseURL matches the backend's default bind address.
const DefaultBaseURL = "http://localhost:8000"

// Client talks to the playground backend. It holds no request state and
// is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

var _ playground.Gateway = (*Client)(nil)

// Option configures the client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New creates a gateway for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type generateResponse struct {
	Session playground.Session `json:"session"`
}

type historyResponse struct {
	Items []playground.Session `json:"items"`
}

type referencesResponse struct {
	Items []playground.Reference `json:"items"`
}

// detailEnvelope covers both FastAPI error shapes the backend emits:
// a bare message ({"detail": "..."}) and the structured 422 payload
// ({"detail": {"message": ..., "missing_fields": [...]}}).
type detailEnvelope struct {
	Detail json.RawMessage `json:"detail"`
}

type validationDetail struct {
	Message       string         `json:"message"`
	MissingFields []MissingField `json:"missing_fields"`
}

// History lists all sessions, newest first. Ordering is server-defined
// and preserved as received.
func (c *Client) History(ctx context.Context) ([]playground.Session, error) {
	var out historyResponse
	if err := c.getJSON(ctx, "/history", "history", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// References lists the liked/reference collection.
func (c *Client) References(ctx context.Context) ([]playground.Reference, error) {
	var out referencesResponse
	if err := c.getJSON(ctx, "/references", "references", &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

// Generate submits a brief and returns the created session.
func (c *Client) Generate(ctx context.Context, req playground.GenerateRequest) (playground.Session, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return playground.Session{}, &TransportError{Op: "encode generate request", Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/generate", bytes.NewReader(body))
	if err != nil {
		return playground.Session{}, &TransportError{Op: "build generate request", Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return playground.Session{}, &TransportError{Op: "post /generate", Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return playground.Session{}, &TransportError{Op: "read generate response", Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return playground.Session{}, decodeValidationError(data)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return playground.Session{}, &GenerationError{
			Status:  resp.StatusCode,
			Message: decodeDetailMessage(data),
		}
	}

	var out generateResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return playground.Session{}, &TransportError{Op: "decode generate response", Err: err}
	}
	return out.Session, nil
}

// SetLiked toggles the liked flag on a session. The backend echoes the
// updated session; only the status matters to the caller.
func (c *Client) SetLiked(ctx context.Context, sessionID string, liked bool) error {
	body, _ := json.Marshal(struct {
		Liked bool `json:"liked"`
	}{Liked: liked})

	url := fmt.Sprintf("%s/history/%s/like", c.baseURL, sessionID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &TransportError{Op: "build like request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "post like", Err: err}
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &LikeError{SessionID: sessionID, Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, path, resource string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return &TransportError{Op: "build " + resource + " request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "get " + path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return &FetchError{Resource: resource, Status: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &TransportError{Op: "decode " + resource + " response", Err: err}
	}
	return nil
}

func decodeValidationError(data []byte) error {
	var env detailEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return &TransportError{Op: "decode 422 response", Err: err}
	}
	var detail validationDetail
	if err := json.Unmarshal(env.Detail, &detail); err != nil {
		return &TransportError{Op: "decode 422 detail", Err: err}
	}
	return &ValidationError{
		Message:       detail.Message,
		MissingFields: detail.MissingFields,
	}
}

func decodeDetailMessage(data []byte) string {
	var env detailEnvelope
	if err := json.Unmarshal(data, &env); err == nil && len(env.Detail) > 0 {
		var msg string
		if err := json.Unmarshal(env.Detail, &msg); err == nil && msg != "" {
			return msg
		}
	}
	return "prompt generation failed"
}
