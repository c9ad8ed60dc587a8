package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"venue-webapp/metrics"
	"venue-webapp/session"
)

// APIError is any non-2xx backend reply, normalized into one error shape so
// call sites do not need per-call handling.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend replied %v: %v", e.StatusCode, e.Message)
}

// Client talks to the venue/event booking backend. One method per endpoint,
// all funneled through do. The session is injected at construction; there is
// no ambient token lookup.
type Client struct {
	baseURL    string
	httpClient *http.Client
	sess       *session.Session
	metrics    *metrics.Metrics
}

func New(baseURL string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		metrics:    m,
	}
}

// WithSession returns a copy of the client that authenticates as sess.
func (c *Client) WithSession(sess *session.Session) *Client {
	clone := *c
	clone.sess = sess
	return &clone
}

// do runs one backend call: encode the body, attach the bearer token, send,
// normalize failures, decode into out. JSON bodies get an explicit
// Content-Type; multipart bodies carry their own boundary header.
func (c *Client) do(ctx context.Context, endpoint, method, path string, body interface{}, out interface{}) error {
	if c.sess != nil && !c.sess.Valid() {
		return fmt.Errorf("cannot call %v: %w", endpoint, session.ErrExpired)
	}

	var reqBody io.Reader
	contentType := ""
	switch b := body.(type) {
	case nil:
	case *Form:
		buf, ct, err := b.encode()
		if err != nil {
			return fmt.Errorf("cannot encode form for %v: %v", endpoint, err)
		}
		reqBody, contentType = buf, ct
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode body for %v: %v", endpoint, err)
		}
		reqBody, contentType = bytes.NewReader(raw), "application/json"
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.sess != nil && c.sess.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.sess.Token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.metrics != nil {
		c.metrics.BackendRequests.WithLabelValues(endpoint).Inc()
		c.metrics.BackendDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}
	if err != nil {
		if c.metrics != nil {
			c.metrics.BackendErrors.Inc()
		}
		log.Printf("backend call %v failed: %v", endpoint, err)
		return fmt.Errorf("request to %v failed: %w", endpoint, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read %v response: %v", endpoint, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if c.metrics != nil {
			c.metrics.BackendErrors.Inc()
		}
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		var envelope struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &envelope) == nil && envelope.Message != "" {
			apiErr.Message = envelope.Message
		}
		log.Printf("backend call %v: %v", endpoint, apiErr)
		return apiErr
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return fmt.Errorf("cannot decode %v response: %v", endpoint, err)
		}
	}

	return nil
}
