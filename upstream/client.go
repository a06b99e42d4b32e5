package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// FetchError is a failed call to the backend. Message is the backend's
// own message when it sent one, otherwise the default for the operation.
type FetchError struct {
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Unauthorized reports a 401/403, which is never retried.
func (e *FetchError) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized || e.Status == http.StatusForbidden
}

// Config configures the backend client.
type Config struct {
	BaseURL string
	Timeout time.Duration
	// Attempts is the total number of tries for read calls; writes are
	// tried once.
	Attempts            int
	RetryDelay          time.Duration
	CarePackageDuration time.Duration
	Logger              *zap.Logger
}

// Client talks to the backend REST API.
type Client struct {
	baseURL             string
	timeout             time.Duration
	attempts            int
	retryDelay          time.Duration
	carePackageDuration time.Duration
	log                 *zap.Logger
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.Attempts < 1 {
		cfg.Attempts = 1
	}
	if cfg.CarePackageDuration <= 0 {
		cfg.CarePackageDuration = 60 * time.Minute
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:             strings.TrimRight(cfg.BaseURL, "/"),
		timeout:             cfg.Timeout,
		attempts:            cfg.Attempts,
		retryDelay:          cfg.RetryDelay,
		carePackageDuration: cfg.CarePackageDuration,
		log:                 cfg.Logger,
	}
}

type call struct {
	method string
	path   string
	query  url.Values
	token  string
	body   any
	// op is the default error message, e.g. "Failed to fetch availability".
	op string
}

func (r call) retryable() bool {
	return r.method == fiber.MethodGet
}

// do runs the call, retrying reads, and decodes a 2xx body into out when
// out is non-nil.
func (c *Client) do(ctx context.Context, r call, out any) error {
	attempts := 1
	if r.retryable() {
		attempts = c.attempts
	}

	var last *FetchError
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return &FetchError{Op: r.op, Message: r.op, Err: err}
		}

		body, ferr := c.send(r)
		if ferr == nil {
			if out == nil || len(body) == 0 {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return &FetchError{Op: r.op, Message: r.op, Err: fmt.Errorf("decode response: %w", err)}
			}
			return nil
		}

		last = ferr
		if ferr.Unauthorized() || attempt == attempts {
			break
		}

		c.log.Warn("backend call failed, retrying",
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Int("attempt", attempt),
			zap.Int("status", ferr.Status),
			zap.Error(ferr),
		)

		if c.retryDelay > 0 {
			timer := time.NewTimer(c.retryDelay * time.Duration(attempt))
			select {
			case <-ctx.Done():
				timer.Stop()
				return &FetchError{Op: r.op, Message: r.op, Err: ctx.Err()}
			case <-timer.C:
			}
		}
	}
	return last
}

func (c *Client) send(r call) ([]byte, *FetchError) {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}

	agent := fiber.AcquireAgent()
	req := agent.Request()
	req.Header.SetMethod(r.method)
	req.SetRequestURI(u)
	if err := agent.Parse(); err != nil {
		fiber.ReleaseAgent(agent)
		return nil, &FetchError{Op: r.op, Message: r.op, Err: err}
	}

	agent.Timeout(c.timeout)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if r.token != "" {
		agent.Set(fiber.HeaderAuthorization, "Bearer "+r.token)
	}
	if r.body != nil {
		agent.JSON(r.body)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, &FetchError{Op: r.op, Message: r.op, Err: errs[0]}
	}
	if code < 200 || code > 299 {
		return nil, &FetchError{Op: r.op, Status: code, Message: backendMessage(body, r.op)}
	}
	return body, nil
}

// backendMessage pulls "message" or "error" out of an error body.
func backendMessage(body []byte, fallback string) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return fallback
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	if m := strings.TrimSpace(payload.Error); m != "" {
		return m
	}
	return fallback
}
