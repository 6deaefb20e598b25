package transport

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"staykit/internal/pkg/config"
	"staykit/internal/pkg/errs"
)

// Client is the single outgoing HTTP edge of the data layer. It attaches
// the current language to every request, maps transport and status
// failures onto the fetch error taxonomy, and decodes JSON bodies.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *slog.Logger

	mu          sync.RWMutex
	language    string
	langHooks   []func(lang string)
	tokenSource func() string
}

func NewClient(cfg config.APIConfig, logger *slog.Logger) *Client {
	return &Client{
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		http:     &http.Client{Timeout: cfg.Timeout},
		logger:   logger,
		language: cfg.Language,
	}
}

// SetTokenSource registers the provider of the bearer token attached to
// requests. A nil source or empty token means unauthenticated requests.
func (c *Client) SetTokenSource(fn func() string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.tokenSource = fn
}

func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// SetLanguage switches the locale attached to outgoing requests and runs
// the registered hooks once. Re-setting the current language is a no-op,
// so cache invalidation fires exactly once per actual change.
func (c *Client) SetLanguage(lang string) {
	c.mu.Lock()
	if lang == "" || lang == c.language {
		c.mu.Unlock()
		return
	}
	c.language = lang
	hooks := make([]func(string), len(c.langHooks))
	copy(hooks, c.langHooks)
	c.mu.Unlock()

	for _, fn := range hooks {
		fn(lang)
	}
}

func (c *Client) OnLanguageChange(fn func(lang string)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.langHooks = append(c.langHooks, fn)
}

func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, params, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, out any) error {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errs.Mark(errs.Wrap(err, "failed to encode request body"), ErrValidation)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to build request"), ErrValidation)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.Language())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token := c.bearerToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	requestID := c.generateRequestID()
	startTime := time.Now()
	c.logger.Debug("request started",
		"request_id", requestID,
		"method", method,
		"url", fullURL,
	)

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			"request_id", requestID,
			"method", method,
			"url", fullURL,
			"error", err,
		)
		return errs.Mark(errs.Wrap(err, "request failed"), ErrNetwork)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errs.Mark(errs.Wrap(err, "failed to read response body"), ErrNetwork)
	}

	duration := time.Since(startTime)
	logLevel := slog.LevelDebug
	if resp.StatusCode >= 400 {
		logLevel = slog.LevelWarn
	}
	c.logger.Log(ctx, logLevel, "request completed",
		"request_id", requestID,
		"method", method,
		"url", fullURL,
		"status_code", resp.StatusCode,
		"duration", duration,
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return classifyStatus(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return errs.Mark(errs.Wrap(err, "failed to decode response body"), ErrServer)
	}
	return nil
}

func (c *Client) bearerToken() string {
	c.mu.RLock()
	fn := c.tokenSource
	c.mu.RUnlock()
	if fn == nil {
		return ""
	}
	return fn()
}

func (c *Client) generateRequestID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return "unknown"
	}
	return hex.EncodeToString(b)
}

// serverMessage covers the two error body shapes the backend emits:
// a flat {"message": ...} and an enveloped {"error": {"message": ...}}.
type serverMessage struct {
	Message string `json:"message"`
	Error   struct {
		Message string `json:"message"`
	} `json:"error"`
}

func classifyStatus(status int, body []byte) error {
	var msg serverMessage
	_ = json.Unmarshal(body, &msg)
	message := msg.Message
	if message == "" {
		message = msg.Error.Message
	}

	apiErr := &APIError{StatusCode: status, Message: message}
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return errs.Mark(apiErr, ErrAuthExpired)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return errs.Mark(apiErr, ErrValidation)
	}
	return errs.Mark(apiErr, ErrServer)
}
