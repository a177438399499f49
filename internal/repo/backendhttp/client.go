// Package backendhttp is the typed HTTP client for the platform API the
// admin panel manages. Each admin area has its own repo built on the
// shared Client.
package backendhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type Client struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// TokenSource resolves the bearer token used for a backend call.
type TokenSource interface {
	Token(ctx context.Context) string
}

// StaticTokenSource always returns the same token. Used for the
// service token configured on the gateway.
type StaticTokenSource string

func (s StaticTokenSource) Token(context.Context) string {
	return string(s)
}

// ContextTokenSource returns the token attached to the request context
// by the auth middleware.
type ContextTokenSource struct{}

func (ContextTokenSource) Token(ctx context.Context) string {
	return TokenFromContext(ctx)
}

// ChainTokenSource returns the first non-empty token from its sources.
type ChainTokenSource []TokenSource

func (c ChainTokenSource) Token(ctx context.Context) string {
	for _, source := range c {
		if token := strings.TrimSpace(source.Token(ctx)); token != "" {
			return token
		}
	}
	return ""
}

type RequestError struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *RequestError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Err != nil && e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d: %v", e.Op, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s: status=%d", e.Op, e.StatusCode)
	default:
		return e.Op
	}
}

func (e *RequestError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StatusOf returns the backend HTTP status carried by err, or 0.
func StatusOf(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// MessageOf returns the human-readable backend error message, or "".
func MessageOf(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return ""
}

// IsUnreachable reports whether err is a transport-level failure
// rather than a backend response.
func IsUnreachable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

type tokenContextKeyType struct{}

var tokenContextKey tokenContextKeyType

// WithToken attaches the admin session's backend token to ctx.
func WithToken(ctx context.Context, token string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, tokenContextKey, token)
}

func TokenFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, ok := ctx.Value(tokenContextKey).(string)
	if !ok {
		return ""
	}
	return value
}

func NewClient(baseURL string, tokens TokenSource, httpClient *http.Client) (*Client, error) {
	trimmedBaseURL := strings.TrimSpace(baseURL)
	if trimmedBaseURL == "" {
		return nil, &RequestError{
			Op:  "create backend client",
			Err: errors.New("backend base url is empty"),
		}
	}

	parsed, err := url.Parse(trimmedBaseURL)
	if err != nil {
		return nil, &RequestError{Op: "parse backend base url", Err: err}
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, &RequestError{
			Op:  "validate backend base url",
			Err: fmt.Errorf("invalid backend base url: %s", trimmedBaseURL),
		}
	}

	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if tokens == nil {
		tokens = ContextTokenSource{}
	}

	return &Client{
		baseURL:    strings.TrimRight(trimmedBaseURL, "/"),
		tokens:     tokens,
		httpClient: httpClient,
	}, nil
}

func (c *Client) DoJSON(ctx context.Context, method string, path string, query url.Values, requestBody interface{}, responseBody interface{}) error {
	if c == nil || c.httpClient == nil {
		return &RequestError{
			Op:  "do json request",
			Err: errors.New("backend client is not initialized"),
		}
	}

	var payload []byte
	if requestBody != nil {
		rawPayload, err := json.Marshal(requestBody)
		if err != nil {
			return &RequestError{Op: "marshal request body", Err: err}
		}
		payload = rawPayload
	}

	statusCode, responseBytes, err := c.do(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if responseBody == nil || len(responseBytes) == 0 {
		return nil
	}

	if err := json.Unmarshal(responseBytes, responseBody); err != nil {
		return &RequestError{
			Op:         "decode backend response",
			StatusCode: statusCode,
			Err:        err,
		}
	}

	return nil
}

func (c *Client) do(ctx context.Context, method string, path string, query url.Values, body []byte) (int, []byte, error) {
	if strings.TrimSpace(method) == "" {
		method = http.MethodGet
	}

	fullURL := c.baseURL + ensureLeadingSlash(path)
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if len(body) > 0 {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return 0, nil, &RequestError{Op: "create backend request", Err: err}
	}
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &RequestError{Op: "execute backend request", Err: err}
	}
	defer resp.Body.Close()

	responseBytes, readErr := io.ReadAll(io.LimitReader(resp.Body, 2*1024*1024))
	if readErr != nil {
		return resp.StatusCode, nil, &RequestError{
			Op:         "read backend response",
			StatusCode: resp.StatusCode,
			Err:        readErr,
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := extractErrorMessage(responseBytes)
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return resp.StatusCode, responseBytes, &RequestError{
			Op:         "unexpected backend status",
			StatusCode: resp.StatusCode,
			Message:    message,
			Err:        errors.New(message),
		}
	}

	return resp.StatusCode, responseBytes, nil
}

// extractErrorMessage pulls the "message" field out of an error body.
// Non-JSON bodies are returned as-is.
func extractErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var envelope struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if msg := strings.TrimSpace(envelope.Message); msg != "" {
			return msg
		}
		if msg := strings.TrimSpace(envelope.Error); msg != "" {
			return msg
		}
	}
	if strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[") {
		return ""
	}
	return trimmed
}

func ensureLeadingSlash(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "/"
	}
	if strings.HasPrefix(trimmed, "/") {
		return trimmed
	}
	return "/" + trimmed
}
