package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sethvargo/go-retry"

	"github.com/ssisdev/sisctl/internal/pkg/apperrors"
)

// TokenSource supplies the current access token, empty when anonymous.
type TokenSource interface {
	Token() string
}

// FormFile is one file part of a multipart request.
type FormFile struct {
	Field   string
	Name    string
	MIME    string
	Content []byte
}

// Client talks JSON to the backend. Every request carries a bearer
// token when one is available and an X-Request-ID for correlation.
//
// A 401 from any endpoint other than login/register fires the
// registered onUnauthorized hook exactly once per response, so stale
// sessions get torn down at a single point instead of by every caller.
type Client struct {
	baseURL        string
	httpc          *http.Client
	tokens         TokenSource
	onUnauthorized func()
	logger         zerolog.Logger
}

// New creates a Client for the API at baseURL.
func New(baseURL string, timeout time.Duration, tokens TokenSource, logger zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		tokens:  tokens,
		logger:  logger,
	}
}

// OnUnauthorized registers the forced-logout hook.
func (c *Client) OnUnauthorized(fn func()) {
	c.onUnauthorized = fn
}

// Get issues a GET request and decodes the JSON response into out.
// Transient transport failures are retried with fibonacci backoff;
// responses from the server, including errors, are never retried.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	backoff := retry.WithMaxRetries(2, retry.NewFibonacci(250*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := c.do(ctx, http.MethodGet, path, "", nil, out)
		var apiErr *APIError
		if err != nil && !errors.As(err, &apiErr) {
			return retry.RetryableError(err)
		}
		return err
	})
}

// Post issues a POST with a JSON body. Never retried.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body. Never retried.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.sendJSON(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodDelete, path, "", nil, out)
}

// PostForm issues a POST with multipart form fields plus an optional
// file part.
func (c *Client) PostForm(ctx context.Context, path string, fields map[string]string, file *FormFile, out any) error {
	return c.sendForm(ctx, http.MethodPost, path, fields, file, out)
}

// PutForm issues a PUT with multipart form fields plus an optional
// file part.
func (c *Client) PutForm(ctx context.Context, path string, fields map[string]string, file *FormFile, out any) error {
	return c.sendForm(ctx, http.MethodPut, path, fields, file, out)
}

func (c *Client) sendJSON(ctx context.Context, method, path string, body, out any) error {
	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request body: %w", err)
	}
	return c.do(ctx, method, path, "application/json", bytes.NewReader(encoded), out)
}

func (c *Client) sendForm(ctx context.Context, method, path string, fields map[string]string, file *FormFile, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for field, value := range fields {
		if err := writer.WriteField(field, value); err != nil {
			return fmt.Errorf("encoding form field %q: %w", field, err)
		}
	}

	if file != nil {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name=%q; filename=%q`, file.Field, file.Name))
		header.Set("Content-Type", file.MIME)

		part, err := writer.CreatePart(header)
		if err != nil {
			return fmt.Errorf("encoding form file: %w", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			return fmt.Errorf("encoding form file: %w", err)
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("finalizing form: %w", err)
	}

	return c.do(ctx, method, path, writer.FormDataContentType(), &buf, out)
}

func (c *Client) do(ctx context.Context, method, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if token := c.tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.logger.Debug().Str("method", method).Str("path", path).
			Str("requestId", requestID).Err(err).Msg("request failed")
		return fmt.Errorf("%w: %v", apperrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	c.logger.Debug().Str("method", method).Str("path", path).
		Str("requestId", requestID).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Msg("request complete")

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
		return nil
	}

	apiErr := &APIError{
		Status:    resp.StatusCode,
		Message:   decodeErrorMessage(resp.Body),
		RequestID: requestID,
	}

	if resp.StatusCode == http.StatusUnauthorized && !authExempt(path) && c.onUnauthorized != nil {
		c.logger.Warn().Str("path", path).Str("requestId", requestID).
			Msg("unauthorized response, invalidating session")
		c.onUnauthorized()
	}

	return apiErr
}

// authExempt reports whether 401s from this path are part of the normal
// credential exchange rather than signs of a stale session.
func authExempt(path string) bool {
	return strings.HasPrefix(path, "/auth/login") || strings.HasPrefix(path, "/auth/register")
}

// decodeErrorMessage pulls the "error" field out of a failure body.
// Anything unparseable yields "", leaving the caller to pick a fallback.
func decodeErrorMessage(body io.Reader) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return ""
	}
	return payload.Error
}
