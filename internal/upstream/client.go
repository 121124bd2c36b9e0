package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	apperrors "signflow/internal/errors"
)

// Config carries the upstream endpoints. The image resolver is a separate
// service from the order/design API.
type Config struct {
	BaseURL          string
	ImageResolverURL string
	Timeout          time.Duration

	// TokenProvider supplies the bearer token for each request. Session
	// handling lives outside this package; nil means unauthenticated.
	TokenProvider func() string
}

// envelope is the uniform wrapper every upstream response uses.
type envelope struct {
	Success       bool            `json:"success"`
	Result        json.RawMessage `json:"result"`
	Message       string          `json:"message,omitempty"`
	CurrentPage   int             `json:"currentPage,omitempty"`
	TotalPages    int             `json:"totalPages,omitempty"`
	PageSize      int             `json:"pageSize,omitempty"`
	TotalElements int64           `json:"totalElements,omitempty"`
}

type Client struct {
	baseURL     string
	resolverURL string
	httpClient  *http.Client
	token       func() string
	logger      *zap.Logger
}

func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		resolverURL: strings.TrimRight(cfg.ImageResolverURL, "/"),
		httpClient:  &http.Client{Timeout: timeout},
		token:       cfg.TokenProvider,
		logger:      logger,
	}
}

func (c *Client) doJSON(ctx context.Context, method, url string, body any, out any) (*envelope, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, apperrors.NewInternalError("marshaling request body", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, apperrors.NewInternalError("creating upstream request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) doMultipart(ctx context.Context, method, url string, build func(*multipart.Writer) error, out any) (*envelope, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if err := build(writer); err != nil {
		return nil, apperrors.NewInternalError("building multipart body", err)
	}
	if err := writer.Close(); err != nil {
		return nil, apperrors.NewInternalError("closing multipart body", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, &buf)
	if err != nil {
		return nil, apperrors.NewInternalError("creating upstream request", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) (*envelope, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkUnavailableError("no response from upstream API", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkUnavailableError("reading upstream response", err)
	}

	if mapped := mapStatusError(resp.StatusCode, respBody); mapped != nil {
		c.logger.Warn("upstream request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Int("status", resp.StatusCode))
		return nil, mapped
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, apperrors.NewServerError("malformed upstream envelope", resp.StatusCode, err)
	}

	if !env.Success {
		if env.Message != "" {
			return nil, apperrors.NewValidationError(env.Message)
		}
		return nil, apperrors.NewServerError("upstream reported failure without message", resp.StatusCode, nil)
	}

	if out != nil && len(env.Result) > 0 && string(env.Result) != "null" {
		if err := json.Unmarshal(env.Result, out); err != nil {
			return nil, apperrors.NewServerError("malformed upstream result", resp.StatusCode, err)
		}
	}

	return &env, nil
}

func mapStatusError(statusCode int, body []byte) error {
	if statusCode < 400 {
		return nil
	}

	message := upstreamMessage(body)

	switch {
	case statusCode == http.StatusUnauthorized:
		if message == "" {
			message = "session expired"
		}
		return apperrors.NewUnauthorizedError(message)
	case statusCode == http.StatusForbidden:
		if message == "" {
			message = "access denied"
		}
		return apperrors.NewForbiddenError(message)
	case statusCode == http.StatusNotFound:
		if message == "" {
			message = "resource not found"
		}
		return apperrors.NewNotFoundError(message)
	case statusCode >= 500:
		if message == "" {
			message = fmt.Sprintf("upstream error (status %d)", statusCode)
		}
		return apperrors.NewServerError(message, statusCode, nil)
	default:
		if message == "" {
			message = fmt.Sprintf("request rejected (status %d)", statusCode)
		}
		return apperrors.NewValidationError(message)
	}
}

func upstreamMessage(body []byte) string {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	return env.Message
}

func (c *Client) apiURL(format string, args ...any) string {
	return c.baseURL + fmt.Sprintf(format, args...)
}
