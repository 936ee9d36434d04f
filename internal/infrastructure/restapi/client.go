package restapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"

	"github.com/DRSN-tech/storefront/internal/cfg"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

const maxErrorBody = 64 << 10

// Client: клиент внешнего REST API магазина. Повторных попыток не делает.
type Client struct {
	baseURL string
	http    *http.Client
	logger  logger.Logger
}

func NewClient(cfg *cfg.APICfg, logger logger.Logger) *Client {
	return NewClientWithHTTP(cfg.BaseURL, &http.Client{Timeout: cfg.Timeout}, logger)
}

func NewClientWithHTTP(baseURL string, httpClient *http.Client, logger logger.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		logger:  logger,
	}
}

// request описывает вызов API.
type request struct {
	method string
	path   string
	token  string
	query  url.Values
	body   any
	form   map[string]string
}

func (c *Client) do(ctx context.Context, req request, out any) error {
	const op = "Client.do"

	httpReq, err := c.newRequest(ctx, req)
	if err != nil {
		return e.Wrap(op, err)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return e.Wrap(op, ctxErr)
		}
		c.logger.Errorf(err, "api request failed, method: %s, path: %s", req.method, req.path)
		return e.Wrap(op, fmt.Errorf("%w: %v", e.ErrUpstreamDown, err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		apiErr := &APIError{
			Status:  resp.StatusCode,
			Message: parseErrorMessage(body),
			Path:    req.path,
		}

		if resp.StatusCode >= http.StatusInternalServerError {
			c.logger.Errorf(apiErr, "api error, status: %d, path: %s", apiErr.Status, apiErr.Path)
		} else {
			c.logger.Warnf("api error, status: %d, path: %s, message: %s", apiErr.Status, apiErr.Path, apiErr.Message)
		}

		return e.Wrap(op, apiErr)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return e.Wrap(op, fmt.Errorf("%w: decode response: %v", e.ErrUpstreamServer, err))
	}

	return nil
}

func (c *Client) newRequest(ctx context.Context, req request) (*http.Request, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var (
		body        io.Reader
		contentType string
	)
	switch {
	case req.form != nil:
		buf := &bytes.Buffer{}
		w := multipart.NewWriter(buf)
		for k, v := range req.form {
			if err := w.WriteField(k, v); err != nil {
				return nil, err
			}
		}
		if err := w.Close(); err != nil {
			return nil, err
		}
		body, contentType = buf, w.FormDataContentType()
	case req.body != nil:
		data, err := json.Marshal(req.body)
		if err != nil {
			return nil, err
		}
		body, contentType = bytes.NewReader(data), "application/json"
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Accept", "application/json")
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if req.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.token)
	}

	return httpReq, nil
}

func pathID(prefix, id string, suffix ...string) string {
	p := prefix + "/" + url.PathEscape(id)
	for _, s := range suffix {
		p += "/" + s
	}

	return p
}
