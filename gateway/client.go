package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/leetcoach/client/logger"
	"github.com/leetcoach/client/srvcerror"
)

// Client is the typed boundary to the LeetCoach HTTP API. It holds no
// session state; every method is a single request/response with no
// caching or retry. The http.Client timeout is the only upper bound on a
// hung call.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{Timeout: timeout})
}

func NewClientWithHTTP(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    hc,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if len(query) > 0 {
		path = path + "?" + query.Encode()
	}
	return c.do(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	log := logger.FromContext(ctx)

	var bodyReader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn("request failed", "method", method, "path", path, "error", err)
		return srvcerror.ErrTransport().SetDebug(err)
	}
	defer resp.Body.Close()

	log.Debug("request done",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return srvcerror.ErrTransport().SetDebug(fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errorFromResponse(resp.StatusCode, respBody)
	}

	if out == nil {
		return nil
	}
	err = json.Unmarshal(respBody, out)
	if err != nil {
		return ErrDecodeResponse().SetDebug(err).SetHttpStatusCode(resp.StatusCode)
	}
	return nil
}

// errorFromResponse turns a non-2xx reply into a *srvcerror.Error. The
// backend reports failures as {"detail": ...} where detail is either a
// message or a list of validation problems.
func errorFromResponse(status int, body []byte) error {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	msg := ""
	if err := json.Unmarshal(body, &payload); err == nil && len(payload.Detail) > 0 {
		var s string
		if err := json.Unmarshal(payload.Detail, &s); err == nil {
			msg = s
		} else {
			msg = compactJson(payload.Detail)
		}
	}
	if msg == "" {
		msg = http.StatusText(status)
	}
	return ErrUnexpectedStatus(status, msg).
		SetDebug(errors.New(strings.TrimSpace(string(body))))
}
