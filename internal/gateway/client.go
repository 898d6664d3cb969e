package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	apperrors "organisation-dashboard-backend/internal/errors"
	"organisation-dashboard-backend/internal/logger"
)

// Client holds the shared transport for all entity gateways.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a gateway client for the remote entity store.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// do performs one request against the remote store. A 404 maps to a
// NotFoundError for the given entity; any other non-2xx status maps to a
// RemoteError carrying the status and response body. When out is non-nil the
// response body is decoded into it.
func (c *Client) do(ctx context.Context, method, path string, body interface{}, out interface{}, entity string) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"method": method,
		"path":   path,
	})

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s request: %w", entity, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", entity, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log.Debug("Remote store request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Errorf("Remote store request failed: %v", err)
		return apperrors.NewRemoteError(0, err.Error())
	}
	defer resp.Body.Close()

	log.Debugf("Remote store response: status=%d", resp.StatusCode)

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(entity)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Errorf("Remote store rejected request: status=%d, body=%s", resp.StatusCode, string(respBody))
		return apperrors.NewRemoteError(resp.StatusCode, string(respBody))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			log.Errorf("Failed to decode remote store response: %v", err)
			return apperrors.NewRemoteError(resp.StatusCode, fmt.Sprintf("failed to decode %s response: %v", entity, err))
		}
	}

	return nil
}
