package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/iudanet/lansync/pkg/api"
)

// Client представляет HTTP клиент сервера синхронизации
type Client struct {
	httpClient *http.Client
	pin        *string
	baseURL    string
}

// NewClient создает новый API клиент. pin == nil - заголовок X-Sync-Pin не отправляется.
func NewClient(baseURL string, pin *string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		pin:     pin,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Сервер синхронизации не делает редиректов; следовать им означало бы
			// отправить PIN на чужой адрес
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// BaseURL возвращает адрес сервера
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetPin заменяет PIN для следующих запросов. Не безопасен для конкурентного вызова
// вместе с запросами.
func (c *Client) SetPin(pin *string) {
	c.pin = pin
}

// HasPin сообщает, будет ли отправлен PIN
func (c *Client) HasPin() bool {
	return c.pin != nil && *c.pin != ""
}

// Status получает имя сервера, счетчики и признак наличия PIN. PIN не требуется.
func (c *Client) Status(ctx context.Context) (*api.StatusResponse, error) {
	var resp api.StatusResponse
	if err := c.doRequest(ctx, http.MethodGet, api.PathStatus, nil, &resp); err != nil {
		return nil, fmt.Errorf("status request failed: %w", err)
	}
	return &resp, nil
}

// Manifest получает краткое описание всех записей сервера
func (c *Client) Manifest(ctx context.Context) ([]api.ManifestEntry, error) {
	var resp []api.ManifestEntry
	if err := c.doRequest(ctx, http.MethodGet, api.PathManifest, nil, &resp); err != nil {
		return nil, fmt.Errorf("manifest request failed: %w", err)
	}
	return resp, nil
}

// Pull получает записи, которых у клиента нет или которые у него устарели
func (c *Client) Pull(ctx context.Context, known []api.KnownItem) (*api.PullResponse, error) {
	if known == nil {
		known = []api.KnownItem{}
	}

	var resp api.PullResponse
	if err := c.doRequest(ctx, http.MethodPost, api.PathPull, api.PullRequest{KnownItems: known}, &resp); err != nil {
		return nil, fmt.Errorf("pull request failed: %w", err)
	}
	return &resp, nil
}

// Push отправляет записи клиента владеющему приложению.
// Ответ лишь подтверждает прием: слияние на стороне сервера асинхронное.
func (c *Client) Push(ctx context.Context, req api.PushRequest) (*api.PushResponse, error) {
	if req.Conversations == nil {
		req.Conversations = []json.RawMessage{}
	}
	if req.Projects == nil {
		req.Projects = []json.RawMessage{}
	}

	var resp api.PushResponse
	if err := c.doRequest(ctx, http.MethodPost, api.PathPush, req, &resp); err != nil {
		return nil, fmt.Errorf("push request failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.HasPin() {
		req.Header.Set(api.PinHeader, *c.pin)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return api.ErrUnauthorized
	case resp.StatusCode == http.StatusTooManyRequests:
		return api.ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error (%d): %s: %s", resp.StatusCode, errResp.Error, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
