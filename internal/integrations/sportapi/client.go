package sportapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger інтерфейс для логування
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клієнт основного API спорткомплексу. Кожен метод, що потребує
// аутентифікації, приймає access-токен явно - клієнт не тримає жодного
// глобального стану сесії.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient створює новий екземпляр клієнта основного API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return NewClientWithTransport(baseURL, timeout, nil, log)
}

// NewClientWithTransport створює клієнт з кастомним транспортом
// (використовується для інструментування метриками)
func NewClientWithTransport(baseURL string, timeout time.Duration, rt http.RoundTripper, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: rt,
		},
		log: log,
	}
}

// do виконує запит до основного API і декодує JSON відповідь у out (якщо не nil).
// Статус-коди мапляться на sentinel-помилки пакета; текст помилки бекенда
// загортається для логування.
func (c *Client) do(ctx context.Context, method, path, accessToken string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: encode request body: %v", ErrInternal, err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("sportapi: %s %s failed: %v", method, path, err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продовжуємо обробку
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, readErrorMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusForbidden:
		return ErrForbidden
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.log.Error("sportapi: %s %s unexpected status %d: %s", method, path, resp.StatusCode, string(raw))
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readErrorMessage дістає текст помилки з тіла відповіді бекенда
func readErrorMessage(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 4096))
	if err != nil || len(raw) == 0 {
		return "no error details"
	}
	var er ErrorResponse
	if err := json.Unmarshal(raw, &er); err == nil && er.Message() != "" {
		return er.Message()
	}
	return string(raw)
}
