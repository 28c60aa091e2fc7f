package sheetsapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// SubmitRequest тело action=submitBooking
type SubmitRequest struct {
	Date            string   `json:"date"`
	TimeSlot        string   `json:"timeSlot"`
	Activities      []string `json:"activities"`
	Nickname        string   `json:"nickname"`
	Email           string   `json:"email"`
	NumberOfGuests  int      `json:"numberOfGuests"`
	GuestSizes      string   `json:"guestSizes"`
	RoomNumber      string   `json:"roomNumber"`
	SpecialRequests string   `json:"specialRequests,omitempty"`
	AgreedToTerms   bool     `json:"agreedToTerms"`
}

// Client клиент веб-приложения Google Apps Script, стоящего перед таблицей
// бронирований. Один URL, диспетчеризация через query-параметр action.
type Client struct {
	webAppURL  string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента таблицы
func NewClient(webAppURL, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		webAppURL: webAppURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetAvailability получает статусы слотов за месяц (YYYY-MM)
func (c *Client) GetAvailability(ctx context.Context, month string) (*AvailabilityResponse, error) {
	if c.webAppURL == "" {
		return nil, ErrNotConfigured
	}

	reqURL := fmt.Sprintf("%s?action=getAvailability&month=%s", c.webAppURL, url.QueryEscape(month))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out AvailabilityResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &out, nil
}

// GetServices получает опубликованный каталог активностей
func (c *Client) GetServices(ctx context.Context) (*ServicesResponse, error) {
	if c.webAppURL == "" {
		return nil, ErrNotConfigured
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.webAppURL+"?action=getServices", nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var out ServicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &out, nil
}

// SubmitBooking отправляет заявку на бронирование в таблицу
// Не-2xx без распознаваемого тела и ошибки декодирования возвращаются как
// ErrInvalidResponse; бизнес-отказ (success=false) ошибкой НЕ считается —
// его разбирает вызывающая сторона по коду в ответе
func (c *Client) SubmitBooking(ctx context.Context, submitReq *SubmitRequest) (*SubmitResponse, error) {
	if c.webAppURL == "" {
		return nil, ErrNotConfigured
	}

	payload, err := json.Marshal(submitReq)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webAppURL+"?action=submitBooking", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Apps Script отдаёт бизнес-отказы и с 200, и с 4xx/5xx — пробуем
	// распарсить тело в любом случае
	var out SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response (status %d): %v", ErrInvalidResponse, resp.StatusCode, err)
	}

	c.log.Info("sheetsapi: submit relayed, status=%d success=%v code=%s", resp.StatusCode, out.Success, out.Error)
	return &out, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("X-Api-Key", c.apiKey)
	}
}
