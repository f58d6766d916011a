package geocoder

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client клиент для работы с геокодером (Nominatim-совместимый API)
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
// userAgent обязателен по правилам использования Nominatim
func NewClient(baseURL string, timeout time.Duration, userAgent string, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Search выполняет прямое геокодирование произвольного текста адреса
// Возвращает первое найденное место (first match wins) или ErrNoResults
func (c *Client) Search(ctx context.Context, query string) (*Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("q", query)

	requestURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())

	var places []Place
	if err := c.get(ctx, requestURL, &places); err != nil {
		return nil, err
	}

	if len(places) == 0 {
		c.log.Info("Geocoder search returned no results for query=%q", query)
		return nil, ErrNoResults
	}

	return &places[0], nil
}

// Reverse выполняет обратное геокодирование координат в текстовый адрес
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (*Place, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	requestURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, params.Encode())

	var place Place
	if err := c.get(ctx, requestURL, &place); err != nil {
		return nil, err
	}

	// Nominatim отвечает 200 с телом {"error": "..."} на координаты вне покрытия
	if place.DisplayName == "" {
		return nil, ErrNoResults
	}

	return &place, nil
}

func (c *Client) get(ctx context.Context, requestURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
