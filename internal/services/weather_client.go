package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrUnexpectedStatus - погодный API ответил кодом, отличным от 200 и 404
var ErrUnexpectedStatus = errors.New("weather API returned unexpected status")

// WeatherClient клиент для OpenWeatherMap (current weather API).
// Одним и тем же запросом проверяет существование города и получает температуру.
type WeatherClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// NewWeatherClient создает клиент с таймаутом 10 секунд
func NewWeatherClient(baseURL, apiKey string, log zerolog.Logger) *WeatherClient {
	return NewWeatherClientWithHTTP(baseURL, apiKey, &http.Client{Timeout: 10 * time.Second}, log)
}

// NewWeatherClientWithHTTP создает клиент с заданным *http.Client
func NewWeatherClientWithHTTP(baseURL, apiKey string, httpClient *http.Client, log zerolog.Logger) *WeatherClient {
	return &WeatherClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  httpClient,
		log:     log.With().Str("component", "weather").Logger(),
	}
}

// currentWeatherResponse - нужная нам часть ответа /data/2.5/weather
type currentWeatherResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
}

func (wc *WeatherClient) weatherURL(city string) string {
	params := url.Values{}
	params.Set("units", "metric")
	params.Set("q", city)
	params.Set("appid", wc.apiKey)
	return wc.baseURL + "/data/2.5/weather?" + params.Encode()
}

func (wc *WeatherClient) get(ctx context.Context, city string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wc.weatherURL(city), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}

	start := time.Now()
	resp, err := wc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get weather for %q: %w", city, err)
	}

	wc.log.Debug().
		Str("city", city).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("weather request")
	return resp, nil
}

// CheckCityExists возвращает true на 200, false на 404.
// Любой другой код ответа - ошибка ErrUnexpectedStatus.
func (wc *WeatherClient) CheckCityExists(ctx context.Context, city string) (bool, error) {
	resp, err := wc.get(ctx, city)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK:
		return true, nil
	case http.StatusNotFound:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
}

// GetTemperature получает текущую температуру (°C) для города
func (wc *WeatherClient) GetTemperature(ctx context.Context, city string) (float64, error) {
	resp, err := wc.get(ctx, city)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return 0, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var data currentWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, fmt.Errorf("failed to decode weather response: %w", err)
	}
	if data.Main == nil || data.Main.Temp == nil {
		return 0, fmt.Errorf("weather response for %q has no main.temp", city)
	}
	return *data.Main.Temp, nil
}
