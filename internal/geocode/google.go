package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/observability"
)

// Resolver turns coordinates into a display address. Resolution never fails:
// any provider problem degrades to domain.FallbackAddress.
type Resolver interface {
	Resolve(ctx context.Context, lat, lng float64) domain.AddressResolution
}

// Client implements Resolver against the Google Maps Geocoding API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: "https://maps.googleapis.com/maps/api/geocode/json",
		logger:  logger,
		metrics: metrics,
	}
}

func (c *Client) Resolve(ctx context.Context, lat, lng float64) domain.AddressResolution {
	start := time.Now()
	address, err := c.reverseGeocode(ctx, lat, lng)
	c.metrics.GeocodeDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		c.logger.Error("reverse geocode failed",
			slog.Float64("lat", lat),
			slog.Float64("lng", lng),
			slog.Any("error", err),
		)
		c.metrics.GeocodeLookups.WithLabelValues("degraded").Inc()
		return domain.DegradedAddress()
	}

	c.metrics.GeocodeLookups.WithLabelValues("resolved").Inc()
	return domain.ResolvedAddress(address)
}

func (c *Client) reverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{
		"latlng": {FormatCoords(lat, lng)},
		"key":    {c.apiKey},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("geocode API error: status %d: %s", resp.StatusCode, body)
	}

	var geoResp response
	if err := json.NewDecoder(resp.Body).Decode(&geoResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if geoResp.Status != "OK" || len(geoResp.Results) == 0 {
		return "", fmt.Errorf("geocode status %q with %d results", geoResp.Status, len(geoResp.Results))
	}

	return geoResp.Results[0].FormattedAddress, nil
}

// FormatCoords renders a "lat,lng" pair without exponent notation, matching
// what the provider and the map-link template expect.
func FormatCoords(lat, lng float64) string {
	return strconv.FormatFloat(lat, 'f', -1, 64) + "," + strconv.FormatFloat(lng, 'f', -1, 64)
}

// Google Geocoding API response types.

type response struct {
	Status  string   `json:"status"`
	Results []result `json:"results"`
}

type result struct {
	FormattedAddress string `json:"formatted_address"`
}
