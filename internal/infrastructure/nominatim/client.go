package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/geomark-service/internal/config"
	"github.com/geomark-service/internal/domain"
	"github.com/geomark-service/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logger     *zap.Logger
}

// reverseResponse mirrors the subset of the Nominatim reverse payload we use.
type reverseResponse struct {
	DisplayName string `json:"display_name"`
	Address     struct {
		City          string `json:"city"`
		Town          string `json:"town"`
		Village       string `json:"village"`
		Hamlet        string `json:"hamlet"`
		Country       string `json:"country"`
		State         string `json:"state"`
		County        string `json:"county"`
		Suburb        string `json:"suburb"`
		Neighbourhood string `json:"neighbourhood"`
		Road          string `json:"road"`
	} `json:"address"`
}

// NewClient creates a reverse-geocoding client for the Nominatim API.
// Nominatim's usage policy requires an identifying User-Agent.
func NewClient(cfg *config.NominatimConfig, logger *zap.Logger) repository.GeocodeRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		logger:    logger,
	}
}

func (c *client) ReverseGeocode(ctx context.Context, lat, lng float64) (*domain.Address, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lng))
	q.Set("zoom", "18")
	q.Set("addressdetails", "1")

	reqURL := fmt.Sprintf("%s/reverse?%s", c.baseURL, q.Encode())

	c.logger.Debug("Calling Nominatim reverse API",
		zap.Float64("lat", lat),
		zap.Float64("lng", lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("nominatim API error: status %d", resp.StatusCode)
	}

	var nr reverseResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return nr.toAddress(), nil
}

// toAddress applies the same fallback chain the map client historically used
// for place-name fields.
func (nr *reverseResponse) toAddress() *domain.Address {
	a := nr.Address

	return &domain.Address{
		DisplayName: nr.DisplayName,
		City:        firstNonEmpty(a.City, a.Town, a.Village, a.Hamlet, "Unknown"),
		Country:     firstNonEmpty(a.Country, "Unknown"),
		Village:     firstNonEmpty(a.Village, a.Hamlet, "Not available"),
		State:       firstNonEmpty(a.State, a.County, "Not available"),
		Suburb:      firstNonEmpty(a.Suburb, a.Neighbourhood, "Not available"),
		Road:        firstNonEmpty(a.Road, "Not available"),
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
