package geocoder

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/TemirB/foodcart/internal/config"
	"github.com/TemirB/foodcart/internal/domain"
)

var (
	ErrNoResult  = errors.New("geocoder: no result")
	ErrMalformed = errors.New("geocoder: malformed response")
	ErrUpstream  = errors.New("geocoder: upstream failure")
)

// StatusError is a non-200 answer from the provider. It matches ErrUpstream.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("geocoder: upstream status %d", e.Code)
}

func (e *StatusError) Is(target error) bool { return target == ErrUpstream }

// Temporary reports whether repeating the request may succeed.
func (e *StatusError) Temporary() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// Provider resolves a free-form address to a single point.
type Provider interface {
	Search(ctx context.Context, address string) (domain.Coordinates, error)
}

type nominatimPlace struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Nominatim talks to an OpenStreetMap Nominatim instance.
type Nominatim struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewNominatim(cfg config.Geocoder) *Nominatim {
	return &Nominatim{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
	}
}

func (n *Nominatim) Search(ctx context.Context, address string) (domain.Coordinates, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.baseURL+"/search?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.Coordinates{}, &StatusError{Code: resp.StatusCode}
	}

	var places []nominatimPlace
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(places) == 0 {
		return domain.Coordinates{}, ErrNoResult
	}

	lat, err := strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: lat %q", ErrMalformed, places[0].Lat)
	}
	lon, err := strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("%w: lon %q", ErrMalformed, places[0].Lon)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return domain.Coordinates{}, fmt.Errorf("%w: point out of range (%v, %v)", ErrMalformed, lat, lon)
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, nil
}
