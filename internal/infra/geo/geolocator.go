// Package geo implements best-effort IP geolocation for activity events.
package geo

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"noticetrack/config"
	"noticetrack/internal/domain/entity"
	"noticetrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCallTimeout = 3 * time.Second

// noopGeolocator is used when geolocation is disabled. Resolution always
// reports no location.
type noopGeolocator struct{}

func (noopGeolocator) Resolve(_ context.Context, _ string) (*entity.GeoLocation, error) {
	return nil, nil
}

// httpGeolocator resolves locations through an ip-api compatible endpoint.
type httpGeolocator struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// GeolocatorParams holds dependencies for the geolocator, injected by Fx
type GeolocatorParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewGeolocator creates a Geolocator based on configuration
func NewGeolocator(params GeolocatorParams) (service.Geolocator, error) {
	cfg := params.Config.Geolocation
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Geolocation disabled, activity events carry no location")

		return noopGeolocator{}, nil
	}
	if cfg.Endpoint == "" {
		return nil, errors.New("endpoint is required when geolocation is enabled")
	}

	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = defaultCallTimeout
	}

	return &httpGeolocator{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: timeout},
		logger:     params.Logger,
	}, nil
}

// lookupResponse is the subset of the ip-api JSON payload we keep.
type lookupResponse struct {
	Status     string `json:"status"`
	Country    string `json:"country"`
	RegionName string `json:"regionName"`
	City       string `json:"city"`
}

// Resolve looks up the IP. Private and unparseable addresses resolve to nil
// without error since the caller treats location as optional.
func (g *httpGeolocator) Resolve(ctx context.Context, ipAddress string) (*entity.GeoLocation, error) {
	if ipAddress == "" {
		return nil, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"/"+url.PathEscape(ipAddress), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "geolocation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("geolocation endpoint returned status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read geolocation response")
	}

	var parsed lookupResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "parse geolocation response")
	}

	if parsed.Status != "success" {
		g.logger.Debug("[Geo] Lookup failed for address",
			slog.String("ip_address", ipAddress),
			slog.String("status", parsed.Status),
		)

		return nil, nil
	}

	return &entity.GeoLocation{
		Country: parsed.Country,
		Region:  parsed.RegionName,
		City:    parsed.City,
	}, nil
}
