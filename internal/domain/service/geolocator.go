package service

import (
	"context"

	"noticetrack/internal/domain/entity"
)

// Geolocator resolves an IP address to a coarse location. Lookups are
// best-effort enrichment for activity events; callers must degrade to
// storing the event without location on any failure.
type Geolocator interface {
	Resolve(ctx context.Context, ipAddress string) (*entity.GeoLocation, error)
}
