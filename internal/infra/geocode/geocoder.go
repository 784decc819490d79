// Package geocode resolves addresses through a geo-golang provider.
package geocode

import (
	"context"
	"log/slog"
	"strings"

	"bootcamper/config"
	"bootcamper/internal/domain/service"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/codingsince1985/geo-golang/google"
	"github.com/codingsince1985/geo-golang/mapquest/open"
	"github.com/codingsince1985/geo-golang/opencage"
	"github.com/codingsince1985/geo-golang/openstreetmap"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Supported provider names for geocoder.provider.
const (
	ProviderMapQuest      = "mapquest"
	ProviderGoogle        = "google"
	ProviderOpenCage      = "opencage"
	ProviderOpenStreetMap = "openstreetmap"
)

// Params defines the dependencies for the geocoder
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

type geocoder struct {
	provider geo.Geocoder
	logger   *slog.Logger
}

// New builds the configured geocoding provider.
func New(params Params) (service.Geocoder, error) {
	provider, err := newProvider(params.Config.Geocoder)
	if err != nil {
		return nil, err
	}

	return newGeocoder(provider, params.Logger), nil
}

func newGeocoder(provider geo.Geocoder, logger *slog.Logger) *geocoder {
	return &geocoder{
		provider: provider,
		logger:   logger.With(slog.String("component", "geocoder")),
	}
}

func newProvider(cfg *config.GeocoderConfig) (geo.Geocoder, error) {
	if cfg == nil {
		return nil, errors.New("geocoder config is missing")
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderMapQuest, "":
		if cfg.APIKey == "" {
			return nil, errors.New("geocoder.apiKey is required for mapquest")
		}

		return open.Geocoder(cfg.APIKey), nil
	case ProviderGoogle:
		if cfg.APIKey == "" {
			return nil, errors.New("geocoder.apiKey is required for google")
		}

		return google.Geocoder(cfg.APIKey), nil
	case ProviderOpenCage:
		if cfg.APIKey == "" {
			return nil, errors.New("geocoder.apiKey is required for opencage")
		}

		return opencage.Geocoder(cfg.APIKey), nil
	case ProviderOpenStreetMap:
		return openstreetmap.Geocoder(), nil
	default:
		return nil, errors.Errorf("unknown geocoder provider %q", cfg.Provider)
	}
}

type lookupResult struct {
	result *service.GeocodeResult
	err    error
}

// Geocode resolves the address to its first match. Provider calls are not
// context-aware, so cancellation only stops the wait.
func (g *geocoder) Geocode(ctx context.Context, address string) (*service.GeocodeResult, error) {
	if strings.TrimSpace(address) == "" {
		return nil, service.ErrNoGeocodeMatch
	}

	done := make(chan lookupResult, 1)
	go func() {
		result, err := g.lookup(ctx, address)
		done <- lookupResult{result: result, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "geocode")
	case r := <-done:
		return r.result, r.err
	}
}

func (g *geocoder) lookup(ctx context.Context, address string) (*service.GeocodeResult, error) {
	location, err := g.provider.Geocode(address)
	if err != nil {
		return nil, errors.Wrapf(err, "geocode %q", address)
	}
	if location == nil {
		return nil, service.ErrNoGeocodeMatch
	}

	result := &service.GeocodeResult{
		Coordinates: orb.Point{location.Lng, location.Lat},
	}

	detail, err := g.provider.ReverseGeocode(location.Lat, location.Lng)
	if err != nil {
		// Coordinates alone are still usable for radius lookups.
		g.logger.WarnContext(ctx, "Reverse geocode failed",
			slog.String("address", address),
			slog.Any("error", err),
		)

		return result, nil
	}
	if detail == nil {
		return result, nil
	}

	result.FormattedAddress = detail.FormattedAddress
	result.Street = joinNonEmpty(detail.HouseNumber, detail.Street)
	result.City = detail.City
	result.State = firstNonEmpty(detail.StateCode, detail.State)
	result.Zipcode = detail.Postcode
	result.Country = firstNonEmpty(detail.CountryCode, detail.Country)

	return result, nil
}

func joinNonEmpty(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, " ")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
