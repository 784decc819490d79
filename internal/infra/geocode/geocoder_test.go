package geocode

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bootcamper/config"
	"bootcamper/internal/domain/service"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	location   *geo.Location
	address    *geo.Address
	geocodeErr error
	reverseErr error
	delay      time.Duration
}

func (f *fakeProvider) Geocode(string) (*geo.Location, error) {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	return f.location, f.geocodeErr
}

func (f *fakeProvider) ReverseGeocode(float64, float64) (*geo.Address, error) {
	return f.address, f.reverseErr
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGeocoder_Geocode(t *testing.T) {
	provider := &fakeProvider{
		location: &geo.Location{Lat: 42.350933, Lng: -71.103226},
		address: &geo.Address{
			FormattedAddress: "233 Bay State Rd, Boston, MA 02215, US",
			HouseNumber:      "233",
			Street:           "Bay State Rd",
			City:             "Boston",
			State:            "Massachusetts",
			StateCode:        "MA",
			Postcode:         "02215",
			Country:          "United States",
			CountryCode:      "US",
		},
	}

	result, err := newGeocoder(provider, discardLogger()).Geocode(context.Background(), "233 Bay State Rd Boston MA 02215")
	require.NoError(t, err)

	assert.InDelta(t, -71.103226, result.Coordinates.Lon(), 1e-9)
	assert.InDelta(t, 42.350933, result.Coordinates.Lat(), 1e-9)
	assert.Equal(t, "233 Bay State Rd, Boston, MA 02215, US", result.FormattedAddress)
	assert.Equal(t, "233 Bay State Rd", result.Street)
	assert.Equal(t, "Boston", result.City)
	assert.Equal(t, "MA", result.State)
	assert.Equal(t, "02215", result.Zipcode)
	assert.Equal(t, "US", result.Country)
}

func TestGeocoder_Geocode_NoMatch(t *testing.T) {
	g := newGeocoder(&fakeProvider{}, discardLogger())

	_, err := g.Geocode(context.Background(), "nowhere at all")
	assert.ErrorIs(t, err, service.ErrNoGeocodeMatch)

	_, err = g.Geocode(context.Background(), "   ")
	assert.ErrorIs(t, err, service.ErrNoGeocodeMatch)
}

func TestGeocoder_Geocode_ProviderError(t *testing.T) {
	g := newGeocoder(&fakeProvider{geocodeErr: errors.New("quota exceeded")}, discardLogger())

	_, err := g.Geocode(context.Background(), "Boston")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.NotErrorIs(t, err, service.ErrNoGeocodeMatch)
}

func TestGeocoder_Geocode_ReverseFailureKeepsCoordinates(t *testing.T) {
	provider := &fakeProvider{
		location:   &geo.Location{Lat: 1, Lng: 2},
		reverseErr: errors.New("reverse unavailable"),
	}

	result, err := newGeocoder(provider, discardLogger()).Geocode(context.Background(), "somewhere")
	require.NoError(t, err)
	assert.Equal(t, 2.0, result.Coordinates.Lon())
	assert.Equal(t, 1.0, result.Coordinates.Lat())
	assert.Empty(t, result.FormattedAddress)
}

func TestGeocoder_Geocode_ContextCanceled(t *testing.T) {
	provider := &fakeProvider{location: &geo.Location{}, delay: 200 * time.Millisecond}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := newGeocoder(provider, discardLogger()).Geocode(ctx, "slow")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *config.GeocoderConfig
		wantErr bool
	}{
		{name: "mapquest", cfg: &config.GeocoderConfig{Provider: "mapquest", APIKey: "k"}},
		{name: "google", cfg: &config.GeocoderConfig{Provider: "google", APIKey: "k"}},
		{name: "opencage", cfg: &config.GeocoderConfig{Provider: "OpenCage", APIKey: "k"}},
		{name: "openstreetmap without key", cfg: &config.GeocoderConfig{Provider: "openstreetmap"}},
		{name: "mapquest without key", cfg: &config.GeocoderConfig{Provider: "mapquest"}, wantErr: true},
		{name: "unknown", cfg: &config.GeocoderConfig{Provider: "bing", APIKey: "k"}, wantErr: true},
		{name: "missing section", cfg: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := newProvider(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.NotNil(t, provider)
		})
	}
}
