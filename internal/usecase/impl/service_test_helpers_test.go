package impl

import (
	"io"
	"log/slog"

	"bootcamper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(policy string) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 4,
		},
		Geocoder: &config.GeocoderConfig{
			Provider:     "mapquest",
			Policy:       policy,
			DistanceUnit: "mi",
		},
		Upload: &config.UploadConfig{
			BucketURL:   "mem://",
			MaxFileSize: "1MB",
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}
