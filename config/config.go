package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	gommonbytes "github.com/labstack/gommon/bytes"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	// StorageMongo selects the MongoDB document store.
	StorageMongo = "mongo"
	// StoragePostgres selects the PostgreSQL store.
	StoragePostgres = "postgres"

	// GeocodeAlways re-geocodes the address on every save.
	GeocodeAlways = "always"
	// GeocodeOnChange re-geocodes on update only when the address changed.
	GeocodeOnChange = "on-change"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Storage struct {
		// Driver is either "mongo" or "postgres".
		Driver string `json:"driver" yaml:"driver"`
	} `json:"storage" yaml:"storage"`

	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT struct {
		Secret string        `json:"secret" yaml:"secret"`
		Expire time.Duration `json:"expire" yaml:"expire"`
	} `json:"jwt" yaml:"jwt"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	Geocoder *GeocoderConfig `json:"geocoder" yaml:"geocoder"`

	Upload *UploadConfig `json:"upload" yaml:"upload"`
}

// MongoConfig defines the document store connection.
type MongoConfig struct {
	URI      string        `json:"uri" yaml:"uri"`
	Database string        `json:"database" yaml:"database"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost int `json:"bcryptCost" yaml:"bcryptCost"`
}

// GeocoderConfig selects the geocoding provider and how bootcamp saves use it.
type GeocoderConfig struct {
	Provider string `json:"provider" yaml:"provider"`
	APIKey   string `json:"apiKey" yaml:"apiKey"`
	// Policy is "always" or "on-change".
	Policy string `json:"policy" yaml:"policy"`
	// DistanceUnit is "mi" or "km" for radius lookups.
	DistanceUnit string `json:"distanceUnit" yaml:"distanceUnit"`
}

// UploadConfig defines where bootcamp photos go and how large they may be.
type UploadConfig struct {
	// BucketURL is a gocloud blob URL, e.g. file://./public/uploads or gs://bucket.
	BucketURL   string `json:"bucketUrl" yaml:"bucketUrl"`
	MaxFileSize string `json:"maxFileSize" yaml:"maxFileSize"`
}

// MaxFileSizeBytes parses MaxFileSize ("1MB", "512KB").
func (u *UploadConfig) MaxFileSizeBytes() (int64, error) {
	n, err := gommonbytes.Parse(u.MaxFileSize)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid upload.maxFileSize %q", u.MaxFileSize)
	}

	return n, nil
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// defaults are loaded first so env overrides resolve to camelCase keys even without a yaml file.
func defaults() map[string]any {
	return map[string]any{
		"env.env":                         "development",
		"env.serviceName":                 "bootcamper",
		"env.debug":                       false,
		"env.log.level":                   "info",
		"env.log.pretty":                  false,
		"http.port":                       3000,
		"http.maxRequestBodySize":         "2MB",
		"http.timeouts.readTimeout":       "15s",
		"http.timeouts.readHeaderTimeout": "5s",
		"http.timeouts.writeTimeout":      "30s",
		"http.timeouts.idleTimeout":       "60s",
		"storage.driver":                  StorageMongo,
		"mongo.uri":                       "mongodb://localhost:27017",
		"mongo.database":                  "bootcamper",
		"mongo.timeout":                   "10s",
		"jwt.secret":                      "",
		"jwt.expire":                      "720h",
		"auth.bcryptCost":                 10,
		"geocoder.provider":               "mapquest",
		"geocoder.apiKey":                 "",
		"geocoder.policy":                 GeocodeAlways,
		"geocoder.distanceUnit":           "mi",
		"upload.bucketUrl":                "file://./public/uploads",
		"upload.maxFileSize":              "1MB",
	}
}

// LoadWithEnv loads defaults, an optional .yaml file, an optional .env file and
// environment variables through koanf, later sources overriding earlier ones.
func LoadWithEnv[T any](currEnv string, base map[string]any, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	if err := koanfInstance.Load(confmap.Provider(base, "."), nil); err != nil {
		return nil, errors.Wrap(err, "load defaults failed")
	}

	if configFile, found, err := findConfigFile(currEnv, configPath); err != nil {
		return nil, err
	} else if found {
		if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read %s config failed", currEnv)
		}
	}

	// A missing .env file is normal outside local development.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "load .env file failed")
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// JWT_SECRET -> jwt.secret, UPLOAD_MAXFILESIZE -> upload.maxFileSize
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(currEnv string, configPath []string) (string, bool, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", false, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		}
	}

	return "", false, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", defaults(), "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMongo:
		if c.Mongo == nil || c.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo storage driver")
		}
	case StoragePostgres:
		if c.Postgres == nil {
			return errors.New("postgres settings are required for the postgres storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver %q", c.Storage.Driver)
	}

	if c.JWT.Secret == "" {
		return errors.New("jwt.secret must be provided")
	}

	if c.Geocoder != nil && c.Geocoder.Policy != GeocodeAlways && c.Geocoder.Policy != GeocodeOnChange {
		return errors.Errorf("unknown geocoder policy %q", c.Geocoder.Policy)
	}

	if c.Upload != nil {
		if _, err := c.Upload.MaxFileSizeBytes(); err != nil {
			return err
		}
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
