package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (API host, payment URLs)
// - default: Values common across all environments (timeouts, staleness, retry)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Cache   CacheConfig
	Auth    AuthConfig
	Payment PaymentConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL  string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout  time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
	Language string        `envconfig:"API_LANGUAGE" default:"vi"`
}

type CacheConfig struct {
	BranchStaleAfter   time.Duration `envconfig:"CACHE_BRANCH_STALE_AFTER" default:"5m"`
	RoomStaleAfter     time.Duration `envconfig:"CACHE_ROOM_STALE_AFTER" default:"2m"`
	ProvinceStaleAfter time.Duration `envconfig:"CACHE_PROVINCE_STALE_AFTER" default:"24h"`
	BookingStaleAfter  time.Duration `envconfig:"CACHE_BOOKING_STALE_AFTER" default:"30s"`
	ProfileStaleAfter  time.Duration `envconfig:"CACHE_PROFILE_STALE_AFTER" default:"10m"`
	Retry              int           `envconfig:"CACHE_RETRY" default:"2"`
}

type AuthConfig struct {
	StorageDir  string `envconfig:"AUTH_STORAGE_DIR" default:""`
	IdentityKey string `envconfig:"AUTH_IDENTITY_KEY" default:"staykit_identity"`
}

type PaymentConfig struct {
	ReturnURL string `envconfig:"PAYMENT_RETURN_URL" required:"true"`
	CancelURL string `envconfig:"PAYMENT_CANCEL_URL" required:"true"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Ho_Chi_Minh"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"25200"` // 7*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL:  "http://localhost:8889",
			Timeout:  5 * time.Second,
			Language: "vi",
		},
		Cache: CacheConfig{
			BranchStaleAfter:   5 * time.Minute,
			RoomStaleAfter:     2 * time.Minute,
			ProvinceStaleAfter: 24 * time.Hour,
			BookingStaleAfter:  30 * time.Second,
			ProfileStaleAfter:  10 * time.Minute,
			Retry:              2,
		},
		Auth: AuthConfig{
			StorageDir:  "",
			IdentityKey: "staykit_identity_test",
		},
		Payment: PaymentConfig{
			ReturnURL: "staykit://payment/return",
			CancelURL: "staykit://payment/cancel",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Ho_Chi_Minh",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 25200,
		},
	}
}
