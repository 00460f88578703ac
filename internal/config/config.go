// Package config provides layered configuration loading for the Cendre service.
// It merges Defaults -> Environment Variables, then validates the result.
package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envPrefix namespaces all environment variables consumed by the service.
const envPrefix = "CENDRE_"

// Config holds the merged runtime configuration for the Cendre service.
type Config struct {
	Addr            string        `koanf:"addr" validate:"required,ip_port"`
	RedisURL        string        `koanf:"redis_url" validate:"omitempty,url"`
	RedisKeyPrefix  string        `koanf:"redis_key_prefix" validate:"required"`
	MaxTTLSecs      uint32        `koanf:"max_ttl_secs" validate:"gte=1,lte=86400"`
	RateLimitMax    int           `koanf:"rate_limit_max" validate:"gte=1"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window" validate:"required,gt=0"`
}

// DefaultAppConfig is the baseline configuration before environment overrides.
var DefaultAppConfig = Config{
	Addr:            ":8080",
	RedisURL:        "",
	RedisKeyPrefix:  "secret:",
	MaxTTLSecs:      86400,
	RateLimitMax:    60,
	RateLimitWindow: time.Minute,
}

// defaultLoader and envLoader are indirected so tests can inject failures.
var defaultLoader = func(k *koanf.Koanf) error {
	return k.Load(structs.Provider(DefaultAppConfig, "koanf"), nil)
}

var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil)
}

var registerValidators = func(v *validator.Validate) error {
	return v.RegisterValidation("ip_port", validIPPort)
}

// Load builds a Config from defaults overlaid with CENDRE_* environment
// variables and validates it.
func Load() (*Config, error) {
	k := koanf.New(".")
	if err := defaultLoader(k); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "koanf",
			WeaklyTypedInput: true,
			Result:           cfg,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	v := validator.New()
	if err := registerValidators(v); err != nil {
		return nil, fmt.Errorf("register validators: %w", err)
	}
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// validIPPort accepts "host:port" where host is empty or a literal IP and port
// is a decimal in [1, 65535]. Hostnames are rejected; the listen address must
// bind an interface, not resolve a name.
func validIPPort(fl validator.FieldLevel) bool {
	host, port, err := net.SplitHostPort(fl.Field().String())
	if err != nil {
		return false
	}
	if host != "" && net.ParseIP(host) == nil {
		return false
	}
	n, err := strconv.Atoi(port)
	if err != nil || n < 1 || n > 65535 {
		return false
	}
	return true
}
