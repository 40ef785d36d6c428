package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	defaultConfigEnvironment = "development"
	defaultConfigPort        = 8000
	defaultSkipAuth          = false
	defaultCORSAllowOrigins  = "*"

	defaultOtelDisable          = false
	defaultOTLPExporterEndpoint = "localhost:4317"
	defaultOTLPInsecure         = false

	defaultCognitoRegion      = "us-east-1"
	defaultCognitoUserPoolID  = "UNSET"
	defaultCognitoAppClientID = "UNSET"

	defaultRedisAddr     = ""
	defaultRedisPassword = ""
	defaultRedisDB       = 0

	defaultRateLimitEnabled     = false
	defaultRateLimitMaxRequests = 30
	defaultRateLimitWindow      = time.Minute

	defaultComplyCubeBaseURL  = "https://api.complycube.com/v1"
	defaultComplyCubeTimeout  = 10 * time.Second
	defaultComplyCubeReferrer = "*://*/*"
)

func DefaultConfig() Config {
	return Config{
		Environment: defaultConfigEnvironment,
		Port:        defaultConfigPort,
		SkipAuth:    defaultSkipAuth,
		CORS: CORSConfig{
			AllowOrigins: defaultCORSAllowOrigins,
		},
		Otel: OtelConfig{
			Disable: defaultOtelDisable,
			OtlpExporter: OtlpConfig{
				Endpoint: defaultOTLPExporterEndpoint,
				Insecure: defaultOTLPInsecure,
			},
		},
		Cognito: CognitoConfig{
			Region:      defaultCognitoRegion,
			UserPoolID:  defaultCognitoUserPoolID,
			AppClientID: defaultCognitoAppClientID,
		},
		Redis: RedisConfig{
			Addr:     defaultRedisAddr,
			Password: defaultRedisPassword,
			DB:       defaultRedisDB,
		},
		RateLimit: RateLimitConfig{
			Enabled:     defaultRateLimitEnabled,
			MaxRequests: defaultRateLimitMaxRequests,
			Window:      defaultRateLimitWindow,
		},
		ComplyCube: ComplyCubeConfig{
			BaseURL:         defaultComplyCubeBaseURL,
			Timeout:         defaultComplyCubeTimeout,
			DefaultReferrer: defaultComplyCubeReferrer,
		},
	}
}

func NewConfig(options ...func(*Config)) Config {
	config := DefaultConfig()
	for _, opt := range options {
		opt(&config)
	}
	return config
}

// NewConfigFromEnv overlays the environment on top of DefaultConfig. Variables that
// are unset or empty keep their default.
func NewConfigFromEnv(options ...func(*Config)) (Config, error) {
	config := DefaultConfig()

	err := env.Parse(&config)
	if err != nil {
		err = fmt.Errorf("error parsing env: %w", err)
	}

	for _, opt := range options {
		opt(&config)
	}

	return config, err
}

func LoadEnv(environment ...string) error {
	filenames := []string{
		".env.local",
		".env",
	}

	name := getEnv("ENVIRONMENT", DefaultConfig().Environment)
	if len(environment) > 0 {
		name = environment[0]
	}

	if name != "" {
		file := ".env." + name + ".local"
		filenames = append([]string{file}, filenames...)
	}

	var errs error

	for _, filename := range filenames {
		err := loadEnvFile(filename)
		if err != nil {
			errs = errors.Join(
				errs,
				fmt.Errorf("error loading %s: %w", filename, err),
			)
		}
	}

	return errs
}
