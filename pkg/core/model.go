package core

import "time"

type Config struct {
	Cognito     CognitoConfig    `envPrefix:"COGNITO_"`
	ComplyCube  ComplyCubeConfig `envPrefix:"COMPLYCUBE_"`
	CORS        CORSConfig       `envPrefix:"CORS_"`
	Environment string           `env:"ENVIRONMENT"`
	Otel        OtelConfig       `envPrefix:"OTEL_"`
	Port        int              `env:"PORT"`
	RateLimit   RateLimitConfig  `envPrefix:"RATE_LIMIT_"`
	Redis       RedisConfig      `envPrefix:"REDIS_"`
	SkipAuth    bool             `env:"SKIP_AUTH"`

	// Addresses or CIDRs of the load balancers allowed to set X-Forwarded-For.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type OtlpConfig struct {
	Endpoint string `env:"ENDPOINT"`
	Insecure bool   `env:"INSECURE"`
}

type OtelConfig struct {
	OtlpExporter OtlpConfig `envPrefix:"OTLP_EXPORTER_"`
	Disable      bool       `env:"DISABLE"`
}

type CognitoConfig struct {
	Region      string `env:"REGION"`
	UserPoolID  string `env:"USER_POOL_ID"`
	AppClientID string `env:"APP_CLIENT_ID"`
}

type CORSConfig struct {
	AllowOrigins string `env:"ALLOW_ORIGINS"`
}

type RedisConfig struct {
	Addr     string `env:"ADDR"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB"`
}

type RateLimitConfig struct {
	Enabled bool `env:"ENABLED"`
	// Requests allowed per caller inside one window.
	MaxRequests int           `env:"MAX_REQUESTS"`
	Window      time.Duration `env:"WINDOW"`
}

type ComplyCubeConfig struct {
	APIKey  string `env:"API_KEY"`
	BaseURL string `env:"BASE_URL"`
	// Upper bound for a single provider round trip when the caller has no deadline.
	Timeout time.Duration `env:"TIMEOUT"`
	// Referrer sent with web SDK token requests when the browser does not supply one.
	DefaultReferrer string `env:"DEFAULT_REFERRER"`
}
