package core

import "time"

func WithRedisAddr(addr string) func(*Config) {
	return func(c *Config) {
		c.Redis.Addr = addr
	}
}

func WithRedisPassword(pw string) func(*Config) {
	return func(c *Config) {
		c.Redis.Password = pw
	}
}

func WithRedisDB(db int) func(*Config) {
	return func(c *Config) {
		c.Redis.DB = db
	}
}

func WithEnvironment(environment string) func(*Config) {
	return func(c *Config) {
		c.Environment = environment
	}
}

func WithPort(port int) func(*Config) {
	return func(c *Config) {
		c.Port = port
	}
}

func WithSkipAuth(value ...bool) func(*Config) {
	val := true
	if len(value) > 0 {
		val = value[0]
	}

	return func(c *Config) {
		c.SkipAuth = val
	}
}

func WithOtelDisable(value ...bool) func(*Config) {
	val := true
	if len(value) > 0 {
		val = value[0]
	}

	return func(c *Config) {
		c.Otel.Disable = val
	}
}

func WithOtlpEndpoint(endpoint string) func(*Config) {
	return func(c *Config) {
		c.Otel.OtlpExporter.Endpoint = endpoint
	}
}

func WithComplyCubeAPIKey(key string) func(*Config) {
	return func(c *Config) {
		c.ComplyCube.APIKey = key
	}
}

func WithComplyCubeBaseURL(baseURL string) func(*Config) {
	return func(c *Config) {
		c.ComplyCube.BaseURL = baseURL
	}
}

func WithComplyCubeTimeout(timeout time.Duration) func(*Config) {
	return func(c *Config) {
		c.ComplyCube.Timeout = timeout
	}
}

// WithRateLimit turns the limiter on with the given budget per window.
func WithRateLimit(maxRequests int, window time.Duration) func(*Config) {
	return func(c *Config) {
		c.RateLimit.Enabled = true
		c.RateLimit.MaxRequests = maxRequests
		c.RateLimit.Window = window
	}
}

func WithCORSAllowOrigins(origins string) func(*Config) {
	return func(c *Config) {
		c.CORS.AllowOrigins = origins
	}
}

func WithTrustedProxies(proxies ...string) func(*Config) {
	return func(c *Config) {
		c.TrustedProxies = proxies
	}
}
