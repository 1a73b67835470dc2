package trade

import "time"

// Config holds configuration for the trade website API.
type Config struct {
	// BaseURL is the root of the trade API, without trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://www.pathofexile.com/api/trade"`
	// League is the league searched for listed items.
	League string `mapstructure:"league" default:"Standard"`
	// ThrottleMs is the minimum spacing between two requests.
	ThrottleMs int `mapstructure:"throttle_ms" default:"6500"`
	// BatchSize is the number of ids per fetch request.
	BatchSize int `mapstructure:"batch_size" default:"10"`
	// BackoffMultiplier grows the retry wait; 1 keeps it fixed.
	BackoffMultiplier float64 `mapstructure:"backoff_multiplier" default:"1"`
	// MaxBackoffMs caps the retry wait when BackoffMultiplier > 1.
	MaxBackoffMs int `mapstructure:"max_backoff_ms" default:"120000"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"unique-checker/1.0"`
}

// Throttle returns the request spacing.
func (c Config) Throttle() time.Duration {
	return time.Duration(c.ThrottleMs) * time.Millisecond
}

// RetryBackoff returns the first wait before a retry, twice the throttle.
func (c Config) RetryBackoff() time.Duration {
	return 2 * c.Throttle()
}

// MaxBackoff returns the retry wait cap.
func (c Config) MaxBackoff() time.Duration {
	return time.Duration(c.MaxBackoffMs) * time.Millisecond
}

// Timeout returns the per-request timeout.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
