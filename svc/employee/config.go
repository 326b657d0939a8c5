package employee

import "time"

type ClientConfig struct {
	BaseURL          string        `env:"EMPLOYEE_API_URL" envDefault:"http://localhost:8080"` // BaseURL is the employee API root.
	Timeout          time.Duration `env:"EMPLOYEE_API_TIMEOUT" envDefault:"10s"`               // Timeout bounds each request attempt.
	SearchRetries    int           `env:"EMPLOYEE_API_SEARCH_RETRIES" envDefault:"2"`          // SearchRetries is how often a failed search is retried. Creates are never retried.
	SigningSecret    string        `env:"EMPLOYEE_API_SIGNING_SECRET"`                         // SigningSecret enables HMAC request signing when set.
	SearchCacheSize  int           `env:"EMPLOYEE_SEARCH_CACHE_SIZE" envDefault:"128"`         // SearchCacheSize is the number of cached search queries. Zero disables the cache.
	SearchCacheTTL   time.Duration `env:"EMPLOYEE_SEARCH_CACHE_TTL" envDefault:"30s"`          // SearchCacheTTL is how long a cached search result is served.
	BreakerThreshold int           `env:"EMPLOYEE_API_BREAKER_THRESHOLD" envDefault:"5"`       // BreakerThreshold is the number of consecutive failures that opens the breaker.
	BreakerCooldown  time.Duration `env:"EMPLOYEE_API_BREAKER_COOLDOWN" envDefault:"30s"`      // BreakerCooldown is how long the breaker stays open.
}

// DefaultClientConfig returns the configuration used when nothing is set.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:          "http://localhost:8080",
		Timeout:          10 * time.Second,
		SearchRetries:    2,
		SearchCacheSize:  128,
		SearchCacheTTL:   30 * time.Second,
		BreakerThreshold: 5,
		BreakerCooldown:  30 * time.Second,
	}
}
