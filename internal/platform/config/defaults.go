package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultCachePageLimit = 20

	defaultLogMaxSizeMB  = 100
	defaultLogMaxBackups = 3
	defaultLogMaxAgeDays = 28
)

// defaults returns the default configuration values. These are loaded
// first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":          "0.0.0.0",
		"server.port":          defaultServerPort,
		"server.read_timeout":  "5s",
		"server.write_timeout": "10s",
		"server.idle_timeout":  "120s",

		"log.level":        "info",
		"log.format":       "json",
		"log.file":         "",
		"log.max_size_mb":  defaultLogMaxSizeMB,
		"log.max_backups":  defaultLogMaxBackups,
		"log.max_age_days": defaultLogMaxAgeDays,

		"store.driver": "memory",
		"store.path":   "data/todos.db",

		"client.base_url":                         "http://localhost:8080",
		"client.timeout":                          "30s",
		"client.retry.max_attempts":               defaultRetryMaxAttempts,
		"client.retry.initial_interval":           "100ms",
		"client.retry.max_interval":               "10s",
		"client.retry.multiplier":                 defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":     defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":          "30s",
		"client.circuit_breaker.half_open_limit":  defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":   0.0,
		"client.rate_limit.burst_size":            0,

		"cache.page_limit": defaultCachePageLimit,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "todo-service",
	}
}
