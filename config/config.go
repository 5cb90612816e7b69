// Package config holds the knobs that tune schema construction and
// subscription execution, threaded through ParseSchema/Extend as option
// functions rather than hard-coded constants.
package config

import "time"

// Config is built from Default() and mutated by the With* option functions
// exposed at the top level of the module.
type Config struct {
	// UseFieldResolverFallback allows a subscription root field with neither
	// a subscribe nor a resolve callback to fall back to reading
	// rootValue[fieldName] by reflection (§4.F step 6). The fallback from
	// subscribe to resolve applies whether or not this is set.
	UseFieldResolverFallback bool

	// MaxSubscriptionEventTimeout is the deadline set on the context the
	// executor receives when mapping a single source event into a Result.
	// The kernel waits for Execute to return; it does not abandon the event
	// or produce a timeout error of its own.
	MaxSubscriptionEventTimeout time.Duration

	// AssumeValid, when set, skips schema validation (§4.D) entirely after
	// a build or extend — the caller is asserting the schema is already
	// known-good (e.g. it was validated once and is being rebuilt from a
	// trusted source on every request).
	AssumeValid bool
}

// Default returns the Config used when none is supplied explicitly.
func Default() *Config {
	return &Config{
		UseFieldResolverFallback:    true,
		MaxSubscriptionEventTimeout: time.Second,
	}
}
