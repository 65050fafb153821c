package simd

import (
	"errors"
	"os"
	"sync/atomic"
)

// EnvTier is the environment variable read at the first dispatch when
// Configure was never called. Its value is a tier name that caps the
// selection, e.g. CORETEXT_SIMD=scalar forces the reference paths.
const EnvTier = "CORETEXT_SIMD"

// ErrAlreadyResolved is returned by Configure once any operation has been
// dispatched. Cached selections are never replaced.
var ErrAlreadyResolved = errors.New("simd: dispatch already resolved")

// Config controls tier selection.
//
// Example:
//
//	cfg := simd.DefaultConfig()
//	cfg.MaxTier = simd.TierSWAR // never use the wider block loops
//	if err := simd.Configure(cfg); err != nil {
//	    log.Fatal(err)
//	}
type Config struct {
	// MaxTier caps the tier any operation may select. The widest supported
	// tier at or below MaxTier wins.
	// Default: TierVec512
	MaxTier Tier
}

// DefaultConfig returns a configuration that lets every operation use the
// widest tier the CPU supports.
func DefaultConfig() Config {
	return Config{MaxTier: TierVec512}
}

// Validate checks that the configuration names a known tier.
func (c Config) Validate() error {
	if c.MaxTier >= tierCount {
		return &ConfigError{
			Field:   "MaxTier",
			Message: "must be one of scalar, swar, vec128, vec256, vec512",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "simd: invalid config: " + e.Field + ": " + e.Message
}

var (
	activeConfig atomic.Pointer[Config]
	resolvedAny  atomic.Bool
)

// Configure installs cfg for all later dispatches. It must run before the
// first scanning call; afterwards it returns ErrAlreadyResolved.
func Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if resolvedAny.Load() {
		return ErrAlreadyResolved
	}
	activeConfig.Store(&cfg)
	return nil
}

// currentConfig returns the installed configuration, falling back to the
// environment and then to DefaultConfig.
func currentConfig() Config {
	if cfg := activeConfig.Load(); cfg != nil {
		return *cfg
	}
	cfg := DefaultConfig()
	if v, ok := os.LookupEnv(EnvTier); ok {
		t, err := ParseTier(v)
		if err != nil {
			Logger().Warn("ignoring invalid " + EnvTier + ": " + err.Error())
		} else {
			cfg.MaxTier = t
		}
	}
	return cfg
}
