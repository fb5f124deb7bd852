// File: pool/config.go
// Author: momentics <momentics@gmail.com>
//
// Composition-time configuration of the allocation provider.

package pool

import (
	"errors"
	"io"

	"github.com/momentics/freestd/api"
	"github.com/momentics/freestd/control"
	"github.com/momentics/freestd/internal/logger"
	"gopkg.in/yaml.v3"
)

// Backing names.
const (
	BackingHeap  = "heap"
	BackingPages = "pages"
)

// Config selects the provider backing and the host failure policy.
type Config struct {
	Backing    string `yaml:"backing"`     // "heap" (hosted) or "pages" (kernel-style pool)
	Policy     string `yaml:"policy"`      // "recoverable" or "fatal"
	Tag        string `yaml:"tag"`         // 4-byte pool tag, pages backing only
	LimitBytes int64  `yaml:"limit_bytes"` // heap backing only, 0 = unlimited
	LogLevel   string `yaml:"log_level"`   // debug, info, warn, error
}

// DefaultConfig returns sensible defaults for a hosted process.
func DefaultConfig() *Config {
	return &Config{
		Backing:  BackingHeap,
		Policy:   api.PolicyRecoverable.String(),
		Tag:      DefaultTag,
		LogLevel: "info",
	}
}

// LoadConfig decodes YAML over DefaultConfig and validates the result.
// Unknown keys are rejected.
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, api.NewError(api.ErrCodeInvalidArgument, "pool: decode config").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	switch c.Backing {
	case BackingHeap, BackingPages:
	default:
		return api.NewError(api.ErrCodeInvalidArgument, "pool: unknown backing").WithContext("backing", c.Backing)
	}
	if _, err := api.ParseFailurePolicy(c.Policy); err != nil {
		return err
	}
	if c.Backing == BackingPages && len(c.Tag) != 4 {
		return api.NewError(api.ErrCodeInvalidArgument, "pool: tag must be 4 bytes").WithContext("tag", c.Tag)
	}
	if c.LimitBytes < 0 {
		return api.NewError(api.ErrCodeInvalidArgument, "pool: negative limit").WithContext("limit_bytes", c.LimitBytes)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return api.NewError(api.ErrCodeInvalidArgument, "pool: unknown log level").WithContext("log_level", c.LogLevel)
	}
	return nil
}

// New composes the configured backing with its failure policy and tracks the
// result in control.Stats: page pools as "pool.<tag>", heap providers as
// "pool.heap". Repeated names get a "#n" suffix, so no provider replaces
// another.
func New(cfg *Config) (*Guard, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	policy, _ := api.ParseFailurePolicy(cfg.Policy)

	var backing api.Allocator
	switch cfg.Backing {
	case BackingPages:
		pa, err := NewPageAllocator(cfg.Tag)
		if err != nil {
			return nil, err
		}
		backing = pa
	default:
		backing = NewHeapAllocator(cfg.LimitBytes)
	}
	g := NewGuard(backing, policy)
	name := control.Stats().TrackUnique(statsBase(cfg), g)
	logger.L().Debug("allocation provider composed", "backing", cfg.Backing, "policy", policy.String(), "stats", name)
	return g, nil
}

func statsBase(cfg *Config) string {
	if cfg.Backing == BackingPages {
		return "pool." + cfg.Tag
	}
	return "pool.heap"
}

// SetLogOutput routes library diagnostics to w at the configured level.
// A nil w silences them again.
func (c *Config) SetLogOutput(w io.Writer) error {
	lvl, ok := logger.ParseLevel(c.LogLevel)
	if !ok {
		return api.NewError(api.ErrCodeInvalidArgument, "pool: unknown log level").WithContext("log_level", c.LogLevel)
	}
	logger.Init(w, lvl)
	return nil
}
