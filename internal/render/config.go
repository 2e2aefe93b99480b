package render

import (
	"strings"
	"time"

	"github.com/msto63/ecmarkdown/foundation/core/config"
	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
)

// Mode selects the parse entry point
type Mode string

const (
	ModeFragment  Mode = "fragment"
	ModeAlgorithm Mode = "algorithm"
)

// ParseMode parses a mode name
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeFragment:
		return ModeFragment, nil
	case ModeAlgorithm:
		return ModeAlgorithm, nil
	}
	return "", mderror.Newf("unknown render mode %q", s).
		WithCode(mderror.CodeInvalidInput).
		WithOperation("render.ParseMode")
}

// Config holds service configuration
type Config struct {
	Mode           Mode
	TrackPositions bool
	Reindent       bool
	Workers        int
	CacheSize      int
	CacheTTL       time.Duration
}

// DefaultConfig returns default service configuration
func DefaultConfig() Config {
	return Config{
		Mode:      ModeAlgorithm,
		Workers:   4,
		CacheSize: 1024,
		CacheTTL:  10 * time.Minute,
	}
}

// Configuration keys read by ConfigFrom
const (
	KeyTrackPositions = "parser.track_positions"
	KeyReindent       = "emitter.reindent"
	KeyMode           = "render.mode"
	KeyWorkers        = "render.workers"
	KeyCacheSize      = "render.cache_size"
	KeyCacheTTL       = "render.cache_ttl"
)

// Defaults returns the configuration defaults keyed by dotted path
func Defaults() map[string]interface{} {
	d := DefaultConfig()
	return map[string]interface{}{
		KeyTrackPositions: d.TrackPositions,
		KeyReindent:       d.Reindent,
		KeyMode:           string(d.Mode),
		KeyWorkers:        d.Workers,
		KeyCacheSize:      d.CacheSize,
		KeyCacheTTL:       d.CacheTTL.String(),
	}
}

var rules = config.ValidationRules{
	KeyTrackPositions: {Type: "bool"},
	KeyReindent:       {Type: "bool"},
	KeyMode:           {Type: "string", OneOf: []string{string(ModeFragment), string(ModeAlgorithm)}},
	KeyWorkers:        {Type: "int", Min: config.IntBound(1), Max: config.IntBound(256)},
	KeyCacheSize:      {Type: "int", Min: config.IntBound(1)},
	KeyCacheTTL:       {Type: "duration"},
}

// ConfigFrom validates cfg and builds the service configuration from it.
// Missing keys keep their defaults.
func ConfigFrom(cfg *config.Config) (Config, error) {
	if err := cfg.Validate(rules); err != nil {
		return Config{}, err
	}

	d := DefaultConfig()
	mode, err := ParseMode(cfg.GetString(KeyMode, string(d.Mode)))
	if err != nil {
		return Config{}, err
	}
	return Config{
		Mode:           mode,
		TrackPositions: cfg.GetBool(KeyTrackPositions, d.TrackPositions),
		Reindent:       cfg.GetBool(KeyReindent, d.Reindent),
		Workers:        cfg.GetInt(KeyWorkers, d.Workers),
		CacheSize:      cfg.GetInt(KeyCacheSize, d.CacheSize),
		CacheTTL:       cfg.GetDuration(KeyCacheTTL, d.CacheTTL),
	}, nil
}
