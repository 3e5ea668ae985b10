package extract

import (
	"runtime"

	"game-translator/internal/config"

	"github.com/rs/zerolog/log"
)

// AcceleratedAvailable is the backend presence signal: whether the
// concurrent backend can actually run faster than the reference one on this
// host. Absence never blocks any operation, only its speed.
func AcceleratedAvailable(cfg *config.Config) bool {
	return cfg.WorkerCount > 1 && runtime.NumCPU() > 1
}

// Select probes once at process start and returns the extractor to inject
// everywhere. A forced accelerated backend that cannot be satisfied degrades
// silently to the reference path; that is a fallback, not an error.
func Select(cfg *config.Config) Extractor {
	opts := Options{
		MinTextLength: cfg.MinTextLength,
		MaxChunkSize:  cfg.MaxChunkSize,
	}

	switch cfg.Backend {
	case config.BackendReference:
		log.Info().Str("backend", "reference").Msg("Using reference backend")
		return NewReference(opts)
	case config.BackendAccelerated:
		if !AcceleratedAvailable(cfg) {
			log.Warn().Msg("Accelerated backend unavailable, falling back to reference")
			return NewReference(opts)
		}
		log.Info().Str("backend", "accelerated").Int("workers", cfg.WorkerCount).Msg("Using accelerated backend")
		return NewAccelerated(opts, cfg.WorkerCount)
	default:
		if AcceleratedAvailable(cfg) {
			log.Info().Str("backend", "accelerated").Int("workers", cfg.WorkerCount).Msg("Accelerated backend selected")
			return NewAccelerated(opts, cfg.WorkerCount)
		}
		log.Info().Str("backend", "reference").Msg("Accelerated backend not available, using reference")
		return NewReference(opts)
	}
}
