package extract

import (
	"context"
	"time"

	"game-translator/internal/filewalker"
	"game-translator/internal/pattern"

	"github.com/rs/zerolog/log"
)

// Reference is the sequential extraction backend: one file at a time, in
// traversal order. It defines the contract the accelerated backend must
// reproduce.
type Reference struct {
	matcher      *pattern.Matcher
	maxChunkSize int
}

// NewReference creates the reference backend.
func NewReference(opts Options) *Reference {
	opts = opts.withDefaults()
	return &Reference{
		matcher:      pattern.NewMatcher(opts.MinTextLength),
		maxChunkSize: opts.MaxChunkSize,
	}
}

func (e *Reference) Backend() string { return "reference" }

func (e *Reference) Extract(ctx context.Context, root string, exts []string) (*Result, error) {
	start := time.Now()
	res := &Result{}

	for _, path := range filewalker.Collect(root, exts) {
		units, err := scanFile(path, e.matcher, e.maxChunkSize)
		if err != nil {
			// Unreadable files are skipped, not counted, never fatal.
			log.Error().Err(err).Str("path", path).Msg("Skipping unreadable file")
			continue
		}
		res.Units = append(res.Units, units...)
		res.TotalFilesProcessed++
	}

	res.TotalTextsFound = len(res.Units)
	res.ProcessingTime = time.Since(start).Seconds()
	return res, nil
}
