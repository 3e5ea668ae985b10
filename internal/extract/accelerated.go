package extract

import (
	"context"
	"time"

	"game-translator/internal/filewalker"
	"game-translator/internal/pattern"
	"game-translator/internal/worker"
)

// Accelerated is the concurrent extraction backend: the same per-file
// scanning as Reference, fanned out over a worker pool. Results are
// accumulated in discovery order so the two backends emit equivalent unit
// sets.
type Accelerated struct {
	matcher      *pattern.Matcher
	maxChunkSize int
	workers      int
}

// NewAccelerated creates the accelerated backend with the given worker count.
func NewAccelerated(opts Options, workers int) *Accelerated {
	opts = opts.withDefaults()
	if workers < 2 {
		workers = 2
	}
	return &Accelerated{
		matcher:      pattern.NewMatcher(opts.MinTextLength),
		maxChunkSize: opts.MaxChunkSize,
		workers:      workers,
	}
}

func (e *Accelerated) Backend() string { return "accelerated" }

func (e *Accelerated) Extract(ctx context.Context, root string, exts []string) (*Result, error) {
	start := time.Now()
	res := &Result{}

	files := filewalker.Collect(root, exts)

	pool := worker.New(e.workers, func(ctx context.Context, path string) ([]Unit, error) {
		return scanFile(path, e.matcher, e.maxChunkSize)
	})

	for _, r := range pool.Run(ctx, files) {
		if r.Err != nil {
			// Already logged by the pool; the file is skipped and not counted.
			continue
		}
		res.Units = append(res.Units, r.Value...)
		res.TotalFilesProcessed++
	}

	res.TotalTextsFound = len(res.Units)
	res.ProcessingTime = time.Since(start).Seconds()
	return res, nil
}
