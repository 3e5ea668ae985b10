// Package cache shares translations between translators through PostgreSQL.
// It is strictly optional: every file-based contract works without it.
package cache

import (
	"context"
	"fmt"
	"sync"

	"game-translator/internal/textutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS translation_cache (
	hash       TEXT PRIMARY KEY,
	source     TEXT NOT NULL,
	translated TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// TranslationCache is an in-memory map in front of a PostgreSQL table,
// keyed by the SHA-256 hash of the source text.
type TranslationCache struct {
	pool   *pgxpool.Pool
	mu     sync.RWMutex
	memory map[string]string // hash → translated text
}

// New creates a cache backed by the given pool.
func New(pool *pgxpool.Pool) *TranslationCache {
	return &TranslationCache{
		pool:   pool,
		memory: make(map[string]string),
	}
}

// EnsureSchema creates the cache table if it does not exist.
func (c *TranslationCache) EnsureSchema(ctx context.Context) error {
	if _, err := c.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure cache schema: %w", err)
	}
	return nil
}

// Get retrieves a cached translation for the source text.
func (c *TranslationCache) Get(ctx context.Context, source string) (string, bool) {
	hash := textutil.Hash(source)

	c.mu.RLock()
	if v, ok := c.memory[hash]; ok {
		c.mu.RUnlock()
		return v, true
	}
	c.mu.RUnlock()

	var translated string
	err := c.pool.QueryRow(ctx,
		`SELECT translated FROM translation_cache WHERE hash = $1`, hash,
	).Scan(&translated)
	if err != nil {
		return "", false
	}

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	return translated, true
}

// Set stores a translation in memory and upserts it in PostgreSQL.
func (c *TranslationCache) Set(ctx context.Context, source, translated string) error {
	hash := textutil.Hash(source)

	c.mu.Lock()
	c.memory[hash] = translated
	c.mu.Unlock()

	_, err := c.pool.Exec(ctx, `
		INSERT INTO translation_cache (hash, source, translated)
		VALUES ($1, $2, $3)
		ON CONFLICT (hash) DO UPDATE
		SET translated = EXCLUDED.translated, updated_at = now()`,
		hash, source, translated,
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Preload loads all cached translations into memory.
func (c *TranslationCache) Preload(ctx context.Context) error {
	rows, err := c.pool.Query(ctx, `SELECT hash, translated FROM translation_cache`)
	if err != nil {
		return fmt.Errorf("preload cache: %w", err)
	}
	defer rows.Close()

	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for rows.Next() {
		var hash, translated string
		if err := rows.Scan(&hash, &translated); err != nil {
			return fmt.Errorf("scan cache row: %w", err)
		}
		c.memory[hash] = translated
		count++
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate cache rows: %w", err)
	}

	log.Info().Int("count", count).Msg("Preloaded translation cache")
	return nil
}

// Export returns the full source → translated mapping from PostgreSQL.
func (c *TranslationCache) Export(ctx context.Context) (map[string]string, error) {
	rows, err := c.pool.Query(ctx, `SELECT source, translated FROM translation_cache`)
	if err != nil {
		return nil, fmt.Errorf("export cache: %w", err)
	}
	defer rows.Close()

	out := make(map[string]string)
	for rows.Next() {
		var source, translated string
		if err := rows.Scan(&source, &translated); err != nil {
			return nil, fmt.Errorf("scan cache row: %w", err)
		}
		out[source] = translated
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cache rows: %w", err)
	}

	return out, nil
}
