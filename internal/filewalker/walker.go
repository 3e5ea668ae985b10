// Package filewalker enumerates candidate files for extraction and owns the
// extension filter that gates them.
package filewalker

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Collect recursively gathers all files under root whose name matches the
// extension filter, in traversal order.
//
// The walk is tolerant by design: a root that does not exist or is not a
// directory yields an empty list, and unreadable entries are logged and
// skipped. Scanning a tree must never fail because of one bad path.
func Collect(root string, exts []string) []string {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		log.Warn().Str("root", root).Msg("Root is not a readable directory, nothing to scan")
		return nil
	}

	var files []string

	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("Error walking path")
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if MatchesExtension(info.Name(), exts) {
			files = append(files, path)
		}
		return nil
	})

	log.Debug().Int("count", len(files)).Str("root", root).Msg("Discovered files")
	return files
}
