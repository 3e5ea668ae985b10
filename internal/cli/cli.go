// Package cli wires the extraction engine, session, translation store and
// shared cache into a cobra command surface.
package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"game-translator/internal/cache"
	"game-translator/internal/config"
	"game-translator/internal/extract"
	"game-translator/internal/filewalker"
	"game-translator/internal/session"
	"game-translator/internal/translation"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Execute runs the CLI application.
func Execute() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	rootCmd := &cobra.Command{
		Use:   "game-translator",
		Short: "Fast text extraction and translation management for game localization",
		Long: "Extracts human-readable strings from game data trees using pattern matching,\n" +
			"chunks oversized texts, and manages the translation mapping that bridges\n" +
			"extracted units to their translations.",
	}

	rootCmd.AddCommand(extractCmd())
	rootCmd.AddCommand(applyCmd())
	rootCmd.AddCommand(translationsCmd())
	rootCmd.AddCommand(cacheCmd())
	rootCmd.AddCommand(presetsCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func extractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <source-dir> <output-dir>",
		Short: "Extract translatable texts from a directory tree",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			extensions, _ := cmd.Flags().GetString("extensions")
			preset, _ := cmd.Flags().GetString("preset")
			return runExtract(args[0], args[1], extensions, preset)
		},
	}

	cmd.Flags().String("extensions", "", "Comma-separated file extensions (default .csv,.erb,.erh)")
	cmd.Flags().String("preset", "", "Extension preset: code, web or all")

	return cmd
}

func runExtract(sourceDir, outputDir, extensions, preset string) error {
	cfg := config.Load()

	if preset != "" {
		list, ok := filewalker.Preset(preset)
		if !ok {
			return fmt.Errorf("unknown preset %q (available: %s)",
				preset, strings.Join(filewalker.PresetNames(), ", "))
		}
		extensions = list
	}
	exts := filewalker.Normalize(extensions)

	extractor := extract.Select(cfg)
	sess := session.New(extractor)

	log.Info().
		Str("source", sourceDir).
		Strs("extensions", exts).
		Msg("Starting extraction")

	done, err := sess.StartExtraction(context.Background(), sourceDir, outputDir, exts)
	if err != nil {
		return err
	}
	outcome := <-done
	if outcome.Err != nil {
		return fmt.Errorf("extraction failed: %w", outcome.Err)
	}

	res := outcome.Result
	log.Info().
		Int("files", res.TotalFilesProcessed).
		Int("texts", res.TotalTextsFound).
		Float64("seconds", res.ProcessingTime).
		Msg("Extraction complete")

	fmt.Println(res.Summary(sess.TranslationCount(), extractor.Backend(), exts, cfg.MaxChunkSize))
	return nil
}

func applyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <source-dir> <translations-file>",
		Short: "Apply a translation file back to the source files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(args[0], args[1])
		},
	}
}

func runApply(sourceDir, translationFile string) error {
	cfg := config.Load()

	m := translation.NewMap()
	if err := m.Load(translationFile); err != nil {
		return err
	}
	if m.Len() == 0 {
		log.Warn().Msg("No translations to apply")
		return nil
	}

	extractor := extract.Select(cfg)
	return extractor.Apply(context.Background(), sourceDir, m.All())
}

func translationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translations",
		Short: "Work with translation files",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "merge <base-file> <incoming-file> <output-file>",
		Short: "Merge two translation files, incoming entries winning on collision",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslationsMerge(args[0], args[1], args[2])
		},
	})

	return cmd
}

func runTranslationsMerge(basePath, incomingPath, outputPath string) error {
	base := translation.NewMap()
	if err := base.Load(basePath); err != nil {
		return err
	}
	incoming := translation.NewMap()
	if err := incoming.Load(incomingPath); err != nil {
		return err
	}

	base.Merge(incoming)
	if err := base.Save(outputPath); err != nil {
		return err
	}

	log.Info().
		Int("entries", base.Len()).
		Str("output", outputPath).
		Msg("Merged translation files")
	return nil
}

func cacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Share translations through the PostgreSQL cache",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "push <translations-file>",
		Short: "Upload a translation file into the shared cache",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCachePush(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "pull <translations-file>",
		Short: "Write the shared cache out as a translation file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCachePull(args[0])
		},
	})

	return cmd
}

// openCache connects to PostgreSQL and prepares the shared cache.
func openCache(ctx context.Context, cfg *config.Config) (*cache.TranslationCache, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is not set; the shared cache is unavailable")
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connect PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping PostgreSQL: %w", err)
	}

	tc := cache.New(pool)
	if err := tc.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}

	return tc, pool, nil
}

func runCachePush(path string) error {
	ctx := context.Background()
	cfg := config.Load()

	m := translation.NewMap()
	if err := m.Load(path); err != nil {
		return err
	}

	tc, pool, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	pushed := 0
	for text, translated := range m.All() {
		if err := tc.Set(ctx, text, translated); err != nil {
			return fmt.Errorf("push translation: %w", err)
		}
		pushed++
	}

	log.Info().Int("entries", pushed).Msg("Pushed translations to shared cache")
	return nil
}

func runCachePull(path string) error {
	ctx := context.Background()
	cfg := config.Load()

	tc, pool, err := openCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	entries, err := tc.Export(ctx)
	if err != nil {
		return err
	}

	m := translation.NewMap()
	for text, translated := range entries {
		m.Set(text, translated)
	}
	if err := m.Save(path); err != nil {
		return err
	}

	log.Info().Int("entries", m.Len()).Str("output", path).Msg("Pulled translations from shared cache")
	return nil
}

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the extension filter presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range filewalker.PresetNames() {
				list, _ := filewalker.Preset(name)
				fmt.Printf("%-8s %s\n", name, list)
			}
			fmt.Printf("%-8s %s\n", "default", strings.Join(filewalker.DefaultExtensions, ","))
		},
	}
}
