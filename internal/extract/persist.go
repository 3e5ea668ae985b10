package extract

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// Artifact file names written into the output directory.
const (
	UnitsFileName  = "extracted_texts.json"
	MasterFileName = "master_translation.txt"
)

// SaveArtifacts persists a run's units under outputDir: a JSON snapshot that
// round-trips every field, and a human-readable master translation template.
// The directory is created if absent; pre-existing unrelated content is left
// alone.
func SaveArtifacts(units []Unit, outputDir string) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	if err := saveUnits(units, filepath.Join(outputDir, UnitsFileName)); err != nil {
		return err
	}
	if err := saveMaster(units, filepath.Join(outputDir, MasterFileName)); err != nil {
		return err
	}

	log.Info().Int("units", len(units)).Str("dir", outputDir).Msg("Saved extraction artifacts")
	return nil
}

func saveUnits(units []Unit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create units file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if units == nil {
		units = []Unit{}
	}
	if err := encoder.Encode(units); err != nil {
		return fmt.Errorf("encode units: %w", err)
	}
	return nil
}

// LoadUnits reads a previously persisted unit snapshot.
func LoadUnits(path string) ([]Unit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read units file: %w", err)
	}
	var units []Unit
	if err := json.Unmarshal(data, &units); err != nil {
		return nil, fmt.Errorf("decode units: %w", err)
	}
	return units, nil
}

// saveMaster writes the translator-facing template: one record per unit
// with an empty Translation line to fill in.
func saveMaster(units []Unit, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create master file: %w", err)
	}
	defer f.Close()

	fmt.Fprintf(f, "=== MASTER TRANSLATION FILE ===\n\n")
	for i, u := range units {
		fmt.Fprintf(f, "ID: %d\n", i+1)
		fmt.Fprintf(f, "File: %s\n", u.SourcePath)
		fmt.Fprintf(f, "Line: %d\n", u.LineNumber)
		fmt.Fprintf(f, "Original: %s\n", u.Text)
		fmt.Fprintf(f, "Translation: \n")
		fmt.Fprintf(f, "---\n\n")
	}

	return nil
}
