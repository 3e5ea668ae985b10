package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"testing"
	"unicode/utf8"

	"game-translator/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func unitTexts(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Text
	}
	return out
}

func TestReferenceExtractCSV(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", `"Player Name","Enter your name","Default Player"`+"\n")

	res, err := NewReference(Options{}).Extract(context.Background(), root, []string{".csv"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalFilesProcessed)
	assert.Equal(t, len(res.Units), res.TotalTextsFound)
	require.GreaterOrEqual(t, len(res.Units), 3)

	texts := unitTexts(res.Units)
	assert.Contains(t, texts, "Player Name")
	assert.Contains(t, texts, "Enter your name")
	assert.Contains(t, texts, "Default Player")

	for _, u := range res.Units {
		n := utf8.RuneCountInString(u.Text)
		assert.GreaterOrEqual(t, n, 3)
		assert.LessOrEqual(t, n, 50000)
		assert.Equal(t, 1, u.LineNumber)
		assert.NotEmpty(t, u.Context)
		assert.NotEmpty(t, u.OriginalText)
	}
}

func TestReferenceExtractFiltersShortTexts(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", `"ab","abc"`+"\n")

	res, err := NewReference(Options{}).Extract(context.Background(), root, []string{".csv"})
	require.NoError(t, err)

	require.Len(t, res.Units, 1)
	assert.Equal(t, "abc", res.Units[0].Text)
}

func TestReferenceExtractChunkedPaths(t *testing.T) {
	root := t.TempDir()
	big := strings.Repeat("A", 75000)
	path := writeFile(t, root, "big.csv", `"`+big+`"`+"\n")

	res, err := NewReference(Options{}).Extract(context.Background(), root, []string{".csv"})
	require.NoError(t, err)

	require.Len(t, res.Units, 2)
	assert.Equal(t, path+"_chunk_0", res.Units[0].SourcePath)
	assert.Equal(t, path+"_chunk_1", res.Units[1].SourcePath)
	for _, u := range res.Units {
		assert.LessOrEqual(t, utf8.RuneCountInString(u.Text), 50000)
		assert.Equal(t, 1, u.LineNumber)
	}
	assert.Equal(t, big, res.Units[0].Text+res.Units[1].Text)
}

func TestReferenceExtractMissingRoot(t *testing.T) {
	res, err := NewReference(Options{}).Extract(context.Background(),
		filepath.Join(t.TempDir(), "nope"), []string{".csv"})

	require.NoError(t, err)
	assert.Equal(t, 0, res.TotalFilesProcessed)
	assert.Equal(t, 0, res.TotalTextsFound)
	assert.Empty(t, res.Units)
}

func TestReferenceExtractSkipsNonMatchingFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "a.csv", `"Keep this one"`+"\n")
	writeFile(t, root, "b.txt", `"Not this one"`+"\n")

	res, err := NewReference(Options{}).Extract(context.Background(), root, []string{".csv"})
	require.NoError(t, err)

	assert.Equal(t, 1, res.TotalFilesProcessed)
	require.Len(t, res.Units, 1)
	assert.Equal(t, "Keep this one", res.Units[0].Text)
}

func sortedUnits(units []Unit) []Unit {
	out := make([]Unit, len(units))
	copy(out, units)
	sort.Slice(out, func(i, j int) bool {
		if out[i].SourcePath != out[j].SourcePath {
			return out[i].SourcePath < out[j].SourcePath
		}
		if out[i].LineNumber != out[j].LineNumber {
			return out[i].LineNumber < out[j].LineNumber
		}
		return out[i].Text < out[j].Text
	})
	return out
}

func TestBackendEquivalence(t *testing.T) {
	root := t.TempDir()
	for i := 0; i < 8; i++ {
		content := fmt.Sprintf("\"String number %d\"\ntext: \"Labelled %d\"\n<text>Tagged %d</text>\n", i, i, i)
		writeFile(t, root, fmt.Sprintf("dir%d/file%d.csv", i%3, i), content)
	}

	ctx := context.Background()
	exts := []string{".csv"}

	refRes, err := NewReference(Options{}).Extract(ctx, root, exts)
	require.NoError(t, err)
	accRes, err := NewAccelerated(Options{}, 4).Extract(ctx, root, exts)
	require.NoError(t, err)

	assert.Equal(t, refRes.TotalFilesProcessed, accRes.TotalFilesProcessed)
	assert.Equal(t, refRes.TotalTextsFound, accRes.TotalTextsFound)
	assert.Equal(t, sortedUnits(refRes.Units), sortedUnits(accRes.Units))
}

func TestSaveArtifactsRoundTrip(t *testing.T) {
	out := t.TempDir()
	units := []Unit{
		{
			Text:         "multi\nline text",
			SourcePath:   "/data/a.csv",
			LineNumber:   7,
			Context:      `message = "multi\nline text"`,
			OriginalText: `"multi\nline text"`,
		},
		{
			Text:         "ようこそ、勇者よ",
			SourcePath:   "/data/b.csv_chunk_0",
			LineNumber:   12,
			Context:      `"ようこそ、勇者よ"`,
			OriginalText: `"ようこそ、勇者よ"`,
		},
	}

	require.NoError(t, SaveArtifacts(units, out))

	loaded, err := LoadUnits(filepath.Join(out, UnitsFileName))
	require.NoError(t, err)
	assert.Equal(t, units, loaded)

	// Non-ASCII content is stored literally, not escaped.
	raw, err := os.ReadFile(filepath.Join(out, UnitsFileName))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ようこそ、勇者よ")

	master, err := os.ReadFile(filepath.Join(out, MasterFileName))
	require.NoError(t, err)
	assert.Contains(t, string(master), "ID: 1")
	assert.Contains(t, string(master), "File: /data/b.csv_chunk_0")
}

func TestSaveArtifactsKeepsUnrelatedContent(t *testing.T) {
	out := t.TempDir()
	keep := filepath.Join(out, "notes.md")
	require.NoError(t, os.WriteFile(keep, []byte("do not touch"), 0644))

	require.NoError(t, SaveArtifacts(nil, out))

	data, err := os.ReadFile(keep)
	require.NoError(t, err)
	assert.Equal(t, "do not touch", string(data))
}

func TestSaveArtifactsCreatesOutputDir(t *testing.T) {
	out := filepath.Join(t.TempDir(), "nested", "output")
	require.NoError(t, SaveArtifacts([]Unit{{Text: "abc", SourcePath: "a.csv", LineNumber: 1}}, out))

	_, err := os.Stat(filepath.Join(out, UnitsFileName))
	assert.NoError(t, err)
}

func TestApplyNotImplemented(t *testing.T) {
	ctx := context.Background()
	tr := map[string]string{"Hello": "こんにちは"}

	err := NewReference(Options{}).Apply(ctx, "/tmp", tr)
	assert.True(t, errors.Is(err, ErrApplyNotImplemented))

	err = NewAccelerated(Options{}, 2).Apply(ctx, "/tmp", tr)
	assert.True(t, errors.Is(err, ErrApplyNotImplemented))
}

func TestSelect(t *testing.T) {
	ref := Select(&config.Config{Backend: config.BackendReference, WorkerCount: 8})
	assert.Equal(t, "reference", ref.Backend())

	// Forcing the accelerated backend without workers degrades to reference.
	forced := Select(&config.Config{Backend: config.BackendAccelerated, WorkerCount: 1})
	assert.Equal(t, "reference", forced.Backend())

	if runtime.NumCPU() > 1 {
		auto := Select(&config.Config{Backend: config.BackendAuto, WorkerCount: 8})
		assert.Equal(t, "accelerated", auto.Backend())
	}
}

func TestSummary(t *testing.T) {
	res := &Result{
		Units: []Unit{
			{Text: "short"},
			{Text: strings.Repeat("x", 2000)},
		},
		TotalFilesProcessed: 2,
		TotalTextsFound:     2,
		ProcessingTime:      0.5,
	}

	s := res.Summary(1, "reference", []string{".csv"}, 50000)

	assert.Contains(t, s, "Files Processed: 2")
	assert.Contains(t, s, "Texts Found: 2")
	assert.Contains(t, s, "Large Texts (>1000 chars): 1")
	assert.Contains(t, s, "Translation Progress: 50.0%")
	assert.Contains(t, s, "Processing Mode: reference")
}
