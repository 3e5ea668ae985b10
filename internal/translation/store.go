// Package translation holds the source-text-to-translation mapping and its
// JSON serialization. One translation serves every occurrence of the same
// source text; later writes overwrite earlier ones.
package translation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrMalformed reports a translation file that is not a JSON object mapping
// string to string.
var ErrMalformed = errors.New("malformed translation file")

// Map is the in-memory translation mapping.
type Map struct {
	entries map[string]string
}

// NewMap creates an empty translation map.
func NewMap() *Map {
	return &Map{entries: make(map[string]string)}
}

// Set records a translation for a source text, overwriting any previous one.
func (m *Map) Set(text, translated string) {
	m.entries[text] = translated
}

// Get looks up the translation for a source text.
func (m *Map) Get(text string) (string, bool) {
	v, ok := m.entries[text]
	return v, ok
}

// Len returns the number of translated source texts.
func (m *Map) Len() int {
	return len(m.entries)
}

// All returns a copy of the mapping.
func (m *Map) All() map[string]string {
	out := make(map[string]string, len(m.entries))
	for k, v := range m.entries {
		out[k] = v
	}
	return out
}

// Merge copies every entry of other into m, overwriting on collision.
func (m *Map) Merge(other *Map) {
	for k, v := range other.entries {
		m.entries[k] = v
	}
}

// Serialize renders the mapping as indented JSON with non-ASCII content
// stored literally. Key order is whatever the encoder produces; consumers
// must compare by content, not bytes.
func (m *Map) Serialize() ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(m.entries); err != nil {
		return nil, fmt.Errorf("encode translations: %w", err)
	}
	return buf.Bytes(), nil
}

// Deserialize parses serialized translation data into a new Map. Input that
// is not a string-to-string object yields ErrMalformed with the cause.
func Deserialize(data []byte) (*Map, error) {
	var entries map[string]string
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	if entries == nil {
		entries = make(map[string]string)
	}
	return &Map{entries: entries}, nil
}

// Save writes the mapping to path.
func (m *Map) Save(path string) error {
	data, err := m.Serialize()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write translation file: %w", err)
	}
	return nil
}

// Load replaces the mapping with the contents of path. On any failure the
// current entries are left untouched; there is no partial merge.
func (m *Map) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read translation file: %w", err)
	}
	loaded, err := Deserialize(data)
	if err != nil {
		return err
	}
	m.entries = loaded.entries
	return nil
}
