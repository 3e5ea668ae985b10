package translation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	m := NewMap()
	m.Set("Player Name", "プレイヤー名")
	m.Set("Enter your name", "名前を入力してください")
	m.Set("multi\nline", "複数\n行")

	data, err := m.Serialize()
	require.NoError(t, err)

	back, err := Deserialize(data)
	require.NoError(t, err)
	assert.Equal(t, m.All(), back.All())
}

func TestSerializeLiteralUnicode(t *testing.T) {
	m := NewMap()
	m.Set("Hello", "Привет <мир>")

	data, err := m.Serialize()
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, "Привет <мир>")
	assert.NotContains(t, s, `\u`)
}

func TestSetOverwrites(t *testing.T) {
	m := NewMap()
	m.Set("Start", "first")
	m.Set("Start", "second")

	v, ok := m.Get("Start")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, m.Len())
}

func TestGetAbsent(t *testing.T) {
	m := NewMap()
	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestMerge(t *testing.T) {
	base := NewMap()
	base.Set("a", "1")
	base.Set("b", "2")

	incoming := NewMap()
	incoming.Set("b", "two")
	incoming.Set("c", "three")

	base.Merge(incoming)

	assert.Equal(t, map[string]string{"a": "1", "b": "two", "c": "three"}, base.All())
}

func TestDeserializeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "not json at all"},
		{"non-string value", `{"a": 1}`},
		{"array", `["a", "b"]`},
		{"truncated", `{"a": "b"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Deserialize([]byte(tt.data))
			assert.True(t, errors.Is(err, ErrMalformed))
		})
	}
}

func TestDeserializeEmptyObject(t *testing.T) {
	m, err := Deserialize([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestLoadKeepsMapOnFailure(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{{{"), 0644))

	m := NewMap()
	m.Set("keep", "me")

	err := m.Load(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformed))

	v, ok := m.Get("keep")
	require.True(t, ok)
	assert.Equal(t, "me", v)
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "translations.json")

	m := NewMap()
	m.Set("Game over", "ゲームオーバー")
	require.NoError(t, m.Save(path))

	loaded := NewMap()
	require.NoError(t, loaded.Load(path))
	assert.Equal(t, m.All(), loaded.All())
}
