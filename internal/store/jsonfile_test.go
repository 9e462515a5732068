package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "records.json")
	s := New(path)

	in := []record{{ID: 1, Name: "one"}, {ID: 2, Name: "two"}}
	require.NoError(t, s.Save(in))

	var out []record
	ok, err := s.Load(&out)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, in, out)
}

func TestStore_LoadMissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "missing.json"))

	var out []record
	ok, err := s.Load(&out)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, out)
}

func TestStore_LoadEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0o644))

	var out []record
	ok, err := New(path).Load(&out)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_LoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	var out []record
	_, err := New(path).Load(&out)
	assert.Error(t, err)
}

func TestSanitizeDate(t *testing.T) {
	cases := map[string]string{
		"":             "",
		"nan":          "",
		"NaN":          "",
		"None":         "",
		"NaT":          "",
		"<NA>":         "",
		"null":         "",
		" 2024-05-01 ": "2024-05-01",
		"2024-05-01":   "2024-05-01",
	}
	for in, want := range cases {
		assert.Equal(t, want, SanitizeDate(in), "input %q", in)
	}
}
