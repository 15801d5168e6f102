package catalog

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPath(name string) string {
	return filepath.Join("testdata", name)
}

func TestLoad(t *testing.T) {
	c, err := Load(testPath("google-fonts.json"))
	require.NoError(t, err)
	assert.Equal(t, 4, c.Len())

	e, ok := c.Lookup("space mono")
	require.True(t, ok)
	assert.Equal(t, "Space Mono", e.Family)
	assert.Equal(t, "monospace", e.CategoryOrDefault())
	assert.Equal(t, []string{"regular", "italic", "700", "700italic"}, e.Variants)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(testPath("nonexistent.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLookupCaseInsensitive(t *testing.T) {
	c := New([]Entry{{Family: "Open Sans", Variants: []string{"regular"}}})

	for _, name := range []string{"Open Sans", "open sans", "OPEN SANS", "oPeN sAnS"} {
		e, ok := c.Lookup(name)
		assert.True(t, ok, name)
		assert.Equal(t, "Open Sans", e.Family)
	}

	_, ok := c.Lookup("Open")
	assert.False(t, ok)
}

func TestLookupFirstEntryWins(t *testing.T) {
	c := New([]Entry{
		{Family: "Lato", Category: "sans-serif"},
		{Family: "LATO", Category: "serif"},
	})
	e, ok := c.Lookup("lato")
	require.True(t, ok)
	assert.Equal(t, "Lato", e.Family)
}

func TestCategoryOrDefault(t *testing.T) {
	assert.Equal(t, "sans-serif", Entry{Family: "Roboto"}.CategoryOrDefault())
	assert.Equal(t, "serif", Entry{Family: "Lora", Category: "serif"}.CategoryOrDefault())
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `items: []`},
		{"truncated", `{"items": [`},
		{"missing items", `{"kind": "webfonts#webfontList"}`},
		{"items not array", `{"items": {"family": "Lato"}}`},
		{"missing family", `{"items": [{"variants": ["regular"]}]}`},
		{"empty family", `{"items": [{"family": "", "variants": []}]}`},
		{"missing variants", `{"items": [{"family": "Lato"}]}`},
		{"numeric variant", `{"items": [{"family": "Lato", "variants": [400]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v should wrap ErrInvalid", err)
		})
	}
}

func TestParseNullCategory(t *testing.T) {
	c, err := Parse([]byte(`{"items": [{"family": "Roboto", "category": null, "variants": ["regular"]}]}`))
	require.NoError(t, err)
	e, ok := c.Lookup("roboto")
	require.True(t, ok)
	assert.Equal(t, DefaultCategory, e.CategoryOrDefault())
}

func TestLoadInvalidFileNamesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "google-fonts.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"items": 3}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.True(t, errors.Is(err, ErrInvalid))
}
