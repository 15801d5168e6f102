package registry

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fonts.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func lato() Font {
	return Font{
		Name:             "Lato",
		Stack:            `"Lato", sans-serif`,
		IsGoogleFont:     true,
		AvailableWeights: []int{400, 700},
		DefaultWeight:    400,
	}
}

func TestEncodeNewEntry(t *testing.T) {
	r := New()
	r.Add(lato())

	data, err := r.Encode()
	require.NoError(t, err)

	want := `{
  "google": [
    {
      "name": "Lato",
      "stack": "\"Lato\", sans-serif",
      "isGoogleFont": true,
      "availableWeights": [
        400,
        700
      ],
      "defaultWeight": 400
    }
  ]
}
`
	assert.Equal(t, want, string(data))
}

func TestEncodeEmpty(t *testing.T) {
	data, err := New().Encode()
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"google\": []\n}\n", string(data))
}

func TestRoundTripPreservesUnknownContent(t *testing.T) {
	in := `{"version": 2, "google": [{"name": "Roboto", "stack": "\"Roboto\", sans-serif", "isGoogleFont": true, "availableWeights": [400, 700], "defaultWeight": 400, "note": "brand"}], "system": ["Arial"]}`

	r, err := Parse([]byte(in))
	require.NoError(t, err)
	require.Len(t, r.Google, 1)
	assert.Equal(t, "Roboto", r.Google[0].Name)
	assert.Equal(t, []int{400, 700}, r.Google[0].AvailableWeights)

	data, err := r.Encode()
	require.NoError(t, err)

	want := `{
  "version": 2,
  "google": [
    {
      "name": "Roboto",
      "stack": "\"Roboto\", sans-serif",
      "isGoogleFont": true,
      "availableWeights": [
        400,
        700
      ],
      "defaultWeight": 400,
      "note": "brand"
    }
  ],
  "system": [
    "Arial"
  ]
}
`
	assert.Equal(t, want, string(data))
}

func TestEncodeDoesNotEscapeHTML(t *testing.T) {
	r := New()
	r.Add(Font{Name: "Barlow & Co", Stack: `"Barlow & Co", sans-serif`, IsGoogleFont: true, AvailableWeights: []int{400}, DefaultWeight: 400})

	data, err := r.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"name": "Barlow & Co"`)
}

func TestParseToleratesOddEntryFields(t *testing.T) {
	r, err := Parse([]byte(`{"google": [{"name": "Legacy", "defaultWeight": "bold"}]}`))
	require.NoError(t, err)
	require.Len(t, r.Google, 1)
	assert.Equal(t, "Legacy", r.Google[0].Name)

	data, err := r.Encode()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"defaultWeight": "bold"`)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not json", `google: []`},
		{"array root", `[]`},
		{"missing google", `{"fonts": []}`},
		{"google not array", `{"google": {}}`},
		{"entry without name", `{"google": [{"stack": "x"}]}`},
		{"entry name not string", `{"google": [{"name": 12}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "error %v should wrap ErrInvalid", err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "fonts.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := writeRegistry(t, `{"google": []}`)

	r, err := Load(path)
	require.NoError(t, err)
	r.Add(lato())
	require.NoError(t, r.Save(path))

	again, err := Load(path)
	require.NoError(t, err)
	require.Len(t, again.Google, 1)
	got := again.Google[0]
	assert.Equal(t, "Lato", got.Name)
	assert.Equal(t, `"Lato", sans-serif`, got.Stack)
	assert.True(t, got.IsGoogleFont)
	assert.Equal(t, []int{400, 700}, got.AvailableWeights)
	assert.Equal(t, 400, got.DefaultWeight)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, byte('\n'), data[len(data)-1])
	assert.NotEqual(t, byte('\n'), data[len(data)-2])
}

func TestFindIgnoresCase(t *testing.T) {
	r := New()
	r.Add(lato())

	f, ok := r.Find("LATO")
	require.True(t, ok)
	assert.Equal(t, "Lato", f.Name)

	_, ok = r.Find("Lora")
	assert.False(t, ok)
}

func TestSort(t *testing.T) {
	r := New()
	for _, name := range []string{"Roboto", "inter", "Lato", "Abel", "Open Sans"} {
		r.Add(Font{Name: name})
	}
	r.Sort()
	assert.Equal(t, []string{"Abel", "inter", "Lato", "Open Sans", "Roboto"}, r.Names())
	assert.Empty(t, r.Check())
}

func TestCheck(t *testing.T) {
	r := New()
	for _, name := range []string{"Lato", "Abel", "Roboto", "lato"} {
		r.Add(Font{Name: name})
	}

	problems := r.Check()
	require.Len(t, problems, 3)
	assert.Equal(t, 1, problems[0].Index)
	assert.Contains(t, problems[0].Message, "sorts before")
	assert.Equal(t, 3, problems[1].Index)
	assert.Contains(t, problems[1].Message, "sorts before")
	assert.Equal(t, 3, problems[2].Index)
	assert.Contains(t, problems[2].Message, `duplicates google[0] "Lato"`)
	assert.Contains(t, problems[2].String(), `google[3] "lato"`)
}

func TestDedupe(t *testing.T) {
	r := New()
	for _, name := range []string{"Lato", "Abel", "LATO", "Abel"} {
		r.Add(Font{Name: name})
	}
	dropped := r.Dedupe()
	assert.Equal(t, []string{"LATO", "Abel"}, dropped)
	assert.Equal(t, []string{"Lato", "Abel"}, r.Names())
}
