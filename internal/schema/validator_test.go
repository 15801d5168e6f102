package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["items"],
  "properties": {
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["family"],
        "properties": {
          "family": {"type": "string"}
        }
      }
    }
  }
}`

func TestValidatorSchemaCompiles(t *testing.T) {
	v := New("test.schema.json", []byte(testSchema))
	s, err := v.Schema()
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestValidatorBrokenSchema(t *testing.T) {
	v := New("broken.schema.json", []byte(`{"type": `))
	_, err := v.Validate([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.schema.json")
}

func TestValidate(t *testing.T) {
	v := New("test.schema.json", []byte(testSchema))

	tests := []struct {
		name      string
		doc       string
		wantValid bool
		wantPath  string
	}{
		{"valid", `{"items": [{"family": "Lato"}]}`, true, ""},
		{"empty items", `{"items": []}`, true, ""},
		{"missing items", `{}`, false, ""},
		{"wrong family type", `{"items": [{"family": 7}]}`, false, "/items/0/family"},
		{"items not array", `{"items": {}}`, false, "/items"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := v.Validate([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.Valid)
			if tt.wantValid {
				assert.NoError(t, res.Err())
				return
			}
			require.NotEmpty(t, res.Issues)
			assert.Error(t, res.Err())
			if tt.wantPath != "" {
				assert.Equal(t, tt.wantPath, res.Issues[0].Path)
				assert.NotEmpty(t, res.Issues[0].Message)
			}
		})
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	v := New("test.schema.json", []byte(testSchema))
	_, err := v.Validate([]byte(`{"items": [`))
	assert.Error(t, err)
}

func TestIssueString(t *testing.T) {
	assert.Equal(t, "/a: bad", Issue{Path: "/a", Message: "bad"}.String())
	assert.Equal(t, "bad", Issue{Message: "bad"}.String())
}
