package registry

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/addfont-dev/addfont/internal/fontname"
	"github.com/addfont-dev/addfont/internal/platform"
	"github.com/addfont-dev/addfont/internal/schema"
)

// GoogleKey is the top-level key holding the list of Google Fonts.
const GoogleKey = "google"

// FilePerm is used when the registry file does not exist yet.
const FilePerm os.FileMode = 0644

// ErrInvalid is wrapped by every error caused by registry content.
var ErrInvalid = errors.New("invalid registry")

//go:embed schema/registry.schema.json
var schemaBytes []byte

var validator = schema.New("registry.schema.json", schemaBytes)

// Registry is the font registry document. Google is the only part this
// tool edits; every other top-level value is carried through unchanged and
// in its original position.
type Registry struct {
	Google []Font

	keys  []string
	other map[string]json.RawMessage
}

// New returns an empty registry with only a google list.
func New() *Registry {
	return &Registry{Google: []Font{}}
}

// Load reads and parses the registry file at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse checks the shape of data and decodes it.
func Parse(data []byte) (*Registry, error) {
	res, err := validator.Validate(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	var r Registry
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: decoding: %w", ErrInvalid, err)
	}
	return &r, nil
}

// Save writes the registry to path, replacing the file atomically.
func (r *Registry) Save(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if err := platform.WriteFileAtomic(path, data, FilePerm); err != nil {
		return fmt.Errorf("writing registry: %w", err)
	}
	return nil
}

// Encode renders the registry as 2-space indented JSON with a single
// trailing newline.
func (r *Registry) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := r.EncodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the indented JSON form of the registry to w.
func (r *Registry) EncodeTo(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	return nil
}

// UnmarshalJSON decodes a registry object, remembering the order of its
// top-level keys. A repeated key keeps its first position and its last
// value.
func (r *Registry) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("registry must be a JSON object")
	}

	r.keys = nil
	r.other = make(map[string]json.RawMessage)
	var google json.RawMessage
	seen := make(map[string]bool)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected token %v", tok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decoding %q: %w", key, err)
		}
		if !seen[key] {
			seen[key] = true
			r.keys = append(r.keys, key)
		}
		if key == GoogleKey {
			google = value
			continue
		}
		r.other[key] = value
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	r.Google = []Font{}
	if google != nil {
		if err := json.Unmarshal(google, &r.Google); err != nil {
			return fmt.Errorf("decoding %q: %w", GoogleKey, err)
		}
	}
	if r.Google == nil {
		r.Google = []Font{}
	}
	return nil
}

// MarshalJSON encodes the registry with its keys in their original order.
// A registry without a google key gets one appended.
func (r *Registry) MarshalJSON() ([]byte, error) {
	keys := r.keys
	if !contains(keys, GoogleKey) {
		keys = append(append([]string(nil), keys...), GoogleKey)
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')

		if key == GoogleKey {
			fonts := r.Google
			if fonts == nil {
				fonts = []Font{}
			}
			v, err := marshal(fonts)
			if err != nil {
				return nil, fmt.Errorf("encoding %q: %w", GoogleKey, err)
			}
			buf.Write(v)
			continue
		}
		buf.Write(r.other[key])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Find returns the google entry whose name matches name, ignoring case.
func (r *Registry) Find(name string) (Font, bool) {
	key := fontname.Key(name)
	for _, f := range r.Google {
		if fontname.Key(f.Name) == key {
			return f, true
		}
	}
	return Font{}, false
}

// Add appends f to the google list. It does not check for duplicates and
// does not keep the list sorted; call Sort once all additions are made.
func (r *Registry) Add(f Font) {
	r.Google = append(r.Google, f)
}

// Sort orders the google list by name using locale collation. The sort is
// stable, so entries that collate equal keep their relative order.
func (r *Registry) Sort() {
	c := fontname.NewCollator()
	sort.SliceStable(r.Google, func(i, j int) bool {
		return c.Less(r.Google[i].Name, r.Google[j].Name)
	})
}

// Names returns the names of the google entries in list order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.Google))
	for i, f := range r.Google {
		names[i] = f.Name
	}
	return names
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
