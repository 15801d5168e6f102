package registry

import (
	"bytes"
	"encoding/json"
)

// Font is one entry of the registry's google list.
type Font struct {
	Name             string `json:"name"`
	Stack            string `json:"stack"`
	IsGoogleFont     bool   `json:"isGoogleFont"`
	AvailableWeights []int  `json:"availableWeights"`
	DefaultWeight    int    `json:"defaultWeight"`

	// raw holds the entry as it was read from disk. Entries loaded from a
	// file are written back byte-for-byte (modulo indentation) so fields
	// this tool does not know about survive a rewrite.
	raw json.RawMessage
}

type fontFields Font

// UnmarshalJSON keeps a copy of the encoded entry alongside the decoded
// fields. Only name is required to decode; the other fields are best-effort
// because the stored bytes, not the struct, are what gets written back.
func (f *Font) UnmarshalJSON(data []byte) error {
	var fields fontFields
	if err := json.Unmarshal(data, &fields); err != nil {
		var named struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(data, &named); err != nil {
			return err
		}
		fields = fontFields{Name: named.Name}
	}
	*f = Font(fields)
	f.raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON writes a loaded entry back as it was read, and a new entry
// from its fields.
func (f Font) MarshalJSON() ([]byte, error) {
	if f.raw != nil {
		return f.raw, nil
	}
	fields := fontFields(f)
	if fields.AvailableWeights == nil {
		fields.AvailableWeights = []int{}
	}
	return marshal(fields)
}

// marshal encodes v without escaping HTML characters, so a family such as
// "Barlow & Co" is stored as typed.
func marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
