// Package registry reads and writes the local font registry (fonts.json).
//
// The registry is a JSON object whose google key lists the Google Fonts in
// use. Only the shape of the file is checked on load. Everything the tool
// does not edit, including other top-level keys, their order, and unknown
// fields on existing entries, is written back as it was read. Saves replace
// the file atomically.
package registry
