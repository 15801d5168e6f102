// Package schema validates JSON documents against embedded JSON Schemas.
// The catalog and registry packages each carry their own schema and use a
// Validator from here to check the shape of a file before decoding it.
package schema
