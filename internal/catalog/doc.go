// Package catalog loads the bundled font catalog, a Google Fonts Web API
// listing of families with their category and style variants. The file is
// checked against an embedded JSON schema before it is decoded, and lookups
// by family name are case-insensitive.
package catalog
