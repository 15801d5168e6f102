// Package fontimport turns requested font names into registry entries.
//
// Resolve is a pure function of a name, the catalog and the registry that
// classifies the name as added, skipped (already registered) or not found.
// Importer runs Resolve over a batch, appends the new entries and keeps the
// registry sorted. Reading and writing files is left to the caller.
package fontimport
