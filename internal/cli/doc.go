// Package cli defines the Cobra command tree for the addfont CLI. The root
// command adds fonts to the registry; each other file registers one
// subcommand (list, doctor, config, version). Commands delegate to internal
// packages for the work and only handle flags, output formatting and exit
// codes.
package cli
