// Package config manages user-level settings stored at ~/.addfont/config.yaml.
// It resolves the catalog and registry file paths and the log level from
// flags, ADDFONT_* environment variables, the config file and built-in
// defaults, in that order.
package config
