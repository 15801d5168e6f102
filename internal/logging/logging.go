// Package logging configures the process-wide logrus logger used for
// diagnostics. User-facing output does not go through here; commands print
// their results directly to the command's writers.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// Setup points the standard logrus logger at w and applies the named level.
// When verbose is set the level is raised to debug regardless of name.
// An unknown level name keeps the default (warn) and logs a warning.
func Setup(w io.Writer, level string, verbose bool) {
	log.SetOutput(w)
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})

	if verbose {
		log.SetLevel(log.DebugLevel)
		return
	}

	lvl, err := log.ParseLevel(level)
	if err != nil {
		log.SetLevel(log.WarnLevel)
		log.Warnf("invalid log level %s, defaulting to warn", level)
		return
	}
	log.SetLevel(lvl)
}
