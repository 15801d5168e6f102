package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/addfont-dev/addfont/internal/catalog"
	"github.com/addfont-dev/addfont/internal/config"
	"github.com/addfont-dev/addfont/internal/fontimport"
	"github.com/addfont-dev/addfont/internal/registry"
)

var (
	addDryRun bool
	addJSON   bool
)

var errNothingAdded = errors.New("no fonts were added")

func init() {
	rootCmd.Flags().BoolVar(&addDryRun, "dry-run", false, "Resolve fonts and print the summary without writing the registry")
	rootCmd.Flags().BoolVar(&addJSON, "json", false, "Print the summary as JSON")
}

func runAdd(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return withCode(ExitUsage, errors.New("please provide at least one font name"))
	}

	catalogPath := config.CatalogPath()
	registryPath := config.RegistryPath()

	cat, err := catalog.Load(catalogPath)
	if err != nil {
		return withCode(ExitInput, err)
	}
	reg, err := registry.Load(registryPath)
	if err != nil {
		return withCode(ExitInput, err)
	}
	log.WithFields(log.Fields{
		"catalog":  catalogPath,
		"families": cat.Len(),
		"registry": registryPath,
		"fonts":    len(reg.Google),
	}).Debug("loaded inputs")

	catalogName := filepath.Base(catalogPath)
	registryName := filepath.Base(registryPath)

	im := &fontimport.Importer{
		Catalog:  cat,
		Registry: reg,
		Progress: func(o fontimport.Outcome) {
			reportOutcome(cmd.ErrOrStderr(), o, catalogName, registryName)
		},
	}
	res := im.Import(args)

	write := res.Changed() && !addDryRun
	summary := res.Summary(write)
	if addJSON {
		if err := summary.PrintJSON(cmd.OutOrStdout()); err != nil {
			return err
		}
	} else {
		summary.PrintText(cmd.OutOrStdout(), registryName)
	}

	if write {
		if err := reg.Save(registryPath); err != nil {
			return withCode(ExitPersist, err)
		}
		log.WithField("registry", registryPath).Debug("registry written")
	}

	if !res.Changed() {
		return withCode(ExitNothingAdded, errNothingAdded)
	}
	return nil
}

// reportOutcome prints the per-name diagnostic for names that were not added.
func reportOutcome(w io.Writer, o fontimport.Outcome, catalogName, registryName string) {
	switch o.Status {
	case fontimport.NotFound:
		fmt.Fprintf(w, "Font %q not found in %s, skipping\n", o.Request, catalogName)
	case fontimport.Skipped:
		fmt.Fprintf(w, "Font %q already exists in %s as %q, skipping\n", o.Family, registryName, o.Existing)
	}
}
