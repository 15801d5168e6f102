package cli

import (
	"fmt"
	"io"

	"github.com/addfont-dev/addfont/internal/catalog"
	"github.com/addfont-dev/addfont/internal/config"
	"github.com/addfont-dev/addfont/internal/registry"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Re-sort the registry and drop duplicate names")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the catalog and registry files",
	Long: `Verify that the catalog and the registry can be loaded, and that the
registry is sorted by name with no duplicate names. With --fix, an unsorted or
duplicated registry is repaired and rewritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		catErr := checkCatalog(w, config.CatalogPath())
		regErr := checkRegistry(w, config.RegistryPath(), doctorFix)
		if catErr != nil {
			return catErr
		}
		return regErr
	},
}

func checkCatalog(w io.Writer, path string) error {
	fmt.Fprintln(w, "Catalog check:")
	cat, err := catalog.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return withCode(ExitInput, fmt.Errorf("catalog check failed"))
	}
	fmt.Fprintf(w, "  [ OK ] %s: %d families\n", path, cat.Len())
	return nil
}

func checkRegistry(w io.Writer, path string, fix bool) error {
	fmt.Fprintln(w, "Registry check:")
	reg, err := registry.Load(path)
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %v\n", err)
		return withCode(ExitInput, fmt.Errorf("registry check failed"))
	}
	fmt.Fprintf(w, "  [ OK ] %s: %d fonts\n", path, len(reg.Google))

	problems := reg.Check()
	if len(problems) == 0 {
		fmt.Fprintln(w, "  [ OK ] sorted by name, no duplicate names")
		return nil
	}
	for _, p := range problems {
		fmt.Fprintf(w, "  [FAIL] %s\n", p)
	}

	if !fix {
		fmt.Fprintln(w, "         Run 'doctor --fix' to repair")
		return fmt.Errorf("registry has %d problem(s)", len(problems))
	}

	for _, name := range reg.Dedupe() {
		fmt.Fprintf(w, "  [FIX ] Dropped duplicate %q\n", name)
	}
	reg.Sort()
	if err := reg.Save(path); err != nil {
		return withCode(ExitPersist, err)
	}
	fmt.Fprintf(w, "  [FIX ] Rewrote %s sorted by name\n", path)
	return nil
}
