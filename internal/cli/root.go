package cli

import (
	"fmt"

	"github.com/addfont-dev/addfont/internal/branding"
	"github.com/addfont-dev/addfont/internal/config"
	"github.com/addfont-dev/addfont/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	catalogFlag  string
	registryFlag string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <font-name> [font-name ...]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` looks up each named font in the Google Fonts catalog and adds an
entry for it to the font registry, with its available weights, default weight
and CSS font stack. Names match the catalog case-insensitively; fonts already
in the registry and names missing from the catalog are reported and skipped.

The registry is only rewritten when at least one font was added.`,
	Example: `  ` + branding.CLIName() + ` "Open Sans"
  ` + branding.CLIName() + ` Lato Roboto "Space Mono"
  ` + branding.CLIName() + ` --registry site/fonts.json --dry-run Inter`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := bindFlags(cmd.Root()); err != nil {
			return err
		}
		logging.Setup(cmd.ErrOrStderr(), config.LogLevel(), verbose)
		return nil
	},
	RunE: runAdd,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&catalogFlag, "catalog", "", "Path to the font catalog (default \""+config.DefaultCatalogPath+"\")")
	pf.StringVar(&registryFlag, "registry", "", "Path to the font registry (default \""+config.DefaultRegistryPath+"\")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return withCode(ExitUsage, err)
	})
}

// bindFlags connects the path flags to their config keys so a flag set on
// the command line wins over the environment and the config file.
func bindFlags(root *cobra.Command) error {
	pf := root.PersistentFlags()
	if err := viper.BindPFlag(config.KeyCatalog, pf.Lookup("catalog")); err != nil {
		return fmt.Errorf("binding --catalog: %w", err)
	}
	if err := viper.BindPFlag(config.KeyRegistry, pf.Lookup("registry")); err != nil {
		return fmt.Errorf("binding --registry: %w", err)
	}
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr here; use ExitCode to turn the returned
// error into a process status.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd, err)
	}
	return err
}

func printError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	fmt.Fprintf(w, "Error: %v\n", err)
	if ExitCode(err) == ExitUsage {
		fmt.Fprintf(w, "Usage: %s \"Font Name\" [\"Another Font\" ...]\n", branding.CLIName())
		fmt.Fprintf(w, "Run '%s --help' for more information.\n", branding.CLIName())
	}
}
