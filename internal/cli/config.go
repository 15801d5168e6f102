package cli

import (
	"fmt"

	"github.com/addfont-dev/addfont/internal/config"
	"github.com/spf13/cobra"
)

// configKeys are the keys config get/set accept.
var configKeys = []string{config.KeyCatalog, config.KeyRegistry, config.KeyLogLevel}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.addfont/config.yaml.

Keys: catalog, registry, log_level. Each can also be set through the
environment as ADDFONT_<KEY>, which takes precedence over the file.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := checkConfigKey(key); err != nil {
			return err
		}
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := checkConfigKey(args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

func checkConfigKey(key string) error {
	for _, k := range configKeys {
		if k == key {
			return nil
		}
	}
	return withCode(ExitUsage, fmt.Errorf("unknown config key %q (valid keys: catalog, registry, log_level)", key))
}
