package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/addfont-dev/addfont/internal/config"
	"github.com/addfont-dev/addfont/internal/registry"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fonts in the registry",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := registry.Load(config.RegistryPath())
	if err != nil {
		return withCode(ExitInput, err)
	}

	if listJSON {
		data, err := json.MarshalIndent(reg.Google, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	if len(reg.Google) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No fonts registered")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "NAME\tWEIGHTS\tDEFAULT\tSTACK")
	for _, f := range reg.Google {
		def := "-"
		if f.DefaultWeight != 0 {
			def = strconv.Itoa(f.DefaultWeight)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f.Name, formatWeights(f.AvailableWeights), def, f.Stack)
	}
	return w.Flush()
}

func formatWeights(weights []int) string {
	if len(weights) == 0 {
		return "-"
	}
	parts := make([]string, len(weights))
	for i, w := range weights {
		parts[i] = strconv.Itoa(w)
	}
	return strings.Join(parts, ",")
}
