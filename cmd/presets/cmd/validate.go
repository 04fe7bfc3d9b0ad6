package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// validateCmd validates the catalog against the preset schema.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate catalog structure and schema",
	Long: `Validate the catalog: every entry must parse, base references must
resolve, and every full preset must satisfy the schema (required
fields, positive layer sizes, keep_prob range, contiguous stage
indices, n_classes matching the output layer width).

Validation happens at load time and reports every violation at once,
so a broken catalog fails here rather than inside model construction.

Examples:
  presets validate                      # validate the embedded catalog
  presets validate --catalog ./catalog  # validate a catalog on disk`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		color.Red("catalog validation failed")
		return err
	}

	// Load already validated eagerly; re-run for an explicit report.
	violations := catalog.Validate()
	if len(violations) > 0 {
		for name, list := range violations {
			for _, v := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s %s: %s\n", color.RedString("✗"), name, v)
			}
		}
		return fmt.Errorf("found %d presets with violations", len(violations))
	}

	if verbose {
		for _, p := range catalog.Presets() {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", color.GreenString("✓"), p.Name())
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s validated %d presets (%d templates) from %s\n",
		color.GreenString("✓"), catalog.Len(), len(catalog.Templates()), catalog.Source())
	return nil
}
