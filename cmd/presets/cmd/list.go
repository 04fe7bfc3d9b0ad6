package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/todoaskit/modelpresets/pkg/presets"
)

var listTemplates bool

// listCmd prints a table of the presets in the catalog.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog presets",
	Long: `List every preset in the catalog with its family, dataset, and a
summary of the declared architecture.

Pure base templates are merge sources, not consumable presets; include
them with --templates.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listTemplates, "templates", false, "include pure base templates")
}

func runList(_ *cobra.Command, _ []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	entries := catalog.Presets()
	if listTemplates {
		entries = append(entries, catalog.Templates()...)
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Name", "Family", "Dataset", "Classes", "Architecture")

	caser := cases.Title(language.English)
	for _, p := range entries {
		family := caser.String(string(p.Family()))
		dataset := p.DType()
		classes := ""
		if n := p.NClasses(); n > 0 {
			classes = strconv.Itoa(n)
		}
		if p.IsTemplate() {
			dataset = "-"
			classes = "-"
			family += " (template)"
		}

		if err := table.Append(p.Name(), family, dataset, classes, summarize(p)); err != nil {
			return err
		}
	}

	return table.Render()
}

// summarize renders a one-line architecture description.
func summarize(p *presets.Preset) string {
	switch p.Family() {
	case presets.FamilyFC:
		return joinInts(p.Dims(), "-")
	case presets.FamilyConv:
		parts := []string{}
		if filters := p.ConvFilters(); len(filters) > 0 {
			parts = append(parts, fmt.Sprintf("conv %s", joinInts(filters, "/")))
		}
		if widths := p.FCWidths(); len(widths) > 0 {
			parts = append(parts, fmt.Sprintf("fc %s", joinInts(widths, "-")))
		}
		return strings.Join(parts, ", ")
	default:
		return ""
	}
}

func joinInts(values []int, sep string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, sep)
}
