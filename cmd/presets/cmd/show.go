package cmd

import (
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	pkgerrors "github.com/todoaskit/modelpresets/pkg/errors"
	"github.com/todoaskit/modelpresets/pkg/presets"
)

var showFormat string

// showCmd prints one resolved preset.
var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a resolved preset",
	Long: `Show every field of one preset after base-template inheritance has
been applied. Templates can be shown too; look them up by name.

Formats:
  yaml   resolved fields as a YAML mapping (default)
  plain  sorted "key: value" lines`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showFormat, "format", "f", "yaml", "output format (yaml, plain)")
}

func runShow(cmd *cobra.Command, args []string) error {
	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	name := args[0]
	p, err := catalog.Preset(name)
	if pkgerrors.IsNotFound(err) {
		// Fall back to templates so merge sources stay inspectable.
		p, err = catalog.Template(name)
	}
	if err != nil {
		return err
	}

	switch showFormat {
	case "plain":
		cmd.Print(p.Format())
		return nil
	case "yaml":
		out, err := marshalFields(p.Fields())
		if err != nil {
			return err
		}
		cmd.Print(string(out))
		return nil
	default:
		return fmt.Errorf("unknown format: %s", showFormat)
	}
}

// marshalFields renders fields as YAML with deterministic key order.
func marshalFields(fields presets.Fields) ([]byte, error) {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := make(yaml.MapSlice, 0, len(keys))
	for _, k := range keys {
		doc = append(doc, yaml.MapItem{Key: k, Value: fields[k]})
	}

	return yaml.Marshal(doc)
}
