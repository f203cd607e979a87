package cli

import (
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/modkit-dev/modkit/internal/template"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the project templates",
	Long: `List the example mod repositories new projects are cloned from.

Repository URLs can be overridden per language with the MODKIT_JAVA_TEMPLATE_URL
and MODKIT_KOTLIN_TEMPLATE_URL environment variables or the templates.java and
templates.kotlin config keys.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		renderTemplates(cmd.OutOrStdout(), template.All())
		return nil
	},
}

func renderTemplates(w io.Writer, templates []template.Template) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Language", "Repository", "Source", "Modules", "Main Class"})

	for _, tpl := range templates {
		modules := make([]string, 0, len(tpl.Modules))
		for _, m := range tpl.Modules {
			modules = append(modules, m.ModuleName())
		}
		t.AppendRow(table.Row{
			tpl.Language.ModuleName(),
			tpl.URL,
			template.Source(tpl.Language),
			strings.Join(modules, ", "),
			tpl.MainClass,
		})
	}
	t.Render()
}
