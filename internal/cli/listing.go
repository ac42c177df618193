package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/pkg/settings"
	"github.com/arthur-debert/zen/pkg/ui/display"
)

// profileColumns orders the profile options shown by the profiles command
var profileColumns = []string{
	"tag_case", "attr_case", "attr_quotes", "tag_nl", "place_cursor", "indent", "self_closing_tag",
}

func newProfilesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "profiles",
		Short:   MsgProfilesShort,
		Long:    `Profiles lists the built-in output profiles and those defined in the [profiles] section of the config file.`,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			table := &display.Table{
				Title:   "Profiles",
				Headers: append([]string{"name"}, profileColumns...),
			}
			for _, name := range a.engine.ProfileNames() {
				options := a.engine.Profile(name).Options()
				row := []string{name}
				for _, col := range profileColumns {
					row = append(row, fmt.Sprint(options[col]))
				}
				table.AddRow(row...)
			}
			return a.renderer.RenderResult(table)
		},
	}
}

// listEntry is one snippet or abbreviation known to a document type
type listEntry struct {
	Name     string
	Category settings.Category
	Body     string
}

// entries collects the snippets and abbreviations of a document type,
// optionally filtered by name prefix
func (a *app) entries(prefix string) []listEntry {
	reg := a.engine.Settings()
	docType := a.docType()

	var out []listEntry
	for _, category := range []settings.Category{settings.CategorySnippet, settings.CategoryAbbreviation} {
		for _, name := range reg.Names(docType, category) {
			if !strings.HasPrefix(name, prefix) {
				continue
			}
			entry := listEntry{Name: name, Category: category}
			if category == settings.CategorySnippet {
				entry.Body, _ = reg.Snippet(docType, name)
			} else if def, ok := reg.Abbreviation(docType, name); ok {
				entry.Body = def.String()
			}
			out = append(out, entry)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func newListCmd(a *app) *cobra.Command {
	var (
		prefix string
		kind   string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Short:   MsgListShort,
		Long:    `List shows the snippets and abbreviations available to the selected document type, including those inherited through "extends".`,
		Example: "  zen list -t css\n  zen list --kind snippets --prefix html",
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			table := &display.Table{
				Title:   fmt.Sprintf("Resources for %s", a.docType()),
				Headers: []string{"name", "kind", "definition"},
			}
			for _, e := range a.entries(prefix) {
				if kind != "" && !strings.HasPrefix(e.Category.String(), strings.TrimSuffix(kind, "s")) {
					continue
				}
				table.AddRow(e.Name, e.Category.String(), oneLine(e.Body))
			}
			return a.renderer.RenderResult(table)
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only list names starting with this prefix")
	cmd.Flags().StringVar(&kind, "kind", "", "Only list snippets or abbreviations")
	return cmd
}

// oneLine flattens a definition for table display
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\t", `\t`)
	if len(s) > 60 {
		s = s[:57] + "..."
	}
	return s
}
