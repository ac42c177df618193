package cli

import (
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/pkg/errors"
)

// finder selects one of items; it is swapped out in tests
var finder = func(items []string, preview func(i int) string) (int, error) {
	return fuzzyfinder.Find(
		items,
		func(i int) string { return items[i] },
		fuzzyfinder.WithPromptString("Expand: "),
		fuzzyfinder.WithPreviewWindow(func(i, width, height int) string {
			if i < 0 {
				return ""
			}
			return preview(i)
		}),
	)
}

func newPickCmd(a *app) *cobra.Command {
	var prefix string

	cmd := &cobra.Command{
		Use:   "pick",
		Short: MsgPickShort,
		Long: `Pick opens a fuzzy finder over the snippets and abbreviations of the
selected document type, previewing each expansion, and prints the one chosen.`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}

			entries := a.entries(prefix)
			if len(entries) == 0 {
				return errors.Newf(errors.ErrNotFound, "no snippets or abbreviations for %s", a.docType())
			}
			names := make([]string, len(entries))
			for i, e := range entries {
				names[i] = e.Name
			}

			idx, err := finder(names, func(i int) string {
				return a.engine.Expand(names[i], a.docType(), a.profile())
			})
			if err != nil {
				if err == fuzzyfinder.ErrAbort {
					return nil
				}
				return errors.Wrap(err, errors.ErrInternal, "fuzzy finder failed")
			}

			name := names[idx]
			return a.renderer.RenderResult(a.expansion(name, a.engine.Expand(name, a.docType(), a.profile())))
		},
	}
	cmd.Flags().StringVar(&prefix, "prefix", "", "Only offer names starting with this prefix")
	return cmd
}
