package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/internal/version"
	"github.com/arthur-debert/zen/pkg/actions"
	"github.com/arthur-debert/zen/pkg/config"
	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/ui/display"
	"github.com/arthur-debert/zen/pkg/zen"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    `Print detailed version information including commit hash and build date`,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "zen version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(out, "Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(out, "Built:  %s\n", version.Date)
			}
		},
	}
}

func newExpandCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "expand <abbreviation>...",
		Short:   MsgExpandShort,
		Long:    `Expand turns each abbreviation into markup for the selected document type and profile.`,
		Example: MsgExpandExample,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			for _, abbreviation := range args {
				out := a.engine.Expand(abbreviation, a.docType(), a.profile())
				if out == "" {
					return a.fail(errors.Newf(errors.ErrNotFound, MsgErrNoExpansion, abbreviation).
						WithDetail("abbreviation", abbreviation))
				}
				if err := a.renderer.RenderResult(a.expansion(abbreviation, out)); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func newWrapCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "wrap <abbreviation> [file]",
		Short: MsgWrapShort,
		Long: `Wrap expands the abbreviation around text read from a file or stdin.

When the abbreviation repeats an element without a count (li*), the element
is repeated once per non-empty line of text; otherwise the text goes inside
the innermost element.`,
		Example: MsgWrapExample,
		GroupID: "core",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}
			// The final newline ends the file, it is not content
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")

			out, ok := a.engine.Wrap(args[0], text, a.docType(), a.profile())
			if !ok {
				return a.fail(errors.Newf(errors.ErrParse, MsgErrNoWrap, args[0]).
					WithDetail("abbreviation", args[0]))
			}
			return a.renderer.RenderResult(a.expansion(args[0], out))
		},
	}
}

func newFindCmd(a *app) *cobra.Command {
	var pos int

	cmd := &cobra.Command{
		Use:     "find <line>",
		Short:   MsgFindShort,
		Long:    `Find scans backwards from the caret over the characters an abbreviation may contain and prints the abbreviation with its start offset. A '>' closing a tag earlier in the line ends the scan.`,
		Example: `  zen find 'Some text ul>li*3' --pos 17`,
		GroupID: "core",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			line := args[0]
			caret := pos
			if caret < 0 || caret > len(line) {
				caret = len(line)
			}
			abbreviation, start := zen.FindAbbreviationInLine(line, caret)
			return a.renderer.RenderResult(&display.LineMatch{
				Line:         line,
				Caret:        caret,
				Abbreviation: abbreviation,
				Start:        start,
			})
		},
	}
	cmd.Flags().IntVar(&pos, "pos", -1, MsgFlagPos)
	return cmd
}

// editFlags are shared by the edit subcommands
type editFlags struct {
	pos       int
	selection string
}

func newEditCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "edit",
		Short:   MsgEditShort,
		Long:    MsgEditLong,
		GroupID: "core",
	}

	cmd.AddCommand(newEditActionCmd(a, "expand [file]", "Expand the abbreviation before the caret", cobra.MaximumNArgs(1),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return actions.ExpandAbbreviation(buf, a.engine, a.cfg.ActionOptions())
		}))
	cmd.AddCommand(newEditActionCmd(a, "wrap <abbreviation> [file]", "Wrap the selection or current line", cobra.RangeArgs(1, 2),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return actions.WrapWithAbbreviation(buf, a.engine, args[0], a.cfg.ActionOptions())
		}))
	cmd.AddCommand(newEditActionCmd(a, "next [file]", "Move the caret to the next edit point", cobra.MaximumNArgs(1),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return caretMove(actions.NextEditPoint(buf.Text, buf.Caret))
		}))
	cmd.AddCommand(newEditActionCmd(a, "prev [file]", "Move the caret to the previous edit point", cobra.MaximumNArgs(1),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return caretMove(actions.PrevEditPoint(buf.Text, buf.Caret))
		}))
	cmd.AddCommand(newEditActionCmd(a, "balance-out [file]", "Select the enclosing tag pair's content, then the whole pair", cobra.MaximumNArgs(1),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return selectRange(buf, actions.MatchPairOutward)
		}))
	cmd.AddCommand(newEditActionCmd(a, "balance-in [file]", "Narrow the selection to the tag pair's content or first child", cobra.MaximumNArgs(1),
		func(buf actions.Buffer, args []string) (actions.Edit, bool) {
			return selectRange(buf, actions.MatchPairInward)
		}))
	return cmd
}

// selectRange is an edit that only selects the range match finds
func selectRange(buf actions.Buffer, match func(actions.Buffer) (int, int, bool)) (actions.Edit, bool) {
	start, end, ok := match(buf)
	return buf.Select(start, end), ok
}

// caretMove is an empty edit that only moves the caret
func caretMove(pos int, ok bool) (actions.Edit, bool) {
	return actions.Edit{Start: pos, End: pos, Caret: pos}, ok
}

func newEditActionCmd(a *app, use, short string, argsFn cobra.PositionalArgs,
	run func(actions.Buffer, []string) (actions.Edit, bool)) *cobra.Command {
	var flags editFlags

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argsFn,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli")
			if err := a.load(cmd); err != nil {
				return err
			}

			// The optional file is always the last argument after any abbreviation
			fileArgs := args
			if strings.Contains(use, "<abbreviation>") {
				fileArgs = args[1:]
			}
			text, err := readInput(cmd, fileArgs)
			if err != nil {
				return err
			}

			buf, err := newBuffer(text, flags)
			if err != nil {
				return a.fail(err)
			}

			action := cmd.Name()
			edit, ok := run(buf, args)
			if !ok {
				return a.fail(errors.Newf(errors.ErrNotFound, MsgErrNothingToDo, action, buf.Caret).
					WithDetail("action", action))
			}
			logger.Debug().Str("action", action).Int("start", edit.Start).Int("end", edit.End).Msg("Edit computed")

			return a.renderer.RenderResult(&display.Edit{
				Action: action,
				Start:  edit.Start,
				End:    edit.End,
				Text:   edit.Text,
				Caret:  edit.Caret,
				Select: edit.Select,
			})
		},
	}
	cmd.Flags().IntVar(&flags.pos, "pos", -1, MsgFlagPos)
	cmd.Flags().StringVar(&flags.selection, "selection", "", "Selected byte range as start:end")
	return cmd
}

// newBuffer builds the action buffer from the edit flags
func newBuffer(text string, flags editFlags) (actions.Buffer, error) {
	caret := flags.pos
	if caret < 0 {
		caret = len(text)
	}
	buf := actions.NewBuffer(text, caret)

	if flags.selection != "" {
		var start, end int
		if _, err := fmt.Sscanf(flags.selection, "%d:%d", &start, &end); err != nil {
			return buf, errors.Wrapf(err, errors.ErrInvalidInput, "invalid selection %q, expected start:end", flags.selection)
		}
		buf.SelectionStart, buf.SelectionEnd = start, end
	}
	return buf, nil
}

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long: `Config prints the configuration zen runs with, after layering the built-in
defaults, the user file, ZEN_* environment variables and command line flags.`,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.load(cmd); err != nil {
				return err
			}
			out, err := config.Dump(a.cfg)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the location of the user config file",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			path := a.flags.configPath
			if path == "" {
				path = os.Getenv(config.EnvConfigPath)
			}
			if path == "" {
				path = config.UserConfigPath()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
		},
	})
	return cmd
}

// expansion wraps engine output for the renderer
func (a *app) expansion(abbreviation, out string) *display.Expansion {
	return &display.Expansion{
		Abbreviation: abbreviation,
		DocType:      a.docType(),
		Profile:      a.profile(),
		Output:       out,
		Caret:        a.engine.Caret(),
	}
}

// readInput reads the named file, or stdin when no file or "-" is given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read stdin")
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrNotFound, "failed to read %s", args[0]).
			WithDetail("path", args[0])
	}
	return string(data), nil
}
