package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/adrg/xdg"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/pkg/errors"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/zen"
)

const replHelp = `Commands:
  :type <doc type>       switch document type
  :profile <name>        switch output profile
  :var <name> <value>    set a settings variable
  :wrap <abbr> <text>    wrap text, '\n' in text separates lines
  :profiles              list profile names
  :types                 list document types
  :help                  show this help
  :quit                  leave
Anything else is expanded as an abbreviation.`

// session is the state of one interactive run
type session struct {
	engine  *zen.Engine
	docType string
	profile string
}

// prompt shows the active document type and profile
func (s *session) prompt() string {
	return fmt.Sprintf("%s/%s %s", s.docType, s.profile, MsgReplPrompt)
}

// eval runs one input line, returning what to print and whether to stop
func (s *session) eval(line string) (string, bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", false, nil
	}
	if !strings.HasPrefix(line, ":") {
		out := s.engine.Expand(line, s.docType, s.profile)
		if out == "" {
			return "", false, errors.Newf(errors.ErrNotFound, MsgErrNoExpansion, line)
		}
		return out, false, nil
	}

	fields := strings.Fields(line)
	command, args := fields[0], fields[1:]
	switch command {
	case ":quit", ":q", ":exit":
		return "", true, nil
	case ":help", ":h":
		return replHelp, false, nil
	case ":type":
		if len(args) != 1 {
			return "", false, errors.New(errors.ErrInvalidInput, "usage: :type <doc type>")
		}
		s.docType = args[0]
		return "", false, nil
	case ":profile":
		if len(args) != 1 {
			return "", false, errors.New(errors.ErrInvalidInput, "usage: :profile <name>")
		}
		s.profile = args[0]
		return "", false, nil
	case ":var":
		if len(args) < 1 {
			return "", false, errors.New(errors.ErrInvalidInput, "usage: :var <name> <value>")
		}
		s.engine.SetVariable(args[0], strings.Join(args[1:], " "))
		return "", false, nil
	case ":wrap":
		if len(args) < 2 {
			return "", false, errors.New(errors.ErrInvalidInput, "usage: :wrap <abbr> <text>")
		}
		text := strings.ReplaceAll(strings.Join(args[1:], " "), `\n`, "\n")
		out, ok := s.engine.Wrap(args[0], text, s.docType, s.profile)
		if !ok {
			return "", false, errors.Newf(errors.ErrParse, MsgErrNoWrap, args[0])
		}
		return out, false, nil
	case ":profiles":
		return strings.Join(s.engine.ProfileNames(), "\n"), false, nil
	case ":types":
		return strings.Join(s.engine.Settings().DocTypes(), "\n"), false, nil
	default:
		return "", false, errors.Newf(errors.ErrInvalidInput, "unknown command %s, try :help", command)
	}
}

// completer offers commands, document types and profile names
func (s *session) completer() *readline.PrefixCompleter {
	docTypes := func(string) []string { return s.engine.Settings().DocTypes() }
	profiles := func(string) []string { return s.engine.ProfileNames() }

	return readline.NewPrefixCompleter(
		readline.PcItem(":type", readline.PcItemDynamic(docTypes)),
		readline.PcItem(":profile", readline.PcItemDynamic(profiles)),
		readline.PcItem(":var"),
		readline.PcItem(":wrap"),
		readline.PcItem(":profiles"),
		readline.PcItem(":types"),
		readline.PcItem(":help"),
		readline.PcItem(":quit"),
	)
}

// run reads lines until EOF or :quit
func (s *session) run(rl *readline.Instance, out io.Writer) error {
	logger := logging.GetLogger("repl")

	for {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			if line == "" {
				return nil
			}
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrInternal, "failed to read input")
		}

		result, quit, err := s.eval(line)
		if err != nil {
			logger.Debug().Err(err).Str("line", line).Msg("Evaluation failed")
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		if result != "" {
			fmt.Fprintln(out, result)
		}
		if quit {
			return nil
		}
	}
}

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "repl",
		Short:   MsgReplShort,
		Long:    `Repl starts an interactive session where each line is expanded as you type it. Use :help inside the session for its commands.`,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("repl")
			if err := a.load(cmd); err != nil {
				return err
			}

			s := &session{engine: a.engine, docType: a.docType(), profile: a.profile()}
			out := cmd.OutOrStdout()

			history, err := xdg.StateFile(logging.AppName + "/repl_history")
			if err != nil {
				logger.Warn().Err(err).Msg("No history file, history will not be saved")
				history = ""
			}

			rl, err := readline.NewEx(&readline.Config{
				Prompt:          s.prompt(),
				HistoryFile:     history,
				AutoComplete:    s.completer(),
				InterruptPrompt: "^C",
				EOFPrompt:       ":quit",
				Stdout:          out,
			})
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to start line editor")
			}
			defer func() { _ = rl.Close() }()

			if err := a.renderer.RenderMessage(MsgReplWelcome); err != nil {
				return err
			}
			return s.run(rl, out)
		},
	}
}
