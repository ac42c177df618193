package cli

import (
	"embed"
	"io/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/internal/version"
	"github.com/arthur-debert/zen/pkg/config"
	"github.com/arthur-debert/zen/pkg/logging"
	"github.com/arthur-debert/zen/pkg/topics"
	"github.com/arthur-debert/zen/pkg/ui"
	"github.com/arthur-debert/zen/pkg/zen"
)

//go:embed help/*.md
var helpFiles embed.FS

// rootFlags holds the values of the global flags
type rootFlags struct {
	verbosity  int
	configPath string
	docType    string
	lang       string
	profile    string
	caret      string
	indent     string
	format     string
}

// app is the state shared by the commands of one invocation
type app struct {
	flags    rootFlags
	cfg      *config.Config
	engine   *zen.Engine
	format   ui.Format
	renderer ui.Renderer
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "zen",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.CountVarP(&a.flags.verbosity, "verbose", "v", MsgFlagVerbose)
	flags.StringVarP(&a.flags.configPath, "config", "c", "", MsgFlagConfig)
	flags.StringVarP(&a.flags.docType, "type", "t", "", MsgFlagType)
	flags.StringVar(&a.flags.lang, "lang", "", MsgFlagLang)
	flags.StringVarP(&a.flags.profile, "profile", "p", "", MsgFlagProfile)
	flags.StringVar(&a.flags.caret, "caret", "", MsgFlagCaret)
	flags.StringVar(&a.flags.indent, "indent", "", MsgFlagIndent)
	flags.StringVarP(&a.flags.format, "format", "f", "auto", MsgFlagFormat)

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return ui.Formats(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = rootCmd.RegisterFlagCompletionFunc("type", a.complete(func() []string {
		return a.engine.Settings().DocTypes()
	}))
	_ = rootCmd.RegisterFlagCompletionFunc("profile", a.complete(func() []string {
		return a.engine.ProfileNames()
	}))

	// Help comes from the topics system below
	rootCmd.SetHelpCommand(&cobra.Command{Hidden: true})

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newExpandCmd(a))
	rootCmd.AddCommand(newWrapCmd(a))
	rootCmd.AddCommand(newFindCmd(a))
	rootCmd.AddCommand(newEditCmd(a))
	rootCmd.AddCommand(newListCmd(a))
	rootCmd.AddCommand(newPickCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newProfilesCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())

	help, err := fs.Sub(helpFiles, "help")
	if err == nil {
		_, _ = topics.InitializeWithOptions(rootCmd, help, topics.Options{
			Renderer: helpRenderer(),
		})
	}

	return rootCmd
}

// helpRenderer picks glamour when stdout is a styled terminal
func helpRenderer() topics.Renderer {
	if fileFormat() == ui.FormatTerminal {
		return topics.NewMarkdownRenderer()
	}
	return topics.PlainRenderer{}
}

// overrides turns the flags that were set into config keys
func (a *app) overrides(cmd *cobra.Command) map[string]interface{} {
	out := make(map[string]interface{})
	set := func(flag, key, value string) {
		if cmd.Flags().Changed(flag) {
			out[key] = value
		}
	}

	if cmd.Flags().Changed("lang") && !cmd.Flags().Changed("type") {
		out["editor.doc_type"] = zen.DocTypeFor(a.flags.lang)
	}
	set("type", "editor.doc_type", a.flags.docType)
	set("profile", "editor.profile", a.flags.profile)
	set("caret", "editor.caret", a.flags.caret)
	set("indent", "editor.indentation", a.flags.indent)
	return out
}

// load reads the configuration, builds the engine and picks the renderer.
// Commands that need none of these skip it.
func (a *app) load(cmd *cobra.Command) error {
	logger := logging.GetLogger("cli")

	cfg, err := config.LoadWithOverrides(a.flags.configPath, a.overrides(cmd))
	if err != nil {
		return err
	}
	engine, err := cfg.NewEngine()
	if err != nil {
		return err
	}

	format, err := ui.ParseFormat(a.flags.format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	a.cfg, a.engine, a.format, a.renderer = cfg, engine, format, renderer
	logger.Debug().
		Str("docType", cfg.Editor.DocType).
		Str("profile", cfg.Editor.Profile).
		Str("configPath", cfg.Path).
		Msg("Configuration loaded")
	return nil
}

// docType and profile return the effective expansion settings
func (a *app) docType() string { return a.cfg.Editor.DocType }
func (a *app) profile() string { return a.cfg.Editor.Profile }

// fail returns err, first writing it to stdout when the output is JSON so
// that editor integrations get a machine readable failure
func (a *app) fail(err error) error {
	if a.renderer != nil && a.format == ui.FormatJSON {
		_ = a.renderer.RenderError(err)
	}
	return err
}

// complete builds a flag completion function over the loaded engine, so
// user bundles and profiles are offered too
func (a *app) complete(names func() []string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if err := a.load(cmd); err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return names(), cobra.ShellCompDirectiveNoFileComp
	}
}
