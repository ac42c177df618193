package cli

import (
	"os"
	"strings"
	"text/template"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/pkg/ui"
)

// fileFormat is the format auto-detection picks for stdout
func fileFormat() ui.Format {
	return ui.DetectFormat(os.Stdout)
}

// templateFuncs are available to the usage template in msgs/usage.txt.
// Styling is dropped unless stdout is a color terminal, so piped help and
// generated man pages stay clean.
func templateFuncs() template.FuncMap {
	styled := fileFormat() == ui.FormatTerminal
	bold := func(s string) string {
		if !styled {
			return s
		}
		return pterm.Bold.Sprint(s)
	}

	return template.FuncMap{
		"bold":      bold,
		"upper":     strings.ToUpper,
		"boldUpper": func(s string) string { return bold(strings.ToUpper(s)) },
	}
}

// initTemplateFormatting registers the template functions with cobra
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(templateFuncs())
}
