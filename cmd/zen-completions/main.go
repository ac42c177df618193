package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/zen/internal/cli"
)

// generators maps each shell to its completion writer and packaged file name
var generators = map[string]struct {
	file string
	gen  func(*cobra.Command, io.Writer) error
}{
	"bash": {"zen.bash", func(c *cobra.Command, w io.Writer) error { return c.GenBashCompletionV2(w, true) }},
	"zsh":  {"_zen", func(c *cobra.Command, w io.Writer) error { return c.GenZshCompletion(w) }},
	"fish": {"zen.fish", func(c *cobra.Command, w io.Writer) error { return c.GenFishCompletion(w, true) }},
	"powershell": {"zen.ps1", func(c *cobra.Command, w io.Writer) error {
		return c.GenPowerShellCompletionWithDesc(w)
	}},
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <bash|zsh|fish|powershell>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "       %s all <dir>\n", os.Args[0])
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	rootCmd := cli.NewRootCmd()

	if os.Args[1] == "all" {
		if len(os.Args) < 3 {
			usage()
		}
		if err := writeAll(rootCmd, os.Args[2]); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating completions: %v\n", err)
			os.Exit(1)
		}
		return
	}

	g, ok := generators[os.Args[1]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\n", os.Args[1])
		usage()
	}
	if err := g.gen(rootCmd, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating %s completion: %v\n", os.Args[1], err)
		os.Exit(1)
	}
}

// writeAll writes the completion file of every shell into dir
func writeAll(rootCmd *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for shell, g := range generators {
		f, err := os.Create(filepath.Join(dir, g.file))
		if err != nil {
			return err
		}
		err = g.gen(rootCmd, f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("%s: %w", shell, err)
		}
	}
	return nil
}
