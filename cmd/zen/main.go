package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/zen/internal/cli"
	"github.com/arthur-debert/zen/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle(styles.Error)
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
