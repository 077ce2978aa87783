package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ctp/internal/cli"
	"github.com/arthur-debert/ctp/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.Render("Error", "Error: "+err.Error()))
		os.Exit(1)
	}
}
