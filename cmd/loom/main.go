package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loom-ui/loom/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╦  ┌─┐┌─┐┌┬┐
  ║  │ ││ ││││
  ╩═╝└─┘└─┘┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "loom",
		Short: "Virtual tree construction and preview tooling",
		Long: `Loom builds virtual trees in Go and turns them into HTML.

The CLI wraps the library for project workflows:

  • Live preview server with snapshot push over WebSocket
  • Static export of routes to plain HTML
  • Publishing exports to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		initCmd(),
		previewCmd(),
		exportCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		if le, ok := err.(*errors.LoomError); ok {
			fmt.Fprintln(os.Stderr, le.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

// printBanner prints the Loom ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
