package main

import (
	"fmt"
	"os"

	"github.com/ludo-technologies/jsvet/internal/version"
	"github.com/spf13/cobra"
)

var (
	// Version information (set via ldflags during build)
	Version = version.Version
)

// LintExitError carries a lint exit code through cobra's error return
type LintExitError struct {
	Code    int
	Message string
}

func (e *LintExitError) Error() string {
	return e.Message
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "jsvet",
		Short: "jsvet - JavaScript/TypeScript linter",
		Long: `jsvet is a pluggable linter for JavaScript and TypeScript code.
It applies prioritized rules, renders reports in multiple formats, and
gates CI runs on per-priority violation thresholds.`,
		Version: Version,
	}

	// Add subcommands
	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(initCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		// Handle custom exit codes from the lint command
		if exitErr, ok := err.(*LintExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintf(os.Stderr, "Error: %s\n", exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				fmt.Println(version.GetFullVersion())
			} else {
				fmt.Printf("jsvet version %s\n", version.GetVersion())
			}
		},
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show detailed version information")
	return cmd
}
