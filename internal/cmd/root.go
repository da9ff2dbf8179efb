// Package cmd provides the CLI commands for seadream.
package cmd

import (
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/spf13/cobra"
)

// global flags
var (
	profileFile *os.File // held open for profiling
	logPath     string
	backendURL  string
	verbose     bool
)

// rootCmd is the root command for the CLI.
var rootCmd = &cobra.Command{
	Use:   "seadream",
	Short: "Creative prompt playground for image generation models",
	Long: `seadream composes creative briefs into ready-to-use prompts for
image generation models, with a session history and liked references.

Running without a subcommand launches the interactive TUI.

Commands:
  tui       Launch the interactive playground (default)
  serve     Run the backend API server
  generate  Generate prompts for a brief from the command line
  history   List generated sessions
  cases     List preset cases from the catalog

Examples:
  seadream                                # Launch the playground
  seadream serve --port 8000              # Run the backend
  seadream generate --brief "neon diner"  # One-shot generation
  seadream history --liked                # Liked references only`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Start pprof profiling if SEADREAM_PROFILE is set
		if profilePath := os.Getenv("SEADREAM_PROFILE"); profilePath != "" {
			f, err := os.Create(profilePath)
			if err != nil {
				return fmt.Errorf("create profile file: %w", err)
			}
			profileFile = f

			if err := pprof.StartCPUProfile(f); err != nil {
				f.Close()
				profileFile = nil
				return fmt.Errorf("start CPU profile: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		// Stop CPU profiling
		if profileFile != nil {
			pprof.StopCPUProfile()
			profileFile.Close()
			profileFile = nil
		}
		return nil
	},
	RunE: runTUI,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "backend base URL (overrides config)")

	tuiCmd.Flags().StringVar(&logPath, "log", "", "write debug log to file")
	rootCmd.Flags().StringVar(&logPath, "log", "", "write debug log to file")

	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(casesCmd)
	rootCmd.AddCommand(versionCmd)
}
