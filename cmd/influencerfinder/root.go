package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	errs "influencerfinder/pkg/errors"
	"influencerfinder/pkg/logger"
	"influencerfinder/pkg/ui"
)

var (
	// Version information
	version   = "1.0.0"
	gitCommit = "unknown"
	buildDate = "unknown"

	// Global flags
	configFile string
	mode       string
	logLevel   string
	logFormat  string
	noColor    bool
	quiet      bool
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "influencerfinder",
	Short: "Find Instagram influencers by niche and rank them by engagement",
	Long: `Influencer Finder searches Instagram profiles by industry, gender,
country and follower range, then ranks them by engagement rate.

Demo mode works offline against a built-in catalog. Live mode queries an
Instagram API on RapidAPI; store its key with 'influencerfinder auth login'.

Results of the last search are kept between runs, so a typical session is:
  influencerfinder search --industry fitness --gender female
  influencerfinder select fitness_emma_fit yoga_with_sara
  influencerfinder export --format csv`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, gitCommit, buildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Output = cmd.OutOrStdout()
		if noColor {
			ui.SetColor(false)
		}

		// Don't show logo for certain commands or when piped
		switch cmd.Name() {
		case "version", "help", "completion":
			return
		}
		if !quiet && !jsonOutput && isTerminal() {
			ui.PrintLogo()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Red("Error: "+describeError(err)))
		os.Exit(1)
	}
}

// describeError formats err for the terminal. Typed errors lose their type
// prefix but keep their field and cause.
func describeError(err error) string {
	var e *errs.Error
	if !errors.As(err, &e) {
		return err.Error()
	}
	msg := e.Message
	if e.Field != "" {
		msg = e.Field + ": " + msg
	}
	if e.Err != nil {
		msg += " (" + e.Err.Error() + ")"
	}
	return msg
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// effectiveLogLevel maps --quiet and --verbose onto a log level. An
// explicit --log-level wins; an empty result defers to config and env.
func effectiveLogLevel() string {
	switch {
	case logLevel != "":
		return logLevel
	case verbose:
		return "debug"
	case quiet:
		return "error"
	}
	return ""
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default is ./.influencerfinder.yaml or $HOME/.influencerfinder.yaml)")
	rootCmd.PersistentFlags().StringVarP(&mode, "mode", "m", "", "profile source: demo or live")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "log format (console, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress all output except results and errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show every search step and debug logs")

	// Version template
	rootCmd.SetVersionTemplate(`Influencer Finder {{.Version}}
Go Version: ` + runtime.Version() + `
OS/Arch: ` + runtime.GOOS + `/` + runtime.GOARCH + `
`)

	logger.Version = version

	// Disable default completion command
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
