package ghostink

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagJSON          bool
	flagNoColor       bool
	flagNoUpdateCheck bool
	flagSelfUpdate    bool

	version = "0.1.0"
)

// rootCmd is the base Cobra command for the Ghostink CLI.
var rootCmd = &cobra.Command{
	Use:           "ghostink",
	Short:         "Hide text inside text",
	Long:          "Ghostink conceals a payload inside ordinary text as invisible zero-width code points, extracts it back, and strips all invisible markers.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the Ghostink CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().BoolVar(&flagNoUpdateCheck, "no-update-check", false, "disable update check")
	rootCmd.PersistentFlags().BoolVar(&flagSelfUpdate, "self-update", false, "update ghostink to the latest release")
}
