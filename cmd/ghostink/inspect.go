package ghostink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ghostink/ghostink/internal/report"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show where hidden data sits in a file without extracting it",
		Long:  "Inspect locates every contiguous run of carrier code points and reports its offset, size, and a decoded preview, plus a digest of the full payload.",
		Args:  cobra.ExactArgs(1),
		RunE:  runInspect,
	}
	rootCmd.AddCommand(cmd)
}

func runInspect(_ *cobra.Command, args []string) error {
	b, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("unable to read source file %s: %w", args[0], err)
	}
	s := report.Summarize(args[0], string(b))

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}
	report.PrintSummary(os.Stdout, s, report.PrintOptions{NoColor: colorDisabled()})
	return nil
}
