package ghostink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ghostink/ghostink/internal/stego"
)

var flagRevealClipboard bool

func init() {
	cmd := &cobra.Command{
		Use:   "reveal <file>",
		Short: "Extract the hidden payload from a text file",
		Long:  "Reveal scans the file for carrier code points and decodes them. Extraction is best-effort: a file without hidden data yields empty output, never an error.",
		Args:  cobra.ExactArgs(1),
		RunE:  runReveal,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVar(&flagRevealClipboard, "clipboard", false, "copy the payload to the clipboard instead of printing")
}

func runReveal(_ *cobra.Command, args []string) error {
	payload, err := stego.DecodeFile(args[0])
	if err != nil {
		return err
	}

	if flagRevealClipboard {
		if err := clipboard.WriteAll(payload); err != nil {
			return fmt.Errorf("clipboard write failed: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Revealed %d bytes -> clipboard\n", len(payload))
		return nil
	}
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{"path": args[0], "payload": payload, "bytes": len(payload)})
	}
	fmt.Println(payload)
	return nil
}
