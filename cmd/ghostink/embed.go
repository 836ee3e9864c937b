package ghostink

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ghostink/ghostink/internal/codec"
	"github.com/ghostink/ghostink/internal/config"
	"github.com/ghostink/ghostink/internal/stego"
	"github.com/ghostink/ghostink/internal/strategy"
	"github.com/ghostink/ghostink/internal/update"
)

var (
	flagMessage     string
	flagMessageFile string
	flagPosition    string
	flagCount       int
	flagSeed        int64
	flagOut         string
	flagClipboard   bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "embed <host-file>",
		Short: "Hide a payload inside a host text file",
		Args:  cobra.ExactArgs(1),
		RunE:  runEmbed,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().StringVarP(&flagMessage, "message", "m", "", "payload text to hide")
	cmd.Flags().StringVar(&flagMessageFile, "message-file", "", "read payload from this file instead")
	cmd.Flags().StringVar(&flagPosition, "position", "", "where to splice: top|bottom|random|nthlines|randominline (default bottom)")
	cmd.Flags().IntVar(&flagCount, "count", 0, "repeat count for random, line stride for nthlines/randominline (default 1)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "seed the random strategies for reproducible output (0 = time-based)")
	cmd.Flags().StringVarP(&flagOut, "out", "o", "", "write embedded text to this file (default stdout)")
	cmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "copy embedded text to the clipboard instead of printing")
}

func runEmbed(_ *cobra.Command, args []string) error {
	// Load configs: CLI > local > global
	var gcfg, lcfg config.FileConfig
	if c, err := config.LoadGlobal(); err == nil {
		gcfg = c
	}
	if c, err := config.LoadLocal("."); err == nil {
		lcfg = c
	}

	if !flagJSON && !flagNoUpdateCheck {
		if latest, newer, _ := update.Check(version, false); newer && latest != "" {
			fmt.Fprintf(os.Stderr, "(new version available: v%s)  run 'ghostink --self-update' to upgrade\n", latest)
		}
	}
	if flagSelfUpdate {
		if err := selfUpdate(); err == nil {
			fmt.Fprintln(os.Stderr, "updated to latest; re-run command")
			return nil
		}
	}

	payload := flagMessage
	if flagMessageFile != "" {
		b, err := os.ReadFile(flagMessageFile)
		if err != nil {
			return fmt.Errorf("unable to read source file %s: %w", flagMessageFile, err)
		}
		payload = string(b)
	}
	for _, r := range payload {
		if r > 0xff {
			fmt.Fprintf(os.Stderr, "warning: payload contains code points above U+00FF; they will not decode correctly\n")
			break
		}
	}

	posName := pickString(flagPosition, lcfg.Position, gcfg.Position)
	if posName == "" {
		posName = string(strategy.Bottom)
	}
	pos, err := strategy.Parse(posName)
	if err != nil {
		return err
	}

	k := pickInt(flagCount, lcfg.Count, gcfg.Count)
	if k == 0 {
		k = 1
	}
	if k < 1 {
		return fmt.Errorf("count must be at least 1, got %d", k)
	}

	if seed := pickInt64(flagSeed, lcfg.Seed, gcfg.Seed); seed != 0 {
		strategy.Seed(seed)
	}

	embedded, err := stego.EncodeFile(args[0], payload, pos, k)
	if err != nil {
		return err
	}

	bits := len([]rune(codec.Pack(payload)))
	toClipboard := pickBool(flagClipboard, lcfg.Clipboard, gcfg.Clipboard)

	switch {
	case toClipboard:
		if err := clipboard.WriteAll(embedded); err != nil {
			return fmt.Errorf("clipboard write failed: %w", err)
		}
	case flagOut != "":
		if err := os.WriteFile(flagOut, []byte(embedded), 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", flagOut, err)
		}
	default:
		fmt.Print(embedded)
	}

	// the envelope shares stdout with nothing: when the embedded text was
	// printed there, skip it
	if flagJSON && (flagOut != "" || toClipboard) {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]any{
			"host":     args[0],
			"out":      flagOut,
			"position": string(pos),
			"count":    k,
			"bits":     bits,
		})
	}
	if !flagJSON && (flagOut != "" || toClipboard) {
		dest := flagOut
		if toClipboard {
			dest = "clipboard"
		}
		fmt.Fprintf(os.Stderr, "Embedded %d bits at %s -> %s\n", bits, pos, dest)
	}
	return nil
}
