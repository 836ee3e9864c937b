package ghostink

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ghostink/ghostink/internal/files"
	"github.com/ghostink/ghostink/internal/stego"
)

var (
	flagCleanWrite bool
	flagCleanGlob  string
)

func init() {
	cmd := &cobra.Command{
		Use:   "clean <file-or-dir>",
		Short: "Strip every invisible carrier code point from text",
		Long:  "Clean removes all carrier code points and restores the visible text verbatim. Cleaning is idempotent. With --glob the argument is treated as a root directory and every matching file is rewritten in place.",
		Args:  cobra.ExactArgs(1),
		RunE:  runClean,
	}
	rootCmd.AddCommand(cmd)

	cmd.Flags().BoolVarP(&flagCleanWrite, "write", "w", false, "rewrite the file in place instead of printing")
	cmd.Flags().StringVar(&flagCleanGlob, "glob", "", "clean every file under the root matching this pattern (e.g. '**/*.md'); implies --write")
}

type cleanResult struct {
	Path    string `json:"path"`
	Changed bool   `json:"changed"`
}

func runClean(_ *cobra.Command, args []string) error {
	if flagCleanGlob != "" {
		return runCleanGlob(args[0])
	}

	cleaned, err := stego.CleanFile(args[0])
	if err != nil {
		return err
	}
	if !flagCleanWrite {
		fmt.Print(cleaned)
		return nil
	}
	changed, err := files.WriteIfChanged(args[0], []byte(cleaned))
	if err != nil {
		return fmt.Errorf("unable to write %s: %w", args[0], err)
	}
	return reportClean([]cleanResult{{Path: args[0], Changed: changed}})
}

func runCleanGlob(root string) error {
	matches, err := files.Match(root, flagCleanGlob)
	if err != nil {
		return err
	}
	results := make([]cleanResult, 0, len(matches))
	for _, rel := range matches {
		path := filepath.Join(root, rel)
		cleaned, err := stego.CleanFile(path)
		if err != nil {
			return err
		}
		changed, err := files.WriteIfChanged(path, []byte(cleaned))
		if err != nil {
			return fmt.Errorf("unable to write %s: %w", path, err)
		}
		results = append(results, cleanResult{Path: path, Changed: changed})
	}
	return reportClean(results)
}

func reportClean(results []cleanResult) error {
	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	changed := 0
	for _, r := range results {
		if r.Changed {
			changed++
			fmt.Fprintf(os.Stderr, "cleaned %s\n", r.Path)
		}
	}
	fmt.Fprintf(os.Stderr, "Cleaned %d of %d file(s)\n", changed, len(results))
	return nil
}
