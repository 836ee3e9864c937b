package ghostink

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func init() {
	var dir string
	cmd := &cobra.Command{
		Use:   "gendocs",
		Short: "Generate markdown docs for all commands",
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return err
			}
			return doc.GenMarkdownTree(rootCmd, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "docs", "output directory for generated markdown")
	rootCmd.AddCommand(cmd)
}
