package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/ms-henglu/orgchart/internal/org"
	"github.com/ms-henglu/orgchart/internal/orgfile"
	"github.com/spf13/cobra"
)

func NewInitCmd() *cobra.Command {
	var outputFile string
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Creates a sample org chart file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			savePath := outputFile
			if !filepath.IsAbs(savePath) {
				savePath = filepath.Join(cwd, savePath)
			}

			if _, err := os.Stat(savePath); err == nil && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite it", savePath)
			}

			log.Section("Generating sample org chart...")
			if err := os.WriteFile(savePath, orgfile.MarshalHCL(org.Sample()), 0644); err != nil {
				return fmt.Errorf("failed to write org chart: %w", err)
			}

			log.Success(fmt.Sprintf("Org chart saved to %s", savePath))
			log.Hint("Next steps:\n  1. Edit the chart to match your organisation\n  2. Run 'orgchart render' to draw it")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output", "o", "org"+orgfile.ChartSuffix, "Output file path")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	return cmd
}
