package cmd

import (
	"fmt"
	"os"

	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/ms-henglu/orgchart/internal/org"
	"github.com/ms-henglu/orgchart/internal/orgfile"
	"github.com/ms-henglu/orgchart/internal/source"
	"github.com/spf13/cobra"
)

func NewFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <source>",
		Short: "Downloads an org chart into .orgchart/charts",
		Long: `Fetch an org chart from any source go-getter understands (http, https, s3, gcs, file)
and copy it into .orgchart/charts in the current directory.

Downloads are kept in a global cache (~/.orgchart/cache, or $ORGCHART_CACHE_DIR).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			log.Section("Fetching org chart...")
			path, err := source.Vendor(cmd.Context(), cwd, args[0])
			if err != nil {
				return err
			}

			log.Section("Validating org chart...")
			root, err := orgfile.Load(path)
			if err != nil {
				return err
			}
			log.Item(fmt.Sprintf("%d employees, %d levels", org.Count(root), org.Depth(root)))

			log.Success(fmt.Sprintf("Org chart saved to %s", path))
			log.Hint(fmt.Sprintf("Next Step: Run 'orgchart render %s'", path))
			return nil
		},
	}

	return cmd
}
