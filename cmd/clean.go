package cmd

import (
	"os"

	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/ms-henglu/orgchart/internal/source"
	"github.com/spf13/cobra"
)

func NewCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean",
		Short: "Removes fetched org charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}

			log.Section("Removing fetched charts...")
			removed, err := source.Clean(cwd)
			if err != nil {
				return err
			}
			if removed {
				log.Item(source.WorkDir + " directory")
			}

			log.Success("Clean complete!")
			return nil
		},
	}

	return cmd
}
