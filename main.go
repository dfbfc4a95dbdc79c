package main

import (
	"os"

	"github.com/ms-henglu/orgchart/cmd"
	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/spf13/cobra"
)

var version = "v0.1.0"

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "orgchart",
		Short:         "Console org chart renderer " + version,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Init(verbose)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(cmd.NewRenderCmd())
	rootCmd.AddCommand(cmd.NewInitCmd())
	rootCmd.AddCommand(cmd.NewFetchCmd())
	rootCmd.AddCommand(cmd.NewCleanCmd())

	if err := rootCmd.Execute(); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}
