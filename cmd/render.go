package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ms-henglu/orgchart/internal/chart"
	"github.com/ms-henglu/orgchart/internal/log"
	"github.com/ms-henglu/orgchart/internal/org"
	"github.com/ms-henglu/orgchart/internal/orgfile"
	"github.com/ms-henglu/orgchart/internal/source"
	"github.com/spf13/cobra"
)

func NewRenderCmd() *cobra.Command {
	var sourceAddr string
	var style string
	var outputFile string
	var sample bool

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Renders an org chart as ASCII art",
		Long: `Render an org chart file as a connected box-and-branch diagram.

The chart is read from, in order of precedence:
  - the --sample organisation
  - a remote source given with --source (fetched through the global cache)
  - the chart file given as argument (.org.hcl, .yaml, .yml or .json)
  - the single *.org.hcl file in the current directory

The chart is written to stdout unless --output is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			chartStyle, err := chart.ParseStyle(style)
			if err != nil {
				return err
			}

			root, err := loadChart(cmd.Context(), args, sourceAddr, sample)
			if err != nil {
				return err
			}
			log.Debug("Rendering %d employees across %d levels", org.Count(root), org.Depth(root))

			if outputFile == "" {
				chart.FprintStyle(cmd.OutOrStdout(), root, chartStyle)
				return nil
			}

			if err := os.WriteFile(outputFile, []byte(chart.RenderStyle(root, chartStyle)), 0644); err != nil {
				return fmt.Errorf("failed to write chart: %w", err)
			}
			log.Success(fmt.Sprintf("Chart saved to %s", outputFile))
			return nil
		},
	}

	cmd.Flags().StringVarP(&sourceAddr, "source", "s", "", "Remote chart source, e.g. https://example.com/org.yaml")
	cmd.Flags().StringVar(&style, "style", string(chart.StyleBox), "Chart style: box or tree")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&sample, "sample", false, "Render the built-in sample organisation")

	return cmd
}

func loadChart(ctx context.Context, args []string, sourceAddr string, sample bool) (org.Employee, error) {
	given := 0
	for _, set := range []bool{sample, sourceAddr != "", len(args) > 0} {
		if set {
			given++
		}
	}
	if given > 1 {
		return nil, fmt.Errorf("only one of --sample, --source or a chart file may be given")
	}

	switch {
	case sample:
		return org.Sample(), nil
	case sourceAddr != "":
		log.Section("Fetching org chart...")
		path, err := source.Resolve(ctx, sourceAddr)
		if err != nil {
			return nil, err
		}
		return loadFile(path)
	case len(args) > 0:
		return loadFile(args[0])
	}

	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	charts, err := orgfile.Discover(cwd)
	if err != nil {
		return nil, err
	}
	switch len(charts) {
	case 0:
		log.Hint("No org charts found in the current directory.\nYou can create one by running 'orgchart init' command.")
		return nil, fmt.Errorf("no *%s file found in %s", orgfile.ChartSuffix, cwd)
	case 1:
		return loadFile(charts[0])
	}

	names := make([]string, 0, len(charts))
	for _, c := range charts {
		names = append(names, filepath.Base(c))
	}
	return nil, fmt.Errorf("found %d org charts (%s); pass the one to render as argument", len(charts), strings.Join(names, ", "))
}

func loadFile(path string) (org.Employee, error) {
	log.Section("Reading " + path + "...")
	root, err := orgfile.Load(path)
	if err != nil {
		return nil, err
	}
	log.Item(fmt.Sprintf("%d employees, %d levels", org.Count(root), org.Depth(root)))
	return root, nil
}
