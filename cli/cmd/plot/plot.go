package plot

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/revplot/revplot/engine/plot"
	"github.com/revplot/revplot/engine/scm"
	"github.com/revplot/revplot/pkg/config"
	"github.com/revplot/revplot/pkg/logger"
)

// NewPlotCommand creates the plot command group.
func NewPlotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Generate plot documents from tracked metric files",
	}
	cmd.AddCommand(
		newShowCommand(),
		newDiffCommand(),
	)
	return cmd
}

func newShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [datafile]",
		Short: "Plot a metric file from the current workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			datafile := ""
			if len(args) > 0 {
				datafile = args[0]
			}
			return executePlot(cobraCmd, datafile, nil)
		},
	}
	addPlotFlags(cmd)
	return cmd
}

func newDiffCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff [revisions...]",
		Short: "Compare a metric file across revisions",
		RunE: func(cobraCmd *cobra.Command, args []string) error {
			datafile, err := cobraCmd.Flags().GetString("datafile")
			if err != nil {
				return err
			}
			return executePlot(cobraCmd, datafile, args)
		},
	}
	addPlotFlags(cmd)
	cmd.Flags().StringP("datafile", "d", "", "Metric file to compare across revisions")
	return cmd
}

func addPlotFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("file", "f", "", "Path of the generated plot document")
	cmd.Flags().StringP("template", "t", "", "Template name or path")
	cmd.Flags().String("fields", "", "Comma-separated list of fields to plot")
	cmd.Flags().String("query", "", "Structural query locating the records inside a nested document")
	cmd.Flags().Bool("show-json", false, "Print the filled document to stdout instead of writing a file")
}

func executePlot(cobraCmd *cobra.Command, datafile string, revisions []string) error {
	logLevel, logJSON, err := logger.GetLoggerConfig(cobraCmd)
	if err != nil {
		return err
	}
	logger.SetupLogger(logLevel, logJSON)
	ctx := cobraCmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, showJSON, err := plotOptions(cobraCmd, cfg, datafile, revisions)
	if err != nil {
		return err
	}

	repo, err := scm.Open(cfg.RepoRoot)
	if err != nil {
		return err
	}
	fs := afero.NewBasePathFs(afero.NewOsFs(), cfg.RepoRoot)
	plotter := plot.NewPlotter(repo, plot.NewStorage(fs, cfg.TemplateDir), fs)

	result, err := plotter.Plot(ctx, opts)
	if err != nil {
		return err
	}
	if showJSON {
		fmt.Fprintln(cobraCmd.OutOrStdout(), string(result.Document))
		return nil
	}
	absRoot, err := filepath.Abs(cfg.RepoRoot)
	if err != nil {
		return err
	}
	fmt.Fprintf(cobraCmd.OutOrStdout(), "file://%s\n", filepath.Join(absRoot, result.Path))
	return nil
}

func plotOptions(
	cobraCmd *cobra.Command,
	cfg *config.Config,
	datafile string,
	revisions []string,
) (plot.Options, bool, error) {
	flags := cobraCmd.Flags()
	outPath, err := flags.GetString("file")
	if err != nil {
		return plot.Options{}, false, err
	}
	template, err := flags.GetString("template")
	if err != nil {
		return plot.Options{}, false, err
	}
	fieldsRaw, err := flags.GetString("fields")
	if err != nil {
		return plot.Options{}, false, err
	}
	query, err := flags.GetString("query")
	if err != nil {
		return plot.Options{}, false, err
	}
	showJSON, err := flags.GetBool("show-json")
	if err != nil {
		return plot.Options{}, false, err
	}
	if outPath == "" && !showJSON {
		outPath = defaultOutPath(datafile, template)
	}
	return plot.Options{
		Datafile:  datafile,
		Template:  template,
		Revisions: revisions,
		Fields:    ParseFields(fieldsRaw),
		Query:     query,
		OutPath:   outPath,
	}, showJSON, nil
}

// defaultOutPath derives the result filename from the datafile or template
// name when the caller gives none.
func defaultOutPath(datafile, template string) string {
	base := datafile
	if base == "" {
		base = template
	}
	if base == "" {
		return "plot.json"
	}
	name := strings.TrimSuffix(filepath.Base(base), filepath.Ext(base))
	return name + ".plot.json"
}

// ParseFields splits a comma-separated field filter, dropping empty entries.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
