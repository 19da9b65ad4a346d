package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"ovpkit/adapters/chartpng"
	"ovpkit/adapters/excel"
	"ovpkit/app"
	"ovpkit/domain/curve"
	"ovpkit/domain/histogram"
	"ovpkit/internal/config"
	"ovpkit/internal/report"
)

func main() {
	// .env is optional; environment variables win either way
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "ovpkit",
		Short: "OVP distribution toolkit: binned histograms and smoothed curves from job-title spreadsheets",
	}

	rootCmd.AddCommand(
		newHistogramCmd(),
		newCurveCmd(),
		newRunCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// commonFlags are the knobs shared by the subcommands; unset flags fall
// back to the environment configuration.
type commonFlags struct {
	outDir           string
	edges            []float64
	scoreColumn      string
	headcountColumn  string
	pointsPerSegment int
}

func (f *commonFlags) register(cmd *cobra.Command, withColumns, withSampling bool) {
	cmd.Flags().StringVar(&f.outDir, "out-dir", "", "Output directory (default OVP_OUT_DIR or .)")
	cmd.Flags().Float64SliceVar(&f.edges, "edges", nil, "Bin edges, ascending (default 2,3,4,5,6,7)")
	if withColumns {
		cmd.Flags().StringVar(&f.scoreColumn, "score-column", "", `Score column name (default "Average OVP")`)
		cmd.Flags().StringVar(&f.headcountColumn, "headcount-column", "", `Headcount column name (default "Headcount")`)
	}
	if withSampling {
		cmd.Flags().IntVar(&f.pointsPerSegment, "points-per-segment", 0, "Curve samples per spline segment (default 60, min 4)")
	}
}

func (f *commonFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("out-dir") {
		cfg.Paths.OutDir = f.outDir
	}
	if cmd.Flags().Changed("edges") {
		cfg.Histogram.Edges = f.edges
	}
	if cmd.Flags().Changed("score-column") {
		cfg.Histogram.ScoreColumn = f.scoreColumn
	}
	if cmd.Flags().Changed("headcount-column") {
		cfg.Histogram.HeadcountColumn = f.headcountColumn
	}
	if cmd.Flags().Changed("points-per-segment") {
		cfg.Curve.PointsPerSegment = f.pointsPerSegment
	}
}

func newHistogramCmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "histogram [input-file]",
		Short: "Build the binned OVP histogram workbook",
		Long: `Build the headcount-weighted OVP histogram from a job-title spreadsheet.

The input must carry the score and headcount columns (named exactly,
"Average OVP" and "Headcount" unless overridden). Both .xlsx and .csv
inputs are supported.

Example: ovpkit histogram "Company Job Titles.xlsx" --out-dir out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			return runHistogram(cmd.Context(), cfg, args[0])
		},
	}

	flags.register(cmd, true, false)
	return cmd
}

func newCurveCmd() *cobra.Command {
	var flags commonFlags
	var name string
	var fromFile string

	cmd := &cobra.Command{
		Use:   "curve [x y]...",
		Short: "Build the smoothed curve from midpoint (x, y) pairs",
		Long: `Fit the Excel-style smoothed curve through midpoint (x, y) pairs and
write the curve_data workbook plus a PNG preview.

Pairs are given as alternating numbers, ascending by x, with y as a
fraction of total headcount. With --from, midpoints and bands are read
from a previously built ovp_histogram workbook instead.

Examples:
  ovpkit curve 2.5 0.04 3.5 0.49 4.5 0.30 5.5 0.13 6.5 0.04
  ovpkit curve --from "out/Company Job Titles - ovp_histogram.xlsx"`,
		Args: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("from") {
				if len(args) != 0 {
					return fmt.Errorf("--from and positional midpoints are mutually exclusive")
				}
				return nil
			}
			if len(args) < 4 || len(args)%2 != 0 {
				return fmt.Errorf("expected an even number of values (at least two x y pairs), got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)

			var midpoints []curve.Point
			bands := bandsFromEdges(cfg.Histogram.Edges)
			if fromFile != "" {
				midpoints, bands, err = excel.ReadHistogramTable(fromFile)
			} else {
				midpoints, err = parseMidpoints(args)
			}
			if err != nil {
				return err
			}
			return runCurve(cmd.Context(), cfg, midpoints, bands, name)
		},
	}

	flags.register(cmd, false, true)
	cmd.Flags().StringVar(&name, "name", "ovp", "Base name for the output files")
	cmd.Flags().StringVar(&fromFile, "from", "", "Read midpoints and bands from a histogram workbook")
	return cmd
}

func newRunCmd() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   "run [input-file]",
		Short: "Run the full pipeline: histogram, curve, preview, and report",
		Long: `Run both stages end to end: bin the input into the OVP histogram, fit
the smoothed curve through the bin midpoints, and write the histogram
and curve workbooks, the PNG preview, and a markdown/HTML run report.

Example: ovpkit run "Company Job Titles.xlsx" --out-dir out`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			return runPipeline(cmd.Context(), cfg, args[0])
		},
	}

	flags.register(cmd, true, true)
	return cmd
}

func runHistogram(ctx context.Context, cfg *config.Config, inputFile string) error {
	fmt.Printf("Building OVP histogram from %s...\n", inputFile)

	svc := app.NewHistogramService(excel.NewDataReader(inputFile), excel.NewArtifactWriter())
	outPath := filepath.Join(cfg.Paths.OutDir, baseName(inputFile)+" - ovp_histogram.xlsx")

	result, err := svc.BuildHistogram(ctx, app.HistogramRequest{
		Edges:           cfg.Histogram.Edges,
		ScoreColumn:     cfg.Histogram.ScoreColumn,
		HeadcountColumn: cfg.Histogram.HeadcountColumn,
		OutPath:         outPath,
	})
	if err != nil {
		return fmt.Errorf("histogram build failed: %w", err)
	}

	printHistogram(result)
	fmt.Printf("\n✅ Saved: %s\n", result.ArtifactPath)
	return nil
}

func runCurve(ctx context.Context, cfg *config.Config, midpoints []curve.Point, bands []curve.Band, name string) error {
	fmt.Printf("Building smoothed curve through %d midpoints...\n", len(midpoints))

	svc := app.NewCurveService(
		excel.NewArtifactWriter(),
		chartpng.NewRenderer(cfg.Chart.Width, cfg.Chart.Height),
	)

	result, err := svc.BuildCurve(ctx, app.CurveRequest{
		Midpoints:        midpoints,
		Bands:            bands,
		PointsPerSegment: cfg.Curve.PointsPerSegment,
		DataPath:         filepath.Join(cfg.Paths.OutDir, name+" - ovp_curve.xlsx"),
		PreviewPath:      filepath.Join(cfg.Paths.OutDir, name+" - ovp_curve.png"),
	})
	if err != nil {
		return fmt.Errorf("curve build failed: %w", err)
	}

	fmt.Printf("\n=== CURVE RESULTS ===\n")
	fmt.Printf("Samples: %d\n", len(result.Table.Series))
	fmt.Printf("Bands: %d\n", len(result.Table.Bands))
	fmt.Printf("Fingerprint: %s\n", result.Fingerprint)
	fmt.Printf("Runtime: %d ms\n", result.RuntimeMs)
	fmt.Printf("\n✅ Saved: %s\n", result.DataPath)
	fmt.Printf("✅ Preview: %s\n", result.PreviewPath)
	return nil
}

func runPipeline(ctx context.Context, cfg *config.Config, inputFile string) error {
	fmt.Printf("Running OVP pipeline on %s...\n", inputFile)
	startedAt := time.Now()

	writer := excel.NewArtifactWriter()
	pipeline := app.NewPipelineService(
		app.NewHistogramService(excel.NewDataReader(inputFile), writer),
		app.NewCurveService(writer, chartpng.NewRenderer(cfg.Chart.Width, cfg.Chart.Height)),
	)

	base := baseName(inputFile)
	result, err := pipeline.Run(ctx, app.PipelineRequest{
		Edges:            cfg.Histogram.Edges,
		ScoreColumn:      cfg.Histogram.ScoreColumn,
		HeadcountColumn:  cfg.Histogram.HeadcountColumn,
		PointsPerSegment: cfg.Curve.PointsPerSegment,
		OutDir:           cfg.Paths.OutDir,
		BaseName:         base,
	})
	if err != nil {
		return fmt.Errorf("pipeline failed: %w", err)
	}

	printHistogram(result.Histogram)

	rep := &report.RunReport{
		RunID:     result.RunID,
		InputFile: inputFile,
		Cleaning:  result.Histogram.Cleaning,
		Table:     result.Histogram.Table,
		Summary:   result.Histogram.Summary,
		Artifacts: result.Artifacts,
		StartedAt: startedAt,
	}
	mdPath := filepath.Join(cfg.Paths.OutDir, base+" - ovp_report.md")
	htmlPath := filepath.Join(cfg.Paths.OutDir, base+" - ovp_report.html")
	if err := rep.Write(mdPath, htmlPath); err != nil {
		return err
	}

	fmt.Printf("\n=== ARTIFACTS ===\n")
	for _, art := range result.Artifacts {
		fmt.Printf("%-10s %s\n", art.Kind, art.Path)
	}
	fmt.Printf("%-10s %s\n", "report", mdPath)

	fmt.Printf("\n✅ Run %s completed\n", result.RunID)
	return nil
}

func printHistogram(result *app.HistogramResult) {
	fmt.Printf("\n=== OVP HISTOGRAM ===\n")
	for _, bin := range result.Table.Bins {
		fmt.Printf("%-6s midpoint %.2f  headcount %8.0f  share %5.1f%%\n",
			bin.Label, bin.Midpoint, bin.Headcount, bin.Share*100)
	}
	fmt.Printf("In-range headcount: %.0f\n", result.Table.TotalHeadcount)
	if result.Table.OutOfRange > 0 {
		fmt.Printf("Out-of-range headcount: %.0f\n", result.Table.OutOfRange)
	}
	fmt.Printf("Rows: %d kept of %d (dropped %d score, %d headcount)\n",
		result.Cleaning.Kept, result.Cleaning.TotalRows,
		result.Cleaning.DroppedScore, result.Cleaning.DroppedHeadcount)
	fmt.Printf("Weighted mean OVP: %.3f (stddev %.3f)\n",
		result.Summary.WeightedMean, result.Summary.WeightedStdDev)
	fmt.Printf("Fingerprint: %s\n", result.Fingerprint)
}

func parseMidpoints(args []string) ([]curve.Point, error) {
	midpoints := make([]curve.Point, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		x, err := strconv.ParseFloat(args[i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid x value %q: %w", args[i], err)
		}
		y, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid y value %q: %w", args[i+1], err)
		}
		midpoints = append(midpoints, curve.Point{X: x, Y: y})
	}
	return midpoints, nil
}

func bandsFromEdges(edges []float64) []curve.Band {
	bands := make([]curve.Band, 0, len(edges)-1)
	for i := 0; i < len(edges)-1; i++ {
		bands = append(bands, curve.Band{
			Lower: edges[i],
			Upper: edges[i+1],
			Label: histogram.RangeLabel(edges[i], edges[i+1]),
		})
	}
	return bands
}

func baseName(path string) string {
	name := filepath.Base(path)
	return strings.TrimSuffix(name, filepath.Ext(name))
}
