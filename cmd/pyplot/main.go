// Package main provides the CLI entry point for pyplot-go.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/moznion/go-optional"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/ukaji3/pyplot-go/pkg/pyplot"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/models"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/output"
	"github.com/ukaji3/pyplot-go/pkg/pyplot/parser"
)

var (
	outputPath   string
	sheetName    string
	title        string
	fontSize     string
	grid         bool
	outerColor   string
	innerColor   string
	scatter      bool
	tickMode     string
	interpreter  bool
	escapeQuotes bool
	dump         bool
	pretty       bool
	verbose      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pyplot [input.json|input.xlsx]",
		Short: "Compose matplotlib scripts from plot descriptions",
		Long: `pyplot-go reads a plot description (JSON, or series from an Excel
workbook) and writes a matplotlib script for a Python interpreter.`,
		Args:          cobra.ExactArgs(1),
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "Workbook sheet to read (default: first sheet)")
	rootCmd.Flags().StringVar(&title, "title", "", "Plot title (overrides the description)")
	rootCmd.Flags().StringVar(&fontSize, "font-size", "14", "Title font size")
	rootCmd.Flags().BoolVar(&grid, "grid", false, "Show the grid (overrides the description)")
	rootCmd.Flags().StringVar(&outerColor, "outer-color", "", "Figure background color")
	rootCmd.Flags().StringVar(&innerColor, "inner-color", "", "Plotting area background color")
	rootCmd.Flags().BoolVar(&scatter, "scatter", false, "Draw point markers on every series (overrides the description)")
	rootCmd.Flags().StringVar(&tickMode, "ticks", "", "Tick mode: derived, explicit, none (overrides the description)")
	rootCmd.Flags().BoolVar(&interpreter, "interpreter", false, "Start the script with the interpreter line")
	rootCmd.Flags().BoolVar(&escapeQuotes, "escape-quotes", false, "Escape quotes inside string literals")
	rootCmd.Flags().BoolVar(&dump, "dump", false, "Print the loaded plot description as JSON instead of a script")
	rootCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	rootCmd.AddCommand(chartsCmd())
	return rootCmd
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := newLogger()

	loadOpts := pyplot.LoadOptions{
		Sheet:  sheetName,
		Logger: logger,
	}
	if cmd.Flags().Changed("scatter") {
		loadOpts.Scatter = &scatter
	}

	plot, err := pyplot.Load(inputPath, loadOpts)
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	if err := applyOverrides(cmd, plot); err != nil {
		return err
	}

	if dump {
		jsonData, err := output.ToJSON(plot, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		return writeOutput(cmd, append(jsonData, '\n'))
	}

	opts := pyplot.DefaultOptions()
	opts.Interpreter = interpreter
	opts.EscapeQuotes = escapeQuotes

	// Compose checks its input before the first line is written, so
	// stdout can be streamed.
	if outputPath == "" {
		lw := output.NewLineWriter(cmd.OutOrStdout())
		if err := pyplot.Compose(*plot, lw, opts); err != nil {
			return fmt.Errorf("compose failed: %w", err)
		}
		return lw.Err()
	}

	script := output.NewScript()
	if err := pyplot.Compose(*plot, script, opts); err != nil {
		return fmt.Errorf("compose failed: %w", err)
	}
	logger.Debug("composed script", "input", inputPath, "series", len(plot.Series), "lines", script.Len())

	return writeOutput(cmd, []byte(script.String()))
}

// applyOverrides layers command line flags over the loaded description.
func applyOverrides(cmd *cobra.Command, plot *models.Plot) error {
	flags := cmd.Flags()

	if flags.Changed("title") || flags.Changed("font-size") {
		size, err := decimal.NewFromString(fontSize)
		if err != nil {
			return fmt.Errorf("invalid font size: %s", fontSize)
		}
		switch {
		case flags.Changed("title"):
			plot.Title = optional.Some(models.Title{Text: title, FontSize: size})
		case plot.Title.IsSome():
			plot.Title = optional.Some(models.Title{Text: plot.Title.Unwrap().Text, FontSize: size})
		}
	}
	if flags.Changed("grid") {
		plot.Grid = grid
	}
	if flags.Changed("outer-color") {
		plot.Colors.Outer = optional.Some(outerColor)
	}
	if flags.Changed("inner-color") {
		plot.Colors.Inner = optional.Some(innerColor)
	}
	if flags.Changed("ticks") {
		switch m := models.TickMode(tickMode); m {
		case models.TickModeDerived, models.TickModeExplicit, models.TickModeNone:
			plot.Ticks.Mode = m
		default:
			return fmt.Errorf("invalid tick mode: %s (must be derived, explicit, or none)", tickMode)
		}
	}
	return nil
}

func writeOutput(cmd *cobra.Command, data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := cmd.OutOrStdout().Write(data)
	return err
}

func chartsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charts [input.xlsx]",
		Short: "List the charts embedded in a workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); os.IsNotExist(err) {
				return fmt.Errorf("file not found: %s", args[0])
			}
			charts, err := parser.ExtractCharts(args[0])
			if err != nil {
				return fmt.Errorf("chart discovery failed: %w", err)
			}
			newLogger().Debug("found charts", "input", args[0], "sheets", len(charts))
			jsonData, err := output.ChartsToJSON(charts, pretty)
			if err != nil {
				return fmt.Errorf("serialization failed: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(jsonData))
			return err
		},
	}
}
