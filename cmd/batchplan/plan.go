package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vsinha/batchplan/pkg/interfaces/cli/commands"
)

var planFlags struct {
	inputDir     string
	calendarFile string
	recipesFile  string
	demandFile   string
	outputDir    string
	format       string
	lots         bool
	maxItems     int
	windowStart  string
	windowEnd    string
	startYear    int
	verbose      bool
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Schedule demand and consolidate it into vessel batches",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&planFlags.inputDir, "scenario", "", "directory holding the calendar, recipe master and demand files")
	f.StringVar(&planFlags.calendarFile, "calendar", "", "working-day calendar file")
	f.StringVar(&planFlags.recipesFile, "recipes", "", "recipe master file")
	f.StringVar(&planFlags.demandFile, "demand", "", "demand file")
	f.StringVarP(&planFlags.outputDir, "output", "o", "", "output directory")
	f.StringVarP(&planFlags.format, "format", "f", "", "output format: text, json, csv, xlsx")
	f.BoolVar(&planFlags.lots, "lots", false, "also write the lot/process export")
	f.IntVar(&planFlags.maxItems, "max-items", 0, "maximum products per batch")
	f.StringVar(&planFlags.windowStart, "from", "", "first fill date to plan (YYYY-MM-DD)")
	f.StringVar(&planFlags.windowEnd, "to", "", "last fill date to plan (YYYY-MM-DD)")
	f.IntVar(&planFlags.startYear, "start-year", 0, "year of the first calendar date")
	f.BoolVarP(&planFlags.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("scenario") {
		cfg.Inputs.Dir = planFlags.inputDir
	}
	if flags.Changed("calendar") {
		cfg.Inputs.Calendar = planFlags.calendarFile
	}
	if flags.Changed("recipes") {
		cfg.Inputs.Recipes = planFlags.recipesFile
	}
	if flags.Changed("demand") {
		cfg.Inputs.Demand = planFlags.demandFile
	}
	if flags.Changed("output") {
		cfg.Output.Dir = planFlags.outputDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = planFlags.format
	}
	if flags.Changed("lots") {
		cfg.Output.Lots = planFlags.lots
	}
	if flags.Changed("max-items") {
		cfg.Planning.MaxItemsPerBatch = planFlags.maxItems
	}
	if flags.Changed("from") {
		cfg.Planning.Window.Start = planFlags.windowStart
	}
	if flags.Changed("to") {
		cfg.Planning.Window.End = planFlags.windowEnd
	}
	if flags.Changed("start-year") {
		cfg.Planning.CalendarStartYear = planFlags.startYear
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return commands.NewPlanCommand(commands.Config{
		Planning: cfg.Planning,
		Inputs:   cfg.Inputs,
		Output:   cfg.Output,
		Verbose:  planFlags.verbose,
	}).Execute(ctx)
}
