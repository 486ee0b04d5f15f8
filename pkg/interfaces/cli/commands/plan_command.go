package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vsinha/batchplan/pkg/application/dto"
	"github.com/vsinha/batchplan/pkg/application/services/orchestration"
	"github.com/vsinha/batchplan/pkg/infrastructure/config"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
	"github.com/vsinha/batchplan/pkg/infrastructure/metrics"
	"github.com/vsinha/batchplan/pkg/infrastructure/repositories/tabular"
	"github.com/vsinha/batchplan/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	Planning config.PlanningConfig
	Inputs   config.InputsConfig
	Output   config.OutputConfig
	Verbose  bool
	// Stdout receives text and JSON output; nil means os.Stdout.
	Stdout   io.Writer
	Recorder metrics.Recorder
}

// PlanCommand loads the input tables, runs the planner and writes the results
type PlanCommand struct {
	config Config
	log    logger.Logger
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	return &PlanCommand{
		config: config,
		log:    logger.New("plan"),
	}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if err := c.config.Output.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	orchestratorConfig, err := orchestration.ConfigFromPlanning(c.config.Planning)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	input, err := c.loadInput()
	if err != nil {
		return err
	}

	orchestrator := orchestration.NewPlanningOrchestrator(orchestratorConfig, c.config.Recorder, logger.New)
	result, err := orchestrator.Plan(ctx, *input)
	if err != nil {
		return fmt.Errorf("planning failed: %w", err)
	}

	return output.Generate(result, output.Config{
		Format:    c.config.Output.Format,
		OutputDir: c.config.Output.Dir,
		MaxItems:  c.config.Planning.MaxItemsPerBatch,
		Lots:      c.config.Output.Lots,
		Date:      result.PlannedAt,
		Verbose:   c.config.Verbose,
		Stdout:    c.config.Stdout,
		Log:       c.log,
	})
}

// loadInput reads the calendar, recipe master and demand tables
func (c *PlanCommand) loadInput() (*dto.PlanInput, error) {
	files := []struct {
		name string
		path string
	}{
		{"calendar", c.config.Inputs.Path(c.config.Inputs.Calendar)},
		{"recipe master", c.config.Inputs.Path(c.config.Inputs.Recipes)},
		{"demand", c.config.Inputs.Path(c.config.Inputs.Demand)},
	}
	for _, f := range files {
		if _, err := os.Stat(f.path); os.IsNotExist(err) {
			return nil, fmt.Errorf("%s file not found: %s", f.name, f.path)
		}
	}

	loader := tabular.NewLoader(logger.New("tabular"))
	var input dto.PlanInput
	var err error
	if input.Calendar, err = loader.LoadTable(files[0].path); err != nil {
		return nil, fmt.Errorf("error loading calendar: %w", err)
	}
	if input.Recipes, err = loader.LoadTable(files[1].path); err != nil {
		return nil, fmt.Errorf("error loading recipe master: %w", err)
	}
	if input.Demand, err = loader.LoadTable(files[2].path); err != nil {
		return nil, fmt.Errorf("error loading demand: %w", err)
	}

	if c.config.Verbose {
		c.log.Infof("loaded calendar (%d columns), %d recipe rows, %d demand rows",
			len(input.Calendar.Header), len(input.Recipes.Rows), len(input.Demand.Rows))
	}
	return &input, nil
}
