package output

import (
	"fmt"
	"io"

	"github.com/vsinha/batchplan/pkg/application/dto"
)

// generateTextOutput prints a human-readable plan to stdout
func generateTextOutput(result *dto.PlanResult, config Config) error {
	w := config.stdout()
	s := result.Stats

	fmt.Fprintf(w, "📊 Batch Plan Summary (run %s)\n", result.RunID)
	fmt.Fprintf(w, "==============================\n\n")
	fmt.Fprintf(w, "Tasks: %d (schedulable %d, shortages %d, dropped rows %d)\n",
		s.Tasks, s.Schedulable, s.Shortages, s.DroppedRows)
	fmt.Fprintf(w, "Batches: %d (consolidated %d, runs saved %d)\n", s.Batches, s.ConsolidatedBatches, s.RunsSaved)
	fmt.Fprintf(w, "Fill ratio: mean %.2f, std-dev %.2f\n\n", s.MeanFillRatio, s.StdDevFillRatio)

	if len(result.Batches) > 0 {
		fmt.Fprintf(w, "📋 Batches:\n")
		writeBatchTable(w, result)
		fmt.Fprintln(w)
	}

	if len(result.Shortages) > 0 {
		fmt.Fprintf(w, "⚠️  Shortages:\n")
		fmt.Fprintf(w, "%-8s %-12s %-10s %-10s %-40s\n", "Recipe", "Fill Date", "Amount", "Code", "Reason")
		fmt.Fprintf(w, "%-8s %-12s %-10s %-10s %-40s\n", "--------", "------------", "----------", "----------", "----------------------------------------")
		for _, row := range ShortageRows(result.Shortages) {
			fmt.Fprintf(w, "%-8s %-12s %-10s %-10s %-40s\n", row[0], row[1], row[2], row[3], row[7])
		}
		fmt.Fprintln(w)
	}

	if config.Verbose && len(result.DroppedRows) > 0 {
		fmt.Fprintf(w, "🗑  Dropped demand rows:\n")
		for _, d := range result.DroppedRows {
			fmt.Fprintf(w, "  row %d: %s %q\n", d.Row, d.Reason, d.Value)
		}
	}
	return nil
}

func writeBatchTable(w io.Writer, result *dto.PlanResult) {
	fmt.Fprintf(w, "%-8s %-12s %-12s %-10s %-10s %-10s %-13s %s\n",
		"Lot", "Fill Date", "Deadline", "Total", "Capacity", "Slack", "Flag", "Products")
	fmt.Fprintf(w, "%-8s %-12s %-12s %-10s %-10s %-10s %-13s %s\n",
		"--------", "------------", "------------", "----------", "----------", "----------", "-------------", "--------")
	for i := range result.Batches {
		b := &result.Batches[i]
		capacity := b.Capacity.StringFixed(2)
		if b.CapacityUnknown {
			capacity = "?"
		}
		fmt.Fprintf(w, "%-8s %-12s %-12s %-10s %-10s %-10s %-13s %s\n",
			b.LotNumber(),
			formatDate(b.FillDate),
			formatOptionalDate(b.DeadlinePrepDay),
			b.TotalAmount.StringFixed(2),
			capacity,
			b.Slack.StringFixed(2),
			b.ConsolidationFlag(),
			b.Summary())
	}
}
