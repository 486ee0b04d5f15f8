package output

import (
	"fmt"
	"strconv"
	"time"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// Lot export process rows
const (
	ProcessPrep      = 1
	ProcessPrepName  = "prep/PH"
	ProcessPrepNum   = 2
	ProcessBlend     = 2
	ProcessBlendName = "blend/fill"
	ProcessBlendNum  = 1
)

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(entities.DateLayout)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// ScheduleHeader returns the schedule table header with maxItems product groups
func ScheduleHeader(maxItems int) []string {
	header := []string{
		"recipe", "lot_no", "fill_date", "preferred_prep_day", "deadline_prep_day",
		"total_amount", "capacity", "slack", "consolidation", "line_count", "lines_saved",
	}
	for i := 1; i <= maxItems; i++ {
		header = append(header,
			fmt.Sprintf("item%d_code", i),
			fmt.Sprintf("item%d_name", i),
			fmt.Sprintf("item%d_cell", i),
			fmt.Sprintf("item%d_fill_date", i),
			fmt.Sprintf("item%d_amount", i),
			fmt.Sprintf("item%d_status", i),
		)
	}
	return append(header, "summary")
}

// ScheduleRows renders one row per batch. Product groups beyond a batch's line
// count are left blank.
func ScheduleRows(batches []entities.Batch, maxItems int) [][]string {
	rows := make([][]string, 0, len(batches))
	for i := range batches {
		b := &batches[i]
		capacity := b.Capacity.StringFixed(2)
		if b.CapacityUnknown {
			capacity = ""
		}
		row := []string{
			string(b.RecipeID),
			b.LotNumber(),
			formatDate(b.FillDate),
			formatOptionalDate(b.PreferredPrepDay),
			formatOptionalDate(b.DeadlinePrepDay),
			b.TotalAmount.StringFixed(2),
			capacity,
			b.Slack.StringFixed(2),
			b.ConsolidationFlag(),
			strconv.Itoa(len(b.Lines)),
			strconv.Itoa(b.LinesSaved()),
		}
		for j := 0; j < maxItems; j++ {
			if j >= len(b.Lines) {
				row = append(row, "", "", "", "", "", "")
				continue
			}
			line := b.Lines[j]
			row = append(row,
				line.Product.Code,
				line.Product.Name,
				strconv.Itoa(line.Product.CellCount),
				formatDate(line.FillDate),
				line.Amount.StringFixed(2),
				line.Status(),
			)
		}
		rows = append(rows, append(row, b.Summary()))
	}
	return rows
}

// ShortageHeader returns the shortage table header
func ShortageHeader() []string {
	return []string{"recipe", "fill_date", "amount", "code", "name", "cell", "lead_time_days", "reason"}
}

// ShortageRows renders one row per unschedulable task
func ShortageRows(shortages []entities.ShortageRecord) [][]string {
	rows := make([][]string, 0, len(shortages))
	for _, s := range shortages {
		rows = append(rows, []string{
			string(s.RecipeID),
			formatDate(s.FillDate),
			s.RequiredAmount.StringFixed(2),
			s.Product.Code,
			s.Product.Name,
			strconv.Itoa(s.Product.CellCount),
			strconv.Itoa(s.LeadTimeDays),
			s.Reason.String(),
		})
	}
	return rows
}

// LotHeader returns the lot/process export header
func LotHeader() []string {
	return []string{
		"id", "lot_no", "item_code", "item_name",
		"process_code", "process_name", "num", "prep_amount",
		"production_deadline", "before_arrange_ids",
		"arrange_data_type", "arrange_status",
	}
}

// LotRows renders two process rows per batch. All prep rows come first, numbered
// from 1; each blend row references the id of its batch's prep row.
func LotRows(batches []entities.Batch) [][]string {
	n := len(batches)
	rows := make([][]string, 0, 2*n)
	for pass := 0; pass < 2; pass++ {
		for i := range batches {
			b := &batches[i]
			id := pass*n + i + 1

			process, name, num, before := ProcessPrep, ProcessPrepName, ProcessPrepNum, ""
			if pass == 1 {
				process, name, num = ProcessBlend, ProcessBlendName, ProcessBlendNum
				before = strconv.Itoa(i + 1)
			}

			prepAmount := b.Capacity.StringFixed(2)
			if b.CapacityUnknown {
				prepAmount = b.TotalAmount.StringFixed(2)
			}

			rows = append(rows, []string{
				strconv.Itoa(id),
				b.LotNumber(),
				b.ItemCode,
				string(b.RecipeID),
				strconv.Itoa(process),
				name,
				strconv.Itoa(num),
				prepAmount,
				formatOptionalDate(b.DeadlinePrepDay),
				before,
				"0",
				"0",
			})
		}
	}
	return rows
}
