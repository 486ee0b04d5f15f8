package batching

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

const amountPlaces = entities.AmountPlaces

// Config holds the consolidation limits
type Config struct {
	// MaxItemsPerBatch caps the number of product lines sharing one vessel.
	MaxItemsPerBatch int
}

// Consolidator packs schedulable tasks into capacity-bounded vessel runs.
//
// Packing is greedy and FIFO per recipe: each batch takes tasks from the head of
// the recipe's queue until the vessel is full or MaxItemsPerBatch lines are used.
// A task that does not fit is split; the absorbed part closes the batch and the
// remainder returns to the front of the queue for the next one. No task is
// dropped, so the line amounts of a task always sum to its required amount.
type Consolidator struct {
	config Config
	log    logger.Logger
}

// NewConsolidator creates a consolidator. A nil logger disables logging.
func NewConsolidator(config Config, log logger.Logger) *Consolidator {
	if config.MaxItemsPerBatch < 1 {
		config.MaxItemsPerBatch = 1
	}
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Consolidator{config: config, log: log}
}

// Consolidate groups tasks by recipe, in order of first appearance, and packs each
// group in input order. Tasks are expected sorted by deadline as produced by the
// scheduler; no re-sorting happens here.
func (c *Consolidator) Consolidate(tasks []entities.ScheduledTask) []entities.Batch {
	order, groups := groupByRecipe(tasks)

	var batches []entities.Batch
	for _, recipe := range order {
		group := groups[recipe]
		capacity := group[0].MaxBatchSize

		var recipeBatches []entities.Batch
		if capacity.Round(amountPlaces).IsPositive() {
			recipeBatches = c.pack(recipe, capacity, newTaskQueue(group))
		} else {
			c.log.Warnf("recipe %s has no vessel capacity, emitting %d unconsolidated batches", recipe, len(group))
			recipeBatches = c.single(recipe, newTaskQueue(group))
		}
		batches = append(batches, recipeBatches...)
	}

	c.log.Infof("consolidated %d tasks into %d batches across %d recipes", len(tasks), len(batches), len(order))
	return batches
}

func groupByRecipe(tasks []entities.ScheduledTask) ([]entities.RecipeID, map[entities.RecipeID][]*entities.ScheduledTask) {
	var order []entities.RecipeID
	groups := make(map[entities.RecipeID][]*entities.ScheduledTask)
	for i := range tasks {
		id := tasks[i].RecipeID
		if _, ok := groups[id]; !ok {
			order = append(order, id)
		}
		groups[id] = append(groups[id], &tasks[i])
	}
	return order, groups
}

func (c *Consolidator) pack(recipe entities.RecipeID, capacity decimal.Decimal, q *taskQueue) []entities.Batch {
	var batches []entities.Batch

	for q.Len() > 0 {
		var (
			lines []entities.BatchLine
			total = decimal.Zero
			last  pending
		)

		for len(lines) < c.config.MaxItemsPerBatch && q.Len() > 0 {
			// under half a unit of room would round to an empty line
			room := capacity.Sub(total)
			if !room.Round(amountPlaces).IsPositive() {
				break
			}

			head := q.Pop()
			last = head

			// a remainder that rounds to zero stays with the line it came from
			if !head.remaining.Sub(room).Round(amountPlaces).IsPositive() {
				total = total.Add(head.remaining)
				lines = append(lines, newLine(head, head.remaining, false))
				continue
			}

			// vessel is full: absorb what fits and requeue the rest
			total = total.Add(room)
			lines = append(lines, newLine(head, room, true))
			head.remaining = head.remaining.Sub(room)
			q.PushFront(head)
			break
		}

		batches = append(batches, c.close(recipe, len(batches)+1, capacity, total, lines, last, q))
	}

	return batches
}

// single emits one batch per task for recipes without a usable capacity.
func (c *Consolidator) single(recipe entities.RecipeID, q *taskQueue) []entities.Batch {
	var batches []entities.Batch
	for q.Len() > 0 {
		head := q.Pop()
		lines := []entities.BatchLine{newLine(head, head.remaining, false)}
		b := c.close(recipe, len(batches)+1, decimal.Zero, head.remaining, lines, head, q)
		b.CapacityUnknown = true
		b.Slack = decimal.Zero
		batches = append(batches, b)
	}
	return batches
}

// close finalizes a batch. The displayed prep days follow the next pending task of
// the recipe when one remains, otherwise the last task absorbed.
func (c *Consolidator) close(
	recipe entities.RecipeID,
	sequence int,
	capacity, total decimal.Decimal,
	lines []entities.BatchLine,
	last pending,
	q *taskQueue,
) entities.Batch {
	ref := last.task
	if next, ok := q.Peek(); ok {
		ref = next.task
	}

	for i := range lines {
		lines[i].Amount = lines[i].Amount.Round(amountPlaces)
		if lines[i].OriginalAmount.Valid {
			lines[i].OriginalAmount.Decimal = lines[i].OriginalAmount.Decimal.Round(amountPlaces)
		}
	}

	b := entities.Batch{
		RecipeID:         recipe,
		ItemCode:         ref.ItemCode,
		Sequence:         sequence,
		FillDate:         lines[0].FillDate,
		PreferredPrepDay: ref.PreferredPrepDay,
		DeadlinePrepDay:  ref.DeadlinePrepDay,
		TotalAmount:      total.Round(amountPlaces),
		Capacity:         capacity,
		Slack:            capacity.Sub(total).Round(amountPlaces),
		Lines:            lines,
	}

	c.log.Debugw("batch closed", map[string]any{
		"recipe": string(recipe),
		"lot":    b.LotNumber(),
		"lines":  len(lines),
		"total":  b.TotalAmount.String(),
		"slack":  b.Slack.String(),
	})
	return b
}

func newLine(p pending, amount decimal.Decimal, partial bool) entities.BatchLine {
	line := entities.BatchLine{
		TaskID:    p.task.ID,
		Product:   p.task.Product,
		FillDate:  p.task.FillDate,
		Amount:    amount,
		IsPartial: partial,
	}
	if partial {
		line.OriginalAmount = decimal.NewNullDecimal(p.remaining)
	}
	return line
}
