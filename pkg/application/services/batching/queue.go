package batching

import (
	"github.com/shopspring/decimal"

	"github.com/vsinha/batchplan/pkg/domain/entities"
)

// pending is a scheduled task with the amount still to be packed
type pending struct {
	task      *entities.ScheduledTask
	remaining decimal.Decimal
}

// taskQueue is a FIFO of pending tasks for one recipe. A partially packed task is
// pushed back to the front so it opens the next batch.
type taskQueue struct {
	items []pending
	head  int
}

func newTaskQueue(tasks []*entities.ScheduledTask) *taskQueue {
	items := make([]pending, len(tasks))
	for i, t := range tasks {
		items[i] = pending{task: t, remaining: t.RequiredAmount}
	}
	return &taskQueue{items: items}
}

func (q *taskQueue) Len() int {
	return len(q.items) - q.head
}

func (q *taskQueue) Peek() (pending, bool) {
	if q.Len() == 0 {
		return pending{}, false
	}
	return q.items[q.head], true
}

func (q *taskQueue) Pop() pending {
	p := q.items[q.head]
	q.items[q.head] = pending{}
	q.head++
	return p
}

// PushFront re-queues p ahead of every other pending task.
func (q *taskQueue) PushFront(p pending) {
	if q.head > 0 {
		q.head--
		q.items[q.head] = p
		return
	}
	q.items = append([]pending{p}, q.items...)
}
