package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder records planning runs in Prometheus metrics.
type PromRecorder struct {
	tasks     *prometheus.CounterVec
	batches   *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	shortages *prometheus.CounterVec
	fill      prometheus.Histogram
}

// NewPromRecorder registers planning metrics on the provided registerer.
// If reg is nil, the default registerer is used. If the collectors are already
// registered, the existing ones are reused.
func NewPromRecorder(reg prometheus.Registerer) (*PromRecorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &PromRecorder{
		tasks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "batchplan_tasks_total",
			Help: "Demand tasks processed, by scheduling outcome",
		}, []string{"outcome"}),
		batches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "batchplan_batches_total",
			Help: "Preparation batches emitted, by recipe",
		}, []string{"recipe"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "batchplan_rows_dropped_total",
			Help: "Demand rows dropped during normalization, by reason",
		}, []string{"reason"}),
		shortages: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "batchplan_shortages_total",
			Help: "Unschedulable tasks, by reason",
		}, []string{"reason"}),
		fill: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "batchplan_batch_fill_ratio",
			Help:    "Vessel fill ratio of emitted batches",
			Buckets: prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
	}

	var err error
	if r.tasks, err = registerCounterVec(reg, r.tasks); err != nil {
		return nil, err
	}
	if r.batches, err = registerCounterVec(reg, r.batches); err != nil {
		return nil, err
	}
	if r.dropped, err = registerCounterVec(reg, r.dropped); err != nil {
		return nil, err
	}
	if r.shortages, err = registerCounterVec(reg, r.shortages); err != nil {
		return nil, err
	}
	if err := reg.Register(r.fill); err != nil {
		are, ok := err.(prometheus.AlreadyRegisteredError)
		if !ok {
			return nil, err
		}
		r.fill = are.ExistingCollector.(prometheus.Histogram)
	}
	return r, nil
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(*prometheus.CounterVec), nil
		}
		return nil, err
	}
	return c, nil
}

// RecordRun adds one run's outcomes to the counters.
func (r *PromRecorder) RecordRun(s RunSummary) error {
	r.tasks.WithLabelValues("schedulable").Add(float64(s.SchedulableTasks))
	r.tasks.WithLabelValues("shortage").Add(float64(len(s.Shortages)))
	for reason, n := range s.DroppedRows {
		r.dropped.WithLabelValues(reason).Add(float64(n))
	}
	for i := range s.Batches {
		b := &s.Batches[i]
		r.batches.WithLabelValues(string(b.RecipeID)).Inc()
		if !b.CapacityUnknown {
			r.fill.Observe(b.FillRatio())
		}
	}
	for _, rec := range s.Shortages {
		r.shortages.WithLabelValues(rec.Reason.String()).Inc()
	}
	return nil
}
