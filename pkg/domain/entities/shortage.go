package entities

// ShortageReason explains why a task could not be scheduled
type ShortageReason string

const (
	ReasonFillDateNotInCalendar ShortageReason = "fill date not in working-day calendar"
	ReasonLeadTimeOutOfRange    ShortageReason = "lead time exceeds calendar range"
)

func (r ShortageReason) String() string { return string(r) }

// ShortageRecord is an unschedulable task annotated with the reason it failed
type ShortageRecord struct {
	ScheduledTask
	Reason ShortageReason `json:"reason"`
}
