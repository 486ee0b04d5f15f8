package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vsinha/batchplan/pkg/application/dto"
	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/infrastructure/events"
	"github.com/vsinha/batchplan/pkg/infrastructure/logger"
)

// Planner runs one planning pass
type Planner interface {
	Plan(ctx context.Context, input dto.PlanInput) (*dto.PlanResult, error)
}

// Handlers contains all HTTP handlers
type Handlers struct {
	planner Planner
	events  events.EventStore
	log     logger.Logger
}

// NewHandlers creates a new handlers instance
func NewHandlers(planner Planner, log logger.Logger) *Handlers {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Handlers{planner: planner, log: log}
}

// WithEvents serves run audit trails from store
func (h *Handlers) WithEvents(store events.EventStore) *Handlers {
	h.events = store
	return h
}

// CreatePlanHandler handles POST /v1/plans
func (h *Handlers) CreatePlanHandler(c *gin.Context) {
	var input dto.PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Calendar == nil || input.Recipes == nil || input.Demand == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calendar, recipes and demand tables are required"})
		return
	}

	result, err := h.planner.Plan(c.Request.Context(), input)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	h.log.Infof("plan %s: %d batches, %d shortages", result.RunID, len(result.Batches), len(result.Shortages))
	c.JSON(http.StatusOK, result)
}

// PlanEventsHandler handles GET /v1/plans/:id/events
func (h *Handlers) PlanEventsHandler(c *gin.Context) {
	if h.events == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan history is disabled"})
		return
	}
	trail, err := h.events.ReadEvents(c.Param("id"), 1)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(trail) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"run_id": c.Param("id"), "events": trail})
}

// HealthHandler handles GET /healthz
func (h *Handlers) HealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusFor(err error) int {
	var schemaErr *entities.SchemaError
	switch {
	case errors.As(err, &schemaErr), errors.Is(err, entities.ErrCalendarEmpty):
		return http.StatusUnprocessableEntity
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
