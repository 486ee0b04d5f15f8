package memory

import (
	"github.com/vsinha/batchplan/pkg/domain/entities"
	"github.com/vsinha/batchplan/pkg/domain/repositories"
)

// DemandRepository provides in-memory demand storage
type DemandRepository struct {
	demands []entities.DemandTask
}

// NewDemandRepository creates a new in-memory demand repository
func NewDemandRepository() *DemandRepository {
	return &DemandRepository{
		demands: []entities.DemandTask{},
	}
}

// Verify interface compliance
var _ repositories.DemandRepository = (*DemandRepository)(nil)

// LoadDemands loads demands into the repository
func (r *DemandRepository) LoadDemands(demands []*entities.DemandTask) error {
	for _, demand := range demands {
		r.demands = append(r.demands, *demand)
	}
	return nil
}

// GetDemands returns copies of all demand tasks in load order
func (r *DemandRepository) GetDemands() ([]*entities.DemandTask, error) {
	demands := make([]*entities.DemandTask, 0, len(r.demands))
	for i := range r.demands {
		demand := r.demands[i]
		demands = append(demands, &demand)
	}
	return demands, nil
}
