package repositories

import "github.com/vsinha/batchplan/pkg/domain/entities"

// DemandRepository provides access to normalized demand tasks
type DemandRepository interface {
	GetDemands() ([]*entities.DemandTask, error)
	LoadDemands(demands []*entities.DemandTask) error
}
