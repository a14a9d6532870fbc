package db

import (
	"sync"

	"safetypath/models"

	"github.com/samber/lo"
)

type ResourceRepository interface {
	GetResources() ([]models.Resource, error)
	GetResourcesByPathway(pathwayID int) ([]models.Resource, error)
}

type InMemoryResourceRepository struct {
	mu        sync.RWMutex
	resources []models.Resource
}

func NewInMemoryResourceRepository(resources []models.Resource) *InMemoryResourceRepository {
	return &InMemoryResourceRepository{resources: resources}
}

func (r *InMemoryResourceRepository) GetResources() ([]models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Resource, len(r.resources))
	copy(result, r.resources)
	return result, nil
}

func (r *InMemoryResourceRepository) GetResourcesByPathway(pathwayID int) ([]models.Resource, error) {
	all, err := r.GetResources()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(res models.Resource, _ int) bool {
		return res.PathwayID == pathwayID
	}), nil
}
