package db

import (
	"sync"

	"safetypath/models"

	"github.com/samber/lo"
)

type PathwayRepository interface {
	GetPathways() ([]models.Pathway, error)
	GetPathwaysByPersona(persona string) ([]models.Pathway, error)
	GetPathwayByID(id int) (*models.Pathway, error)
}

// InMemoryPathwayRepository serves the fixture pathway catalog. The catalog is
// read-only after construction, so reads take no lock beyond the RWMutex kept
// for symmetry with the user store.
type InMemoryPathwayRepository struct {
	mu       sync.RWMutex
	pathways map[int]models.Pathway
	ordered  []int
}

func NewInMemoryPathwayRepository(pathways []models.Pathway) *InMemoryPathwayRepository {
	repo := &InMemoryPathwayRepository{
		pathways: make(map[int]models.Pathway, len(pathways)),
		ordered:  make([]int, 0, len(pathways)),
	}
	for _, pathway := range pathways {
		repo.pathways[pathway.ID] = pathway
		repo.ordered = append(repo.ordered, pathway.ID)
	}
	return repo
}

func (r *InMemoryPathwayRepository) GetPathways() ([]models.Pathway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Pathway, 0, len(r.ordered))
	for _, id := range r.ordered {
		result = append(result, r.pathways[id])
	}
	return result, nil
}

func (r *InMemoryPathwayRepository) GetPathwaysByPersona(persona string) ([]models.Pathway, error) {
	all, err := r.GetPathways()
	if err != nil {
		return nil, err
	}
	return lo.Filter(all, func(p models.Pathway, _ int) bool {
		return p.Persona == persona
	}), nil
}

func (r *InMemoryPathwayRepository) GetPathwayByID(id int) (*models.Pathway, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pathway, ok := r.pathways[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &pathway, nil
}
