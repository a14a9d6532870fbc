package db

import (
	"sync"

	"safetypath/models"
)

type ToolRepository interface {
	GetTools() ([]models.Tool, error)
}

type InMemoryToolRepository struct {
	mu    sync.RWMutex
	tools []models.Tool
}

func NewInMemoryToolRepository(tools []models.Tool) *InMemoryToolRepository {
	return &InMemoryToolRepository{tools: tools}
}

func (r *InMemoryToolRepository) GetTools() ([]models.Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Tool, len(r.tools))
	copy(result, r.tools)
	return result, nil
}
