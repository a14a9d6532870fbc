package db

import (
	"fmt"
	"sync"

	"safetypath/models"
)

type UserRepository interface {
	GetUserByID(id int) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(id int, updates map[string]any) error
}

// InMemoryUserRepository keeps users in a map guarded by a RWMutex. Updates to
// the same id serialize under the lock; last write wins.
type InMemoryUserRepository struct {
	mu        sync.RWMutex
	users     map[int]*models.User
	currentID int
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		users:     make(map[int]*models.User),
		currentID: 1,
	}
}

func (r *InMemoryUserRepository) GetUserByID(id int) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) GetUserByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryUserRepository) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Uniqueness is checked under the same lock as the insert so two
	// concurrent registrations of one name cannot both succeed.
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return ErrDuplicate
		}
	}

	user.ID = r.currentID
	r.currentID++

	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *InMemoryUserRepository) UpdateUser(id int, updates map[string]any) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}

	// Stage into a copy so a rejected field leaves the live record untouched.
	staged := *user
	for field, value := range updates {
		switch field {
		case "persona":
			staged.Persona, ok = value.(string)
		case "region":
			staged.Region, ok = value.(string)
		case "skills":
			staged.Skills, ok = value.([]string)
		case "progress":
			staged.Progress, ok = value.(map[string]any)
		default:
			return fmt.Errorf("unknown user field: %s", field)
		}
		if !ok {
			return fmt.Errorf("wrong value type for user field: %s", field)
		}
	}

	*user = staged
	return nil
}
