package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"safetypath/db"
	"safetypath/models"
	"safetypath/services/auth"
)

var (
	ErrUsernameTaken     = errors.New("username already taken")
	ErrInvalidCredential = errors.New("invalid username or password")
	ErrUnknownPersona    = errors.New("unknown persona")
)

// UserService handles registration, login, and the persona mutation.
type UserService struct {
	repo db.UserRepository
}

func NewUserService(repo db.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Register(req *models.RegisterRequest) (*models.User, error) {
	log.Printf("[INFO] Starting user registration for %q", req.Username)

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if req.Persona != "" && !IsValidPersona(req.Persona) {
		return nil, ErrUnknownPersona
	}

	if _, err := s.repo.GetUserByUsername(username); err == nil {
		log.Printf("[ERROR] Registration failed: username %q taken", username)
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Persona:      req.Persona,
		Region:       req.Region,
	}
	if err := s.repo.CreateUser(user); err != nil {
		// The store enforces uniqueness under its own lock; a concurrent
		// registration can win between the check above and the insert.
		if errors.Is(err, db.ErrDuplicate) {
			log.Printf("[ERROR] Registration failed: username %q taken", username)
			return nil, ErrUsernameTaken
		}
		log.Printf("[ERROR] Failed to create user: %v", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Printf("[INFO] Successfully registered user %q with ID %d", username, user.ID)
	return user, nil
}

func (s *UserService) Login(req *models.LoginRequest) (*models.User, error) {
	log.Printf("[INFO] Starting login for %q", req.Username)

	user, err := s.repo.GetUserByUsername(strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredential
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		log.Printf("[ERROR] Login failed for %q: bad password", req.Username)
		return nil, ErrInvalidCredential
	}

	log.Printf("[INFO] Successfully logged in user %q", req.Username)
	return user, nil
}

func (s *UserService) GetUser(id int) (*models.User, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid user ID: %d", id)
	}
	return s.repo.GetUserByID(id)
}

// SetPersona updates the user's persona, the only user field this scope
// mutates.
func (s *UserService) SetPersona(userID int, persona string) (*models.User, error) {
	log.Printf("[INFO] Starting persona update for user %d to %q", userID, persona)

	if !IsValidPersona(persona) {
		return nil, ErrUnknownPersona
	}

	if err := s.repo.UpdateUser(userID, map[string]any{"persona": persona}); err != nil {
		log.Printf("[ERROR] Failed to update persona for user %d: %v", userID, err)
		return nil, err
	}

	log.Printf("[INFO] Successfully updated persona for user %d", userID)
	return s.repo.GetUserByID(userID)
}
