package services

import (
	"errors"
	"testing"

	"safetypath/db"
	"safetypath/models"
)

func TestRegister(t *testing.T) {
	service := NewUserService(db.NewInMemoryUserRepository())

	t.Run("successful registration", func(t *testing.T) {
		user, err := service.Register(&models.RegisterRequest{
			Username: "ada",
			Password: "s3cret",
			Persona:  "learner",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.ID == 0 {
			t.Error("registered user should have an id")
		}
		if user.Persona != "learner" {
			t.Errorf("expected persona learner, got %q", user.Persona)
		}
		if user.PasswordHash == "s3cret" {
			t.Error("password must not be stored in the clear")
		}
	})

	t.Run("duplicate username", func(t *testing.T) {
		_, err := service.Register(&models.RegisterRequest{Username: "ada", Password: "other"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})

	t.Run("blank username", func(t *testing.T) {
		if _, err := service.Register(&models.RegisterRequest{Username: "  ", Password: "x"}); err == nil {
			t.Error("expected an error for a blank username")
		}
	})

	t.Run("unknown persona", func(t *testing.T) {
		_, err := service.Register(&models.RegisterRequest{Username: "bob", Password: "x", Persona: "wizard"})
		if !errors.Is(err, ErrUnknownPersona) {
			t.Errorf("expected ErrUnknownPersona, got %v", err)
		}
	})

	t.Run("concurrent registration losing the insert race", func(t *testing.T) {
		repo := &racingUserRepo{UserRepository: db.NewInMemoryUserRepository()}
		service := NewUserService(repo)

		_, err := service.Register(&models.RegisterRequest{Username: "eve", Password: "x"})
		if !errors.Is(err, ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

// racingUserRepo simulates another registration of the same name landing
// between the availability check and the insert.
type racingUserRepo struct {
	db.UserRepository
}

func (r *racingUserRepo) CreateUser(user *models.User) error {
	rival := *user
	if err := r.UserRepository.CreateUser(&rival); err != nil {
		return err
	}
	return r.UserRepository.CreateUser(user)
}

func TestLogin(t *testing.T) {
	service := NewUserService(db.NewInMemoryUserRepository())
	if _, err := service.Register(&models.RegisterRequest{Username: "ada", Password: "s3cret"}); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	t.Run("correct credentials", func(t *testing.T) {
		user, err := service.Login(&models.LoginRequest{Username: "ada", Password: "s3cret"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if user.Username != "ada" {
			t.Errorf("expected ada, got %q", user.Username)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login(&models.LoginRequest{Username: "ada", Password: "nope"})
		if !errors.Is(err, ErrInvalidCredential) {
			t.Errorf("expected ErrInvalidCredential, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.Login(&models.LoginRequest{Username: "ghost", Password: "x"})
		if !errors.Is(err, ErrInvalidCredential) {
			t.Errorf("expected ErrInvalidCredential, got %v", err)
		}
	})
}

func TestSetPersona(t *testing.T) {
	service := NewUserService(db.NewInMemoryUserRepository())
	user, err := service.Register(&models.RegisterRequest{Username: "ada", Password: "s3cret"})
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	t.Run("valid persona", func(t *testing.T) {
		updated, err := service.SetPersona(user.ID, "policymaker")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Persona != "policymaker" {
			t.Errorf("expected policymaker, got %q", updated.Persona)
		}
	})

	t.Run("unknown persona", func(t *testing.T) {
		_, err := service.SetPersona(user.ID, "wizard")
		if !errors.Is(err, ErrUnknownPersona) {
			t.Errorf("expected ErrUnknownPersona, got %v", err)
		}
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := service.SetPersona(999, "learner")
		if !errors.Is(err, db.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})
}
