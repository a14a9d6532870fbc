package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"safetypath/db"
	"safetypath/models"
	"safetypath/services"
	"safetypath/services/auth"

	"github.com/gorilla/mux"
)

func newUserRouter() *mux.Router {
	service := services.NewUserService(db.NewInMemoryUserRepository())
	sessions := auth.NewSessionManager()
	router := mux.NewRouter()
	NewUserHandler(service, sessions).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router *mux.Router, method, url, body, token string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(method, url, strings.NewReader(body))
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, r)
	return recorder
}

func registerTestUser(t *testing.T, router *mux.Router) models.AuthResponse {
	t.Helper()
	recorder := doJSON(t, router, "POST", "/api/register", `{"username":"ada","password":"s3cret"}`, "")
	if recorder.Code != http.StatusCreated {
		t.Fatalf("registration failed with %d: %s", recorder.Code, recorder.Body.String())
	}
	var response models.AuthResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode auth response: %v", err)
	}
	return response
}

func TestRegisterEndpoint(t *testing.T) {
	router := newUserRouter()

	response := registerTestUser(t, router)
	if response.Token == "" {
		t.Error("registration should issue a session token")
	}
	if response.User == nil || response.User.Username != "ada" {
		t.Fatalf("unexpected user in response: %+v", response.User)
	}

	t.Run("password hash never leaves the server", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/login", `{"username":"ada","password":"s3cret"}`, "")
		if strings.Contains(recorder.Body.String(), "password") {
			t.Errorf("response body leaks password material: %s", recorder.Body.String())
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/register", `{"username":"ada","password":"x"}`, "")
		if recorder.Code != http.StatusConflict {
			t.Errorf("expected 409, got %d", recorder.Code)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/register", `not json`, "")
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", recorder.Code)
		}
	})
}

func TestLoginEndpoint(t *testing.T) {
	router := newUserRouter()
	registerTestUser(t, router)

	t.Run("correct credentials", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/login", `{"username":"ada","password":"s3cret"}`, "")
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var response models.AuthResponse
		if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
			t.Fatalf("failed to decode auth response: %v", err)
		}
		if response.Token == "" {
			t.Error("login should issue a session token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/login", `{"username":"ada","password":"nope"}`, "")
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", recorder.Code)
		}
	})
}

func TestGetUserEndpoint(t *testing.T) {
	router := newUserRouter()
	session := registerTestUser(t, router)

	t.Run("with valid token", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/user", "", session.Token)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var user models.User
		if err := json.NewDecoder(recorder.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if user.Username != "ada" {
			t.Errorf("expected ada, got %q", user.Username)
		}
	})

	t.Run("without token", func(t *testing.T) {
		recorder := doJSON(t, router, "GET", "/api/user", "", "")
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", recorder.Code)
		}
	})
}

func TestSetPersonaEndpoint(t *testing.T) {
	router := newUserRouter()
	session := registerTestUser(t, router)

	t.Run("unauthenticated", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/user/persona", `{"persona":"learner"}`, "")
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", recorder.Code)
		}
	})

	t.Run("unknown persona", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/user/persona", `{"persona":"wizard"}`, session.Token)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("valid persona", func(t *testing.T) {
		recorder := doJSON(t, router, "POST", "/api/user/persona", `{"persona":"parent"}`, session.Token)
		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var user models.User
		if err := json.NewDecoder(recorder.Body).Decode(&user); err != nil {
			t.Fatalf("failed to decode user: %v", err)
		}
		if user.Persona != "parent" {
			t.Errorf("expected persona parent, got %q", user.Persona)
		}
	})
}

func TestLogoutEndpoint(t *testing.T) {
	router := newUserRouter()
	session := registerTestUser(t, router)

	recorder := doJSON(t, router, "POST", "/api/logout", "", session.Token)
	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", recorder.Code)
	}

	recorder = doJSON(t, router, "GET", "/api/user", "", session.Token)
	if recorder.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", recorder.Code)
	}
}
