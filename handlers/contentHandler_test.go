package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"safetypath/db"
	"safetypath/models"
	"safetypath/services"

	"github.com/gorilla/mux"
)

func newContentRouter() *mux.Router {
	service := services.NewContentService(
		db.NewInMemoryPathwayRepository(db.SeedPathways()),
		db.NewInMemoryToolRepository(db.SeedTools()),
		db.NewInMemoryResourceRepository(db.SeedResources()),
	)
	router := mux.NewRouter()
	NewContentHandler(service).RegisterRoutes(router)
	return router
}

func TestGetPersonasEndpoint(t *testing.T) {
	router := newContentRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/personas", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}

	var response models.PersonaCatalogResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(response.Personas) != 3 {
		t.Errorf("expected 3 personas, got %d", len(response.Personas))
	}
	if len(response.Stats) == 0 {
		t.Error("expected landing-page stats")
	}
}

func TestGetPathwaysEndpoint(t *testing.T) {
	router := newContentRouter()

	tests := []struct {
		name       string
		url        string
		wantStatus int
		wantCount  int
	}{
		{"all pathways", "/api/pathways", http.StatusOK, 5},
		{"persona filter", "/api/pathways?persona=learner", http.StatusOK, 2},
		{"unknown persona", "/api/pathways?persona=wizard", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest("GET", tt.url, nil))

			if recorder.Code != tt.wantStatus {
				t.Fatalf("expected %d, got %d", tt.wantStatus, recorder.Code)
			}
			if tt.wantStatus != http.StatusOK {
				var body map[string]string
				if err := json.NewDecoder(recorder.Body).Decode(&body); err != nil {
					t.Fatalf("failed to decode error body: %v", err)
				}
				if body["error"] == "" {
					t.Error("error responses should carry an error message")
				}
				return
			}

			var pathways []models.Pathway
			if err := json.NewDecoder(recorder.Body).Decode(&pathways); err != nil {
				t.Fatalf("failed to decode response: %v", err)
			}
			if len(pathways) != tt.wantCount {
				t.Errorf("expected %d pathways, got %d", tt.wantCount, len(pathways))
			}
		})
	}
}

func TestGetPathwayByIDEndpoint(t *testing.T) {
	router := newContentRouter()

	t.Run("existing pathway", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/pathways/1", nil))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var pathway models.Pathway
		if err := json.NewDecoder(recorder.Body).Decode(&pathway); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if pathway.ID != 1 {
			t.Errorf("expected pathway 1, got %d", pathway.ID)
		}
	})

	t.Run("missing pathway", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/pathways/999", nil))

		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
	})

	t.Run("non-numeric id does not match the route", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/pathways/abc", nil))

		if recorder.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", recorder.Code)
		}
	})
}

func TestGetToolsEndpoint(t *testing.T) {
	router := newContentRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/tools", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var tools []models.Tool
	if err := json.NewDecoder(recorder.Body).Decode(&tools); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(tools) != 4 {
		t.Errorf("expected 4 tools, got %d", len(tools))
	}
}

func TestResourceEndpoints(t *testing.T) {
	router := newContentRouter()

	t.Run("all resources", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/resources", nil))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var resources []models.Resource
		if err := json.NewDecoder(recorder.Body).Decode(&resources); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if len(resources) != 6 {
			t.Errorf("expected 6 resources, got %d", len(resources))
		}
	})

	t.Run("pathway filter", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/resources?pathway=1", nil))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var resources []models.Resource
		if err := json.NewDecoder(recorder.Body).Decode(&resources); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		for _, resource := range resources {
			if resource.PathwayID != 1 {
				t.Errorf("resource %d references pathway %d", resource.ID, resource.PathwayID)
			}
		}
	})

	t.Run("bad pathway filter", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/resources?pathway=abc", nil))

		if recorder.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", recorder.Code)
		}
	})

	t.Run("search", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/resources/search?q=pause", nil))

		if recorder.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", recorder.Code)
		}
		var resources []models.Resource
		if err := json.NewDecoder(recorder.Body).Decode(&resources); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		found := false
		for _, resource := range resources {
			if resource.Title == "Pause AI" {
				found = true
			}
		}
		if !found {
			t.Error("expected Pause AI among search results")
		}
	})
}
