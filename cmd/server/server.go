package main

import (
	"fmt"
	"log"
	"net/http"

	"safetypath/config"
	"safetypath/db"
	"safetypath/handlers"
	"safetypath/services"
	"safetypath/services/auth"
	"safetypath/services/personalize"
	"safetypath/services/resourceindex"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.LLMAPIKey == "" {
		log.Fatal("LLM_API_KEY environment variable is required")
	}

	var userRepo db.UserRepository
	var pathwayRepo db.PathwayRepository
	var toolRepo db.ToolRepository
	var resourceRepo db.ResourceRepository

	if cfg.DatabaseURL != "" {
		pgUsers, err := db.NewPostgresUserRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize user database: %v", err)
		}
		defer pgUsers.Close()

		pgPathways, err := db.NewPostgresPathwayRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize pathway database: %v", err)
		}
		defer pgPathways.Close()

		pgTools, err := db.NewPostgresToolRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize tool database: %v", err)
		}
		defer pgTools.Close()

		pgResources, err := db.NewPostgresResourceRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to initialize resource database: %v", err)
		}
		defer pgResources.Close()

		userRepo, pathwayRepo, toolRepo, resourceRepo = pgUsers, pgPathways, pgTools, pgResources
	} else {
		log.Printf("[INFO] DB_URL not set, serving seeded in-memory content")
		userRepo = db.NewInMemoryUserRepository()
		pathwayRepo = db.NewInMemoryPathwayRepository(db.SeedPathways())
		toolRepo = db.NewInMemoryToolRepository(db.SeedTools())
		resourceRepo = db.NewInMemoryResourceRepository(db.SeedResources())
	}

	contentService := services.NewContentService(pathwayRepo, toolRepo, resourceRepo)
	contentHandler := handlers.NewContentHandler(contentService)

	sessions := auth.NewSessionManager()
	userService := services.NewUserService(userRepo)
	userHandler := handlers.NewUserHandler(userService, sessions)

	completer, err := personalize.NewCompleter(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize completion gateway: %v", err)
	}

	var resourceFinder personalize.ResourceFinder
	if cfg.PineconeAPIKey != "" {
		indexService, err := resourceindex.NewService(cfg.PineconeAPIKey, cfg.EmbeddingsAPIKey, cfg.PineconeIndexName)
		if err != nil {
			log.Fatalf("Failed to initialize resource index service: %v", err)
		}
		resourceFinder = indexService
	}

	personalizeService := personalize.NewService(completer, services.PersonaIDs(), resourceFinder)
	personalizeHandler := handlers.NewPersonalizeHandler(personalizeService)

	router := mux.NewRouter()

	router.Use(corsMiddleware)
	router.Use(jsonMiddleware)

	router.PathPrefix("/").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods("OPTIONS")

	contentHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	personalizeHandler.RegisterRoutes(router)

	router.HandleFunc("/health", healthCheckHandler).Methods("GET")

	addr := ":" + cfg.Port
	fmt.Printf("Server starting on port %s\n", cfg.Port)

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS, PATCH")
		w.Header().Set("Access-Control-Allow-Headers", "*")
		w.Header().Set("Access-Control-Expose-Headers", "*")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func jsonMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "healthy"}`))
}
