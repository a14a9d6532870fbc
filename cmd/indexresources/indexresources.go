package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"safetypath/config"
	"safetypath/db"
	"safetypath/models"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
	"google.golang.org/protobuf/types/known/structpb"
)

const indexNamespace = "safetypath-resources"

func main() {
	log.Printf("[INFO] Starting resource indexing process")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[ERROR] Failed to load configuration: %v", err)
	}

	if cfg.PineconeAPIKey == "" {
		log.Fatal("[ERROR] PINECONE_API_KEY environment variable is required")
	}

	if cfg.EmbeddingsAPIKey == "" {
		log.Fatal("[ERROR] EMBEDDINGS_API_KEY or LLM_API_KEY environment variable is required")
	}

	var resourceRepo db.ResourceRepository
	if cfg.DatabaseURL != "" {
		pgResources, err := db.NewPostgresResourceRepository(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("[ERROR] Failed to initialize resource database: %v", err)
		}
		defer pgResources.Close()
		resourceRepo = pgResources
	} else {
		log.Printf("[INFO] DB_URL not set, indexing the seeded resource catalog")
		resourceRepo = db.NewInMemoryResourceRepository(db.SeedResources())
	}

	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(cfg.EmbeddingsAPIKey),
	)
	if err != nil {
		log.Fatalf("[ERROR] Failed to create embeddings client: %v", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		log.Fatalf("[ERROR] Failed to create embedder: %v", err)
	}

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: cfg.PineconeAPIKey,
	})
	if err != nil {
		log.Fatalf("[ERROR] Failed to create Pinecone client: %v", err)
	}

	if err := ensurePineconeIndex(pc, cfg.PineconeIndexName); err != nil {
		log.Fatalf("[ERROR] Failed to ensure Pinecone index: %v", err)
	}

	resources, err := resourceRepo.GetResources()
	if err != nil {
		log.Fatalf("[ERROR] Failed to retrieve resources: %v", err)
	}

	log.Printf("[INFO] Retrieved %d resources from catalog", len(resources))

	vectors, err := createVectors(resources, embedder)
	if err != nil {
		log.Fatalf("[ERROR] Failed to create vectors: %v", err)
	}

	if err := upsertVectors(pc, cfg.PineconeIndexName, vectors); err != nil {
		log.Fatalf("[ERROR] Failed to upsert vectors: %v", err)
	}

	log.Printf("[INFO] Resource indexing process completed successfully")
}

func ensurePineconeIndex(pc *pinecone.Client, indexName string) error {
	ctx := context.Background()

	indexes, err := pc.ListIndexes(ctx)
	if err != nil {
		return fmt.Errorf("failed to list indexes: %w", err)
	}

	for _, idx := range indexes {
		if idx.Name == indexName {
			log.Printf("[INFO] Index %s already exists", indexName)
			return nil
		}
	}

	log.Printf("[INFO] Creating Pinecone index: %s", indexName)
	dimension := int32(1536) // OpenAI ada-002 embedding dimension
	deletionProtection := pinecone.DeletionProtectionDisabled
	metric := pinecone.Cosine

	_, err = pc.CreateServerlessIndex(ctx, &pinecone.CreateServerlessIndexRequest{
		Name:               indexName,
		Dimension:          &dimension,
		Metric:             &metric,
		Cloud:              pinecone.Aws,
		Region:             "us-east-1",
		DeletionProtection: &deletionProtection,
		Tags:               &pinecone.IndexTags{"environment": "development", "project": "safetypath-indexing"},
	})
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	for {
		idx, err := pc.DescribeIndex(ctx, indexName)
		if err != nil {
			return fmt.Errorf("failed to describe index: %w", err)
		}
		if idx.Status.Ready {
			log.Printf("[INFO] Index %s is ready", indexName)
			break
		}
		log.Printf("[INFO] Waiting for index %s to be ready...", indexName)
		time.Sleep(10 * time.Second)
	}

	return nil
}

func resourceText(resource models.Resource) string {
	parts := []string{
		fmt.Sprintf("Title: %s", resource.Title),
		fmt.Sprintf("Type: %s", resource.Type),
	}
	if resource.Description != "" {
		parts = append(parts, fmt.Sprintf("Description: %s", resource.Description))
	}
	if resource.Provider != "" {
		parts = append(parts, fmt.Sprintf("Provider: %s", resource.Provider))
	}
	if len(resource.Tags) > 0 {
		parts = append(parts, fmt.Sprintf("Tags: %s", strings.Join(resource.Tags, ", ")))
	}
	return strings.Join(parts, "\n")
}

func createVectors(resources []models.Resource, embedder embeddings.Embedder) ([]*pinecone.Vector, error) {
	ctx := context.Background()

	var texts []string
	for _, resource := range resources {
		texts = append(texts, resourceText(resource))
	}

	embedded, err := embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embeddings: %w", err)
	}

	var vectors []*pinecone.Vector
	for i, resource := range resources {
		metadata := map[string]any{
			"resource_id": resource.ID,
			"title":       resource.Title,
			"type":        resource.Type,
			"url":         resource.URL,
			"description": resource.Description,
			"provider":    resource.Provider,
			"tags":        strings.Join(resource.Tags, ", "),
			"created_at":  time.Now().Format(time.RFC3339),
		}

		metadataStruct, err := structpb.NewStruct(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to create metadata struct for resource %d: %w", resource.ID, err)
		}

		vector := &pinecone.Vector{
			Id:       fmt.Sprintf("resource_%d", resource.ID),
			Values:   &embedded[i],
			Metadata: metadataStruct,
		}
		vectors = append(vectors, vector)
	}

	return vectors, nil
}

func upsertVectors(pc *pinecone.Client, indexName string, vectors []*pinecone.Vector) error {
	ctx := context.Background()

	idxDesc, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return fmt.Errorf("failed to describe index: %w", err)
	}

	idxConn, err := pc.Index(pinecone.NewIndexConnParams{
		Host:      idxDesc.Host,
		Namespace: indexNamespace,
	})
	if err != nil {
		return fmt.Errorf("failed to create index connection: %w", err)
	}

	batchSize := 10
	for i := 0; i < len(vectors); i += batchSize {
		end := i + batchSize
		if end > len(vectors) {
			end = len(vectors)
		}

		batch := vectors[i:end]
		count, err := idxConn.UpsertVectors(ctx, batch)
		if err != nil {
			return fmt.Errorf("failed to upsert vector batch: %w", err)
		}
		log.Printf("[INFO] Successfully upserted %d vectors (batch %d)", count, i/batchSize+1)
	}

	return nil
}
