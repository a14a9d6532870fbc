// Package resourceindex provides semantic lookup over the resource catalog
// through a Pinecone index populated by cmd/indexresources.
package resourceindex

import (
	"context"
	"fmt"
	"log"

	"safetypath/models"

	"github.com/pinecone-io/go-pinecone/v3/pinecone"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"
)

const indexNamespace = "safetypath-resources"

type Service struct {
	client    *pinecone.Client
	embedder  embeddings.Embedder
	indexName string
}

func NewService(apiKey, embeddingsAPIKey, indexName string) (*Service, error) {
	log.Printf("[INFO] Initializing resource index service")

	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Pinecone client: %w", err)
	}

	llm, err := openai.New(
		openai.WithModel("gpt-4o-mini"),
		openai.WithToken(embeddingsAPIKey),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("failed to create embedder: %w", err)
	}

	service := &Service{
		client:    pc,
		embedder:  embedder,
		indexName: indexName,
	}

	log.Printf("[INFO] Resource index service initialized successfully")
	return service, nil
}

// FindRelevantResources returns up to limit catalog resources semantically
// matching the query.
func (s *Service) FindRelevantResources(ctx context.Context, query string, limit int) ([]models.Resource, error) {
	log.Printf("[INFO] Starting resource index query %q with limit %d", query, limit)

	idxDesc, err := s.client.DescribeIndex(ctx, s.indexName)
	if err != nil {
		return nil, fmt.Errorf("failed to describe index: %w", err)
	}

	idxConn, err := s.client.Index(pinecone.NewIndexConnParams{
		Host:      idxDesc.Host,
		Namespace: indexNamespace,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create index connection: %w", err)
	}

	queryEmbeddings, err := s.embedder.EmbedDocuments(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	result, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          queryEmbeddings[0],
		TopK:            uint32(limit),
		IncludeValues:   false,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query vectors: %w", err)
	}

	var resources []models.Resource
	for _, match := range result.Matches {
		if match.Vector.Metadata == nil {
			continue
		}
		metadata := match.Vector.Metadata.AsMap()

		resource := models.Resource{}
		if id, ok := metadata["resource_id"].(float64); ok {
			resource.ID = int(id)
		}
		if title, ok := metadata["title"].(string); ok {
			resource.Title = title
		}
		if resourceType, ok := metadata["type"].(string); ok {
			resource.Type = resourceType
		}
		if url, ok := metadata["url"].(string); ok {
			resource.URL = url
		}
		if description, ok := metadata["description"].(string); ok {
			resource.Description = description
		}
		if provider, ok := metadata["provider"].(string); ok {
			resource.Provider = provider
		}

		if resource.Title != "" {
			resources = append(resources, resource)
		}
	}

	log.Printf("[INFO] Resource index query returned %d resources", len(resources))
	return resources, nil
}
