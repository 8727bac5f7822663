package main

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/genai"
)

const (
	defaultRegion = "us-central1"
	defaultModel  = "gemini-2.5-flash"
)

// GeminiClient wraps the GenAI client used for clue generation.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient connects to Vertex AI with Application Default
// Credentials. GEMINI_MODEL overrides the model used for clues.
func NewGeminiClient(ctx context.Context, projectID, region string) (*GeminiClient, error) {
	if region == "" {
		region = defaultRegion
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

// Close releases resources held by the client.
func (g *GeminiClient) Close() error {
	return nil
}
