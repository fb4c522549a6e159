package usecase

import "context"

// --- Input DTOs ---

// GenerateIdeaInput defines the prompt for tattoo idea text generation.
type GenerateIdeaInput struct {
	Prompt string
}

// GenerateImageInput defines the prompt for flash-sheet image generation.
type GenerateImageInput struct {
	Prompt string
}

// --- Output DTOs ---

// GenerateIdeaOutput returns generated idea text. Model failures degrade to
// a fixed notice instead of an error.
type GenerateIdeaOutput struct {
	Text string
}

// GenerateImageOutput returns the generated image as a data URL.
type GenerateImageOutput struct {
	DataURL string
}

// AIUsecase defines the AI zone operations.
type AIUsecase interface {
	GenerateIdea(ctx context.Context, input GenerateIdeaInput) (*GenerateIdeaOutput, error)
	GenerateImage(ctx context.Context, input GenerateImageInput) (*GenerateImageOutput, error)
}
