package service

import "context"

// IdeaGenerator defines the interface for the AI design assistant. Both
// operations degrade gracefully: implementations return a fixed Korean
// fallback message instead of an error when the model is unreachable.
type IdeaGenerator interface {
	// GenerateIdea produces a short tattoo design description for a free-text
	// prompt.
	GenerateIdea(ctx context.Context, prompt string) (string, error)

	// GenerateImage produces a design preview for a prompt, returned as a
	// data URL. An empty string with a nil error means the model produced no
	// image.
	GenerateImage(ctx context.Context, prompt string) (string, error)
}
