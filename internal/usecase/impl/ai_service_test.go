package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGenerator struct {
	idea     string
	imageURL string
	err      error
}

func (s stubGenerator) GenerateIdea(context.Context, string) (string, error) {
	return s.idea, s.err
}

func (s stubGenerator) GenerateImage(context.Context, string) (string, error) {
	return s.imageURL, s.err
}

func newAITestService(gen stubGenerator) usecase.AIUsecase {
	return NewAIService(AIServiceParams{
		Generator: gen,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestAIService_GenerateIdea(t *testing.T) {
	srv := newAITestService(stubGenerator{idea: "고래와 파도, 미니멀 라인워크"})

	out, err := srv.GenerateIdea(context.Background(), usecase.GenerateIdeaInput{Prompt: "바다"})
	require.NoError(t, err)
	assert.Equal(t, "고래와 파도, 미니멀 라인워크", out.Text)
}

func TestAIService_EmptyPromptRejected(t *testing.T) {
	srv := newAITestService(stubGenerator{})

	_, err := srv.GenerateIdea(context.Background(), usecase.GenerateIdeaInput{Prompt: "   "})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = srv.GenerateImage(context.Background(), usecase.GenerateImageInput{Prompt: ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAIService_GenerationFailureMapped(t *testing.T) {
	srv := newAITestService(stubGenerator{err: errors.New("model unavailable")})

	_, err := srv.GenerateImage(context.Background(), usecase.GenerateImageInput{Prompt: "용"})
	assert.ErrorIs(t, err, domainerrors.ErrGenerationFailed)
}
