package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "inkspot/internal/delivery/context"
	domainerrors "inkspot/internal/domain/errors"
	"inkspot/internal/domain/service"
	"inkspot/internal/usecase"

	"go.uber.org/fx"
)

// aiService implements the AIUsecase interface.
type aiService struct {
	generator service.IdeaGenerator
	logger    *slog.Logger
}

// AIServiceParams holds dependencies for aiService, injected by Fx.
type AIServiceParams struct {
	fx.In

	Generator service.IdeaGenerator
	Logger    *slog.Logger
}

// NewAIService is the constructor for aiService.
func NewAIService(params AIServiceParams) usecase.AIUsecase {
	return &aiService{
		generator: params.Generator,
		logger:    params.Logger,
	}
}

func (srv *aiService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateIdea produces tattoo idea text. The generator degrades to a fixed
// notice on model failures, so the only error here is an empty prompt.
func (srv *aiService) GenerateIdea(ctx context.Context, input usecase.GenerateIdeaInput) (*usecase.GenerateIdeaOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("prompt is required")
	}

	text, err := srv.generator.GenerateIdea(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Idea generation failed", slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed
	}

	return &usecase.GenerateIdeaOutput{Text: text}, nil
}

// GenerateImage produces a flash-sheet image as a data URL.
func (srv *aiService) GenerateImage(ctx context.Context, input usecase.GenerateImageInput) (*usecase.GenerateImageOutput, error) {
	prompt := strings.TrimSpace(input.Prompt)
	if prompt == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("prompt is required")
	}

	dataURL, err := srv.generator.GenerateImage(ctx, prompt)
	if err != nil {
		srv.log(ctx).Error("Image generation failed", slog.Any("error", err))

		return nil, domainerrors.ErrGenerationFailed
	}

	return &usecase.GenerateImageOutput{DataURL: dataURL}, nil
}
