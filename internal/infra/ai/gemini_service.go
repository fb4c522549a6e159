// Package ai implements the design assistant on top of the Gemini API.
package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"inkspot/config"
	"inkspot/internal/domain/service"
)

const (
	defaultTextModel  = "gemini-2.5-flash"
	defaultImageModel = "imagen-4.0-generate-001"

	// User-facing fallbacks when the key is absent or the model call fails.
	// These are responses, not errors: the AI zone stays usable either way.
	msgMissingKey  = "API 키가 없습니다. 이 기능을 사용하려면 유효한 Gemini API 키로 환경을 설정해주세요."
	msgIdeaFailed  = "죄송합니다, 지금은 아이디어를 생성할 수 없습니다. 나중에 다시 시도해주세요."
	msgImageFailed = "죄송합니다, 지금은 이미지를 생성할 수 없습니다. 나중에 다시 시도해주세요."
)

type geminiService struct {
	client     *genai.Client
	textModel  string
	imageModel string
	logger     *slog.Logger
}

// NewGeminiService initializes the Gemini client. A missing API key is not an
// error; the service then answers every request with the fallback message.
func NewGeminiService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.IdeaGenerator, error) {
	svc := &geminiService{
		textModel:  defaultTextModel,
		imageModel: defaultImageModel,
		logger:     logger,
	}
	if cfg.AI == nil || cfg.AI.APIKey == "" {
		logger.Warn("gemini api key not set, design assistant runs in fallback mode")

		return svc, nil
	}
	if cfg.AI.TextModel != "" {
		svc.textModel = cfg.AI.TextModel
	}
	if cfg.AI.ImageModel != "" {
		svc.imageModel = cfg.AI.ImageModel
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.AI.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	svc.client = client

	return svc, nil
}

// GenerateIdea asks the text model for a tattoo concept description in Korean.
// Model failures degrade to a fixed apology message so the caller never
// surfaces an error to the user.
func (s *geminiService) GenerateIdea(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return msgMissingKey, nil
	}

	fullPrompt := fmt.Sprintf(`당신은 창의적인 타투 콘셉트 아티스트입니다. 사용자가 "%s" 라고 묘사하는 타투를 원합니다.
이 아이디어를 생생하고 자세하게 설명해주세요. 시각적인 요소, 구체적인 아트 스타일(예: 네오 트래디셔널, 블랙워크, 수채화, 일러스트 등)을 제안하고, 신체 부위 추천도 해주세요.
결과는 매력적이고 상상력이 풍부한 하나의 문단으로, 반드시 한국어로 작성해주세요. 마크다운 형식은 사용하지 마세요.`, prompt)

	model := s.client.GenerativeModel(s.textModel)
	res, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		s.logger.Error("gemini idea generation failed", slog.Any("error", err))

		return msgIdeaFailed, nil
	}

	text := firstText(res)
	if text == "" {
		return msgIdeaFailed, nil
	}

	return text, nil
}

// GenerateImage asks the image model for a flash-sheet style design and
// returns it as a JPEG data URL.
func (s *geminiService) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if s.client == nil {
		return "", fmt.Errorf("%s", msgMissingKey)
	}

	fullPrompt := fmt.Sprintf(`A high-resolution, professional tattoo design flash sheet. The main subject is: %q. The style should be clean, clear line work, suitable for a tattoo stencil. The background should be plain white. The image should look like a piece of tattoo flash art.`, prompt)

	model := s.client.GenerativeModel(s.imageModel)
	res, err := model.GenerateContent(ctx, genai.Text(fullPrompt))
	if err != nil {
		s.logger.Error("gemini image generation failed", slog.Any("error", err))

		return "", fmt.Errorf("%s", msgImageFailed)
	}

	data, mime := firstBlob(res)
	if data == nil {
		return "", fmt.Errorf("%s", msgImageFailed)
	}

	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data)), nil
}

func firstText(res *genai.GenerateContentResponse) string {
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				return string(text)
			}
		}
	}

	return ""
}

func firstBlob(res *genai.GenerateContentResponse) ([]byte, string) {
	for _, cand := range res.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				return blob.Data, blob.MIMEType
			}
		}
	}

	return nil, ""
}
