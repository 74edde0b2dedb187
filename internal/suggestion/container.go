package suggestion

import (
	"context"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
)

type SuggestionContainer struct {
	Handler *Handler
	Service Service
}

func NewSuggestionContainer(ctx context.Context, settings *config.Settings) *SuggestionContainer {
	log := config.WithContext(ctx)

	var provider Provider
	if settings.HasGeminiCredential() {
		p, err := NewGeminiProvider(ctx, settings.GeminiAPIKey, settings.GeminiModel)
		if err != nil {
			log.WithError(err).Error("Gemini provider unavailable, serving canned suggestions only")
		} else {
			provider = p
		}
	} else {
		log.Warn("GOOGLE_GEMINI_API not set, serving canned suggestions only")
	}

	service := NewService(provider, DefaultFallbackCatalog())
	handler := NewHandler(service)

	return &SuggestionContainer{
		Handler: handler,
		Service: service,
	}
}
