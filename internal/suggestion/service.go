package suggestion

import (
	"context"

	"github.com/google/uuid"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Service interface {
	// GenerateSuggestions always returns a valid triple. Model failures
	// are logged and answered from the fallback catalog.
	GenerateSuggestions(ctx context.Context) QuestionTriple
}

type service struct {
	provider Provider
	catalog  *FallbackCatalog
}

// NewService builds the generator. A nil provider means no credential is
// configured and every call is served from the catalog.
func NewService(provider Provider, catalog *FallbackCatalog) Service {
	return &service{
		provider: provider,
		catalog:  catalog,
	}
}

func (s *service) GenerateSuggestions(ctx context.Context) QuestionTriple {
	log := config.WithContext(ctx).WithField("generation_id", uuid.NewString())

	if s.provider == nil {
		return s.toFallback(log, "missing_credential")
	}

	raw, err := s.provider.SendPrompt(ctx, suggestionPrompt)
	if err != nil {
		log.WithError(err).Error("Suggestion generation error")
		return s.toFallback(log, "provider_error")
	}

	candidate := Sanitize(raw)
	triple, ok := ParseTriple(candidate)
	if !ok {
		log.WithFields(logrus.Fields{
			"raw":       raw,
			"candidate": candidate,
		}).Warn("Model output failed validation")
		return s.toFallback(log, "invalid_output")
	}

	log.Info("Suggestions generated by model")
	return triple
}

func (s *service) toFallback(log logrus.FieldLogger, reason string) QuestionTriple {
	triple := s.catalog.Random()
	log.WithField("reason", reason).Info("Serving fallback suggestions")
	return triple
}
