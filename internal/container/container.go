package container

import (
	"context"
	"log"

	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/router"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/suggestion"
)

type Container struct {
	Settings            *config.Settings
	SuggestionContainer *suggestion.SuggestionContainer
}

func New() *Container {
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	config.Init(settings.LogLevel)

	suggestionContainer := suggestion.NewSuggestionContainer(context.Background(), settings)

	return &Container{
		Settings:            settings,
		SuggestionContainer: suggestionContainer,
	}
}

func (c *Container) RouterConfig() router.RouterConfig {
	return router.RouterConfig{
		SuggestionHandler: c.SuggestionContainer.Handler,
		AllowedOrigins:    c.Settings.AllowedOrigins,
	}
}
