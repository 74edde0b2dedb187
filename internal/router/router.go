package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/saulo-duarte/suggest-messages-lambda/docs"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/config"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/middlewares"
	"github.com/saulo-duarte/suggest-messages-lambda/internal/suggestion"
)

type RouterConfig struct {
	SuggestionHandler *suggestion.Handler
	AllowedOrigins    []string
}

// @title       Suggest Messages API
// @version     1.0
// @description Conversation-starter suggestions backed by Gemini.
// @BasePath    /
func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/swagger/*", httpSwagger.WrapHandler)
	r.Get("/health", health)

	r.Route("/api", func(r chi.Router) {
		r.Mount("/suggest-messages", suggestion.Routes(cfg.SuggestionHandler))
	})
	return r
}

// health godoc
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200 {object} map[string]string
// @Router   /health [get]
func health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
