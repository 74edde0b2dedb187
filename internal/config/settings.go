package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

type Settings struct {
	GeminiAPIKey   string   `env:"GOOGLE_GEMINI_API" env-description:"Gemini API key; empty forces canned suggestions"`
	GeminiModel    string   `env:"GEMINI_MODEL" env-default:"gemini-2.0-flash" env-description:"Gemini model name"`
	LogLevel       string   `env:"LOG_LEVEL" env-default:"info" env-description:"logrus level"`
	HTTPAddr       string   `env:"HTTP_ADDR" env-default:":8080" env-description:"listen address for the local server"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" env-default:"*" env-separator:"," env-description:"CORS allowed origins"`
}

func Load() (*Settings, error) {
	var s Settings
	if err := cleanenv.ReadEnv(&s); err != nil {
		desc, _ := cleanenv.GetDescription(&s, nil)
		return nil, fmt.Errorf("config: %w; %s", err, desc)
	}
	return &s, nil
}

func (s *Settings) HasGeminiCredential() bool {
	return s.GeminiAPIKey != ""
}
