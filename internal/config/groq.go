package config

import (
	"os"
	"sync"

	"github.com/hafidzramadhan/talent-match/internal/logger"
	"github.com/hafidzramadhan/talent-match/internal/secrets"
)

type GroqConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

var (
	groqConfig *GroqConfig
	groqOnce   sync.Once
)

func LoadGroqConfig() *GroqConfig {
	groqOnce.Do(func() {
		apiKey, err := secrets.Resolve("GROQ_API_KEY")
		if err != nil {
			logger.L().WithError(err).Fatal("GROQ_API_KEY is required")
		}
		baseURL := os.Getenv("GROQ_BASE_URL")
		if baseURL == "" {
			baseURL = "https://api.groq.com/openai/v1"
		}
		model := os.Getenv("GROQ_MODEL")
		if model == "" {
			model = "llama-3.1-8b-instant"
		}
		groqConfig = &GroqConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   model,
		}
	})
	return groqConfig
}
