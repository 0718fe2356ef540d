package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/hafidzramadhan/talent-match/internal/config"
	"github.com/hafidzramadhan/talent-match/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// FallbackProfile is substituted when the completion API cannot be reached or
// returns a malformed body. The submission continues with this text.
const FallbackProfile = "Error: Failed to connect to or get a response from the Groq API."

const requestTimeout = 30 * time.Second

type GroqServiceInterface interface {
	GenerateJobProfile(ctx context.Context, roleName, jobLevel, rolePurpose string) (string, error)
}

type GroqService struct {
	APIKey  string
	BaseURL string
	Model   string
	client  *resty.Client
}

func NewGroqService() *GroqService {
	groqConfig := config.LoadGroqConfig()
	return &GroqService{
		APIKey:  groqConfig.APIKey,
		BaseURL: groqConfig.BaseURL,
		Model:   groqConfig.Model,
		client:  resty.New().SetTimeout(requestTimeout),
	}
}

// GenerateJobProfile issues one blocking chat-completion call. No retry: a
// failed call surfaces as an error and the caller falls back.
func (s *GroqService) GenerateJobProfile(ctx context.Context, roleName, jobLevel, rolePurpose string) (string, error) {
	prompt := fmt.Sprintf(
		"Generate a detailed, actionable job profile for the role: %s at the %s level. "+
			"The core purpose of this role is: %s. "+
			"The profile must include: Key Responsibilities, Work Inputs, Work Outputs, Qualifications, and Competencies.",
		roleName, jobLevel, rolePurpose,
	)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+s.APIKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"model":       s.Model,
			"messages":    []map[string]string{{"role": "user", "content": prompt}},
			"temperature": 0.5,
		}).
		Post(s.BaseURL + "/chat/completions")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		logger.L().WithFields(logrus.Fields{
			"status": resp.StatusCode(),
			"model":  s.Model,
		}).Warn("groq API returned an error status")
		return "", fmt.Errorf("groq API returned status %d", resp.StatusCode())
	}

	text := gjson.Get(resp.String(), "choices.0.message.content").String()
	if text == "" {
		return "", fmt.Errorf("no job profile in groq response")
	}
	return text, nil
}
