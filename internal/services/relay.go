package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"wellmade-relay/internal/models"
)

const (
	defaultModel       = "gpt-3.5-turbo"
	defaultMaxTokens   = 4000
	defaultTemperature = float64(0.7)
)

type completer interface {
	Complete(ctx context.Context, model string, msgs []models.Message, maxTokens int, temperature float64) ([]byte, error)
}

// RelayService gates, augments and forwards chat requests. It holds no
// per-request state.
type RelayService struct {
	policy   *RelayPolicy
	upstream completer
	log      *zap.Logger
}

func NewRelayService(policy *RelayPolicy, upstream *UpstreamClient, log *zap.Logger) *RelayService {
	return &RelayService{policy: policy, upstream: upstream, log: log}
}

// Relay runs one chat request through the topic gate, persona injection,
// the upstream call and brand sanitization. It returns the upstream payload
// ready to send to the caller.
func (s *RelayService) Relay(ctx context.Context, req models.ChatRequest) ([]byte, error) {
	if !s.policy.IsOnTopic(req.LatestUserContent()) {
		return nil, &TopicRejectedError{Message: s.policy.RejectionMessage()}
	}

	model := defaultModel
	if req.Model != nil {
		model = *req.Model
	}
	maxTokens := defaultMaxTokens
	if req.MaxTokens != nil {
		maxTokens = *req.MaxTokens
	}
	temperature := defaultTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	body, err := s.upstream.Complete(ctx, model, s.policy.WithPersona(req.Messages), maxTokens, temperature)
	if err != nil {
		var upErr *UpstreamError
		if errors.As(err, &upErr) {
			s.log.Error("OpenAI API error",
				zap.Int("status", upErr.StatusCode),
				zap.String("details", upErr.Details),
				zap.String("model", model),
			)
		}
		return nil, err
	}

	return sanitizeCompletion(body, s.policy)
}
