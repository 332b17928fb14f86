package services

import (
	"regexp"
	"strings"

	"github.com/sashabaranov/go-openai"

	"wellmade-relay/internal/models"
)

const (
	topicRejectionMessage = "This assistant only answers medical coding-related questions. Please ask something relevant to medical coding."

	personaPrompt = "You are Wellmed AI, a helpful assistant developed by Chakri. You specialize in medical coding and related topics. Do not mention OpenAI, GPT, ChatGPT, or your origins. Always stay in character as Wellmade AI."

	brandReplacement = "Wellmade AI"
)

// RelayPolicy holds the fixed rules applied to every relayed request. A
// policy is read-only after construction and safe to share across requests.
type RelayPolicy struct {
	keywords         []string
	persona          models.Message
	brandPattern     *regexp.Regexp
	brandReplacement string
	rejectionMessage string
}

// NewRelayPolicy builds a policy. Keywords are matched case-insensitively as
// plain substrings. Brand tokens are tried in the given order at each
// position, so longer tokens sharing a prefix must come first.
func NewRelayPolicy(keywords []string, persona string, brands []string, replacement, rejection string) *RelayPolicy {
	kw := make([]string, len(keywords))
	for i, k := range keywords {
		kw[i] = strings.ToLower(k)
	}

	quoted := make([]string, len(brands))
	for i, b := range brands {
		quoted[i] = regexp.QuoteMeta(b)
	}

	return &RelayPolicy{
		keywords:         kw,
		persona:          models.Message{Role: openai.ChatMessageRoleSystem, Content: persona},
		brandPattern:     regexp.MustCompile("(?i)" + strings.Join(quoted, "|")),
		brandReplacement: replacement,
		rejectionMessage: rejection,
	}
}

// DefaultRelayPolicy returns the medical-coding assistant policy.
func DefaultRelayPolicy() *RelayPolicy {
	return NewRelayPolicy(
		[]string{
			"icd", "cpt", "medical", "diagnosis", "procedure", "coding", "code",
			"modifier", "claims", "insurance", "rbs", "hba1c", "medication",
			"treatment", "billing",
		},
		personaPrompt,
		[]string{"OpenAI", "ChatGPT", "GPT-4", "GPT"},
		brandReplacement,
		topicRejectionMessage,
	)
}

// IsOnTopic reports whether text contains any allowed keyword. Matching is a
// bare substring test, so "code" also matches "decoder".
func (p *RelayPolicy) IsOnTopic(text string) bool {
	lower := strings.ToLower(text)
	for _, k := range p.keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// WithPersona returns a new slice with the persona message first. msgs is
// not modified.
func (p *RelayPolicy) WithPersona(msgs []models.Message) []models.Message {
	out := make([]models.Message, 0, len(msgs)+1)
	out = append(out, p.persona)
	return append(out, msgs...)
}

// Sanitize replaces every brand token in s, ignoring case.
func (p *RelayPolicy) Sanitize(s string) string {
	return p.brandPattern.ReplaceAllLiteralString(s, p.brandReplacement)
}

func (p *RelayPolicy) RejectionMessage() string {
	return p.rejectionMessage
}
