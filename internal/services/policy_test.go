package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellmade-relay/internal/models"
)

func TestRelayPolicy_IsOnTopic(t *testing.T) {
	p := DefaultRelayPolicy()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"unrelated", "What's the weather in Paris?", false},
		{"keyword mid sentence", "What ICD code applies?", true},
		{"upper case", "EXPLAIN CPT MODIFIER 25", true},
		{"hba1c", "normal HbA1c range", true},
		{"substring of longer word", "my decoder ring is broken", true},
		{"plural claims", "how to file claims", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.IsOnTopic(tc.text))
		})
	}
}

func TestRelayPolicy_WithPersona(t *testing.T) {
	p := DefaultRelayPolicy()
	original := []models.Message{
		{Role: "assistant", Content: "hello"},
		{Role: "user", Content: "cpt lookup"},
	}
	snapshot := append([]models.Message(nil), original...)

	out := p.WithPersona(original)

	require.Len(t, out, 3)
	assert.Equal(t, "system", out[0].Role)
	assert.True(t, strings.HasPrefix(out[0].Content, "You are Wellmed AI"))
	assert.Equal(t, original, out[1:])
	assert.Equal(t, snapshot, original, "input must not be modified")

	out[1].Content = "changed"
	assert.Equal(t, "hello", original[0].Content, "output must not alias input")
}

func TestRelayPolicy_WithPersona_Empty(t *testing.T) {
	out := DefaultRelayPolicy().WithPersona(nil)
	require.Len(t, out, 1)
	assert.Equal(t, "system", out[0].Role)
}

func TestRelayPolicy_Sanitize(t *testing.T) {
	p := DefaultRelayPolicy()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no match", "CPT 99213 is an office visit.", "CPT 99213 is an office visit."},
		{
			"mixed case repeats",
			"As an OpenAI model, also known as openai, I...",
			"As an Wellmade AI model, also known as Wellmade AI, I...",
		},
		{"gpt-4 before gpt", "I run on GPT-4 and gpt-4o", "I run on Wellmade AI and Wellmade AIo"},
		{"chatgpt", "ChatGPT here", "Wellmade AI here"},
		{"bare gpt", "a gpt model", "a Wellmade AI model"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := p.Sanitize(tc.in)
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, strings.ToLower(got), "openai")
		})
	}
}

func TestNewRelayPolicy_QuotesBrandTokens(t *testing.T) {
	p := NewRelayPolicy([]string{"X"}, "persona", []string{"a.b"}, "Z", "no")

	assert.Equal(t, "Z axb", p.Sanitize("A.B axb"))
	assert.True(t, p.IsOnTopic("lower x"))
	assert.Equal(t, "no", p.RejectionMessage())
}
