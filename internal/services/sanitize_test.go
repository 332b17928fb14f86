package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestSanitizeCompletion(t *testing.T) {
	p := DefaultRelayPolicy()

	t.Run("rewrites first choice only", func(t *testing.T) {
		body := []byte(`{"id":"chatcmpl-1","model":"gpt-3.5-turbo","choices":[{"index":0,"message":{"role":"assistant","content":"I am ChatGPT by OpenAI"}},{"index":1,"message":{"role":"assistant","content":"OpenAI"}}],"usage":{"total_tokens":12}}`)

		out, err := sanitizeCompletion(body, p)
		require.NoError(t, err)

		assert.Equal(t, "I am Wellmade AI by Wellmade AI", gjson.GetBytes(out, "choices.0.message.content").String())
		assert.Equal(t, "OpenAI", gjson.GetBytes(out, "choices.1.message.content").String())
		assert.Equal(t, "gpt-3.5-turbo", gjson.GetBytes(out, "model").String())
		assert.Equal(t, int64(12), gjson.GetBytes(out, "usage.total_tokens").Int())
	})

	t.Run("untouched without matches", func(t *testing.T) {
		body := []byte(`{"choices":[{"message":{"content":"Use ICD-10 code E11.9"}}]}`)
		out, err := sanitizeCompletion(body, p)
		require.NoError(t, err)
		assert.Equal(t, string(body), string(out))
	})

	t.Run("no choices", func(t *testing.T) {
		body := []byte(`{"object":"chat.completion","choices":[]}`)
		out, err := sanitizeCompletion(body, p)
		require.NoError(t, err)
		assert.Equal(t, string(body), string(out))
	})

	t.Run("empty content", func(t *testing.T) {
		body := []byte(`{"choices":[{"message":{"content":""}}]}`)
		out, err := sanitizeCompletion(body, p)
		require.NoError(t, err)
		assert.Equal(t, string(body), string(out))
	})

	t.Run("escapes rewritten content", func(t *testing.T) {
		body := []byte(`{"choices":[{"message":{"content":"GPT said \"hi\"\n"}}]}`)
		out, err := sanitizeCompletion(body, p)
		require.NoError(t, err)
		assert.True(t, gjson.ValidBytes(out))
		assert.Equal(t, "Wellmade AI said \"hi\"\n", gjson.GetBytes(out, "choices.0.message.content").String())
	})
}
