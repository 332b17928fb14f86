package services

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

const firstChoiceContent = "choices.0.message.content"

// sanitizeCompletion rewrites brand tokens in the first choice's content.
// Every other byte of the payload is left as the upstream sent it.
func sanitizeCompletion(body []byte, policy *RelayPolicy) ([]byte, error) {
	content := gjson.GetBytes(body, firstChoiceContent)
	if content.Type != gjson.String || content.Str == "" {
		return body, nil
	}

	cleaned := policy.Sanitize(content.Str)
	if cleaned == content.Str {
		return body, nil
	}

	out, err := sjson.SetBytes(body, firstChoiceContent, cleaned)
	if err != nil {
		return nil, fmt.Errorf("failed to rewrite completion content: %w", err)
	}
	return out, nil
}
