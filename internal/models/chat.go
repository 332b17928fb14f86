package models

// Message represents a single role/content pair in a conversation.
type Message struct {
	Role    string `json:"role"` // "system", "user" or "assistant"
	Content string `json:"content"`
}

// ChatRequest is the payload sent to the chat endpoint. Optional fields are
// pointers so an explicit zero can be told apart from an absent value.
type ChatRequest struct {
	Messages    []Message `json:"messages"`
	Model       *string   `json:"model,omitempty"`
	MaxTokens   *int      `json:"max_tokens,omitempty"`
	Temperature *float64  `json:"temperature,omitempty"`
}

// LatestUserContent returns the content of the last message with role
// "user", or "" when there is none.
func (r ChatRequest) LatestUserContent() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role == "user" {
			return r.Messages[i].Content
		}
	}
	return ""
}
