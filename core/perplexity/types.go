// ABOUTME: Wire types for the conversational web search API
// ABOUTME: Chat completion request parameters and the decoded completion payload

package perplexity

// Message is a single chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Params describes one chat completion request. Use NewParams for defaults.
type Params struct {
	Query              string
	Model              string
	MaxTokens          int
	Temperature        float64
	TopP               float64
	TopK               int
	Stream             bool
	PresencePenalty    float64
	FrequencyPenalty   float64
	ReturnCitations    bool
	SearchDomainFilter []string
	SearchRecency      string
}

// request is the JSON body sent to the completions endpoint
type request struct {
	Model              string    `json:"model"`
	Messages           []Message `json:"messages"`
	MaxTokens          int       `json:"max_tokens"`
	Temperature        float64   `json:"temperature"`
	TopP               float64   `json:"top_p"`
	TopK               int       `json:"top_k"`
	Stream             bool      `json:"stream"`
	PresencePenalty    float64   `json:"presence_penalty"`
	FrequencyPenalty   float64   `json:"frequency_penalty"`
	ReturnCitations    bool      `json:"return_citations"`
	SearchDomainFilter []string  `json:"search_domain_filter,omitempty"`
	SearchRecency      string    `json:"search_recency_filter,omitempty"`
}

// Choice is one completion alternative
type Choice struct {
	Index        int      `json:"index"`
	FinishReason string   `json:"finish_reason"`
	Message      Message  `json:"message"`
	Delta        *Message `json:"delta,omitempty"`
}

// Usage reports token accounting for a completion
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the raw completion payload
type Response struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// Answer returns the content of the first choice
func (r *Response) Answer() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return r.Choices[0].Message.Content
}

// CategoryOptions tune a category search. Zero values select the category defaults.
type CategoryOptions struct {
	Recency   string
	Domains   []string
	MaxTokens int
}
