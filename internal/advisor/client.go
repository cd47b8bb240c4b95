package advisor

import (
	"context"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	apperrors "advisor/internal/errors"
)

// Recommendation is the generated advisory text plus the moment it was
// extracted from the model response. Immutable once created.
type Recommendation struct {
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generated_at"`
}

// Generator produces a recommendation for a prompt. Implemented by Client
// in production and by fakes in tests.
type Generator interface {
	Generate(ctx context.Context, prompt string) (Recommendation, error)
}

// Client calls the OpenAI chat-completions API with a fixed model and a
// single user-role message. One attempt per request: retries are disabled
// and the call is bounded by the configured timeout.
type Client struct {
	api     openai.Client
	model   openai.ChatModel
	timeout time.Duration
}

// NewClient creates a recommendation client for the given model.
// Extra options (base URL overrides for tests, etc.) are appended last.
func NewClient(apiKey, model string, timeout time.Duration, opts ...option.RequestOption) *Client {
	options := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		api:     openai.NewClient(options...),
		model:   openai.ChatModel(model),
		timeout: timeout,
	}
}

// Generate sends the prompt to the model and extracts the first completion.
// Every provider fault (transport, auth, rate limit, malformed or empty
// response) collapses to a single GENERATION_FAILED error; the caller must
// not persist anything when it is returned.
func (c *Client) Generate(ctx context.Context, prompt string) (Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.api.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return Recommendation{}, apperrors.Wrap(apperrors.ErrGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		// An empty completion is a provider fault, not an empty advisory:
		// storing blank advice would mask the failure from the user.
		return Recommendation{}, apperrors.WithMessage(apperrors.ErrGenerationFailed, "model returned an empty recommendation")
	}

	return Recommendation{
		Text:        resp.Choices[0].Message.Content,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
