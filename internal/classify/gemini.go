package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"skynet-news/internal/domain"
	"skynet-news/internal/logger"
	"skynet-news/internal/metrics"
)

// DefaultModel is the Gemini model used for topic classification.
const DefaultModel = "gemini-2.5-flash"

// GeminiClassifier classifies articles with the Gemini API. The response
// schema constrains topics to the vocabulary server-side; anything the
// model returns outside the vocabulary is dropped locally as well.
type GeminiClassifier struct {
	client   *genai.Client
	model    string
	vocab    domain.Vocabulary
	fallback *FallbackClassifier
}

// NewGeminiClassifier creates a GeminiClassifier. The fallback argument
// supplies degraded-mode topics on API failure.
func NewGeminiClassifier(ctx context.Context, apiKey, model string, vocab domain.Vocabulary, fallback *FallbackClassifier) (*GeminiClassifier, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiClassifier{
		client:   client,
		model:    model,
		vocab:    vocab,
		fallback: fallback,
	}, nil
}

// Classify asks the model for topics based on both text and image. Any
// error is absorbed: the caller always gets a usable topic list.
func (c *GeminiClassifier) Classify(ctx context.Context, content string, image []byte, mimeType string) Result {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(c.prompt(content)),
			genai.NewPartFromBytes(image, mimeType),
		}, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"topics": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeString,
						Enum: c.vocab,
					},
				},
			},
		},
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, config)
	if err != nil {
		return c.degraded(ctx, fmt.Errorf("generate content: %w", err))
	}

	var parsed struct {
		Topics []string `json:"topics"`
	}
	if err := json.Unmarshal([]byte(resp.Text()), &parsed); err != nil {
		return c.degraded(ctx, fmt.Errorf("decode response: %w", err))
	}

	metrics.ClassificationsTotal.WithLabelValues("classified").Inc()
	// The model may legitimately select no topics.
	return Result{Topics: c.vocab.Sanitize(parsed.Topics)}
}

// degraded logs the failure and substitutes 1-2 random topics. The error
// never reaches the caller. Metered as "error-fallback" to keep API
// failures separable from the not-configured fallback classifier.
func (c *GeminiClassifier) degraded(ctx context.Context, cause error) Result {
	logger.WarnContext(ctx, "Classification failed, using fallback topics",
		slog.String("model", c.model),
		slog.String("error", cause.Error()))
	metrics.ClassificationsTotal.WithLabelValues("error-fallback").Inc()

	return Result{
		Topics:   c.fallback.pick(2),
		Fallback: true,
		Reason:   cause.Error(),
	}
}

func (c *GeminiClassifier) prompt(content string) string {
	var b strings.Builder
	b.WriteString("Analyze the following news article content and its accompanying image.\n")
	b.WriteString("Classify the article into the most relevant topics from the provided list.\n")
	b.WriteString("Base your classification on both the text and the visual context from the image.\n")
	b.WriteString("Return only the topics that are strongly represented.\n\n")
	b.WriteString("Article Content:\n---\n")
	b.WriteString(content)
	b.WriteString("\n---\n\nAvailable Topics:\n")
	b.WriteString(strings.Join(c.vocab, ", "))
	return b.String()
}
