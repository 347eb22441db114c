package assistant

import (
	"context"
	"errors"

	"github.com/hubshop/storefront/internal/logging"
	"github.com/hubshop/storefront/internal/models"
	"google.golang.org/genai"
)

// Gemini answers through the Gemini API. All failures (transport, quota,
// empty reply) collapse to the fallback texts.
type Gemini struct {
	client       *genai.Client
	chatModel    string
	summaryModel string
}

func NewGemini(ctx context.Context, apiKey, chatModel, summaryModel string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Gemini{
		client:       client,
		chatModel:    chatModel,
		summaryModel: summaryModel,
	}, nil
}

func (g *Gemini) ChatReply(ctx context.Context, products []models.Product, userText string) string {
	out, err := g.generate(ctx, g.chatModel, ChatPrompt(products, userText), genai.Ptr[float32](0.7))
	if err != nil {
		logging.FromContext(ctx).Warn("assistant_chat_fallback", "error", err)
		return ChatFallback
	}
	return out
}

func (g *Gemini) StylingTips(ctx context.Context, product models.Product) string {
	out, err := g.generate(ctx, g.chatModel, StylingPrompt(product), genai.Ptr[float32](0.7))
	if err != nil {
		logging.FromContext(ctx).Warn("assistant_styling_fallback", "error", err)
		return StylingFallback
	}
	return out
}

func (g *Gemini) ExecutiveSummary(ctx context.Context, orders []models.Order) string {
	out, err := g.generate(ctx, g.summaryModel, SummaryPrompt(orders), nil)
	if err != nil {
		logging.FromContext(ctx).Warn("assistant_summary_fallback", "error", err)
		return SummaryFallback
	}
	return out
}

func (g *Gemini) generate(ctx context.Context, model, prompt string, temperature *float32) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: temperature,
	})
	if err != nil {
		return "", err
	}
	text := resp.Text()
	if text == "" {
		return "", errors.New("empty model response")
	}
	return text, nil
}
