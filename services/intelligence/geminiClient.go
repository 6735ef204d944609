// File: services/intelligence/geminiClient.go
package ai

import (
	"context"
	"fmt"
	"strings"

	"careinsight/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	chat   *genai.GenerativeModel
	json   *genai.GenerativeModel
	vision *genai.GenerativeModel
}

func NewGeminiClient(ctx context.Context, apiKey, textModel, visionModel string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	chat := client.GenerativeModel(textModel)
	chat.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(chatInstruction)}}
	chat.SetTemperature(0.7)

	jsonModel := client.GenerativeModel(textModel)
	jsonModel.SetTemperature(0.3)
	jsonModel.ResponseMIMEType = "application/json"

	vision := client.GenerativeModel(visionModel)
	vision.SetTemperature(0.2)

	return &GeminiClient{client: client, chat: chat, json: jsonModel, vision: vision}, nil
}

func (g *GeminiClient) Close() error {
	return g.client.Close()
}

func (g *GeminiClient) GenerateJSON(ctx context.Context, prompt string) (string, error) {
	resp, err := g.json.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return responseText(resp)
}

func (g *GeminiClient) GenerateWithImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	resp, err := g.vision.GenerateContent(ctx,
		genai.Blob{MIMEType: mimeType, Data: data},
		genai.Text(prompt),
	)
	if err != nil {
		return "", fmt.Errorf("gemini vision error: %w", err)
	}
	return responseText(resp)
}

func (g *GeminiClient) Chat(ctx context.Context, history []models.ChatTurn, message string) (string, error) {
	cs := g.chat.StartChat()
	for _, turn := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}

	resp, err := cs.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", fmt.Errorf("gemini chat error: %w", err)
	}
	return responseText(resp)
}

func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	if sb.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return sb.String(), nil
}
