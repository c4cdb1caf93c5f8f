package ai

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"
)

// ModelName groups the models one provider endpoint serves.
type ModelName struct {
	ChatModel       string
	VisionModel     string
	TranscribeModel string
}

// Driver wraps an OpenAI-compatible endpoint for chat completion, speech to
// text and vision OCR. All calls are plain request/response, no streaming.
type Driver struct {
	client *openai.Client
	model  ModelName
}

func New(token, endpoint string, model ModelName) *Driver {
	cfg := openai.DefaultConfig(token)
	if endpoint != "" {
		cfg.BaseURL = endpoint
	}

	if model.ChatModel == "" {
		model.ChatModel = openai.GPT4oMini
	}
	if model.VisionModel == "" {
		model.VisionModel = model.ChatModel
	}
	if model.TranscribeModel == "" {
		model.TranscribeModel = openai.Whisper1
	}

	return &Driver{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

func (s *Driver) ChatModel() string {
	return s.model.ChatModel
}

// Chat issues one non-streaming completion request. The caller owns the tool
// dispatch loop.
func (s *Driver) Chat(ctx context.Context, messages []openai.ChatCompletionMessage, tools []openai.Tool) (openai.ChatCompletionResponse, error) {
	req := openai.ChatCompletionRequest{
		Model:    s.model.ChatModel,
		Messages: messages,
		Tools:    tools,
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return resp, fmt.Errorf("failed to create chat completion, %w", err)
	}

	slog.Debug("chat completion finished",
		slog.String("model", resp.Model),
		slog.Int("prompt_tokens", resp.Usage.PromptTokens),
		slog.Int("completion_tokens", resp.Usage.CompletionTokens))

	return resp, nil
}

// Transcribe converts audio to text via the provider's speech endpoint.
func (s *Driver) Transcribe(ctx context.Context, fileName string, reader io.Reader) (string, error) {
	resp, err := s.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    s.model.TranscribeModel,
		FilePath: fileName,
		Reader:   reader,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create transcription, %w", err)
	}

	return resp.Text, nil
}

const ocrPrompt = `Extract all readable text from this image. Return only the extracted text, preserving line breaks. If the image contains no text, return an empty response.`

// ExtractTextFromImage runs OCR through a vision-capable chat model. The
// image is passed as a URL or data URL.
func (s *Driver) ExtractTextFromImage(ctx context.Context, imageURL string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model: s.model.VisionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type: openai.ChatMessagePartTypeText,
						Text: ocrPrompt,
					},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: imageURL,
						},
					},
				},
			},
		},
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("failed to run image ocr, %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}
