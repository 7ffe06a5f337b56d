package ai

import (
	"context"
	"fmt"
	"io"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const (
	chatModel   = "gpt-4o-mini"
	callTimeout = 60 * time.Second
)

// Client wraps the OpenAI API for transcription and feedback
// generation. It satisfies service.SpeechAnalyzer.
type Client struct {
	client *openai.Client
}

// NewClient creates a new OpenAI client.
func NewClient(apiKey string) *Client {
	return &Client{client: openai.NewClient(apiKey)}
}

// Transcribe converts a voice recording into text using Whisper.
func (c *Client) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: "answer.ogg",
	})
	if err != nil {
		return "", fmt.Errorf("create transcription: %w", err)
	}

	return resp.Text, nil
}

// Complete runs a single-turn chat completion with the given persona.
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response choices")
	}

	return resp.Choices[0].Message.Content, nil
}
