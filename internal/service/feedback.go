package service

import (
	"context"
	"fmt"
	"io"

	"speakify/internal/domain"

	"go.uber.org/zap"
)

// SpeechAnalyzer is the AI boundary: speech-to-text over a short audio
// clip plus a single-turn completion with a fixed persona.
type SpeechAnalyzer interface {
	Transcribe(ctx context.Context, audio io.Reader) (string, error)
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

const coachPersona = "You are a friendly and encouraging IELTS speaking coach. " +
	"You are given the question the student answered and a transcript of their spoken answer. " +
	"Provide concise, direct feedback on fluency, vocabulary, grammar and coherence, " +
	"then give a short model answer."

const fallbackQuestion = "an IELTS speaking question"

// FeedbackService evaluates recorded answers via the AI boundary.
type FeedbackService struct {
	ai          SpeechAnalyzer
	maxDuration int
	logger      *zap.Logger
}

// NewFeedbackService creates a new feedback service. A nil analyzer
// means no AI credential is configured and every evaluation reports
// domain.ErrAIUnavailable.
func NewFeedbackService(ai SpeechAnalyzer, maxDuration int, logger *zap.Logger) *FeedbackService {
	return &FeedbackService{
		ai:          ai,
		maxDuration: maxDuration,
		logger:      logger,
	}
}

// MaxDuration returns the accepted voice answer ceiling in seconds.
func (s *FeedbackService) MaxDuration() int {
	return s.maxDuration
}

// Evaluate transcribes a voice answer and returns coaching feedback for
// it. Answers over the duration ceiling are rejected before the audio
// is even fetched; fetch lazily supplies the audio stream only when it
// is actually needed.
func (s *FeedbackService) Evaluate(ctx context.Context, question string, duration int, fetch func() (io.ReadCloser, error)) (string, error) {
	if duration > s.maxDuration {
		return "", domain.ErrVoiceTooLong
	}

	if s.ai == nil {
		s.logger.Warn("AI feedback requested but no credential is configured")
		return "", domain.ErrAIUnavailable
	}

	audio, err := fetch()
	if err != nil {
		s.logger.Error("Failed to fetch voice answer", zap.Error(err))
		return "", domain.ErrAIUnavailable
	}
	defer audio.Close()

	transcript, err := s.ai.Transcribe(ctx, audio)
	if err != nil {
		s.logger.Error("Failed to transcribe voice answer", zap.Error(err))
		return "", domain.ErrAIUnavailable
	}

	if question == "" {
		question = fallbackQuestion
	}

	prompt := fmt.Sprintf("Question: %s\n\nStudent's answer (transcript):\n%s", question, transcript)
	feedback, err := s.ai.Complete(ctx, coachPersona, prompt)
	if err != nil {
		s.logger.Error("Failed to generate feedback", zap.Error(err))
		return "", domain.ErrAIUnavailable
	}

	return feedback, nil
}
