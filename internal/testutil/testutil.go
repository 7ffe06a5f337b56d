package testutil

import (
	"fmt"

	"speakify/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestQuestion creates a test question
func NewTestQuestion(id int, text string) domain.Question {
	return domain.Question{ID: id, Text: text}
}

// NewTestQuestions creates n sequential test questions
func NewTestQuestions(n int) []domain.Question {
	questions := make([]domain.Question, 0, n)
	for i := 1; i <= n; i++ {
		questions = append(questions, domain.Question{
			ID:   i,
			Text: fmt.Sprintf("Question %d", i),
		})
	}
	return questions
}
