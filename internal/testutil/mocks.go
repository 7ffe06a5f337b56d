package testutil

import (
	"context"
	"io"

	"speakify/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockQuestionRepository is a mock for QuestionRepository
type MockQuestionRepository struct {
	mock.Mock
}

func (m *MockQuestionRepository) GetRandom(cat domain.Category) (*domain.Question, error) {
	args := m.Called(cat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) GetByID(cat domain.Category, id int) (*domain.Question, error) {
	args := m.Called(cat, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) Add(cat domain.Category, text string) error {
	args := m.Called(cat, text)
	return args.Error(0)
}

func (m *MockQuestionRepository) Delete(cat domain.Category, id int) error {
	args := m.Called(cat, id)
	return args.Error(0)
}

func (m *MockQuestionRepository) GetAll(cat domain.Category) ([]domain.Question, error) {
	args := m.Called(cat)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockQuestionRepository) Count(cat domain.Category) (int, error) {
	args := m.Called(cat)
	return args.Int(0), args.Error(1)
}

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Touch(chatID int64) error {
	args := m.Called(chatID)
	return args.Error(0)
}

func (m *MockUserRepository) CountAll() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) CountActive(days int) (int, error) {
	args := m.Called(days)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepository) AllChatIDs() ([]int64, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

// MockSpeechAnalyzer is a mock for the AI boundary
type MockSpeechAnalyzer struct {
	mock.Mock
}

func (m *MockSpeechAnalyzer) Transcribe(ctx context.Context, audio io.Reader) (string, error) {
	args := m.Called(ctx, audio)
	return args.String(0), args.Error(1)
}

func (m *MockSpeechAnalyzer) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}
