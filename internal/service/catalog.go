package service

import (
	"errors"
	"fmt"
	"strings"

	"speakify/internal/domain"
	"speakify/internal/repository"

	"go.uber.org/zap"
)

// CatalogService handles question catalog business logic.
type CatalogService struct {
	questionRepo repository.QuestionRepository
	logger       *zap.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(questionRepo repository.QuestionRepository, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// RandomQuestion returns a random question text from the category.
func (s *CatalogService) RandomQuestion(cat domain.Category) (string, error) {
	q, err := s.questionRepo.GetRandom(cat)
	if err != nil {
		return "", err
	}
	return q.Text, nil
}

// QuestionByID returns the question text with the given id.
func (s *CatalogService) QuestionByID(cat domain.Category, id int) (string, error) {
	q, err := s.questionRepo.GetByID(cat, id)
	if err != nil {
		return "", err
	}
	return q.Text, nil
}

// AddQuestion inserts a new question. Empty or whitespace-only text is
// rejected before touching storage; a duplicate text surfaces as
// domain.ErrAlreadyExists.
func (s *CatalogService) AddQuestion(cat domain.Category, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.ErrEmptyText
	}
	return s.questionRepo.Add(cat, text)
}

// DeleteQuestion removes the question with the given id.
func (s *CatalogService) DeleteQuestion(cat domain.Category, id int) error {
	return s.questionRepo.Delete(cat, id)
}

// ListQuestions returns every question in the category ordered by id.
func (s *CatalogService) ListQuestions(cat domain.Category) ([]domain.Question, error) {
	return s.questionRepo.GetAll(cat)
}

// Count returns the number of questions in the category.
func (s *CatalogService) Count(cat domain.Category) (int, error) {
	return s.questionRepo.Count(cat)
}

// SeedSampleData fills each empty category with sample items so a fresh
// installation has something to practice with.
func (s *CatalogService) SeedSampleData() error {
	const sampleCount = 14

	for _, cat := range domain.Categories() {
		count, err := s.questionRepo.Count(cat)
		if err != nil {
			return fmt.Errorf("count %s: %w", cat.Table(), err)
		}
		if count > 0 {
			continue
		}

		for i := 1; i <= sampleCount; i++ {
			text := fmt.Sprintf("Sample %s %d", cat.Label(), i)
			if err := s.questionRepo.Add(cat, text); err != nil {
				if errors.Is(err, domain.ErrAlreadyExists) {
					continue
				}
				return fmt.Errorf("seed %s: %w", cat.Table(), err)
			}
		}

		s.logger.Info("Seeded sample data", zap.String("category", cat.Table()))
	}

	return nil
}
