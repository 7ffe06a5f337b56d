package service

import (
	"fmt"

	"speakify/internal/domain"
	"speakify/internal/repository"

	"go.uber.org/zap"
)

// StatsService aggregates usage and content statistics for admins.
type StatsService struct {
	userRepo     repository.UserRepository
	questionRepo repository.QuestionRepository
	logger       *zap.Logger
}

// Summary is a snapshot of bot usage and catalog sizes.
type Summary struct {
	TotalUsers    int
	DailyActive   int
	WeeklyActive  int
	MonthlyActive int
	QuestionCount map[domain.Category]int
}

// NewStatsService creates a new stats service.
func NewStatsService(userRepo repository.UserRepository, questionRepo repository.QuestionRepository, logger *zap.Logger) *StatsService {
	return &StatsService{
		userRepo:     userRepo,
		questionRepo: questionRepo,
		logger:       logger,
	}
}

// Summary collects user counts over 1/7/30-day windows and per-category
// catalog sizes.
func (s *StatsService) Summary() (*Summary, error) {
	total, err := s.userRepo.CountAll()
	if err != nil {
		return nil, fmt.Errorf("count all users: %w", err)
	}

	daily, err := s.userRepo.CountActive(1)
	if err != nil {
		return nil, fmt.Errorf("count daily active: %w", err)
	}

	weekly, err := s.userRepo.CountActive(7)
	if err != nil {
		return nil, fmt.Errorf("count weekly active: %w", err)
	}

	monthly, err := s.userRepo.CountActive(30)
	if err != nil {
		return nil, fmt.Errorf("count monthly active: %w", err)
	}

	counts := make(map[domain.Category]int, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		n, err := s.questionRepo.Count(cat)
		if err != nil {
			return nil, fmt.Errorf("count %s: %w", cat.Table(), err)
		}
		counts[cat] = n
	}

	return &Summary{
		TotalUsers:    total,
		DailyActive:   daily,
		WeeklyActive:  weekly,
		MonthlyActive: monthly,
		QuestionCount: counts,
	}, nil
}
