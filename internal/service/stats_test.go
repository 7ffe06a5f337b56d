package service

import (
	"errors"
	"testing"

	"speakify/internal/domain"
	"speakify/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestStatsService_Summary(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	questionRepo := new(testutil.MockQuestionRepository)
	svc := NewStatsService(userRepo, questionRepo, testutil.NewTestLogger())

	userRepo.On("CountAll").Return(100, nil)
	userRepo.On("CountActive", 1).Return(10, nil)
	userRepo.On("CountActive", 7).Return(40, nil)
	userRepo.On("CountActive", 30).Return(80, nil)
	questionRepo.On("Count", domain.Part1).Return(14, nil)
	questionRepo.On("Count", domain.Part2).Return(7, nil)
	questionRepo.On("Count", domain.Part3).Return(0, nil)

	summary, err := svc.Summary()

	assert.NoError(t, err)
	assert.Equal(t, 100, summary.TotalUsers)
	assert.Equal(t, 10, summary.DailyActive)
	assert.Equal(t, 40, summary.WeeklyActive)
	assert.Equal(t, 80, summary.MonthlyActive)
	assert.Equal(t, 14, summary.QuestionCount[domain.Part1])
	assert.Equal(t, 7, summary.QuestionCount[domain.Part2])
	assert.Equal(t, 0, summary.QuestionCount[domain.Part3])
	userRepo.AssertExpectations(t)
	questionRepo.AssertExpectations(t)
}

func TestStatsService_Summary_UserRepoError(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	questionRepo := new(testutil.MockQuestionRepository)
	svc := NewStatsService(userRepo, questionRepo, testutil.NewTestLogger())

	userRepo.On("CountAll").Return(0, errors.New("db down"))

	summary, err := svc.Summary()

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestStatsService_Summary_QuestionRepoError(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	questionRepo := new(testutil.MockQuestionRepository)
	svc := NewStatsService(userRepo, questionRepo, testutil.NewTestLogger())

	userRepo.On("CountAll").Return(100, nil)
	userRepo.On("CountActive", 1).Return(10, nil)
	userRepo.On("CountActive", 7).Return(40, nil)
	userRepo.On("CountActive", 30).Return(80, nil)
	questionRepo.On("Count", domain.Part1).Return(0, errors.New("db down"))

	summary, err := svc.Summary()

	assert.Error(t, err)
	assert.Nil(t, summary)
}
