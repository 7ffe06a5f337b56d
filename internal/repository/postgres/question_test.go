package postgres

import (
	"database/sql"
	"errors"
	"testing"

	"speakify/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestQuestionRepo_GetRandom(t *testing.T) {
	tests := []struct {
		name          string
		category      domain.Category
		mockRows      *sqlmock.Rows
		mockError     error
		expectedText  string
		expectedError error
	}{
		{
			name:         "question found",
			category:     domain.Part1,
			mockRows:     sqlmock.NewRows([]string{"id", "question"}).AddRow(3, "Describe your hometown."),
			expectedText: "Describe your hometown.",
		},
		{
			name:          "empty category",
			category:      domain.Part2,
			mockError:     sql.ErrNoRows,
			expectedError: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewQuestionRepo(db)

			query := "SELECT id, " + tt.category.Column() + " FROM " + tt.category.Table() + " ORDER BY RANDOM"
			if tt.mockError != nil {
				mock.ExpectQuery(query).WillReturnError(tt.mockError)
			} else {
				mock.ExpectQuery(query).WillReturnRows(tt.mockRows)
			}

			q, err := repo.GetRandom(tt.category)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, q)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedText, q.Text)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepo_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	rows := sqlmock.NewRows([]string{"id", "question"}).AddRow(7, "Sample Part 1 Question 7")
	mock.ExpectQuery("SELECT id, question FROM part1_questions WHERE id").
		WithArgs(7).
		WillReturnRows(rows)

	q, err := repo.GetByID(domain.Part1, 7)

	assert.NoError(t, err)
	assert.Equal(t, 7, q.ID)
	assert.Equal(t, "Sample Part 1 Question 7", q.Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectQuery("SELECT id, question FROM part1_questions WHERE id").
		WithArgs(999).
		WillReturnError(sql.ErrNoRows)

	q, err := repo.GetByID(domain.Part1, 999)

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, q)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_Add(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "inserted", rowsAffected: 1},
		{name: "duplicate is a no-op", rowsAffected: 0, expectedError: domain.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewQuestionRepo(db)

			mock.ExpectExec("INSERT INTO part2_topics").
				WithArgs("Describe a memorable trip.").
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.Add(domain.Part2, "Describe a memorable trip.")

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepo_Add_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	mock.ExpectExec("INSERT INTO part1_questions").
		WithArgs("Some question").
		WillReturnError(errors.New("connection refused"))

	err = repo.Add(domain.Part1, "Some question")

	assert.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_Delete(t *testing.T) {
	tests := []struct {
		name          string
		rowsAffected  int64
		expectedError error
	}{
		{name: "deleted", rowsAffected: 1},
		{name: "id not found", rowsAffected: 0, expectedError: domain.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			assert.NoError(t, err)
			defer db.Close()

			repo := NewQuestionRepo(db)

			mock.ExpectExec("DELETE FROM part3_discussions").
				WithArgs(5).
				WillReturnResult(sqlmock.NewResult(0, tt.rowsAffected))

			err = repo.Delete(domain.Part3, 5)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestQuestionRepo_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	rows := sqlmock.NewRows([]string{"id", "topic"}).
		AddRow(1, "Topic one").
		AddRow(2, "Topic two").
		AddRow(5, "Topic five")
	mock.ExpectQuery("SELECT id, topic FROM part2_topics ORDER BY id").
		WillReturnRows(rows)

	questions, err := repo.GetAll(domain.Part2)

	assert.NoError(t, err)
	assert.Len(t, questions, 3)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, "Topic five", questions[2].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestQuestionRepo_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := NewQuestionRepo(db)

	rows := sqlmock.NewRows([]string{"count"}).AddRow(14)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM part1_questions`).
		WillReturnRows(rows)

	count, err := repo.Count(domain.Part1)

	assert.NoError(t, err)
	assert.Equal(t, 14, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
