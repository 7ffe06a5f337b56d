package postgres

import (
	"database/sql"
	"fmt"

	"speakify/internal/domain"
)

// QuestionRepo implements repository.QuestionRepository on PostgreSQL.
// Table and column names come from the fixed Category enum, never from
// user input, so building queries with Sprintf is safe here.
type QuestionRepo struct {
	db *sql.DB
}

// NewQuestionRepo creates a new question repository.
func NewQuestionRepo(db *sql.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetRandom returns a uniform-random question from the category.
func (r *QuestionRepo) GetRandom(cat domain.Category) (*domain.Question, error) {
	query := fmt.Sprintf(
		`SELECT id, %s FROM %s ORDER BY RANDOM() LIMIT 1`,
		cat.Column(), cat.Table(),
	)

	var q domain.Question
	err := r.db.QueryRow(query).Scan(&q.ID, &q.Text)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get random from %s: %w", cat.Table(), err)
	}
	return &q, nil
}

// GetByID returns the question with the given id.
func (r *QuestionRepo) GetByID(cat domain.Category, id int) (*domain.Question, error) {
	query := fmt.Sprintf(
		`SELECT id, %s FROM %s WHERE id = $1`,
		cat.Column(), cat.Table(),
	)

	var q domain.Question
	err := r.db.QueryRow(query, id).Scan(&q.ID, &q.Text)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get by id from %s: %w", cat.Table(), err)
	}
	return &q, nil
}

// Add inserts a question. A pre-existing identical text is reported as
// domain.ErrAlreadyExists, not as a storage failure.
func (r *QuestionRepo) Add(cat domain.Category, text string) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (%s) VALUES ($1) ON CONFLICT (%s) DO NOTHING`,
		cat.Table(), cat.Column(), cat.Column(),
	)

	res, err := r.db.Exec(query, text)
	if err != nil {
		return fmt.Errorf("insert into %s: %w", cat.Table(), err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert into %s: %w", cat.Table(), err)
	}
	if affected == 0 {
		return domain.ErrAlreadyExists
	}
	return nil
}

// Delete removes the question with the given id.
func (r *QuestionRepo) Delete(cat domain.Category, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, cat.Table())

	res, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("delete from %s: %w", cat.Table(), err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete from %s: %w", cat.Table(), err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// GetAll returns every question in the category ordered by id.
func (r *QuestionRepo) GetAll(cat domain.Category) ([]domain.Question, error) {
	query := fmt.Sprintf(
		`SELECT id, %s FROM %s ORDER BY id`,
		cat.Column(), cat.Table(),
	)

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("select all from %s: %w", cat.Table(), err)
	}
	defer rows.Close()

	var questions []domain.Question
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.Text); err != nil {
			return nil, fmt.Errorf("scan %s row: %w", cat.Table(), err)
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

// Count returns the number of questions in the category.
func (r *QuestionRepo) Count(cat domain.Category) (int, error) {
	query := fmt.Sprintf(`SELECT COUNT(id) FROM %s`, cat.Table())

	var count int
	if err := r.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", cat.Table(), err)
	}
	return count, nil
}
