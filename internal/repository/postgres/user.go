package postgres

import (
	"database/sql"
	"fmt"
)

// UserRepo implements repository.UserRepository on PostgreSQL.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Touch records activity for a chat. The first call creates the row
// with first_seen = last_interaction = now; later calls only bump
// last_interaction.
func (r *UserRepo) Touch(chatID int64) error {
	query := `
		INSERT INTO users (chat_id, first_seen, last_interaction)
		VALUES ($1, NOW(), NOW())
		ON CONFLICT (chat_id)
		DO UPDATE SET last_interaction = NOW()
	`
	if _, err := r.db.Exec(query, chatID); err != nil {
		return fmt.Errorf("touch user: %w", err)
	}
	return nil
}

// CountAll returns the all-time distinct user count.
func (r *UserRepo) CountAll() (int, error) {
	var count int
	query := `SELECT COUNT(DISTINCT chat_id) FROM users`
	if err := r.db.QueryRow(query).Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// CountActive returns the number of users whose last interaction is
// within the given number of days, evaluated against the database clock.
func (r *UserRepo) CountActive(days int) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT chat_id) FROM users
		WHERE last_interaction >= NOW() - INTERVAL '1 day' * $1
	`
	if err := r.db.QueryRow(query, days).Scan(&count); err != nil {
		return 0, fmt.Errorf("count active users: %w", err)
	}
	return count, nil
}

// AllChatIDs returns every known chat id, for broadcast fan-out.
func (r *UserRepo) AllChatIDs() ([]int64, error) {
	rows, err := r.db.Query(`SELECT chat_id FROM users ORDER BY chat_id`)
	if err != nil {
		return nil, fmt.Errorf("select chat ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan chat id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
