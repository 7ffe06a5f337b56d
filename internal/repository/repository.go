package repository

import "speakify/internal/domain"

// QuestionRepository defines catalog data operations. All operations
// are routed to one of the three category tables.
type QuestionRepository interface {
	GetRandom(cat domain.Category) (*domain.Question, error)
	GetByID(cat domain.Category, id int) (*domain.Question, error)
	Add(cat domain.Category, text string) error
	Delete(cat domain.Category, id int) error
	GetAll(cat domain.Category) ([]domain.Question, error)
	Count(cat domain.Category) (int, error)
}

// UserRepository defines user-activity data operations.
type UserRepository interface {
	Touch(chatID int64) error
	CountAll() (int, error)
	CountActive(days int) (int, error)
	AllChatIDs() ([]int64, error)
}
