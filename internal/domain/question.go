package domain

// Question is a single catalog item. Text is unique within its category.
type Question struct {
	ID   int
	Text string
}
