package domain

// Category identifies one of the three fixed question catalogs.
// Categories are defined at compile time and carry their own storage
// routing, so no string-keyed table maps are needed elsewhere.
type Category int

const (
	Part1 Category = iota + 1
	Part2
	Part3
)

// Categories returns all catalogs in display order.
func Categories() []Category {
	return []Category{Part1, Part2, Part3}
}

// Valid reports whether c is one of the three known catalogs.
func (c Category) Valid() bool {
	return c >= Part1 && c <= Part3
}

// Number returns the part number (1-3).
func (c Category) Number() int {
	return int(c)
}

// Table returns the storage table backing the category.
func (c Category) Table() string {
	switch c {
	case Part1:
		return "part1_questions"
	case Part2:
		return "part2_topics"
	case Part3:
		return "part3_discussions"
	}
	return ""
}

// Column returns the text column of the category's table.
func (c Category) Column() string {
	switch c {
	case Part1:
		return "question"
	case Part2:
		return "topic"
	case Part3:
		return "discussion"
	}
	return ""
}

// Title returns the plural display name used in list headers.
func (c Category) Title() string {
	switch c {
	case Part1:
		return "Part 1 Questions"
	case Part2:
		return "Part 2 Topics"
	case Part3:
		return "Part 3 Discussions"
	}
	return "Questions"
}

// Label returns the singular display name used for a single item.
func (c Category) Label() string {
	switch c {
	case Part1:
		return "Part 1 Question"
	case Part2:
		return "Part 2 Topic"
	case Part3:
		return "Part 3 Discussion"
	}
	return "Question"
}

// Key returns a short stable identifier used in callback data.
func (c Category) Key() string {
	switch c {
	case Part1:
		return "part1"
	case Part2:
		return "part2"
	case Part3:
		return "part3"
	}
	return ""
}

// CategoryFromNumber maps a part number (1-3) to its category.
func CategoryFromNumber(n int) (Category, bool) {
	c := Category(n)
	return c, c.Valid()
}

// CategoryFromKey maps a callback data key back to its category.
func CategoryFromKey(key string) (Category, bool) {
	for _, c := range Categories() {
		if c.Key() == key {
			return c, true
		}
	}
	return 0, false
}
