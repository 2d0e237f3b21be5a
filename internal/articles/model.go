package articles

import "time"

// Article is a stored article. ID is zero until the article is saved.
type Article struct {
	ID          int64
	Title       string
	Category    string
	Author      string
	Description string
	Content     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Page is one page of a listing. PageIndex is 0-based.
type Page struct {
	Articles   []Article
	TotalPages int
	PageIndex  int
	TotalCount int
}

// TotalPages returns ceil(count / pageSize).
func TotalPages(count, pageSize int) int {
	if pageSize < 1 || count < 1 {
		return 0
	}

	return (count + pageSize - 1) / pageSize
}
