package rpc

import (
	"time"

	"github.com/daniilsolovey/articles/internal/articles"
)

type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ArticleInput holds the editable fields of an article.
type ArticleInput struct {
	Title       string `json:"title" validate:"min=2,max=100"`
	Category    string `json:"category" validate:"required"`
	Author      string `json:"author" validate:"required"`
	Description string `json:"description"`
	Content     string `json:"content" validate:"required"`
}

func (a ArticleInput) ToModel() articles.Article {
	return articles.Article{
		Title:       a.Title,
		Category:    a.Category,
		Author:      a.Author,
		Description: a.Description,
		Content:     a.Content,
	}
}

// Pager is the window of page buttons, page numbers are 1-based.
type Pager struct {
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
	StartPage   int   `json:"startPage"`
	EndPage     int   `json:"endPage"`
	Pages       []int `json:"pages"`
}

type ArticlePage struct {
	Articles   []Article `json:"articles"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	Pager      Pager     `json:"pager"`
}
