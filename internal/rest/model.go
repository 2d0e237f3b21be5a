package rest

import (
	"time"

	"github.com/daniilsolovey/articles/internal/pager"
)

// PageRequest holds the listing parameters, page is 1-based. Zero means absent.
type PageRequest struct {
	Page     int `query:"page"`
	PageSize int `query:"pageSize"`
}

// ArticleForm is the article create/edit form.
type ArticleForm struct {
	Title       string `form:"title" json:"title" validate:"min=2,max=100"`
	Category    string `form:"category" json:"category" validate:"required"`
	Author      string `form:"author" json:"author" validate:"required"`
	Description string `form:"description" json:"description"`
	Content     string `form:"content" json:"content" validate:"required"`
}

// FormErrors maps form field names to messages.
type FormErrors map[string]string

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

// ListView is the data of the list and index views.
type ListView struct {
	Title            string
	Latest           *Article
	Articles         []Article
	TotalCount       int
	Pager            pager.Pager
	SelectedPageSize int
	PageSizes        []int
	BasePath         string
}

type ShowView struct {
	Title   string
	Article Article
}

type FormView struct {
	Title  string
	Action string
	Cancel string
	Form   ArticleForm
	Errors FormErrors
}

type NotFoundView struct {
	Title   string
	Message string
}
