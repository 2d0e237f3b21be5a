package db

import "github.com/daniilsolovey/articles/internal/articles"

func NewArticle(a *Article) articles.Article {
	article := articles.Article{
		ID:        a.ID,
		Title:     a.Title,
		Category:  a.Category,
		Author:    a.Author,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.Description != nil {
		article.Description = *a.Description
	}

	return article
}

func NewArticles(list []Article) []articles.Article {
	result := make([]articles.Article, len(list))
	for i := range list {
		result[i] = NewArticle(&list[i])
	}
	return result
}

// NewDBArticle stores an empty description as NULL.
func NewDBArticle(a articles.Article) *Article {
	article := &Article{
		ID:        a.ID,
		Title:     a.Title,
		Category:  a.Category,
		Author:    a.Author,
		Content:   a.Content,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}

	if a.Description != "" {
		description := a.Description
		article.Description = &description
	}

	return article
}
