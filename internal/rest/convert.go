package rest

import "github.com/daniilsolovey/articles/internal/articles"

func Map[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}

func NewArticle(a articles.Article) Article {
	return Article{
		ID:          a.ID,
		Title:       a.Title,
		Category:    a.Category,
		Author:      a.Author,
		Description: a.Description,
		Content:     a.Content,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func NewArticleForm(a articles.Article) ArticleForm {
	return ArticleForm{
		Title:       a.Title,
		Category:    a.Category,
		Author:      a.Author,
		Description: a.Description,
		Content:     a.Content,
	}
}

func (f ArticleForm) ToModel() articles.Article {
	return articles.Article{
		Title:       f.Title,
		Category:    f.Category,
		Author:      f.Author,
		Description: f.Description,
		Content:     f.Content,
	}
}
