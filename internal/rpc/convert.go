package rpc

import (
	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/pager"
)

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

func NewArticles(list []articles.Article) []Article {
	return Map(list, NewArticle)
}

func NewPager(p pager.Pager) Pager {
	return Pager{
		TotalPages:  p.TotalPages,
		CurrentPage: p.Number(p.CurrentPage),
		StartPage:   p.Number(p.StartPage),
		EndPage:     p.Number(p.EndPage),
		Pages:       Map(p.Pages(), p.Number),
	}
}

func NewArticlePage(page articles.Page, pageSize int, p pager.Pager) ArticlePage {
	return ArticlePage{
		Articles:   NewArticles(page.Articles),
		TotalCount: page.TotalCount,
		TotalPages: page.TotalPages,
		Page:       page.PageIndex + 1,
		PageSize:   pageSize,
		Pager:      NewPager(p),
	}
}
