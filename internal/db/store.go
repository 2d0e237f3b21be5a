package db

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/articles/internal/articles"
)

// Store adapts Repository to articles.Store.
type Store struct {
	repo *Repository
}

func NewStore(repo *Repository) *Store {
	return &Store{repo: repo}
}

func (s *Store) ArticleByID(ctx context.Context, id int64) (*articles.Article, error) {
	dbArticle, err := s.repo.ArticleByID(ctx, id)
	if err != nil {
		return nil, err
	} else if dbArticle == nil {
		return nil, fmt.Errorf("get article %d: %w", id, articles.ErrNotFound)
	}

	article := NewArticle(dbArticle)
	return &article, nil
}

func (s *Store) ArticlesByTitleAndAuthor(ctx context.Context, title, author string) ([]articles.Article, error) {
	list, err := s.repo.ArticlesByTitleAndAuthor(ctx, title, author)
	if err != nil {
		return nil, err
	}

	return NewArticles(list), nil
}

func (s *Store) Articles(ctx context.Context, pageIndex, pageSize int) (*articles.Page, error) {
	list, count, err := s.repo.Articles(ctx, pageIndex+1, pageSize)
	if err != nil {
		return nil, err
	}

	return &articles.Page{
		Articles:   NewArticles(list),
		TotalPages: articles.TotalPages(count, pageSize),
		PageIndex:  pageIndex,
		TotalCount: count,
	}, nil
}

func (s *Store) AllArticles(ctx context.Context) ([]articles.Article, error) {
	list, err := s.repo.AllArticles(ctx)
	if err != nil {
		return nil, err
	}

	return NewArticles(list), nil
}

func (s *Store) SaveArticle(ctx context.Context, article articles.Article) (*articles.Article, error) {
	dbArticle := NewDBArticle(article)

	if dbArticle.ID == 0 {
		if _, err := s.repo.AddArticle(ctx, dbArticle); err != nil {
			return nil, err
		}
	} else {
		ok, err := s.repo.UpdateArticle(ctx, dbArticle)
		if err != nil {
			return nil, err
		} else if !ok {
			return nil, fmt.Errorf("update article %d: %w", article.ID, articles.ErrNotFound)
		}
	}

	saved := NewArticle(dbArticle)
	return &saved, nil
}

func (s *Store) DeleteArticle(ctx context.Context, id int64) error {
	ok, err := s.repo.DeleteArticle(ctx, id)
	if err != nil {
		return err
	} else if !ok {
		return fmt.Errorf("delete article %d: %w", id, articles.ErrNotFound)
	}

	return nil
}

func (s *Store) MaxArticleID(ctx context.Context) (int64, bool, error) {
	id, err := s.repo.MaxArticleID(ctx)
	if err != nil {
		return 0, false, err
	}

	return id, id > 0, nil
}
