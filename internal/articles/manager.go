package articles

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Manager holds the article rules on top of a Store.
type Manager struct {
	store Store
	now   func() time.Time
}

func NewManager(store Store) *Manager {
	return &Manager{
		store: store,
		now:   time.Now,
	}
}

// IsTitleAuthorUnique reports whether no other article has the same title and author.
// The article's own row does not count, so an unchanged article passes on update.
func (m *Manager) IsTitleAuthorUnique(ctx context.Context, article Article) (bool, error) {
	list, err := m.store.ArticlesByTitleAndAuthor(ctx, article.Title, article.Author)
	if err != nil {
		return false, fmt.Errorf("db get articles by title and author: %w", err)
	}

	for i := range list {
		if article.ID == 0 || list[i].ID != article.ID {
			return false, nil
		}
	}

	return true, nil
}

func (m *Manager) Create(ctx context.Context, article Article) (*Article, error) {
	article.ID = 0

	unique, err := m.IsTitleAuthorUnique(ctx, article)
	if err != nil {
		return nil, err
	} else if !unique {
		return nil, ErrDuplicateTitleAuthor
	}

	now := m.now()
	article.CreatedAt = now
	article.UpdatedAt = now

	saved, err := m.store.SaveArticle(ctx, article)
	if err != nil {
		return nil, fmt.Errorf("db save article: %w", err)
	}

	return saved, nil
}

// Update copies the editable fields of fields onto the article with the given id.
// CreatedAt is never changed.
func (m *Manager) Update(ctx context.Context, id int64, fields Article) (*Article, error) {
	article, err := m.ByID(ctx, id)
	if err != nil {
		return nil, err
	}

	article.Category = fields.Category
	article.Title = fields.Title
	article.Author = fields.Author
	article.Description = fields.Description
	article.Content = fields.Content

	unique, err := m.IsTitleAuthorUnique(ctx, *article)
	if err != nil {
		return nil, err
	} else if !unique {
		return nil, ErrDuplicateTitleAuthor
	}

	now := m.now()
	if !now.After(article.UpdatedAt) {
		now = article.UpdatedAt.Add(time.Microsecond)
	}
	article.UpdatedAt = now

	saved, err := m.store.SaveArticle(ctx, *article)
	if err != nil {
		return nil, fmt.Errorf("db save article %d: %w", id, err)
	}

	return saved, nil
}

func (m *Manager) Delete(ctx context.Context, id int64) error {
	if _, err := m.ByID(ctx, id); err != nil {
		return err
	}

	if err := m.store.DeleteArticle(ctx, id); err != nil {
		return fmt.Errorf("db delete article %d: %w", id, err)
	}

	return nil
}

func (m *Manager) ByID(ctx context.Context, id int64) (*Article, error) {
	article, err := m.store.ArticleByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return nil, err
	} else if err != nil {
		return nil, fmt.Errorf("db get article by id: %w", err)
	}

	return article, nil
}

// Latest returns the article with the highest id, or nil when there are no articles.
func (m *Manager) Latest(ctx context.Context) (*Article, error) {
	id, ok, err := m.store.MaxArticleID(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get max article id: %w", err)
	} else if !ok {
		return nil, nil
	}

	return m.ByID(ctx, id)
}

func (m *Manager) List(ctx context.Context, pageIndex, pageSize int) (*Page, error) {
	page, err := m.store.Articles(ctx, pageIndex, pageSize)
	if err != nil {
		return nil, fmt.Errorf("db get articles: %w", err)
	}

	return page, nil
}

func (m *Manager) All(ctx context.Context) ([]Article, error) {
	list, err := m.store.AllArticles(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get all articles: %w", err)
	}

	return list, nil
}
