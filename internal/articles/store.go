package articles

import "context"

// Store persists articles. It knows nothing about the title+author rule,
// Manager enforces it.
type Store interface {
	// ArticleByID returns ErrNotFound when there is no such article.
	ArticleByID(ctx context.Context, id int64) (*Article, error)
	ArticlesByTitleAndAuthor(ctx context.Context, title, author string) ([]Article, error)
	// Articles returns the 0-based page pageIndex ordered by id.
	Articles(ctx context.Context, pageIndex, pageSize int) (*Page, error)
	AllArticles(ctx context.Context) ([]Article, error)
	// SaveArticle inserts an article with a zero ID and updates it otherwise.
	SaveArticle(ctx context.Context, article Article) (*Article, error)
	DeleteArticle(ctx context.Context, id int64) error
	// MaxArticleID reports false when the store is empty.
	MaxArticleID(ctx context.Context) (int64, bool, error)
}
