package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// Articles retrieves one page of articles ordered by id together with the total count.
// page is 1-based.
func (r *Repository) Articles(ctx context.Context, page, pageSize int) ([]Article, int, error) {
	if page < 1 || pageSize < 1 {
		return nil, 0, fmt.Errorf(
			"page or pageSize must be greater than 0: page=%d, pageSize=%d",
			page, pageSize,
		)
	}

	offset := (page - 1) * pageSize

	var articles []Article
	count, err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."article_id" ASC`).
		Limit(pageSize).
		Offset(offset).
		SelectAndCount()

	if err != nil {
		return nil, 0, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, count, nil
}

func (r *Repository) AllArticles(ctx context.Context) ([]Article, error) {
	articles := []Article{}
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."article_id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query all articles: %w", err)
	}

	return articles, nil
}

// ArticleByID returns nil without error when the article does not exist.
func (r *Repository) ArticleByID(ctx context.Context, articleID int64) (*Article, error) {
	article := &Article{}
	err := r.db.ModelContext(ctx, article).
		Where(`"t"."article_id" = ?`, articleID).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get article by id: %w", err)
	}

	return article, nil
}

func (r *Repository) ArticlesByTitleAndAuthor(ctx context.Context, title, author string) ([]Article, error) {
	articles := []Article{}
	err := r.db.ModelContext(ctx, &articles).
		Where(`"t"."title" = ?`, title).
		Where(`"t"."author" = ?`, author).
		OrderExpr(`"t"."article_id" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles by title and author: %w", err)
	}

	return articles, nil
}

// AddArticle inserts the article and fills its id.
func (r *Repository) AddArticle(ctx context.Context, article *Article) (*Article, error) {
	_, err := r.db.ModelContext(ctx, article).Insert()

	if err != nil {
		return nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return article, nil
}

// UpdateArticle updates all columns except created_at. It reports false when
// no row has the article id.
func (r *Repository) UpdateArticle(ctx context.Context, article *Article) (bool, error) {
	res, err := r.db.ModelContext(ctx, article).
		ExcludeColumn(Columns.Article.CreatedAt).
		WherePK().
		Update()

	if err != nil {
		return false, fmt.Errorf("failed to update article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// DeleteArticle reports false when no row has the article id.
func (r *Repository) DeleteArticle(ctx context.Context, articleID int64) (bool, error) {
	res, err := r.db.ModelContext(ctx, &Article{ID: articleID}).
		WherePK().
		Delete()

	if err != nil {
		return false, fmt.Errorf("failed to delete article: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// MaxArticleID returns 0 for an empty table.
func (r *Repository) MaxArticleID(ctx context.Context) (int64, error) {
	var maxID int64
	err := r.db.ModelContext(ctx, (*Article)(nil)).
		ColumnExpr(`COALESCE(MAX("t"."article_id"), 0)`).
		Select(pg.Scan(&maxID))

	if err != nil {
		return 0, fmt.Errorf("failed to get max article id: %w", err)
	}

	return maxID, nil
}
