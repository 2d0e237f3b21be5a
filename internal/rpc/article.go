package rpc

import (
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/pager"
	"github.com/go-playground/validator/v10"
	"github.com/vmkteam/zenrpc/v2"
)

var (
	ErrNotFound = zenrpc.NewStringError(404, "article not found")
	ErrInternal = zenrpc.NewStringError(500, "internal error")
)

// ArticleService provides RPC methods for articles.
type ArticleService struct {
	zenrpc.Service
	manager  *articles.Manager
	paging   pager.Config
	validate *validator.Validate
	log      *slog.Logger
}

func NewArticleService(logger *slog.Logger, manager *articles.Manager, paging pager.Config) *ArticleService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &ArticleService{
		manager:  manager,
		paging:   paging,
		validate: validate,
		log:      logger,
	}
}

// validationError converts field errors into a 400 error with a message per field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return zenrpc.NewStringError(400, err.Error())
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}

	e := zenrpc.NewStringError(400, "invalid article")
	e.Data = fields
	return e
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "min", "max":
		return fe.Field() + " must be between 2 and 100 characters"
	default:
		return fe.Field() + " is invalid"
	}
}

// newError maps manager errors to RPC errors.
func (s ArticleService) newError(ctx context.Context, err error) error {
	var verr *articles.ValidationError
	switch {
	case errors.Is(err, articles.ErrNotFound):
		return ErrNotFound
	case errors.As(err, &verr):
		e := zenrpc.NewStringError(409, verr.Error())
		e.Data = verr.Fields
		return e
	default:
		s.log.ErrorContext(ctx, "article service failed", "error", err)
		return ErrInternal
	}
}

// List returns a page of articles ordered by id with the pager window.
//
//zenrpc:page page number (1-based), first page when omitted
//zenrpc:pageSize items per page, 5 when omitted
//zenrpc:return page of articles
//zenrpc:500 internal server error
func (s ArticleService) List(ctx context.Context, page, pageSize *int) (*ArticlePage, error) {
	pageIndex, size := s.paging.Params(page, pageSize)

	list, err := s.manager.List(ctx, pageIndex, size)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	result := NewArticlePage(*list, size, s.paging.New(list.TotalPages, list.PageIndex))
	return &result, nil
}

// ByID returns a single article.
//
//zenrpc:id article id
//zenrpc:return article
//zenrpc:400 id must be positive
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s ArticleService) ByID(ctx context.Context, id int64) (*Article, error) {
	if id <= 0 {
		return nil, zenrpc.NewStringError(400, "id must be positive")
	}

	article, err := s.manager.ByID(ctx, id)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	result := NewArticle(*article)
	return &result, nil
}

// Latest returns the article with the highest id, null when there are none.
//
//zenrpc:return latest article
//zenrpc:500 internal server error
func (s ArticleService) Latest(ctx context.Context) (*Article, error) {
	article, err := s.manager.Latest(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	} else if article == nil {
		return nil, nil
	}

	result := NewArticle(*article)
	return &result, nil
}

// All returns every article ordered by id.
//
//zenrpc:return list of articles
//zenrpc:500 internal server error
func (s ArticleService) All(ctx context.Context) ([]Article, error) {
	list, err := s.manager.All(ctx)
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	return NewArticles(list), nil
}

// Create stores a new article.
//
//zenrpc:article article fields
//zenrpc:return created article
//zenrpc:400 invalid article
//zenrpc:409 article with this title and author already exists
//zenrpc:500 internal server error
func (s ArticleService) Create(ctx context.Context, article ArticleInput) (*Article, error) {
	if err := s.validate.Struct(article); err != nil {
		return nil, validationError(err)
	}

	created, err := s.manager.Create(ctx, article.ToModel())
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	result := NewArticle(*created)
	return &result, nil
}

// Update replaces the editable fields of an article.
//
//zenrpc:id article id
//zenrpc:article article fields
//zenrpc:return updated article
//zenrpc:400 invalid article
//zenrpc:404 article not found
//zenrpc:409 article with this title and author already exists
//zenrpc:500 internal server error
func (s ArticleService) Update(ctx context.Context, id int64, article ArticleInput) (*Article, error) {
	if err := s.validate.Struct(article); err != nil {
		return nil, validationError(err)
	}

	updated, err := s.manager.Update(ctx, id, article.ToModel())
	if err != nil {
		return nil, s.newError(ctx, err)
	}

	result := NewArticle(*updated)
	return &result, nil
}

// Delete removes an article.
//
//zenrpc:id article id
//zenrpc:return true when deleted
//zenrpc:404 article not found
//zenrpc:500 internal server error
func (s ArticleService) Delete(ctx context.Context, id int64) (bool, error) {
	if err := s.manager.Delete(ctx, id); err != nil {
		return false, s.newError(ctx, err)
	}

	return true, nil
}
