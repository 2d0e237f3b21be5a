package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/pager"
	"github.com/labstack/echo/v4"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type ArticleHandler struct {
	uc     *articles.Manager
	paging pager.Config
	db     Pinger
	log    *slog.Logger
}

func NewArticleHandler(uc *articles.Manager, paging pager.Config, db Pinger, log *slog.Logger) *ArticleHandler {
	return &ArticleHandler{
		uc:     uc,
		paging: paging,
		db:     db,
		log:    log,
	}
}

func articlePath(id int64) string {
	return fmt.Sprintf("/article/%d", id)
}

func editArticlePath(id int64) string {
	return fmt.Sprintf("/article/%d/edit", id)
}

func (h *ArticleHandler) handleError(c echo.Context, err error, statusCode int, message string) error {
	h.log.Error("handleError", "error", err, "statusCode", statusCode, "message", message)
	return c.String(statusCode, message)
}

func (h *ArticleHandler) notFound(c echo.Context, message string) error {
	return c.Render(http.StatusNotFound, viewNotFound, NotFoundView{
		Title:   "Not found",
		Message: message,
	})
}

// articleID parses the :id path parameter.
func articleID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse article id %q: %w", c.Param("id"), err)
	}

	return id, nil
}

// redirectToForm flashes the rejected form and sends the user back to it.
func (h *ArticleHandler) redirectToForm(c echo.Context, path string, form ArticleForm, errs FormErrors) error {
	if err := setFlash(c, flash{Form: form, Errors: errs}); err != nil {
		h.log.Warn("failed to set flash", "error", err, "path", path)
	}

	return c.Redirect(http.StatusFound, path)
}

// bindForm binds and validates the submitted form. Field errors are returned
// as FormErrors, anything else is a malformed request.
func (h *ArticleHandler) bindForm(c echo.Context) (ArticleForm, FormErrors, error) {
	var form ArticleForm
	if err := c.Bind(&form); err != nil {
		return form, nil, err
	}

	err := c.Validate(&form)
	var errs FormErrors
	if errors.As(err, &errs) {
		return form, errs, nil
	} else if err != nil {
		return form, nil, err
	}

	return form, nil, nil
}

func (h *ArticleHandler) listView(c echo.Context, title, basePath string) (*ListView, error) {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid request parameters").SetInternal(err)
	}

	pageIndex, pageSize := h.paging.Params(&req.Page, &req.PageSize)

	page, err := h.uc.List(c.Request().Context(), pageIndex, pageSize)
	if err != nil {
		return nil, err
	}

	return &ListView{
		Title:            title,
		Articles:         Map(page.Articles, NewArticle),
		TotalCount:       page.TotalCount,
		Pager:            h.paging.New(page.TotalPages, page.PageIndex),
		SelectedPageSize: pageSize,
		PageSizes:        h.paging.PageSizes,
		BasePath:         basePath,
	}, nil
}

func (h *ArticleHandler) renderList(c echo.Context, view *ListView, err error, name string) error {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return h.handleError(c, err, he.Code, fmt.Sprint(he.Message))
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Render(http.StatusOK, name, view)
}

// Index handles GET / and GET /index
// @Summary Home page
// @Description Renders the latest article and the first page of articles
// @Tags articles
// @Produce html
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 5)"
// @Success 200 {string} string "index view"
// @Failure 400,500 {string} string
// @Router / [get]
func (h *ArticleHandler) Index(c echo.Context) error {
	view, err := h.listView(c, "Home", "/")
	if err != nil {
		return h.renderList(c, nil, err, viewIndex)
	}

	latest, err := h.uc.Latest(c.Request().Context())
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}
	if latest != nil {
		article := NewArticle(*latest)
		view.Latest = &article
	}

	return h.renderList(c, view, nil, viewIndex)
}

// Articles handles GET /articles
// @Summary List articles
// @Description Renders one page of articles ordered by id
// @Tags articles
// @Produce html
// @Param page query int false "Page number (default: 1)"
// @Param pageSize query int false "Page size (default: 5)"
// @Success 200 {string} string "list view"
// @Failure 400,500 {string} string
// @Router /articles [get]
func (h *ArticleHandler) Articles(c echo.Context) error {
	view, err := h.listView(c, "All articles", "/articles")
	return h.renderList(c, view, err, viewList)
}

// ArticleByID handles GET /article/:id
// @Summary Show article
// @Tags articles
// @Produce html
// @Param id path int true "Article ID"
// @Success 200 {string} string "show view"
// @Failure 400,404,500 {string} string
// @Router /article/{id} [get]
func (h *ArticleHandler) ArticleByID(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	article, err := h.uc.ByID(c.Request().Context(), id)
	if errors.Is(err, articles.ErrNotFound) {
		return h.notFound(c, "Article Not Found!")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Render(http.StatusOK, viewShow, ShowView{
		Title:   article.Title,
		Article: NewArticle(*article),
	})
}

// NewArticle handles GET /article/new
// @Summary New article form
// @Tags articles
// @Produce html
// @Success 200 {string} string "new-form view"
// @Router /article/new [get]
func (h *ArticleHandler) NewArticle(c echo.Context) error {
	view := FormView{
		Title:  "New article",
		Action: "/article/create",
		Cancel: "/articles",
	}

	if f := popFlash(c); f != nil {
		view.Form = f.Form
		view.Errors = f.Errors
	}

	return c.Render(http.StatusOK, viewNewForm, view)
}

// CreateArticle handles POST /article/create
// @Summary Create article
// @Description Redirects to the new article, or back to the form with the submitted values on validation errors
// @Tags articles
// @Accept x-www-form-urlencoded
// @Param title formData string true "Title, 2 to 100 characters"
// @Param category formData string true "Category"
// @Param author formData string true "Author"
// @Param description formData string false "Description"
// @Param content formData string true "Content"
// @Success 302 {string} string "redirect"
// @Failure 400,500 {string} string
// @Router /article/create [post]
func (h *ArticleHandler) CreateArticle(c echo.Context) error {
	form, errs, err := h.bindForm(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	} else if len(errs) > 0 {
		return h.redirectToForm(c, "/article/new", form, errs)
	}

	article, err := h.uc.Create(c.Request().Context(), form.ToModel())
	var verr *articles.ValidationError
	if errors.As(err, &verr) {
		return h.redirectToForm(c, "/article/new", form, FormErrors(verr.Fields))
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	h.log.Info("article created", "articleID", article.ID, "title", article.Title)

	return c.Redirect(http.StatusFound, articlePath(article.ID))
}

// EditArticle handles GET /article/:id/edit
// @Summary Edit article form
// @Tags articles
// @Produce html
// @Param id path int true "Article ID"
// @Success 200 {string} string "edit-form view"
// @Failure 400,404,500 {string} string
// @Router /article/{id}/edit [get]
func (h *ArticleHandler) EditArticle(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	view := FormView{
		Title:  "Edit article",
		Action: fmt.Sprintf("/article/%d/update", id),
		Cancel: articlePath(id),
	}

	if f := popFlash(c); f != nil {
		view.Form = f.Form
		view.Errors = f.Errors
		return c.Render(http.StatusOK, viewEditForm, view)
	}

	article, err := h.uc.ByID(c.Request().Context(), id)
	if errors.Is(err, articles.ErrNotFound) {
		return h.notFound(c, "Article Not Found!")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	view.Form = NewArticleForm(*article)

	return c.Render(http.StatusOK, viewEditForm, view)
}

// UpdateArticle handles POST /article/:id/update
// @Summary Update article
// @Description Redirects to the article, or back to the edit form with the submitted values on validation errors
// @Tags articles
// @Accept x-www-form-urlencoded
// @Param id path int true "Article ID"
// @Param title formData string true "Title, 2 to 100 characters"
// @Param category formData string true "Category"
// @Param author formData string true "Author"
// @Param description formData string false "Description"
// @Param content formData string true "Content"
// @Success 302 {string} string "redirect"
// @Failure 400,404,500 {string} string
// @Router /article/{id}/update [post]
func (h *ArticleHandler) UpdateArticle(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	form, errs, err := h.bindForm(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid form")
	} else if len(errs) > 0 {
		return h.redirectToForm(c, editArticlePath(id), form, errs)
	}

	_, err = h.uc.Update(c.Request().Context(), id, form.ToModel())
	var verr *articles.ValidationError
	switch {
	case errors.Is(err, articles.ErrNotFound):
		return h.notFound(c, "Article Not Found!")
	case errors.As(err, &verr):
		return h.redirectToForm(c, editArticlePath(id), form, FormErrors(verr.Fields))
	case err != nil:
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Redirect(http.StatusFound, articlePath(id))
}

// DeleteArticle handles GET and POST /article/:id/delete
// @Summary Delete article
// @Tags articles
// @Param id path int true "Article ID"
// @Success 302 {string} string "redirect to /articles"
// @Failure 400,404,500 {string} string
// @Router /article/{id}/delete [post]
func (h *ArticleHandler) DeleteArticle(c echo.Context) error {
	id, err := articleID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid id")
	}

	err = h.uc.Delete(c.Request().Context(), id)
	if errors.Is(err, articles.ErrNotFound) {
		return h.notFound(c, "Article Not Found!")
	} else if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	h.log.Info("article deleted", "articleID", id)

	return c.Redirect(http.StatusFound, "/articles")
}
