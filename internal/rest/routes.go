package rest

import (
	"errors"
	"net/http"
	"time"

	_ "github.com/daniilsolovey/articles/docs"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggo/swag"
)

const (
	// Article paths
	indexPath         = "/index"
	articlesPath      = "/articles"
	newArticlePath    = "/article/new"
	createArticlePath = "/article/create"
	articleByIDPath   = "/article/:id"
	editArticleRoute  = "/article/:id/edit"
	updateArticlePath = "/article/:id/update"
	deleteArticlePath = "/article/:id/delete"

	// Service paths
	healthPath      = "/health"
	metricsPath     = "/metrics"
	swaggerDocPath  = "/swagger/doc.json"
	contentTypeJSON = "application/json"
)

// RegisterRoutes builds the echo server with all article routes, the
// renderer, the form validator and the middleware.
func (h *ArticleHandler) RegisterRoutes() (*echo.Echo, error) {
	renderer, err := NewRenderer()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Validator = NewFormValidator()
	e.HTTPErrorHandler = h.httpErrorHandler(e)

	metrics := NewMetrics()
	e.Use(h.loggingMiddleware)
	e.Use(metrics.Middleware)
	// innermost, so a recovered panic is logged and counted as a 500
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			h.log.Error("panic recovered", "error", err, "path", c.Request().URL.Path, "stack", string(stack))
			return err
		},
	}))

	h.registerArticleRoutes(e)

	e.GET(healthPath, h.Health)
	e.GET(metricsPath, echo.WrapHandler(metrics.Handler()))
	e.GET(swaggerDocPath, h.SwaggerDoc)

	return e, nil
}

func (h *ArticleHandler) registerArticleRoutes(e *echo.Echo) {
	e.GET("/", h.Index)
	e.GET(indexPath, h.Index)
	e.GET(articlesPath, h.Articles)
	e.GET(newArticlePath, h.NewArticle)
	e.POST(createArticlePath, h.CreateArticle)
	e.GET(articleByIDPath, h.ArticleByID)
	e.GET(editArticleRoute, h.EditArticle)
	e.POST(updateArticlePath, h.UpdateArticle)
	e.GET(deleteArticlePath, h.DeleteArticle)
	e.POST(deleteArticlePath, h.DeleteArticle)
}

// Health handles GET /health
// @Summary Health check
// @Tags service
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *ArticleHandler) Health(c echo.Context) error {
	if h.db != nil {
		if err := h.db.Ping(c.Request().Context()); err != nil {
			h.log.Error("health check failed", "error", err)
			return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// SwaggerDoc handles GET /swagger/doc.json
func (h *ArticleHandler) SwaggerDoc(c echo.Context) error {
	doc, err := swag.ReadDoc()
	if err != nil {
		return h.handleError(c, err, http.StatusInternalServerError, "internal error")
	}

	return c.Blob(http.StatusOK, contentTypeJSON, []byte(doc))
}

// httpErrorHandler renders the not-found view for unknown routes and falls
// back to the echo default for everything else.
func (h *ArticleHandler) httpErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) && he.Code == http.StatusNotFound {
			if rerr := h.notFound(c, "Page Not Found!"); rerr == nil {
				return
			}
		}

		h.log.Error("request failed", "error", err, "path", c.Request().URL.Path)
		e.DefaultHTTPErrorHandler(err, c)
	}
}

func (h *ArticleHandler) loggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		if err := next(c); err != nil {
			c.Error(err)
		}

		h.log.Info("HTTP request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration_ms", time.Since(start).Milliseconds(),
			"remote_addr", c.RealIP(),
		)

		return nil
	}
}
