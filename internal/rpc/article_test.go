package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/daniilsolovey/articles/internal/articles"
	"github.com/daniilsolovey/articles/internal/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmkteam/zenrpc/v2"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func intPtr(i int) *int { return &i }

func newTestService(t *testing.T) *ArticleService {
	t.Helper()
	return NewArticleService(testLogger, articles.NewManager(articles.NewMemoryStore()), pager.DefaultConfig())
}

func input(title, author string) ArticleInput {
	return ArticleInput{
		Title:    title,
		Category: "Technology",
		Author:   author,
		Content:  "Artificial intelligence continues to evolve rapidly.",
	}
}

func requireCode(t *testing.T, err error, code int) *zenrpc.Error {
	t.Helper()

	var rpcErr *zenrpc.Error
	require.ErrorAs(t, err, &rpcErr)
	assert.Equal(t, code, rpcErr.Code)
	return rpcErr
}

func TestArticleService_CRUD(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	created, err := s.Create(ctx, input("AI Breakthrough", "John Doe"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	got, err := s.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "AI Breakthrough", got.Title)

	update := input("AI Breakthrough", "John Doe")
	update.Content = "Updated content"
	updated, err := s.Update(ctx, created.ID, update)
	require.NoError(t, err)
	assert.Equal(t, "Updated content", updated.Content)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	deleted, err := s.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	_, err = s.ByID(ctx, created.ID)
	requireCode(t, err, 404)

	_, err = s.Delete(ctx, created.ID)
	requireCode(t, err, 404)
}

func TestArticleService_Errors(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	_, err := s.ByID(ctx, 0)
	requireCode(t, err, 400)

	_, err = s.Create(ctx, input("A", ""))
	rpcErr := requireCode(t, err, 400)
	fields, ok := rpcErr.Data.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "author")

	_, err = s.Create(ctx, input("AI Breakthrough", "John Doe"))
	require.NoError(t, err)
	_, err = s.Create(ctx, input("AI Breakthrough", "John Doe"))
	requireCode(t, err, 409)

	_, err = s.Update(ctx, 999, input("Quantum Computers", "John Doe"))
	requireCode(t, err, 404)
}

func TestArticleService_ListAndLatest(t *testing.T) {
	ctx := context.Background()
	s := newTestService(t)

	latest, err := s.Latest(ctx)
	require.NoError(t, err)
	assert.Nil(t, latest)

	for _, title := range []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"} {
		_, err := s.Create(ctx, input(title, "John Doe"))
		require.NoError(t, err)
	}

	page, err := s.List(ctx, nil, nil)
	require.NoError(t, err)
	assert.Len(t, page.Articles, 5)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 5, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 7, page.TotalCount)
	assert.Equal(t, []int{1, 2}, page.Pager.Pages)

	page, err = s.List(ctx, intPtr(2), intPtr(5))
	require.NoError(t, err)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, "Six", page.Articles[0].Title)
	assert.Equal(t, 2, page.Pager.CurrentPage)

	page, err = s.List(ctx, intPtr(math.MaxInt), intPtr(10))
	require.NoError(t, err)
	assert.Empty(t, page.Articles)
	assert.Equal(t, 7, page.TotalCount)

	latest, err = s.Latest(ctx)
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, "Seven", latest.Title)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Code    int               `json:"code"`
		Message string            `json:"message"`
		Data    map[string]string `json:"data"`
	} `json:"error"`
}

func call(t *testing.T, srv http.Handler, method string, params any) rpcResponse {
	t.Helper()

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/rpc", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp rpcResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestServer(t *testing.T) {
	srv := New(testLogger, articles.NewManager(articles.NewMemoryStore()), pager.DefaultConfig())

	resp := call(t, srv, "article.create", map[string]any{"article": input("AI Breakthrough", "John Doe")})
	require.Nil(t, resp.Error)

	var created Article
	require.NoError(t, json.Unmarshal(resp.Result, &created))
	assert.Equal(t, int64(1), created.ID)

	resp = call(t, srv, "article.byId", []any{created.ID})
	require.Nil(t, resp.Error)

	var got Article
	require.NoError(t, json.Unmarshal(resp.Result, &got))
	assert.Equal(t, "AI Breakthrough", got.Title)

	resp = call(t, srv, "article.create", map[string]any{"article": input("AI Breakthrough", "John Doe")})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 409, resp.Error.Code)
	assert.Contains(t, resp.Error.Data, "title")

	resp = call(t, srv, "article.list", map[string]any{"pageSize": 10})
	require.Nil(t, resp.Error)

	var page ArticlePage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Equal(t, 10, page.PageSize)
	assert.Len(t, page.Articles, 1)

	resp = call(t, srv, "article.byId", map[string]any{"id": 42})
	require.NotNil(t, resp.Error)
	assert.Equal(t, 404, resp.Error.Code)

	resp = call(t, srv, "article.unknown", nil)
	require.NotNil(t, resp.Error)
	assert.Equal(t, zenrpc.MethodNotFound, resp.Error.Code)
}

func TestServer_LogsCalls(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&out, nil))
	srv := New(logger, articles.NewManager(articles.NewMemoryStore()), pager.DefaultConfig())

	resp := call(t, srv, "article.all", nil)
	require.Nil(t, resp.Error)
	assert.Contains(t, out.String(), "all")
}
