package articles

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 1, 14, 12, 0, 0, 0, time.UTC)

// stepClock returns baseTime and advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	current := baseTime
	return func() time.Time {
		now := current
		current = current.Add(step)
		return now
	}
}

func newTestManager(t *testing.T) (*Manager, *MemoryStore) {
	t.Helper()

	store := NewMemoryStore()
	manager := NewManager(store)
	manager.now = stepClock(time.Minute)
	return manager, store
}

func newArticle(title, author string) Article {
	return Article{
		Title:       title,
		Category:    "Technology",
		Author:      author,
		Description: "Short description",
		Content:     "Artificial intelligence continues to evolve rapidly.",
	}
}

// failingStore returns err from every call.
type failingStore struct {
	err error
}

func (s failingStore) ArticleByID(context.Context, int64) (*Article, error) { return nil, s.err }
func (s failingStore) ArticlesByTitleAndAuthor(context.Context, string, string) ([]Article, error) {
	return nil, s.err
}
func (s failingStore) Articles(context.Context, int, int) (*Page, error)      { return nil, s.err }
func (s failingStore) AllArticles(context.Context) ([]Article, error)         { return nil, s.err }
func (s failingStore) SaveArticle(context.Context, Article) (*Article, error) { return nil, s.err }
func (s failingStore) DeleteArticle(context.Context, int64) error             { return s.err }
func (s failingStore) MaxArticleID(context.Context) (int64, bool, error)      { return 0, false, s.err }

func TestManager_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("SetsTimestampsAndAssignsID", func(t *testing.T) {
		manager, _ := newTestManager(t)

		created, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
		assert.Equal(t, baseTime, created.CreatedAt)
		assert.Equal(t, baseTime, created.UpdatedAt)
	})

	t.Run("DuplicateTitleAndAuthorFails", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)

		_, err = manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.ErrorIs(t, err, ErrDuplicateTitleAuthor)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Equal(t, CodeDuplicateTitleAuthor, verr.Code)
	})

	t.Run("SameTitleDifferentAuthorSucceeds", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)

		created, err := manager.Create(ctx, newArticle("AI Breakthrough", "Jane Smith"))
		require.NoError(t, err)
		assert.Equal(t, int64(2), created.ID)
	})

	t.Run("IgnoresCallerSuppliedID", func(t *testing.T) {
		manager, _ := newTestManager(t)

		a := newArticle("AI Breakthrough", "John Doe")
		a.ID = 42
		created, err := manager.Create(ctx, a)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("StoreErrorIsWrapped", func(t *testing.T) {
		storeErr := errors.New("connection refused")
		manager := NewManager(failingStore{err: storeErr})

		_, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.ErrorIs(t, err, storeErr)
	})
}

func TestManager_IsTitleAuthorUnique(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	created, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
	require.NoError(t, err)

	unique, err := manager.IsTitleAuthorUnique(ctx, newArticle("AI Breakthrough", "John Doe"))
	require.NoError(t, err)
	assert.False(t, unique, "new article with taken title and author")

	unique, err = manager.IsTitleAuthorUnique(ctx, *created)
	require.NoError(t, err)
	assert.True(t, unique, "stored article is not a duplicate of itself")

	unique, err = manager.IsTitleAuthorUnique(ctx, newArticle("Quantum Computers", "John Doe"))
	require.NoError(t, err)
	assert.True(t, unique)
}

func TestManager_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("PreservesCreatedAtAndAdvancesUpdatedAt", func(t *testing.T) {
		manager, _ := newTestManager(t)

		created, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)

		fields := newArticle("AI Breakthrough", "John Doe")
		fields.Content = "Updated content"
		fields.Category = "Science"

		updated, err := manager.Update(ctx, created.ID, fields)
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Updated content", updated.Content)
		assert.Equal(t, "Science", updated.Category)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))

		stored, err := manager.ByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, *updated, *stored)
	})

	t.Run("UpdatedAtAdvancesWithFrozenClock", func(t *testing.T) {
		manager, _ := newTestManager(t)
		manager.now = func() time.Time { return baseTime }

		created, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)

		updated, err := manager.Update(ctx, created.ID, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
	})

	t.Run("MissingArticleFails", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Update(ctx, 99999, newArticle("AI Breakthrough", "John Doe"))
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("TakingAnotherArticlesTitleAndAuthorFails", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)
		second, err := manager.Create(ctx, newArticle("Quantum Computers", "John Doe"))
		require.NoError(t, err)

		_, err = manager.Update(ctx, second.ID, newArticle("AI Breakthrough", "John Doe"))
		require.ErrorIs(t, err, ErrDuplicateTitleAuthor)

		stored, err := manager.ByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, "Quantum Computers", stored.Title)
	})
}

func TestManager_Delete(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	created, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
	require.NoError(t, err)

	require.NoError(t, manager.Delete(ctx, created.ID))

	_, err = manager.ByID(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)

	err = manager.Delete(ctx, created.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestManager_RoundTrip(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	in := newArticle("AI Breakthrough", "John Doe")
	created, err := manager.Create(ctx, in)
	require.NoError(t, err)

	got, err := manager.ByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Title, got.Title)
	assert.Equal(t, in.Category, got.Category)
	assert.Equal(t, in.Author, got.Author)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.Content, got.Content)
}

func TestManager_Latest(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyStoreReturnsNil", func(t *testing.T) {
		manager, _ := newTestManager(t)

		latest, err := manager.Latest(ctx)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("ReturnsHighestID", func(t *testing.T) {
		manager, _ := newTestManager(t)

		_, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)
		second, err := manager.Create(ctx, newArticle("Quantum Computers", "Jane Smith"))
		require.NoError(t, err)

		latest, err := manager.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, second.ID, latest.ID)
	})

	t.Run("FollowsDeletes", func(t *testing.T) {
		manager, _ := newTestManager(t)

		first, err := manager.Create(ctx, newArticle("AI Breakthrough", "John Doe"))
		require.NoError(t, err)
		second, err := manager.Create(ctx, newArticle("Quantum Computers", "Jane Smith"))
		require.NoError(t, err)
		require.NoError(t, manager.Delete(ctx, second.ID))

		latest, err := manager.Latest(ctx)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, first.ID, latest.ID)
	})
}

func TestManager_List(t *testing.T) {
	ctx := context.Background()
	manager, _ := newTestManager(t)

	titles := []string{"One", "Two", "Three", "Four", "Five", "Six", "Seven"}
	for _, title := range titles {
		_, err := manager.Create(ctx, newArticle(title, "John Doe"))
		require.NoError(t, err)
	}

	page, err := manager.List(ctx, 0, 5)
	require.NoError(t, err)
	assert.Len(t, page.Articles, 5)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 7, page.TotalCount)
	assert.Equal(t, 0, page.PageIndex)

	page, err = manager.List(ctx, 1, 5)
	require.NoError(t, err)
	require.Len(t, page.Articles, 2)
	assert.Equal(t, "Six", page.Articles[0].Title)
	assert.Equal(t, "Seven", page.Articles[1].Title)

	page, err = manager.List(ctx, 5, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Articles)
	assert.Equal(t, 2, page.TotalPages)

	page, err = manager.List(ctx, math.MaxInt, 5)
	require.NoError(t, err)
	assert.Empty(t, page.Articles)
	assert.Equal(t, 7, page.TotalCount)

	_, err = manager.List(ctx, 0, 0)
	require.Error(t, err)

	all, err := manager.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(titles))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 5))
	assert.Equal(t, 1, TotalPages(5, 5))
	assert.Equal(t, 2, TotalPages(6, 5))
	assert.Equal(t, 0, TotalPages(6, 0))
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Code: CodeDuplicateTitleAuthor}
	assert.ErrorIs(t, err, ErrDuplicateTitleAuthor)
	assert.NotErrorIs(t, &ValidationError{Code: "Other"}, ErrDuplicateTitleAuthor)
	assert.Contains(t, ErrDuplicateTitleAuthor.Error(), "author: An article")
}
