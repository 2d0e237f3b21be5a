package articles

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// MemoryStore is a Store kept in process memory. Ids are assigned
// monotonically and never reused.
type MemoryStore struct {
	mu     sync.RWMutex
	lastID int64
	rows   map[int64]Article
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[int64]Article)}
}

func (s *MemoryStore) ArticleByID(_ context.Context, id int64) (*Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	article, ok := s.rows[id]
	if !ok {
		return nil, fmt.Errorf("get article %d: %w", id, ErrNotFound)
	}

	return &article, nil
}

func (s *MemoryStore) ArticlesByTitleAndAuthor(_ context.Context, title, author string) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	list := []Article{}
	for _, article := range s.sorted() {
		if article.Title == title && article.Author == author {
			list = append(list, article)
		}
	}

	return list, nil
}

func (s *MemoryStore) Articles(_ context.Context, pageIndex, pageSize int) (*Page, error) {
	if pageIndex < 0 || pageSize < 1 {
		return nil, fmt.Errorf(
			"pageIndex must not be negative and pageSize must be greater than 0: pageIndex=%d, pageSize=%d",
			pageIndex, pageSize,
		)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	all := s.sorted()
	page := &Page{
		Articles:   []Article{},
		PageIndex:  pageIndex,
		TotalCount: len(all),
		TotalPages: TotalPages(len(all), pageSize),
	}

	if pageIndex > (math.MaxInt-pageSize)/pageSize {
		return page, nil
	}

	offset := pageIndex * pageSize
	if offset >= len(all) {
		return page, nil
	}

	end := min(offset+pageSize, len(all))
	page.Articles = append(page.Articles, all[offset:end]...)

	return page, nil
}

func (s *MemoryStore) AllArticles(context.Context) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sorted(), nil
}

func (s *MemoryStore) SaveArticle(_ context.Context, article Article) (*Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if article.ID == 0 {
		s.lastID++
		article.ID = s.lastID
	} else if _, ok := s.rows[article.ID]; !ok {
		return nil, fmt.Errorf("update article %d: %w", article.ID, ErrNotFound)
	}

	s.rows[article.ID] = article
	return &article, nil
}

func (s *MemoryStore) DeleteArticle(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return fmt.Errorf("delete article %d: %w", id, ErrNotFound)
	}

	delete(s.rows, id)
	return nil
}

func (s *MemoryStore) MaxArticleID(context.Context) (int64, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var maxID int64
	for id := range s.rows {
		maxID = max(maxID, id)
	}

	return maxID, maxID > 0, nil
}

// sorted must be called with mu held.
func (s *MemoryStore) sorted() []Article {
	list := make([]Article, 0, len(s.rows))
	for _, article := range s.rows {
		list = append(list, article)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })

	return list
}
