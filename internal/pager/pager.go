package pager

import (
	"errors"
	"fmt"
	"math"
)

const (
	DefaultPageSize      = 5
	DefaultButtonsToShow = 3
	DefaultMaxPageSize   = 100
)

// Config holds the paging policy of a listing. It is passed to handlers at
// construction time.
type Config struct {
	DefaultPageSize int   `toml:"default_page_size"`
	ButtonsToShow   int   `toml:"buttons_to_show"`
	PageSizes       []int `toml:"page_sizes"`
	MaxPageSize     int   `toml:"max_page_size"`
}

func DefaultConfig() Config {
	return Config{
		DefaultPageSize: DefaultPageSize,
		ButtonsToShow:   DefaultButtonsToShow,
		PageSizes:       []int{5, 10},
		MaxPageSize:     DefaultMaxPageSize,
	}
}

// Validate checks that the config can drive a listing.
func (c Config) Validate() error {
	if c.DefaultPageSize < 1 {
		return fmt.Errorf("default page size must be greater than 0: %d", c.DefaultPageSize)
	}
	if c.ButtonsToShow < 1 || c.ButtonsToShow%2 == 0 {
		return fmt.Errorf("buttons to show must be a positive odd number: %d", c.ButtonsToShow)
	}
	if c.MaxPageSize != 0 && c.MaxPageSize < c.DefaultPageSize {
		return errors.New("max page size is less than default page size")
	}
	return nil
}

// WithDefaults fills zero values from DefaultConfig.
func (c Config) WithDefaults() Config {
	def := DefaultConfig()
	if c.DefaultPageSize == 0 {
		c.DefaultPageSize = def.DefaultPageSize
	}
	if c.ButtonsToShow == 0 {
		c.ButtonsToShow = def.ButtonsToShow
	}
	if len(c.PageSizes) == 0 {
		c.PageSizes = def.PageSizes
	}
	if c.MaxPageSize == 0 {
		c.MaxPageSize = def.MaxPageSize
	}
	return c
}

// Params converts the optional 1-based page and pageSize request parameters
// into a 0-based page index and a page size.
// Sizes outside PageSizes are accepted, only MaxPageSize caps them.
// Page indexes whose offset would overflow are capped, which yields an empty page.
func (c Config) Params(page, pageSize *int) (pageIndex, size int) {
	size = c.DefaultPageSize
	if pageSize != nil && *pageSize > 0 {
		size = *pageSize
	}
	if c.MaxPageSize > 0 && size > c.MaxPageSize {
		size = c.MaxPageSize
	}

	if page != nil && *page >= 1 {
		pageIndex = *page - 1
	}

	// offset+size of the last page must fit in an int
	if limit := math.MaxInt/size - 1; pageIndex > limit {
		pageIndex = limit
	}

	return pageIndex, size
}

// New returns a pager for the given listing position.
func (c Config) New(totalPages, currentPage int) Pager {
	return New(totalPages, currentPage, c.ButtonsToShow)
}

// Pager is the window of page buttons rendered under a listing.
// StartPage and EndPage are 0-based and inclusive.
type Pager struct {
	TotalPages  int
	CurrentPage int
	StartPage   int
	EndPage     int
}

// New centers a window of buttonsToShow pages on currentPage, shifting it
// inside [0, totalPages-1] when it hits an edge.
func New(totalPages, currentPage, buttonsToShow int) Pager {
	p := Pager{
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}

	if totalPages <= buttonsToShow {
		p.StartPage = 0
		p.EndPage = totalPages - 1
		return p
	}

	// pages past the end show the last window
	center := min(currentPage, totalPages-1)
	half := buttonsToShow / 2
	start := center - half
	end := center + half

	if start < 0 {
		end -= start
		start = 0
	}

	if last := totalPages - 1; end > last {
		start -= end - last
		end = last
	}

	if start < 0 {
		start = 0
	}

	p.StartPage = start
	p.EndPage = end
	return p
}

// Pages lists the page indexes to render, empty when there are no pages.
func (p Pager) Pages() []int {
	if p.EndPage < p.StartPage {
		return []int{}
	}

	pages := make([]int, 0, p.EndPage-p.StartPage+1)
	for i := p.StartPage; i <= p.EndPage; i++ {
		pages = append(pages, i)
	}
	return pages
}

func (p Pager) HasPrevious() bool {
	return p.CurrentPage > 0
}

func (p Pager) HasNext() bool {
	return p.CurrentPage < p.TotalPages-1
}

func (p Pager) IsCurrent(page int) bool {
	return page == p.CurrentPage
}

// Number is the 1-based label of a page index.
func (p Pager) Number(page int) int {
	return page + 1
}

// Last is the 1-based number of the last page.
func (p Pager) Last() int {
	return p.TotalPages
}
