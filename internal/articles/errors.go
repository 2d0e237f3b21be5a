package articles

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrNotFound = errors.New("article not found")

const CodeDuplicateTitleAuthor = "DuplicateTitleAuthor"

// ErrDuplicateTitleAuthor is returned when another article already has the same title and author.
var ErrDuplicateTitleAuthor = &ValidationError{
	Code: CodeDuplicateTitleAuthor,
	Fields: map[string]string{
		"title":  "An article with this title and author already exists.",
		"author": "An article with this title and author already exists.",
	},
}

// ValidationError is a user-correctable rejection of submitted article fields.
type ValidationError struct {
	Code   string
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return fmt.Sprintf("validation failed: %s", e.Code)
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	messages := make([]string, 0, len(names))
	for _, name := range names {
		messages = append(messages, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}

	return fmt.Sprintf("validation failed: %s: %s", e.Code, strings.Join(messages, ", "))
}

// Is matches validation errors by code.
func (e *ValidationError) Is(target error) bool {
	var t *ValidationError
	if !errors.As(target, &t) {
		return false
	}

	return e.Code == t.Code
}
