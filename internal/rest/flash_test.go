package rest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash_Encoding(t *testing.T) {
	in := flash{
		Form:   ArticleForm{Title: "Q", Author: "Jane Smith", Content: "Body"},
		Errors: FormErrors{"title": "The title must be between 2 and 100 characters."},
	}

	value, err := encodeFlash(in)
	require.NoError(t, err)

	out, err := decodeFlash(value)
	require.NoError(t, err)
	assert.Equal(t, in, *out)

	_, err = decodeFlash("not base64!")
	assert.Error(t, err)
}

func TestFlash_OversizedFormDropsLongFields(t *testing.T) {
	in := flash{
		Form: ArticleForm{
			Title:       "Quantum Computers",
			Author:      "Jane Smith",
			Description: strings.Repeat("d", 2000),
			Content:     strings.Repeat("c", 10000),
		},
		Errors: FormErrors{"category": "Please enter a category."},
	}

	value, err := encodeFlash(in)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(value), maxFlashSize)

	out, err := decodeFlash(value)
	require.NoError(t, err)
	assert.Equal(t, "Quantum Computers", out.Form.Title)
	assert.Empty(t, out.Form.Content)
	assert.Empty(t, out.Form.Description)
	assert.Equal(t, in.Errors, out.Errors)

	in.Form.Title = strings.Repeat("t", 5000)
	_, err = encodeFlash(in)
	assert.Error(t, err)
}

func TestFormValidator(t *testing.T) {
	v := NewFormValidator()

	require.NoError(t, v.Validate(&ArticleForm{
		Title:    "AI",
		Category: "Technology",
		Author:   "John Doe",
		Content:  "Body",
	}))

	err := v.Validate(&ArticleForm{Title: "A"})
	var errs FormErrors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, FormErrors{
		"title":    "The title must be between 2 and 100 characters.",
		"category": "Please enter a category.",
		"author":   "Please enter the name of the author.",
		"content":  "The content of the article cannot be empty.",
	}, errs)

	err = v.Validate(&ArticleForm{
		Title:    strings.Repeat("t", 101),
		Category: "Technology",
		Author:   "John Doe",
		Content:  "Body",
	})
	require.ErrorAs(t, err, &errs)
	assert.Contains(t, errs, "title")
	assert.Len(t, errs, 1)
}
