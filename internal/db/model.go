// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Columns = struct {
	Article struct {
		ID, Title, Category, Author, Description, Content, CreatedAt, UpdatedAt string
	}
	GooseDbVersion struct {
		ID, VersionID, IsApplied, Tstamp string
	}
}{
	Article: struct {
		ID, Title, Category, Author, Description, Content, CreatedAt, UpdatedAt string
	}{
		ID:          "article_id",
		Title:       "title",
		Category:    "category",
		Author:      "author",
		Description: "description",
		Content:     "content",
		CreatedAt:   "created_at",
		UpdatedAt:   "updated_at",
	},
	GooseDbVersion: struct {
		ID, VersionID, IsApplied, Tstamp string
	}{
		ID:        "id",
		VersionID: "version_id",
		IsApplied: "is_applied",
		Tstamp:    "tstamp",
	},
}

var Tables = struct {
	Article struct {
		Name, Alias string
	}
	GooseDbVersion struct {
		Name, Alias string
	}
}{
	Article: struct {
		Name, Alias string
	}{
		Name:  "articles",
		Alias: "t",
	},
	GooseDbVersion: struct {
		Name, Alias string
	}{
		Name:  "goose_db_version",
		Alias: "t",
	},
}

type Article struct {
	tableName struct{} `pg:"articles,alias:t,discard_unknown_columns"`

	ID          int64     `pg:"article_id,pk"`
	Title       string    `pg:"title,use_zero"`
	Category    string    `pg:"category,use_zero"`
	Author      string    `pg:"author,use_zero"`
	Description *string   `pg:"description"`
	Content     string    `pg:"content,use_zero"`
	CreatedAt   time.Time `pg:"created_at,use_zero"`
	UpdatedAt   time.Time `pg:"updated_at,use_zero"`
}

type GooseDbVersion struct {
	tableName struct{} `pg:"goose_db_version,alias:t,discard_unknown_columns"`

	ID        int       `pg:"id,pk"`
	VersionID int64     `pg:"version_id,use_zero"`
	IsApplied bool      `pg:"is_applied,use_zero"`
	Tstamp    time.Time `pg:"tstamp,use_zero"`
}
