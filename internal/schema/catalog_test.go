package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_Resolve(t *testing.T) {
	catalog := NewCatalog(map[string][]string{
		"comments": {"id", "post_id", "content", "companyId", "created_at"},
	})

	tests := []struct {
		name       string
		table      string
		candidates []string
		wantColumn string
		wantOK     bool
	}{
		{
			name:       "first candidate wins when present",
			table:      "comments",
			candidates: []string{"companyId", "user_id"},
			wantColumn: "companyId",
			wantOK:     true,
		},
		{
			name:       "falls through to later candidate",
			table:      "comments",
			candidates: []string{"company_id", "companyId"},
			wantColumn: "companyId",
			wantOK:     true,
		},
		{
			name:       "no candidate present",
			table:      "comments",
			candidates: []string{"author"},
			wantOK:     false,
		},
		{
			name:       "unknown table",
			table:      "messages",
			candidates: []string{"content"},
			wantOK:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			column, ok := catalog.Resolve(tt.table, tt.candidates...)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantColumn, column)
		})
	}
}

func TestCatalog_CommentAuthor(t *testing.T) {
	tests := []struct {
		name       string
		columns    []string
		wantColumn string
		wantKind   AuthorKind
	}{
		{
			name:       "snake case company column",
			columns:    []string{"id", "post_id", "content", "company_id"},
			wantColumn: "company_id",
			wantKind:   AuthorCompany,
		},
		{
			name:       "camel case company column",
			columns:    []string{"id", "post_id", "content", "companyId"},
			wantColumn: "companyId",
			wantKind:   AuthorCompany,
		},
		{
			name:       "company preferred over user",
			columns:    []string{"id", "post_id", "content", "company_id", "user_id"},
			wantColumn: "company_id",
			wantKind:   AuthorCompany,
		},
		{
			name:       "user column only",
			columns:    []string{"id", "post_id", "content", "userId"},
			wantColumn: "userId",
			wantKind:   AuthorUser,
		},
		{
			name:       "author name column only",
			columns:    []string{"id", "post_id", "content", "author"},
			wantColumn: "author",
			wantKind:   AuthorName,
		},
		{
			name:     "no author column at all",
			columns:  []string{"id", "post_id", "content"},
			wantKind: AuthorNone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			catalog := NewCatalog(map[string][]string{"comments": tt.columns})
			column, kind := catalog.CommentAuthor()
			assert.Equal(t, tt.wantColumn, column)
			assert.Equal(t, tt.wantKind, kind)
		})
	}
}

func TestCatalog_CommentUserColumn(t *testing.T) {
	catalog := NewCatalog(map[string][]string{
		"comments": {"id", "post_id", "content", "company_id", "user_id"},
	})
	column, ok := catalog.CommentUserColumn()
	assert.True(t, ok)
	assert.Equal(t, "user_id", column)

	bare := NewCatalog(map[string][]string{
		"comments": {"id", "post_id", "content", "company_id"},
	})
	_, ok = bare.CommentUserColumn()
	assert.False(t, ok)
}

func TestCatalog_HasTableAndColumn(t *testing.T) {
	catalog := NewCatalog(map[string][]string{
		"companies": {"id", "name", "status"},
	})

	assert.True(t, catalog.HasTable("companies"))
	assert.False(t, catalog.HasTable("posts"))
	assert.True(t, catalog.HasColumn("companies", "status"))
	assert.False(t, catalog.HasColumn("companies", "industry"))
	assert.False(t, catalog.HasColumn("posts", "title"))
}
