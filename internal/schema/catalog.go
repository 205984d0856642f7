package schema

import (
	"fmt"

	"gorm.io/gorm"
)

// AuthorKind identifies which author reference the comments table carries
type AuthorKind string

const (
	AuthorCompany AuthorKind = "company"
	AuthorUser    AuthorKind = "user"
	AuthorName    AuthorKind = "name"
	AuthorNone    AuthorKind = "none"
)

// Column candidates tried for the comment author reference, in preference
// order. Both snake_case and camelCase variants exist in the wild.
var (
	companyColumnCandidates = []string{"company_id", "companyId"}
	userColumnCandidates    = []string{"user_id", "userId"}
	nameColumnCandidates    = []string{"author"}
)

// CompanyOptionalColumns are the company columns an externally managed schema
// may not carry. Listings null-pad whichever are missing.
var CompanyOptionalColumns = []string{"industry", "location", "website", "phone", "description"}

// Catalog is the column catalog of the live database, resolved once at
// startup. Handlers consult it instead of querying information_schema per
// request.
type Catalog struct {
	schema string
	tables map[string]map[string]bool
}

// Load reads the column catalog from information_schema.columns
func Load(db *gorm.DB, schemaName string) (*Catalog, error) {
	if schemaName == "" {
		schemaName = "public"
	}

	rows, err := db.Raw(
		`SELECT table_name, column_name FROM information_schema.columns WHERE table_schema = ?`,
		schemaName,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to read column catalog: %w", err)
	}
	defer rows.Close()

	tables := make(map[string]map[string]bool)
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return nil, fmt.Errorf("failed to scan column catalog row: %w", err)
		}
		if tables[table] == nil {
			tables[table] = make(map[string]bool)
		}
		tables[table][column] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate column catalog: %w", err)
	}

	return &Catalog{schema: schemaName, tables: tables}, nil
}

// NewCatalog builds a catalog from a fixed table layout (tests, fixtures)
func NewCatalog(layout map[string][]string) *Catalog {
	tables := make(map[string]map[string]bool, len(layout))
	for table, columns := range layout {
		tables[table] = make(map[string]bool, len(columns))
		for _, column := range columns {
			tables[table][column] = true
		}
	}
	return &Catalog{schema: "public", tables: tables}
}

// HasTable reports whether the table exists
func (c *Catalog) HasTable(table string) bool {
	return len(c.tables[table]) > 0
}

// HasColumn reports whether the table carries the column
func (c *Catalog) HasColumn(table, column string) bool {
	return c.tables[table][column]
}

// Resolve returns the first candidate column the table actually has
func (c *Catalog) Resolve(table string, candidates ...string) (string, bool) {
	columns := c.tables[table]
	for _, candidate := range candidates {
		if columns[candidate] {
			return candidate, true
		}
	}
	return "", false
}

// CommentAuthor resolves the author column of the comments table.
// Preference: company-linked, then user-linked, then a generic author name.
func (c *Catalog) CommentAuthor() (string, AuthorKind) {
	if column, ok := c.Resolve("comments", companyColumnCandidates...); ok {
		return column, AuthorCompany
	}
	if column, ok := c.Resolve("comments", userColumnCandidates...); ok {
		return column, AuthorUser
	}
	if column, ok := c.Resolve("comments", nameColumnCandidates...); ok {
		return column, AuthorName
	}
	return "", AuthorNone
}

// CommentUserColumn resolves the user-linked column when present alongside a
// company-linked one, so user-only comments still get an author.
func (c *Catalog) CommentUserColumn() (string, bool) {
	return c.Resolve("comments", userColumnCandidates...)
}
