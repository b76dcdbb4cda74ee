package dto

import (
	"fmt"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

// QueryParams controls the ordering of a list query. Listings are never paginated.
type QueryParams struct {
	SortBy  string `json:"sort_by"  validate:"omitempty"`
	SortDir string `json:"sort_dir" validate:"omitempty,oneof=ASC DESC"`
}

// OrderBy returns the ORDER BY clause, or an empty string when no ordering was requested.
func (q *QueryParams) OrderBy(table string) string {
	if q.SortBy == "" {
		return ""
	}

	dir := strings.ToUpper(q.SortDir)
	if dir != SortDirAsc && dir != SortDirDesc {
		dir = SortDirAsc
	}

	column := q.SortBy
	if table != "" && !strings.Contains(column, ".") {
		column = fmt.Sprintf("%s.%s", table, column)
	}

	return fmt.Sprintf("ORDER BY %s %s", column, dir)
}
