package dto_test

import (
	"cafe/shared/dto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryParams_OrderBy(t *testing.T) {
	tests := []struct {
		name     string
		params   dto.QueryParams
		table    string
		expected string
	}{
		{
			name:     "no sort column",
			params:   dto.QueryParams{},
			table:    "cafes",
			expected: "",
		},
		{
			name:     "ascending with table",
			params:   dto.QueryParams{SortBy: "id", SortDir: dto.SortDirAsc},
			table:    "cafes",
			expected: "ORDER BY cafes.id ASC",
		},
		{
			name:     "lowercase direction",
			params:   dto.QueryParams{SortBy: "name", SortDir: "desc"},
			table:    "cafes",
			expected: "ORDER BY cafes.name DESC",
		},
		{
			name:     "invalid direction defaults to ascending",
			params:   dto.QueryParams{SortBy: "name", SortDir: "sideways"},
			table:    "",
			expected: "ORDER BY name ASC",
		},
		{
			name:     "qualified column kept as is",
			params:   dto.QueryParams{SortBy: "c.id", SortDir: dto.SortDirDesc},
			table:    "cafes",
			expected: "ORDER BY c.id DESC",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.params.OrderBy(tt.table))
		})
	}
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name         string
		filter       dto.Filter
		expectedSQL  string
		expectedArgs map[string]any
	}{
		{
			name:         "equality",
			filter:       dto.Filter{Field: "location", Value: "Berlin", Operator: dto.FilterOperatorEq, Table: "cafes"},
			expectedSQL:  "cafes.location = :location",
			expectedArgs: map[string]any{"location": "Berlin"},
		},
		{
			name:         "equality with arg name",
			filter:       dto.Filter{ArgName: "loc", Field: "location", Value: "Berlin", Operator: dto.FilterOperatorEq},
			expectedSQL:  "location = :loc",
			expectedArgs: map[string]any{"loc": "Berlin"},
		},
		{
			name:         "like",
			filter:       dto.Filter{Field: "name", Value: "cup", Operator: dto.FilterOperatorLike},
			expectedSQL:  "LOWER(name) LIKE LOWER(:name) ",
			expectedArgs: map[string]any{"name": "%cup%"},
		},
		{
			name:         "in slice",
			filter:       dto.Filter{Field: "id", Value: []int{1, 2}, Operator: dto.FilterOperatorIn},
			expectedSQL:  "id IN (:id_0, :id_1) ",
			expectedArgs: map[string]any{"id_0": 1, "id_1": 2},
		},
		{
			name:         "not equal",
			filter:       dto.Filter{Field: "id", Value: 3, Operator: dto.FilterOperatorNotEq},
			expectedSQL:  "id != :id",
			expectedArgs: map[string]any{"id": 3},
		},
		{
			name:         "is null",
			filter:       dto.Filter{Field: "coffee_price", Operator: dto.FilterIsNull, Table: "cafes"},
			expectedSQL:  "cafes.coffee_price IS NULL",
			expectedArgs: map[string]any{},
		},
		{
			name:         "unknown operator",
			filter:       dto.Filter{Field: "id", Value: 1, Operator: "nope"},
			expectedSQL:  "",
			expectedArgs: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.expectedSQL, sql)
			assert.Equal(t, tt.expectedArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Operator: dto.FilterGroupOperatorAnd,
		Filters: []any{
			dto.Filter{Field: "location", Value: "Berlin", Operator: dto.FilterOperatorEq, Table: "cafes"},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "has_wifi", Value: true, Operator: dto.FilterOperatorEq},
					dto.Filter{Field: "has_sockets", Value: true, Operator: dto.FilterOperatorEq},
				},
			},
		},
	}

	sql, args := group.GetWhereClause()

	assert.Equal(t, "(cafes.location = :location AND (has_wifi = :has_wifi OR has_sockets = :has_sockets))", sql)
	assert.Equal(t, map[string]any{"location": "Berlin", "has_wifi": true, "has_sockets": true}, args)

	empty := dto.FilterGroup{}
	sql, args = empty.GetWhereClause()

	assert.Empty(t, sql)
	assert.Empty(t, args)
}
