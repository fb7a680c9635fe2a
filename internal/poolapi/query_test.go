package poolapi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateTotal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		pageSize int
		returned int
		expect   int
	}{
		{name: "full first page leaves room for more", page: 0, pageSize: 10, returned: 10, expect: 11},
		{name: "short first page is exact", page: 0, pageSize: 10, returned: 7, expect: 7},
		{name: "full later page keeps the pager open", page: 2, pageSize: 10, returned: 10, expect: 31},
		{name: "short later page is exact", page: 3, pageSize: 25, returned: 4, expect: 79},
		{name: "empty page", page: 0, pageSize: 10, returned: 0, expect: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, EstimateTotal(tt.page, tt.pageSize, tt.returned))
		})
	}
}

func TestListQueryValues(t *testing.T) {
	t.Parallel()

	v := ListQuery{Page: 2, PageSize: 25}.values()

	assert.Equal(t, "50", v.Get("skip"))
	assert.Equal(t, "25", v.Get("limit"))
	assert.NotContains(t, v, "search")
}

func TestListQueryValuesIgnoresSort(t *testing.T) {
	t.Parallel()

	v := ListQuery{
		Page:     0,
		PageSize: 10,
		Sort:     []SortOrder{{Field: "full_name", Desc: true}},
	}.values()

	assert.Len(t, v, 2, "only skip and limit should travel")
}

func TestSearchTermQuickWinsOverFields(t *testing.T) {
	t.Parallel()

	q := ListQuery{
		Quick: []string{"golang", "remote"},
		Fields: []FieldFilter{
			{Field: "email", Operator: "contains", Value: "acme.com"},
		},
	}

	assert.Equal(t, "golang remote", q.searchTerm())
}

func TestSearchTermJoinsFieldValues(t *testing.T) {
	t.Parallel()

	q := ListQuery{
		Fields: []FieldFilter{
			{Field: "current_position", Operator: "eq", Value: "Data Engineer"},
			{Field: "email", Operator: "contains", Value: "   "},
			{Field: "current_company", Value: "Acme"},
		},
	}

	assert.Equal(t, "Data Engineer Acme", q.searchTerm())
}

func TestSearchTermEmptyWithoutFilters(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ListQuery{}.searchTerm())
}

func TestListQueryNormalizedDefaults(t *testing.T) {
	t.Parallel()

	q := ListQuery{Page: -1}.normalized()

	assert.Equal(t, 0, q.Page)
	assert.Equal(t, defaultPageSize, q.PageSize)
}
