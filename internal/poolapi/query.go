package poolapi

import (
	"net/url"
	"strconv"
	"strings"
)

const defaultPageSize = 10

// ListQuery captures one page worth of list intent: position, filters and
// sort. It deliberately mirrors the field names of shared view descriptors.
type ListQuery struct {
	Page     int
	PageSize int
	// Sort is carried so shared views round-trip it, but the API exposes no
	// sort parameter and it never reaches the wire.
	Sort   []SortOrder
	Quick  []string
	Fields []FieldFilter
}

type SortOrder struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

type FieldFilter struct {
	Field    string `json:"field"`
	Operator string `json:"op,omitempty"`
	Value    string `json:"value"`
}

// PageResult is one fetched page plus the total estimate pagers render.
type PageResult[T any] struct {
	Items     []T
	ItemCount int
}

func (q ListQuery) normalized() ListQuery {
	if q.Page < 0 {
		q.Page = 0
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	return q
}

// values translates the query into the skip/limit/search parameters the API
// understands.
func (q ListQuery) values() url.Values {
	v := url.Values{}
	v.Set("skip", strconv.Itoa(q.Page*q.PageSize))
	v.Set("limit", strconv.Itoa(q.PageSize))

	if search := q.searchTerm(); search != "" {
		v.Set("search", search)
	}

	return v
}

// searchTerm folds filter state into the single search parameter the API
// exposes. Quick terms win over field filters; field names and operators
// have no server-side counterpart, so only the values travel.
func (q ListQuery) searchTerm() string {
	if len(q.Quick) > 0 {
		return strings.TrimSpace(strings.Join(q.Quick, " "))
	}

	terms := make([]string, 0, len(q.Fields))
	for _, f := range q.Fields {
		if value := strings.TrimSpace(f.Value); value != "" {
			terms = append(terms, value)
		}
	}

	return strings.Join(terms, " ")
}

// EstimateTotal derives a pager total from a single page of results. The API
// reports no counts: a full page means at least one more row could exist,
// a short page pins the total exactly.
func EstimateTotal(page, pageSize, returned int) int {
	if returned == pageSize {
		return (page+1)*pageSize + 1
	}
	return page*pageSize + returned
}
