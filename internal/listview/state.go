package listview

import (
	"github.com/candidate-pool/poolctl/internal/poolapi"
)

// ViewState is everything a list view needs to reproduce itself: position,
// filter and sort. The zero value plus a default page size is the canonical
// initial view.
type ViewState struct {
	Page     int
	PageSize int
	Sort     []SortOrder
	Filter   Filter
}

// SortOrder mirrors the adapter's sort shape field for field; the json tags
// define how it travels inside the sort blob.
type SortOrder struct {
	Field string `json:"field"`
	Desc  bool   `json:"desc,omitempty"`
}

// Filter holds free-text quick terms plus field-scoped items.
type Filter struct {
	Quick []string     `json:"q,omitempty"`
	Items []FilterItem `json:"items,omitempty"`
}

type FilterItem struct {
	Field    string `json:"field"`
	Operator string `json:"op,omitempty"`
	Value    string `json:"value"`
}

func (f Filter) IsEmpty() bool {
	return len(f.Quick) == 0 && len(f.Items) == 0
}

// Query translates the view into the adapter's list query.
func (s ViewState) Query() poolapi.ListQuery {
	q := poolapi.ListQuery{
		Page:     s.Page,
		PageSize: s.PageSize,
		Quick:    append([]string(nil), s.Filter.Quick...),
	}

	for _, order := range s.Sort {
		q.Sort = append(q.Sort, poolapi.SortOrder(order))
	}
	for _, item := range s.Filter.Items {
		q.Fields = append(q.Fields, poolapi.FieldFilter(item))
	}

	return q
}
