package listview

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
)

// Query parameter names forming the shareable view descriptor.
const (
	keyPage     = "page"
	keyPageSize = "pageSize"
	keyFilter   = "filter"
	keySort     = "sort"
)

// DefaultPageSize applies whenever a codec is built without one.
const DefaultPageSize = 10

// Codec maps a ViewState onto location query parameters and back. Page and
// page size travel as decimal strings, filter and sort as compact JSON blobs.
// Defaults are stripped on encode and refilled on decode, so equivalent views
// always produce the same descriptor.
type Codec struct {
	DefaultPageSize int
}

func NewCodec(defaultPageSize int) Codec {
	if defaultPageSize <= 0 {
		defaultPageSize = DefaultPageSize
	}
	return Codec{DefaultPageSize: defaultPageSize}
}

// Encode writes the view into a copy of q. Parameters the codec does not own
// pass through untouched.
func (c Codec) Encode(state ViewState, q url.Values) url.Values {
	out := cloneValues(q)

	if state.Page > 0 {
		out.Set(keyPage, strconv.Itoa(state.Page))
	} else {
		out.Del(keyPage)
	}

	if state.PageSize > 0 && state.PageSize != c.pageSize() {
		out.Set(keyPageSize, strconv.Itoa(state.PageSize))
	} else {
		out.Del(keyPageSize)
	}

	if state.Filter.IsEmpty() {
		out.Del(keyFilter)
	} else {
		blob, _ := json.Marshal(state.Filter)
		out.Set(keyFilter, string(blob))
	}

	if len(state.Sort) == 0 {
		out.Del(keySort)
	} else {
		blob, _ := json.Marshal(state.Sort)
		out.Set(keySort, string(blob))
	}

	return out
}

// Decode reads a view out of q. Unknown parameters are ignored and malformed
// numbers fall back to defaults, but a filter or sort blob that does not
// parse fails hard: silently dropping it would load rows the descriptor never
// asked for.
func (c Codec) Decode(q url.Values) (ViewState, error) {
	state := ViewState{PageSize: c.pageSize()}

	if raw := q.Get(keyPage); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			state.Page = page
		}
	}

	if raw := q.Get(keyPageSize); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			state.PageSize = size
		}
	}

	if raw := q.Get(keyFilter); raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.Filter); err != nil {
			return ViewState{}, fmt.Errorf("parse %s parameter: %w", keyFilter, err)
		}
	}

	if raw := q.Get(keySort); raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.Sort); err != nil {
			return ViewState{}, fmt.Errorf("parse %s parameter: %w", keySort, err)
		}
	}

	return state, nil
}

func (c Codec) pageSize() int {
	if c.DefaultPageSize > 0 {
		return c.DefaultPageSize
	}
	return DefaultPageSize
}

func cloneValues(q url.Values) url.Values {
	out := url.Values{}
	for key, values := range q {
		out[key] = append([]string(nil), values...)
	}
	return out
}
