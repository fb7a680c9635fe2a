package listview

import (
	"fmt"
	"net/url"
	"sync"
)

// Location is the mutable address of a list view: a query string cell the
// controller reads on mount and rewrites after every state change.
type Location interface {
	Query() (url.Values, error)
	Push(url.Values) error
}

// MemLocation keeps the query in process. The cli seeds it from a --query
// flag or a saved view and prints it back out for sharing.
type MemLocation struct {
	mu     sync.Mutex
	values url.Values
}

func NewMemLocation(rawQuery string) (*MemLocation, error) {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return nil, fmt.Errorf("parse location query: %w", err)
	}
	return &MemLocation{values: values}, nil
}

func (l *MemLocation) Query() (url.Values, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return cloneValues(l.values), nil
}

func (l *MemLocation) Push(values url.Values) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.values = cloneValues(values)
	return nil
}

// Encode renders the current query in canonical form.
func (l *MemLocation) Encode() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.values.Encode()
}
