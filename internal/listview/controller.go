package listview

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"go.uber.org/zap"

	"github.com/candidate-pool/poolctl/internal/poolapi"
)

// Phase is the lifecycle of a list view's data.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseErrored
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseErrored:
		return "errored"
	default:
		return "unknown"
	}
}

// FetchFunc loads one page of rows for a view.
type FetchFunc[T any] func(ctx context.Context, q poolapi.ListQuery) (*poolapi.PageResult[T], error)

// Controller drives one list view. It decodes the location into a ViewState,
// fetches rows through the adapter, and keeps the location in sync as the
// operator pages, filters and sorts. Every mutation follows the same path:
// update the state, push the location, reload.
//
// Loads are numbered; a load that finishes after a newer one started commits
// nothing, so out-of-order responses cannot overwrite fresher rows.
type Controller[T any] struct {
	codec  Codec
	loc    Location
	fetch  FetchFunc[T]
	logger *zap.Logger

	mu    sync.Mutex
	phase Phase
	view  ViewState
	rows  []T
	count int
	err   error
	gen   uint64
}

func NewController[T any](codec Codec, loc Location, fetch FetchFunc[T], logger *zap.Logger) *Controller[T] {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Controller[T]{
		codec:  codec,
		loc:    loc,
		fetch:  fetch,
		logger: logger,
		phase:  PhaseIdle,
	}
}

// Mount decodes the current location and performs the initial load.
func (c *Controller[T]) Mount(ctx context.Context) error {
	q, err := c.loc.Query()
	if err != nil {
		return fmt.Errorf("read location: %w", err)
	}

	view, err := c.codec.Decode(q)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.view = view
	c.mu.Unlock()

	return c.load(ctx)
}

// View returns the current view state.
func (c *Controller[T]) View() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.view
}

func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Rows returns the last committed page. Rows survive a reload of the same
// view but not a failed one.
func (c *Controller[T]) Rows() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rows
}

// Count returns the estimated total row count for the current view.
func (c *Controller[T]) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.count
}

func (c *Controller[T]) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// SetPage moves to a zero-based page and reloads.
func (c *Controller[T]) SetPage(ctx context.Context, page int) error {
	return c.mutate(ctx, func(s *ViewState) {
		if page < 0 {
			page = 0
		}
		s.Page = page
	})
}

// SetPageSize changes the page size and returns to the first page.
func (c *Controller[T]) SetPageSize(ctx context.Context, size int) error {
	return c.mutate(ctx, func(s *ViewState) {
		if size <= 0 {
			size = c.codec.pageSize()
		}
		s.PageSize = size
		s.Page = 0
	})
}

// SetSort replaces the sort order and returns to the first page.
func (c *Controller[T]) SetSort(ctx context.Context, sort []SortOrder) error {
	return c.mutate(ctx, func(s *ViewState) {
		s.Sort = append([]SortOrder(nil), sort...)
		s.Page = 0
	})
}

// SetQuickFilter replaces the free-text search terms and returns to the
// first page.
func (c *Controller[T]) SetQuickFilter(ctx context.Context, terms []string) error {
	return c.mutate(ctx, func(s *ViewState) {
		s.Filter.Quick = append([]string(nil), terms...)
		s.Page = 0
	})
}

// SetFilterItems replaces the field filters and returns to the first page.
func (c *Controller[T]) SetFilterItems(ctx context.Context, items []FilterItem) error {
	return c.mutate(ctx, func(s *ViewState) {
		s.Filter.Items = append([]FilterItem(nil), items...)
		s.Page = 0
	})
}

// Refresh reloads the current view. While a load is in flight it is a no-op;
// the running load already owns the outcome.
func (c *Controller[T]) Refresh(ctx context.Context) error {
	c.mu.Lock()
	if c.phase == PhaseLoading {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	return c.load(ctx)
}

func (c *Controller[T]) mutate(ctx context.Context, apply func(*ViewState)) error {
	c.mu.Lock()
	apply(&c.view)
	view := c.view
	c.mu.Unlock()

	c.pushLocation(view)

	return c.load(ctx)
}

// pushLocation re-encodes the view over the current location query so
// parameters owned by others survive.
func (c *Controller[T]) pushLocation(view ViewState) {
	q, err := c.loc.Query()
	if err != nil {
		c.logger.Warn("reading location before push", zap.Error(err))
		q = url.Values{}
	}

	if err := c.loc.Push(c.codec.Encode(view, q)); err != nil {
		c.logger.Warn("pushing location", zap.Error(err))
	}
}

func (c *Controller[T]) load(ctx context.Context) error {
	c.mu.Lock()
	c.gen++
	gen := c.gen
	c.phase = PhaseLoading
	c.err = nil
	view := c.view
	c.mu.Unlock()

	c.logger.Debug("loading page",
		zap.Uint64("generation", gen),
		zap.Int("page", view.Page),
		zap.Int("page_size", view.PageSize),
	)

	result, err := c.fetch(ctx, view.Query())

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.logger.Debug("discarding stale load",
			zap.Uint64("generation", gen),
			zap.Uint64("current", c.gen),
		)
		return nil
	}

	if err != nil {
		c.phase = PhaseErrored
		c.rows = nil
		c.count = 0
		c.err = err
		return err
	}

	c.phase = PhaseLoaded
	c.rows = result.Items
	c.count = result.ItemCount
	c.err = nil
	return nil
}
