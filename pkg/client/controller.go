package client

import (
	"context"
	"net/url"
	"sync"
)

// ItemLister is the slice of Client a ListController needs.
type ItemLister interface {
	ListItems(ctx context.Context, params url.Values) (*ItemPage, error)
}

// ListController drives a ListState against the API. Responses can arrive
// out of order; only the answer to the most recent request is applied.
type ListController struct {
	lister ItemLister

	mu         sync.Mutex
	state      ListState
	generation uint64
	items      []Item
	meta       *Meta
}

func NewListController(lister ItemLister) *ListController {
	return &ListController{lister: lister, state: NewListState()}
}

// Update mutates the state under the controller lock.
func (c *ListController) Update(mutate func(*ListState)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	mutate(&c.state)
}

func (c *ListController) State() ListState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Meta is the envelope metadata of the last applied response, or nil.
func (c *ListController) Meta() *Meta {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.meta == nil {
		return nil
	}
	meta := *c.meta
	return &meta
}

func (c *ListController) Items() []Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Item(nil), c.items...)
}

// NextPage moves forward, bounded by the last applied meta.
func (c *ListController) NextPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.NextPage(c.meta)
}

func (c *ListController) PrevPage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.PrevPage()
}

// Refresh fetches the page described by the current state. It reports
// applied=false when a newer Refresh started before this one finished, in
// which case the result is dropped.
func (c *ListController) Refresh(ctx context.Context) (page *ItemPage, applied bool, err error) {
	c.mu.Lock()
	c.generation++
	generation := c.generation
	params := c.state.Params()
	c.mu.Unlock()

	page, err = c.lister.ListItems(ctx, params)

	c.mu.Lock()
	defer c.mu.Unlock()
	if generation != c.generation {
		return page, false, err
	}
	if err != nil {
		return nil, true, err
	}

	meta := page.Meta
	c.meta = &meta
	c.items = page.Data
	return page, true, nil
}
