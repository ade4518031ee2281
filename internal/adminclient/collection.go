package adminclient

import "sync"

// Collection keeps the in-memory record list for one resource. It is
// owned by one screen: load it once on mount, then mutate it only
// through ApplyCreate, ApplyUpdate and ApplyDelete after each confirmed
// server change.
type Collection[T any] struct {
	client   *Client
	resource Resource[T]

	mu      sync.Mutex
	records []T
	loaded  bool
	editing bool
}

func NewCollection[T any](client *Client, resource Resource[T]) *Collection[T] {
	return &Collection[T]{
		client:   client,
		resource: resource,
	}
}

// Load replaces the record list with the server's. A failed load leaves
// the collection empty so a retry starts clean.
func (c *Collection[T]) Load() error {
	records, err := List(c.client, c.resource)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.records = nil
		c.loaded = false
		return err
	}

	c.records = records
	c.loaded = true
	return nil
}

func (c *Collection[T]) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

func (c *Collection[T]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.records)
}

// Records returns a copy; callers cannot mutate the collection through it.
func (c *Collection[T]) Records() []T {
	c.mu.Lock()
	defer c.mu.Unlock()

	records := make([]T, len(c.records))
	copy(records, c.records)
	return records
}

func (c *Collection[T]) Find(id int64) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, record := range c.records {
		if c.resource.ID(record) == id {
			return record, true
		}
	}

	var zero T
	return zero, false
}

// ApplyCreate appends a record the server confirmed.
func (c *Collection[T]) ApplyCreate(record T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append(c.records, record)
}

// ApplyUpdate replaces the record with the matching id in place,
// preserving display order.
func (c *Collection[T]) ApplyUpdate(id int64, record T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.records {
		if c.resource.ID(c.records[i]) == id {
			c.records[i] = record
			return
		}
	}
}

// ApplyDelete removes the record with the matching id.
func (c *Collection[T]) ApplyDelete(id int64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.records {
		if c.resource.ID(c.records[i]) == id {
			c.records = append(c.records[:i], c.records[i+1:]...)
			return
		}
	}
}

func (c *Collection[T]) beginEdit() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.editing {
		return false
	}
	c.editing = true
	return true
}

func (c *Collection[T]) endEdit() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.editing = false
}
