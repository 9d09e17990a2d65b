package content

// Handle points to a value stored in a Cache. The zero Handle is never issued.
type Handle[T any] struct {
	index uint64
}

// Cache stores values behind generated handles.
type Cache[T any] struct {
	data      map[Handle[T]]T
	prevIndex uint64
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{
		data: make(map[Handle[T]]T),
	}
}

// Insert stores a value and returns its handle.
func (c *Cache[T]) Insert(value T) Handle[T] {
	c.prevIndex++
	handle := Handle[T]{index: c.prevIndex}
	c.data[handle] = value
	return handle
}

// Remove deletes the value behind the handle, reporting whether it existed.
func (c *Cache[T]) Remove(handle Handle[T]) bool {
	if _, ok := c.data[handle]; !ok {
		return false
	}
	delete(c.data, handle)
	return true
}

// Get returns the value behind the handle.
func (c *Cache[T]) Get(handle Handle[T]) (T, bool) {
	v, ok := c.data[handle]
	return v, ok
}

func (c *Cache[T]) Len() int {
	return len(c.data)
}
