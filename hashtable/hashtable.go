// Package hashtable provides a fixed-size chained hash table keyed by string.
//
// It is the direct index of the catalog engine: average O(1) lookup by
// record identifier. The hash function is the sum of the key's character
// codes modulo the table size. That hash is deliberately weak, so chains are
// expected to grow under clustered key sets; the table stays correct under
// any distribution, only slower, and reports each collision through a hook
// and a counter so capacity problems are visible. The table never resizes.
package hashtable

// DefaultSize is the bucket count used when no size option is given.
const DefaultSize = 1024

type entry[V any] struct {
	key   string
	value V
}

// Table is a chained hash table. Not safe for concurrent use; callers
// serialize access.
type Table[V any] struct {
	buckets    [][]entry[V]
	size       int
	collisions int64
	options    options
}

// New creates an empty Table.
func New[V any](opts ...Option) *Table[V] {
	options := defaultOptions()
	for _, opt := range opts {
		opt.apply(&options)
	}
	return &Table[V]{
		buckets: make([][]entry[V], options.size),
		size:    options.size,
		options: options,
	}
}

// hashKey sums the key's character codes. Order-independent: "ab" and "ba"
// land in the same bucket.
func (t *Table[V]) hashKey(key string) int {
	sum := 0
	for _, r := range key {
		sum += int(r)
	}
	return sum % t.size
}

// Insert stores value under key. An existing equal key is overwritten in
// place; otherwise the entry is appended to its chain. Appending to a
// non-empty chain counts as one collision event.
func (t *Table[V]) Insert(key string, value V) {
	index := t.hashKey(key)
	bucket := t.buckets[index]

	for i := range bucket {
		if bucket[i].key == key {
			bucket[i].value = value
			return
		}
	}

	if len(bucket) > 0 {
		t.collisions++
		t.options.notifyCollision(key, index)
	}
	t.buckets[index] = append(bucket, entry[V]{key: key, value: value})
}

// Get returns the value stored under key, or false if the key is absent.
func (t *Table[V]) Get(key string) (V, bool) {
	for _, e := range t.buckets[t.hashKey(key)] {
		if e.key == key {
			return e.value, true
		}
	}
	var zero V
	return zero, false
}

// Delete removes the entry stored under key; a no-op if the key is absent.
func (t *Table[V]) Delete(key string) {
	index := t.hashKey(key)
	bucket := t.buckets[index]
	for i := range bucket {
		if bucket[i].key == key {
			t.buckets[index] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// Len returns the number of stored entries.
func (t *Table[V]) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}

// Collisions returns the number of collision events observed since creation.
func (t *Table[V]) Collisions() int64 {
	return t.collisions
}
