// Package structures implements the in-memory data structures the
// application uses as its persistence substrate: a hash table with
// linked-list chaining, a fixed-capacity stack and circular queue, and a
// stable binary min-heap.
//
// None of these types synchronize access; the stores and managers that own
// them serialize all mutations behind their own locks.
package structures

// DefaultTableSize is the number of buckets in a hash table. A prime gives
// better key distribution for the positional hash below.
const DefaultTableSize = 101

type node[V any] struct {
	key   string
	value V
	next  *node[V]
}

// HashTable is a string-keyed hash table using singly-linked chains for
// collision handling. New nodes are inserted at the chain head, so inserts
// are O(1) and lookups are O(chain length).
type HashTable[V any] struct {
	buckets []*node[V]
	count   int
}

// NewHashTable creates a hash table with DefaultTableSize buckets.
func NewHashTable[V any]() *HashTable[V] {
	return NewHashTableSize[V](DefaultTableSize)
}

// NewHashTableSize creates a hash table with the given bucket count.
func NewHashTableSize[V any](size int) *HashTable[V] {
	if size <= 0 {
		size = DefaultTableSize
	}
	return &HashTable[V]{buckets: make([]*node[V], size)}
}

// hash sums each byte weighted by its 1-based position in the key, reduced
// modulo the bucket count. Deliberately simple; not cryptographic.
func (t *HashTable[V]) hash(key string) int {
	value := 0
	for i := 0; i < len(key); i++ {
		value += int(key[i]) * (i + 1)
	}
	return value % len(t.buckets)
}

// Put inserts the value under key, overwriting any existing entry.
func (t *HashTable[V]) Put(key string, value V) {
	index := t.hash(key)

	for current := t.buckets[index]; current != nil; current = current.next {
		if current.key == key {
			current.value = value
			return
		}
	}

	t.buckets[index] = &node[V]{key: key, value: value, next: t.buckets[index]}
	t.count++
}

// Get returns the value stored under key and whether it exists.
func (t *HashTable[V]) Get(key string) (V, bool) {
	index := t.hash(key)
	for current := t.buckets[index]; current != nil; current = current.next {
		if current.key == key {
			return current.value, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key has an entry.
func (t *HashTable[V]) Contains(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Remove deletes the entry under key, relinking the chain around it.
// Returns whether the key existed.
func (t *HashTable[V]) Remove(key string) bool {
	index := t.hash(key)

	var prev *node[V]
	for current := t.buckets[index]; current != nil; current = current.next {
		if current.key == key {
			if prev == nil {
				t.buckets[index] = current.next
			} else {
				prev.next = current.next
			}
			t.count--
			return true
		}
		prev = current
	}
	return false
}

// Values returns all stored values. Enumeration order is unspecified.
func (t *HashTable[V]) Values() []V {
	result := make([]V, 0, t.count)
	for _, bucket := range t.buckets {
		for current := bucket; current != nil; current = current.next {
			result = append(result, current.value)
		}
	}
	return result
}

// Len returns the number of entries.
func (t *HashTable[V]) Len() int {
	return t.count
}
