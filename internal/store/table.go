// Package store holds the process-lifetime in-memory collections, one table
// per entity type.
package store

import (
	"sort"
	"strconv"

	"github.com/patrickmn/go-cache"
)

// Table is one in-memory collection keyed by integer ID. Individual
// operations are safe for concurrent use; multi-table invariants are
// serialized by the owning service.
type Table[T any] struct {
	items *cache.Cache
}

// NewTable creates an empty table. Entries never expire.
func NewTable[T any]() *Table[T] {
	return &Table[T]{items: cache.New(cache.NoExpiration, 0)}
}

func key(id int) string { return strconv.Itoa(id) }

// Get looks up one record.
func (t *Table[T]) Get(id int) (T, bool) {
	v, ok := t.items.Get(key(id))
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Has reports whether id exists.
func (t *Table[T]) Has(id int) bool {
	_, ok := t.items.Get(key(id))
	return ok
}

// Put inserts or replaces the record at id.
func (t *Table[T]) Put(id int, v T) {
	t.items.Set(key(id), v, cache.NoExpiration)
}

// Delete removes the record at id, if present.
func (t *Table[T]) Delete(id int) {
	t.items.Delete(key(id))
}

// Len counts live records.
func (t *Table[T]) Len() int {
	return t.items.ItemCount()
}

// IDs returns all live IDs in ascending order.
func (t *Table[T]) IDs() []int {
	items := t.items.Items()
	ids := make([]int, 0, len(items))
	for k := range items {
		id, err := strconv.Atoi(k)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// List returns all records in ID order.
func (t *Table[T]) List() []T {
	ids := t.IDs()
	out := make([]T, 0, len(ids))
	for _, id := range ids {
		if v, ok := t.Get(id); ok {
			out = append(out, v)
		}
	}
	return out
}

// DeleteWhere removes every record matching pred.
func (t *Table[T]) DeleteWhere(pred func(T) bool) {
	for _, id := range t.IDs() {
		if v, ok := t.Get(id); ok && pred(v) {
			t.Delete(id)
		}
	}
}

// NextByCount is the ID policy for secondary and dependent entities:
// current count + 1. After deletions this can reassign a live ID, and the
// subsequent Put replaces the survivor; both effects are intentional.
func (t *Table[T]) NextByCount() int {
	return t.Len() + 1
}

// NextByMax is the ID policy for primary entities: highest live ID + 1,
// starting at 1 for an empty table.
func (t *Table[T]) NextByMax() int {
	max := 0
	for _, id := range t.IDs() {
		if id > max {
			max = id
		}
	}
	return max + 1
}
