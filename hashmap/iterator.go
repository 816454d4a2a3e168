package hashmap

import "jsouthworth.net/go/seq"

// Iterator provides a mutable iterator over the map. Iterators are
// not safe for concurrent access so they may not be shared between
// goroutines. An iterator is invalidated by any Assoc or Delete on
// the map it came from.
func (m *Map) Iterator() Iterator {
	return Iterator{m: m}
}

// Iterator is a mutable cursor over the map. It walks the bucket
// array in order and each bucket's chain from its head.
type Iterator struct {
	m      *Map
	bucket int
	cur    seq.Sequence
}

// HasNext is true when there are more entries to be iterated over.
func (i *Iterator) HasNext() bool {
	for i.cur == nil {
		if i.bucket >= len(i.m.buckets) {
			return false
		}
		i.cur = i.m.buckets[i.bucket].Seq()
		i.bucket++
	}
	return true
}

// Next provides the next key value pair and increments the cursor.
func (i *Iterator) Next() (k, v interface{}) {
	if !i.HasNext() {
		panic("No such entry")
	}
	e := i.cur.First().(*entry)
	i.cur = i.cur.Next()
	return e.k, e.v
}
