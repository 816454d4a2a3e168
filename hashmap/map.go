package hashmap // import "github.com/elijw/andy/hashmap"

import (
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"

	"github.com/elijw/andy/chain"
	"jsouthworth.net/go/dyn"
	"jsouthworth.net/go/hash"
	"jsouthworth.net/go/seq"
)

const (
	defaultBucketCount = 8
	defaultMaxLoad     = 0.75
)

var errOddElements = errors.New("must supply an even number of elements")
var errBucketCount = errors.New("initial bucket count must be greater than zero")
var errLoadFactor = errors.New("max load factor must be greater than zero")
var errRangeSig = errors.New("Range requires a function: func(k kT, v vT) bool or func(k kT, v vT)")

// Entry is a map entry. Each entry consists of a key and value.
type Entry interface {
	Key() interface{}
	Value() interface{}
}

// Map is a mutable separately chained hash map. The key type must be
// hashable and comparable for equality; see the package documentation
// for how to override either. A Map is not safe for concurrent use.
type Map struct {
	hashSeed uintptr
	buckets  []chain.Chain
	count    int
	maxLoad  float64
}

type mapOptions struct {
	bucketCount int
	maxLoad     float64
}

// Option is a type that allows changes to pluggable parts of the
// Map implementation.
type Option func(*mapOptions)

// InitialBuckets is an option to the Empty function that sets the
// number of buckets the map starts out with. The default is 8.
// Empty panics when n is not greater than zero.
func InitialBuckets(n int) Option {
	return func(o *mapOptions) {
		o.bucketCount = n
	}
}

// MaxLoadFactor is an option to the Empty function that sets the
// load factor threshold past which the bucket array is doubled.
// The default is 0.75. Empty panics when f is not greater than zero.
func MaxLoadFactor(f float64) Option {
	return func(o *mapOptions) {
		o.maxLoad = f
	}
}

// Empty returns a new empty map with a random hash seed. One may
// supply options for the map by using one of the option generating
// functions and providing that to Empty.
func Empty(options ...Option) *Map {
	opts := mapOptions{
		bucketCount: defaultBucketCount,
		maxLoad:     defaultMaxLoad,
	}
	for _, opt := range options {
		opt(&opts)
	}
	if opts.bucketCount <= 0 {
		panic(errBucketCount)
	}
	if opts.maxLoad <= 0 {
		panic(errLoadFactor)
	}
	return &Map{
		hashSeed: uintptr(rand.Uint64()),
		buckets:  make([]chain.Chain, opts.bucketCount),
		maxLoad:  opts.maxLoad,
	}
}

// New converts a list of elements to a map by associating them
// pairwise. New will panic if the number of elements is not even.
func New(elems ...interface{}) *Map {
	if len(elems)%2 != 0 {
		panic(errOddElements)
	}
	out := Empty()
	for i := 0; i < len(elems); i += 2 {
		out.Assoc(elems[i], elems[i+1])
	}
	return out
}

// From will convert many different go types to a map.
// Converting some types is more efficient than others and the mechanisms
// are described below.
//
// *Map:
//    A new map with the same options is populated by ranging over the
//    original, so the two maps may be mutated independently.
// map[interface{}]interface{}:
//    Converted directly by looping over the map and calling Assoc on an empty map.
// []Entry:
//    The entries are looped over and Assoc is called on an empty map.
// []interface{}:
//    The elements are passed to New.
// map[kT]vT:
//    Reflection is used to loop over the entries of the map and associate them with an empty map.
// []T:
//    Reflection is used to convert the slice to []interface{} and then passed to New.
func From(value interface{}) *Map {
	switch v := value.(type) {
	case *Map:
		out := Empty(InitialBuckets(len(v.buckets)),
			MaxLoadFactor(v.maxLoad))
		v.Range(func(key, val interface{}) {
			out.Assoc(key, val)
		})
		return out
	case map[interface{}]interface{}:
		out := Empty()
		for key, val := range v {
			out.Assoc(key, val)
		}
		return out
	case []Entry:
		out := Empty()
		for _, entry := range v {
			out.Assoc(entry.Key(), entry.Value())
		}
		return out
	case []interface{}:
		return New(v...)
	default:
		return mapFromReflection(value)
	}
}

func mapFromReflection(value interface{}) *Map {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := Empty()
		for _, key := range v.MapKeys() {
			val := v.MapIndex(key)
			out.Assoc(key.Interface(), val.Interface())
		}
		return out
	case reflect.Slice:
		sl := make([]interface{}, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			sl[i] = elem.Interface()
		}
		return New(sl...)
	default:
		return Empty()
	}
}

// At returns the value associated with the key.
// If one is not found, nil is returned.
func (m *Map) At(key interface{}) interface{} {
	e, ok := m.entryFor(key)
	if !ok {
		return nil
	}
	return e.v
}

// EntryAt returns the entry (key, value pair) of the key.
// If one is not found, nil is returned.
func (m *Map) EntryAt(key interface{}) Entry {
	e, ok := m.entryFor(key)
	if !ok {
		return nil
	}
	return e
}

// Find will return the value for a key if it exists in the map and
// whether the key exists in the map. For non-nil values, exists will
// always be true.
func (m *Map) Find(key interface{}) (value interface{}, exists bool) {
	e, ok := m.entryFor(key)
	if !ok {
		return nil, false
	}
	return e.v, true
}

// Contains will test if the key exists in the map.
func (m *Map) Contains(key interface{}) bool {
	_, ok := m.entryFor(key)
	return ok
}

// Assoc associates a value with a key in the map. The map is
// modified in place and returned to allow call chaining. When the
// key is already present its value is overwritten and the element
// count is unchanged, otherwise a new entry is placed at the head of
// the key's chain.
//
// The load factor is compared against the threshold before the new
// element is accounted for: the bucket array doubles when
// count/buckets already exceeds the threshold, so a single Assoc may
// leave the map up to one element above it. This pre-insert check is
// the documented growth policy, not an accident.
func (m *Map) Assoc(key, value interface{}) *Map {
	if float64(m.count)/float64(len(m.buckets)) > m.maxLoad {
		m.grow()
	}
	m.assoc(key, value)
	return m
}

// Delete removes a key and associated value from the map, reporting
// whether the key was present. The bucket array never shrinks.
func (m *Map) Delete(key interface{}) bool {
	removed := m.bucketFor(key).Remove(func(v interface{}) bool {
		return v.(*entry).matches(key)
	})
	if removed {
		m.count--
	}
	return removed
}

// Length returns the number of entries in the map.
func (m *Map) Length() int {
	return m.count
}

// Equal tests if two maps are Equal by comparing the entries of each.
// Equal implements the Equaler interface which allows for deep
// comparisons when there are maps of maps.
func (m *Map) Equal(o interface{}) bool {
	other, ok := o.(*Map)
	if !ok {
		return ok
	}
	if m.Length() != other.Length() {
		return false
	}
	foundAll := true
	m.Range(func(key, value interface{}) bool {
		if !dyn.Equal(other.At(key), value) {
			foundAll = false
			return false
		}
		return true
	})
	return foundAll
}

// Range will loop over the entries in the Map and call 'do' on each entry.
// The 'do' function may be of many types:
//
// func(key, value interface{}) bool:
//    Takes empty interfaces and returns if the loop should continue.
//    Useful to avoid reflection or for hetrogenous maps.
// func(key, value interface{}):
//    Takes empty interfaces.
//    Useful to avoid reflection or for hetrogenous maps.
// func(entry Entry) bool:
//    Takes the Entry type and returns if the loop should continue
//    Is called directly and avoids entry unpacking if not necessary.
// func(entry Entry):
//    Takes the Entry type.
//    Is called directly and avoids entry unpacking if not necessary.
// func(k kT, v vT) bool
//    Takes a key of key type and a value of value type and returns if the loop should contiune.
//    Is called with reflection and will panic if the kT and vT types are incorrect.
// func(k kT, v vT)
//    Takes a key of key type and a value of value type.
//    Is called with reflection and will panic if the kT and vT types are incorrect.
// Range will panic if passed anything not matching these signatures.
func (m *Map) Range(do interface{}) {
	fn := genRangeFunc(do)
	cont := true
	for i := range m.buckets {
		if !cont {
			break
		}
		m.buckets[i].Range(func(v interface{}) bool {
			cont = fn(v.(*entry))
			return cont
		})
	}
}

func genRangeFunc(do interface{}) func(Entry) bool {
	switch fn := do.(type) {
	case func(key, value interface{}) bool:
		return func(entry Entry) bool {
			return fn(entry.Key(), entry.Value())
		}
	case func(key, value interface{}):
		return func(entry Entry) bool {
			fn(entry.Key(), entry.Value())
			return true
		}
	case func(e Entry) bool:
		return fn
	case func(e Entry):
		return func(entry Entry) bool {
			fn(entry)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 2 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		return func(entry Entry) bool {
			out := dyn.Apply(do, entry.Key(), entry.Value())
			if out != nil {
				return out.(bool)
			}
			return true
		}
	}
}

// AsNative returns the map converted to a go native map type.
func (m *Map) AsNative() map[interface{}]interface{} {
	out := make(map[interface{}]interface{})
	m.Range(func(key, val interface{}) {
		out[key] = val
	})
	return out
}

// Seq returns a sequence of Entry corresponding to the map's
// entries. The sequence aliases internal storage and is invalidated
// by any subsequent Assoc or Delete on the map.
func (m *Map) Seq() seq.Sequence {
	out := entrySeqNew(m.buckets, 0, nil)
	if out == nil {
		return nil
	}
	return out
}

// String returns a string representation of the map.
func (m *Map) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	m.Range(func(entry Entry) {
		fmt.Fprintf(&b, "%s ", entry)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}

// Apply takes an arbitrary number of arguments and returns the
// value At the first argument. Apply allows map to be called
// as a function by the 'dyn' library.
func (m *Map) Apply(args ...interface{}) interface{} {
	key := args[0]
	return m.At(key)
}

// bucketFor returns the chain the key belongs to at the current
// bucket count.
func (m *Map) bucketFor(key interface{}) *chain.Chain {
	idx := uint(hash.Any(key, m.hashSeed)) % uint(len(m.buckets))
	return &m.buckets[idx]
}

// entryFor returns the stored entry for the key, if any.
func (m *Map) entryFor(key interface{}) (*entry, bool) {
	v, ok := m.bucketFor(key).Find(func(v interface{}) bool {
		return v.(*entry).matches(key)
	})
	if !ok {
		return nil, false
	}
	return v.(*entry), true
}

// assoc is Assoc without the load factor check. grow relies on this
// to redistribute entries without re-entering itself.
func (m *Map) assoc(key, value interface{}) {
	if e, ok := m.entryFor(key); ok {
		e.v = value
		return
	}
	m.bucketFor(key).Insert(&entry{k: key, v: value})
	m.count++
}

// grow doubles the bucket array and redistributes every entry by
// recomputing its bucket index against the new size. Doubling halves
// the load factor, so the redistributed entries cannot push it back
// over the threshold and grow cannot recurse.
func (m *Map) grow() {
	old := m.buckets
	m.buckets = make([]chain.Chain, len(old)*2)
	for i := range old {
		old[i].Range(func(v interface{}) {
			e := v.(*entry)
			m.bucketFor(e.k).Insert(e)
		})
	}
}

type entry struct {
	k, v interface{}
}

func (e *entry) Key() interface{} {
	return e.k
}

func (e *entry) Value() interface{} {
	return e.v
}

func (e *entry) String() string {
	return fmt.Sprintf("[%v %v]", e.k, e.v)
}

func (e *entry) matches(k interface{}) bool {
	return equal(k, e.k)
}

type entrySeq struct {
	buckets []chain.Chain
	index   int
	s       seq.Sequence
}

func entrySeqNew(buckets []chain.Chain, index int, s seq.Sequence) *entrySeq {
	if s != nil {
		return &entrySeq{
			buckets: buckets,
			index:   index,
			s:       s,
		}
	}
	for i := index; i < len(buckets); i++ {
		chainSeq := buckets[i].Seq()
		if chainSeq == nil {
			continue
		}
		return &entrySeq{
			buckets: buckets,
			index:   i + 1,
			s:       chainSeq,
		}
	}
	return nil
}

func (e *entrySeq) First() interface{} {
	return e.s.First()
}

func (e *entrySeq) Next() seq.Sequence {
	out := entrySeqNew(e.buckets, e.index, e.s.Next())
	if out == nil {
		return nil
	}
	return out
}

func (e *entrySeq) String() string {
	return seq.ConvertToString(e)
}
