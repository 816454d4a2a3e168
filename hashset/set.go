// Package hashset implements a mutable Set datastructure on top of hashmap
package hashset // import "github.com/elijw/andy/hashset"

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/elijw/andy/hashmap"
	"jsouthworth.net/go/seq"
)

var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// Set is a mutable unordered set implementation. A Set is not safe
// for concurrent use.
type Set struct {
	backingMap *hashmap.Map
}

// Empty returns a new empty set. Options are passed through to the
// backing map.
func Empty(options ...hashmap.Option) *Set {
	return &Set{
		backingMap: hashmap.Empty(options...),
	}
}

// New returns a set containing the supplied elements.
func New(elems ...interface{}) *Set {
	s := Empty()
	for _, elem := range elems {
		s.Add(elem)
	}
	return s
}

// From will convert many different go types to a set.
// Converting some types is more efficient than others and the mechanisms
// are described below.
//
// *Set:
//    A new set is populated by ranging over the original, so the two
//    sets may be mutated independently.
// map[interface{}]struct{}:
//    Converted directly by looping over the map and calling Add on an empty set.
// []interface{}:
//    The elements are passed to New.
// seq.Sequence:
//    The sequence is reduced into an empty set.
// seq.Seqable:
//    A sequence is obtained using Seq() and then the sequence is reduced into an empty set.
// map[kT]vT:
//    Reflection is used to loop over the keys of the map and add them to an empty set.
// []T:
//    Reflection is used to add the elements of the slice to an empty set.
func From(value interface{}) *Set {
	switch v := value.(type) {
	case *Set:
		out := Empty()
		v.Range(func(elem interface{}) {
			out.Add(elem)
		})
		return out
	case map[interface{}]struct{}:
		s := Empty()
		for k := range v {
			s.Add(k)
		}
		return s
	case []interface{}:
		return New(v...)
	case seq.Seqable:
		return setFromSequence(v.Seq())
	case seq.Sequence:
		return setFromSequence(v)
	default:
		return setFromReflection(value)
	}
}

func setFromSequence(coll seq.Sequence) *Set {
	out := Empty()
	for ; coll != nil; coll = coll.Next() {
		out.Add(coll.First())
	}
	return out
}

func setFromReflection(value interface{}) *Set {
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Map:
		out := Empty()
		for _, key := range v.MapKeys() {
			out.Add(key.Interface())
		}
		return out
	case reflect.Slice:
		out := Empty()
		for i := 0; i < v.Len(); i++ {
			out.Add(v.Index(i).Interface())
		}
		return out
	default:
		if value == nil {
			return Empty()
		}
		return New(value)
	}
}

// Add adds an element to the set and returns the set to allow call
// chaining.
func (s *Set) Add(elem interface{}) *Set {
	s.backingMap.Assoc(elem, nil)
	return s
}

// At returns the elem if it exists in the set otherwise it returns nil.
func (s *Set) At(elem interface{}) interface{} {
	if s.backingMap.Contains(elem) {
		return elem
	}
	return nil
}

// Contains returns true if the element is in the set, false otherwise.
func (s *Set) Contains(elem interface{}) bool {
	return s.backingMap.Contains(elem)
}

// Delete removes an element from the set, reporting whether the
// element was present.
func (s *Set) Delete(elem interface{}) bool {
	return s.backingMap.Delete(elem)
}

// Length returns the number of elements in the set.
func (s *Set) Length() int {
	return s.backingMap.Length()
}

// Range calls the passed in function on each element of the set.
// The function passed in may be of many types:
//
// func(value interface{}) bool:
//    Takes a value of any type and returns if the loop should continue.
//    Useful to avoid reflection where not needed and to support
//    heterogenous sets.
// func(value interface{})
//    Takes a value of any type.
//    Useful to avoid reflection where not needed and to support
//    heterogenous sets.
// func(value T) bool:
//    Takes a value of the type of element stored in the set and
//    returns if the loop should continue. Useful for homogeneous sets.
//    Is called with reflection and will panic if the type is incorrect.
// func(value T)
//    Takes a value of the type of element stored in the set.
//    Is called with reflection and will panic if the type is incorrect.
// Range will panic if passed anything that doesn't match one of these signatures
func (s *Set) Range(do interface{}) {
	var rangefn func(interface{}, interface{}) bool
	switch fn := do.(type) {
	case func(value interface{}) bool:
		rangefn = func(key, _ interface{}) bool {
			return fn(key)
		}
	case func(value interface{}):
		rangefn = func(key, _ interface{}) bool {
			fn(key)
			return true
		}
	default:
		rv := reflect.ValueOf(do)
		if rv.Kind() != reflect.Func {
			panic(errRangeSig)
		}
		rt := rv.Type()
		if rt.NumIn() != 1 || rt.NumOut() > 1 {
			panic(errRangeSig)
		}
		if rt.NumOut() == 1 &&
			rt.Out(0).Kind() != reflect.Bool {
			panic(errRangeSig)
		}
		rangefn = func(key, _ interface{}) bool {
			cont := true
			outs := rv.Call([]reflect.Value{
				reflect.ValueOf(key)})
			if len(outs) != 0 {
				cont = outs[0].Interface().(bool)
			}
			return cont
		}
	}
	s.backingMap.Range(rangefn)
}

// String returns a string serialization of the set.
func (s *Set) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "{ ")
	s.Range(func(elem interface{}) {
		fmt.Fprintf(&b, "%v ", elem)
	})
	fmt.Fprint(&b, "}")
	return b.String()
}
