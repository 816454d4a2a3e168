// Package chain implements a mutable singly linked chain. It is the
// collision chain used by the hashmap package: one chain per bucket,
// new values inserted at the head.
package chain // import "github.com/elijw/andy/chain"

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"jsouthworth.net/go/seq"
)

var errRangeSig = errors.New("Range requires a function: func(v vT) bool or func(v vT)")

// node is one link of a chain.
type node struct {
	value interface{}
	next  *node
}

// Chain is a mutable singly linked sequence of values. Insertion is
// at the head, so walking a chain visits values in most recently
// inserted first order. The zero value is an empty chain ready for
// use. A chain does not deduplicate values on Insert; callers that
// need uniqueness must check with Find first.
type Chain struct {
	head *node
}

// New converts a list of elements to a chain. Each element is
// inserted at the head, so the chain walks in the reverse of the
// argument order.
func New(elems ...interface{}) *Chain {
	out := new(Chain)
	for _, elem := range elems {
		out.Insert(elem)
	}
	return out
}

// Insert places a new value at the head of the chain.
func (c *Chain) Insert(value interface{}) {
	c.head = &node{
		value: value,
		next:  c.head,
	}
}

// First returns the most recently inserted value, or nil if the
// chain is empty.
func (c *Chain) First() interface{} {
	if c.head == nil {
		return nil
	}
	return c.head.value
}

// Find walks the chain and returns the first value for which pred
// returns true, and whether any value matched. The returned value is
// the stored one, so callers holding a pointer through it may mutate
// what the chain stores.
func (c *Chain) Find(pred func(value interface{}) bool) (interface{}, bool) {
	for cur := c.head; cur != nil; cur = cur.next {
		if pred(cur.value) {
			return cur.value, true
		}
	}
	return nil, false
}

// Remove unlinks the first value for which pred returns true and
// reports whether a value was removed. Later matches are untouched.
func (c *Chain) Remove(pred func(value interface{}) bool) bool {
	var prev *node
	for cur := c.head; cur != nil; cur = cur.next {
		if pred(cur.value) {
			if prev == nil {
				c.head = cur.next
			} else {
				prev.next = cur.next
			}
			return true
		}
		prev = cur
	}
	return false
}

// Length returns the number of values in the chain by walking every
// link. The chain caches no size.
func (c *Chain) Length() int {
	var n int
	for cur := c.head; cur != nil; cur = cur.next {
		n++
	}
	return n
}

// Range calls the passed in function on each value of the chain.
// The function passed in may be of many types:
//
// func(value interface{}) bool:
//    Takes a value of any type and returns if the loop should continue.
//    Useful to avoid reflection where not needed and to support
//    heterogenous chains.
// func(value interface{})
//    Takes a value of any type.
//    Useful to avoid reflection where not needed and to support
//    heterogenous chains.
// func(value T) bool:
//    Takes a value of the type of element stored in the chain and
//    returns if the loop should continue. Useful for homogeneous chains.
//    Is called with reflection and will panic if the type is incorrect.
// func(value T)
//    Takes a value of the type of element stored in the chain.
//    Is called with reflection and will panic if the type is incorrect.
// Range will panic if passed anything that doesn't match one of these signatures
func (c *Chain) Range(do interface{}) {
	cont := true
	for cur := c.head; cur != nil && cont; cur = cur.next {
		switch fn := do.(type) {
		case func(value interface{}) bool:
			cont = fn(cur.value)
		case func(value interface{}):
			fn(cur.value)
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
			outs := rv.Call([]reflect.Value{
				reflect.ValueOf(cur.value)})
			if len(outs) != 0 {
				cont = outs[0].Interface().(bool)
			}
		}
	}
}

// Seq returns a representation of the chain as a sequence
// corresponding to the values of the chain. An empty chain returns
// nil. The sequence aliases the chain's links; it is invalidated by
// any subsequent Insert or Remove.
func (c *Chain) Seq() seq.Sequence {
	if c.head == nil {
		return nil
	}
	return &chainSequence{n: c.head}
}

// String returns a string representation of the chain.
func (c *Chain) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "( ")
	c.Range(func(value interface{}) {
		fmt.Fprintf(&b, "%v ", value)
	})
	fmt.Fprint(&b, ")")
	return b.String()
}

type chainSequence struct {
	n *node
}

func (s *chainSequence) First() interface{} {
	return s.n.value
}

func (s *chainSequence) Next() seq.Sequence {
	if s.n.next == nil {
		return nil
	}
	return &chainSequence{n: s.n.next}
}

func (s *chainSequence) String() string {
	return seq.ConvertToString(s)
}
