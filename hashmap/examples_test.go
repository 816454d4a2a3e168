package hashmap

import (
	"fmt"

	"jsouthworth.net/go/dyn"
)

func ExampleEmpty() {
	// Empty returns a new empty map with a unique hash seed.
	m := Empty()
	fmt.Println(m)
	// Output: { }
}

func ExampleNew() {
	// New generates pairs from a list of keys and values.
	m := New("a", true)
	fmt.Println(m)
	// Output: { [a true] }
}

func ExampleFrom_map() {
	// From generates a map from several different types.
	// One of these types are go native maps.
	m := From(map[string]bool{"a": true})
	fmt.Println(m)
	// Output: { [a true] }
}

func ExampleFrom_slice() {
	// From generates a map from several different types.
	// One of these types is a slice of arbitrary type
	// that has an even number of elements.
	m := From([]int{1, 2})
	fmt.Println(m)
	// Output: { [1 2] }
}

func ExampleMap_Assoc() {
	// Assoc is similar to the go builtin m[k]=v operation.
	gm := map[string]bool{"a": true, "b": false}
	m := From(gm)

	m.Assoc("c", true)
	gm["c"] = true

	fmt.Println(dyn.Equal(m, From(gm)))
	// Output: true
}

func ExampleMap_At() {
	// At is similar to the go builtin operator m[k].
	gm := map[string]bool{"a": true, "b": false}
	m := From(gm)
	fmt.Println(m.At("a"))
	fmt.Println(gm["a"])
	// Output: true
	// true
}

func ExampleMap_Contains() {
	gm := map[string]bool{"a": true, "b": false}
	m := From(gm)

	fmt.Println(m.Contains("a"))

	_, contains := gm["a"]
	fmt.Println(contains)

	// Output: true
	// true
}

func ExampleMap_Delete() {
	// Delete is similar to the builtin delete function in go.
	gm := map[string]bool{"a": true, "b": false}
	m := From(gm)

	m.Delete("b")
	delete(gm, "b")

	fmt.Println(dyn.Equal(m, From(gm)))
	// Output: true
}

func ExampleMap_Find() {
	m := New("a", 1)
	v, ok := m.Find("a")
	fmt.Println(v, ok)
	_, ok = m.Find("b")
	fmt.Println(ok)
	// Output: 1 true
	// false
}

func ExampleMap_Length() {
	m := New("a", 1, "b", 2)
	fmt.Println(m.Length())
	// Output: 2
}

func ExampleMap_AsNative() {
	m := New("a", true, "b", false)
	gm := m.AsNative()
	fmt.Printf("%T\n", gm)
	// Output: map[interface {}]interface {}
}
