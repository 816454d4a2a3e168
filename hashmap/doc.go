// Package hashmap implements a mutable hash map using separate
// chaining. Keys are spread over an array of buckets by their hash;
// keys that land in the same bucket are kept in a singly linked
// chain in most recently inserted first order. The bucket array
// doubles in size whenever the load factor threshold is exceeded.
//
// A note about Key and Value equality. If you would like to override
// the default go equality operator for keys and values in this map library
// implement the Equal(other interface{}) bool function for the type.
// Otherwise '==' will be used with all its restrictions. Hashing of
// keys may likewise be overridden by implementing Hash() uintptr.
package hashmap
