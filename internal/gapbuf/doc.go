// Package gapbuf provides the growable uint16 buffer behind gap-encoded bitsets.
//
// A Buffer keeps its first InlineCap entries inside the struct itself, so small
// sets never touch the heap. Once the inline region overflows, the contents move
// to a heap slice that grows by doubling. Storage is never migrated back to the
// inline region when the buffer shrinks.
//
// The zero value is an empty, ready-to-use buffer.
//
// A Buffer must not be copied by value after it has spilled to the heap: the
// copy would share the heap slice. Use Clone or CopyFrom.
package gapbuf
