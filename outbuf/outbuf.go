// Package outbuf provides the append-only byte sink the block and frame
// decoders write into. Buf is the polymorphism point that lets the same
// decoder run against a caller-supplied fixed-capacity slice (Fixed, never
// allocates) or a growing heap buffer (Heap); callers of the decoders are
// polymorphic over it.
package outbuf

// Buf is anything that can be appended to. Every operation either fully
// succeeds or leaves the observable contents and length unchanged.
type Buf interface {
	// Len returns the current initialized length.
	Len() int

	// Bytes returns the bytes written so far, covering exactly [0, Len()).
	// The returned slice is only valid until the next mutating call.
	Bytes() []byte

	// Reserve reports whether Len()+n bytes can be reached without
	// overflow. Implementations may eagerly grow storage but must never
	// truncate.
	Reserve(n int) bool

	// Push appends a single byte, returning true on success. On failure
	// (capacity exhausted) the byte is not stored and length is unchanged.
	Push(b byte) bool

	// Extend appends p atomically: either every byte is appended, or none
	// are and false is returned.
	Extend(p []byte) bool

	// ResizeFill grows the buffer to targetLen by appending
	// targetLen-Len() copies of fill. If targetLen <= Len() it returns
	// false without modifying anything; this operation never truncates.
	ResizeFill(targetLen int, fill byte) bool
}
