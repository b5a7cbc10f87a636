//go:build amd64
// +build amd64

package platform

import "golang.org/x/sys/cpu"

// detectWideFill reports whether the host's unaligned-store support makes
// an 8-byte-word fill loop worthwhile. SSE2 is guaranteed on every amd64,
// but this reads golang.org/x/sys/cpu rather than assuming it.
func detectWideFill() bool {
	return cpu.X86.HasSSE2
}
