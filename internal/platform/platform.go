// Package platform detects CPU features relevant to the decoder's
// byte-fill fast path. It is a narrow, decode-only descendant of the
// compressor's matcher-selection logic: instead of picking a SIMD match
// finder, it picks a fill stride for outbuf.Heap.ResizeFill.
package platform

import (
	"runtime"
	"sync"
)

// Features summarizes what the current CPU/arch combination supports.
type Features struct {
	// WideFill reports whether filling memory eight bytes at a time (via a
	// broadcast uint64 store) is both safe and profitable here. It is true
	// on architectures with fast unaligned stores; false elsewhere, where
	// a plain byte loop is used instead.
	WideFill bool
}

var (
	once     sync.Once
	features Features
)

// Detect returns the CPU feature summary, computing it once per process.
func Detect() Features {
	once.Do(func() {
		features = detect()
	})
	return features
}

// detect performs the architecture-specific probe. amd64 and arm64 both
// support fast unaligned 8-byte stores; other architectures fall back to
// the conservative byte-at-a-time path.
func detect() Features {
	switch runtime.GOARCH {
	case "amd64", "arm64":
		return Features{WideFill: detectWideFill()}
	default:
		return Features{WideFill: false}
	}
}
