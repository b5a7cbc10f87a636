//go:build arm64
// +build arm64

package platform

import "golang.org/x/sys/cpu"

// detectWideFill reports whether the host's unaligned-store support makes
// an 8-byte-word fill loop worthwhile. All arm64 targets Go supports have
// NEON and fast unaligned loads/stores.
func detectWideFill() bool {
	return cpu.ARM64.HasASIMD
}
