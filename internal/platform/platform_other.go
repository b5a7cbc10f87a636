//go:build !amd64 && !arm64
// +build !amd64,!arm64

package platform

// detectWideFill reports false unconditionally: architectures outside
// amd64/arm64 get the conservative byte-at-a-time fill path.
func detectWideFill() bool {
	return false
}
