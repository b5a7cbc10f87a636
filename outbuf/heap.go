package outbuf

import "github.com/lz4kit/lz4kit/internal/platform"

// Heap is a Buf backed by a growing slice. Reserve and Extend always
// succeed up to host memory; Push never rejects a byte.
type Heap struct {
	storage []byte
}

// NewHeap returns an empty Heap buffer.
func NewHeap() *Heap {
	return &Heap{}
}

// NewHeapSize returns an empty Heap buffer pre-sized to hold at least
// capacity bytes without regrowing, useful when a frame declares its
// content size up front.
func NewHeapSize(capacity int) *Heap {
	return &Heap{storage: make([]byte, 0, capacity)}
}

// NewHeapFrom returns an empty Heap buffer that reuses buf's backing
// array (its capacity, not its contents) as initial storage.
func NewHeapFrom(buf []byte) *Heap {
	return &Heap{storage: buf[:0]}
}

// Len implements Buf.
func (h *Heap) Len() int { return len(h.storage) }

// Bytes implements Buf.
func (h *Heap) Bytes() []byte { return h.storage }

// Reserve implements Buf.
func (h *Heap) Reserve(n int) bool {
	if need := len(h.storage) + n; need > cap(h.storage) {
		grown := make([]byte, len(h.storage), need)
		copy(grown, h.storage)
		h.storage = grown
	}
	return true
}

// Push implements Buf.
func (h *Heap) Push(b byte) bool {
	h.storage = append(h.storage, b)
	return true
}

// Extend implements Buf.
func (h *Heap) Extend(p []byte) bool {
	h.storage = append(h.storage, p...)
	return true
}

// ResizeFill implements Buf. It uses a widened 8-byte-word store when the
// host's feature probe (internal/platform) says unaligned stores are
// cheap; the offset==1 "run" case in package block is the caller that
// benefits most, since it fills long spans of a single repeated byte.
func (h *Heap) ResizeFill(targetLen int, fill byte) bool {
	if targetLen <= len(h.storage) {
		return false
	}
	h.Reserve(targetLen - len(h.storage))

	if platform.Detect().WideFill {
		fillWide(&h.storage, targetLen, fill)
	} else {
		for len(h.storage) < targetLen {
			h.storage = append(h.storage, fill)
		}
	}
	return true
}

// fillWide appends fill bytes to *storage until it reaches targetLen,
// writing eight bytes at a time where possible.
func fillWide(storage *[]byte, targetLen int, fill byte) {
	s := *storage
	start := len(s)
	s = s[:targetLen]

	word := uint64(fill) * 0x0101010101010101

	i := start
	for ; i+8 <= targetLen; i += 8 {
		putUint64(s[i:i+8], word)
	}
	for ; i < targetLen; i++ {
		s[i] = fill
	}

	*storage = s
}

func putUint64(b []byte, v uint64) {
	_ = b[7]
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}
