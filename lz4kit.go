// Package lz4kit provides a pure-Go LZ4 decompressor: a raw block decoder
// and a frame decoder, built on a shared append-only output buffer
// abstraction so the same decode logic runs against a fixed-capacity
// inline buffer or a growing heap buffer.
//
// lz4kit re-exports the block and frame packages' entry points and error
// values so callers rarely need to import them directly.
package lz4kit

import (
	"github.com/lz4kit/lz4kit/block"
	"github.com/lz4kit/lz4kit/frame"
	"github.com/lz4kit/lz4kit/outbuf"
)

// Version identifies this module's release.
const (
	Version      = "1.0.0"
	VersionMajor = 1
	VersionMinor = 0
	VersionPatch = 0
)

// Re-exported sentinel errors from package block.
var (
	ErrBlockUnexpectedEOF       = block.ErrUnexpectedEOF
	ErrBlockZeroMatchOffset     = block.ErrZeroMatchOffset
	ErrBlockMemoryLimitExceeded = block.ErrMemoryLimitExceeded
	ErrBlockInvalidInput        = block.ErrInvalidInput
)

// Re-exported sentinel errors from package frame.
var (
	ErrFrameInvalidMagic           = frame.ErrInvalidMagic
	ErrFrameVersionNotSupported    = frame.ErrVersionNotSupported
	ErrFrameReservedBitHigh        = frame.ErrReservedBitHigh
	ErrFrameInvalidMaxBlockSize    = frame.ErrInvalidMaxBlockSize
	ErrFrameHeaderChecksumInvalid  = frame.ErrHeaderChecksumInvalid
	ErrFrameBlockChecksumInvalid   = frame.ErrBlockChecksumInvalid
	ErrFrameContentChecksumInvalid = frame.ErrContentChecksumInvalid
	ErrFrameContentSizeInvalid     = frame.ErrContentSizeInvalid
	ErrFrameUnexpectedEOF          = frame.ErrUnexpectedEOF
	ErrFrameMemoryLimitExceeded    = frame.ErrMemoryLimitExceeded
	ErrFrameInvalidInput           = frame.ErrInvalidInput
	ErrFrameZeroMatchOffset        = frame.ErrZeroMatchOffset
)

// DecompressBlockInto decodes the raw LZ4 block src, appending the result
// to out. out may be a fixed-capacity buffer (outbuf.Fixed) or a growing
// one (outbuf.Heap).
func DecompressBlockInto(src []byte, out outbuf.Buf) error {
	return block.Decode(src, out)
}

// DecompressFrameInto decodes the LZ4 frame src, appending the result to
// out.
func DecompressFrameInto(src []byte, out outbuf.Buf) error {
	return frame.Decode(src, out)
}

// DecompressBlock decompresses a raw LZ4 block. dst, if non-nil, is reused
// as backing storage for the growable output buffer; the returned slice
// may alias dst.
func DecompressBlock(src []byte, dst []byte) ([]byte, error) {
	out := newHeap(dst)
	if err := block.Decode(src, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// DecompressFrame decompresses an LZ4 frame, including its envelope and
// checksums.
func DecompressFrame(src []byte, dst []byte) ([]byte, error) {
	out := newHeap(dst)
	if err := frame.Decode(src, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// newHeap returns a Heap buffer, reusing dst's backing array when the
// caller supplied one.
func newHeap(dst []byte) *outbuf.Heap {
	if dst != nil {
		return outbuf.NewHeapFrom(dst)
	}
	return outbuf.NewHeap()
}

// DecompressFrameSized behaves like DecompressFrame, but when the frame
// declares a content size up front it preallocates the output buffer to
// that size, avoiding the doubling growth Heap otherwise performs.
func DecompressFrameSized(src []byte) ([]byte, error) {
	header, err := frame.PeekHeader(src)
	if err != nil {
		return nil, err
	}

	capacity := 0
	if header.ContentSize != nil {
		capacity = int(*header.ContentSize)
	}

	out := outbuf.NewHeapSize(capacity)
	if err := frame.Decode(src, out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
