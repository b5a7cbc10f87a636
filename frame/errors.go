package frame

import "errors"

// Sentinel errors returned by Decode, matching the frame format's
// validation rules one-for-one. Compare with errors.Is.
var (
	// ErrInvalidMagic means the first four bytes were not 0x184D2204.
	ErrInvalidMagic = errors.New("lz4 frame: invalid magic number")

	// ErrVersionNotSupported means bits 7-6 of FLG were not binary 01.
	ErrVersionNotSupported = errors.New("lz4 frame: unsupported frame version")

	// ErrReservedBitHigh means a bit documented as reserved-must-be-zero
	// was set, in either FLG (bit 1) or BD (bits 7, 3-0).
	ErrReservedBitHigh = errors.New("lz4 frame: reserved bit set")

	// ErrInvalidMaxBlockSize means BD's block-size index was outside 4..7.
	ErrInvalidMaxBlockSize = errors.New("lz4 frame: invalid max block size index")

	// ErrHeaderChecksumInvalid means the HC byte didn't match the XXH32
	// of the preceding header bytes.
	ErrHeaderChecksumInvalid = errors.New("lz4 frame: header checksum mismatch")

	// ErrBlockChecksumInvalid means a per-block XXH32 trailer didn't match
	// the block payload as transmitted.
	ErrBlockChecksumInvalid = errors.New("lz4 frame: block checksum mismatch")

	// ErrContentChecksumInvalid means the trailing content XXH32 didn't
	// match the fully reconstructed output.
	ErrContentChecksumInvalid = errors.New("lz4 frame: content checksum mismatch")

	// ErrContentSizeInvalid means the frame declared a content size that
	// didn't match the actual decoded length.
	ErrContentSizeInvalid = errors.New("lz4 frame: content size mismatch")

	// ErrZeroMatchOffset surfaces a block.ErrZeroMatchOffset encountered
	// while decoding a compressed block payload.
	ErrZeroMatchOffset = errors.New("lz4 frame: zero match offset in block payload")

	// ErrUnexpectedEOF means the input ended before a required field
	// (header field, block payload, checksum, end marker) could be read.
	ErrUnexpectedEOF = errors.New("lz4 frame: unexpected end of input")

	// ErrMemoryLimitExceeded means the output Buf rejected bytes this
	// frame needed to store.
	ErrMemoryLimitExceeded = errors.New("lz4 frame: output buffer capacity exceeded")

	// ErrInvalidInput covers frame features this decoder deliberately
	// refuses, currently dictionary-ID frames. It also surfaces a
	// block.ErrInvalidInput (a match offset reaching before the start of
	// the output) encountered while decoding a compressed block payload.
	ErrInvalidInput = errors.New("lz4 frame: unsupported frame feature")
)
