// Package frame decodes the LZ4 frame envelope: magic, frame descriptor,
// optional content size, header checksum, a stream of blocks with
// optional per-block checksums, an end marker, and an optional content
// checksum. Compressed block payloads are handed to package block;
// uncompressed payloads (and oversized compressed ones, per the frame
// format's conformance quirk) are appended to the output directly.
package frame

import (
	"encoding/binary"

	"github.com/pierrec/xxHash/xxHash32"

	"github.com/lz4kit/lz4kit/block"
	"github.com/lz4kit/lz4kit/internal/cursor"
	"github.com/lz4kit/lz4kit/outbuf"
)

const magic uint32 = 0x184D2204

// Header is the result of parsing a frame's descriptor without decoding
// any block payload, used by frame-info style tooling.
type Header struct {
	Flags           Flags
	MaxBlockSizeIdx uint8
	MaxBlockSize    int
	ContentSize     *uint64
}

// Decode decodes the LZ4 frame src into out, verifying the header
// checksum, every enabled per-block checksum, the content checksum, and
// the declared content size, in that order of appearance in the stream.
func Decode(src []byte, out outbuf.Buf) error {
	c := cursor.New(src)

	header, err := readHeader(&c)
	if err != nil {
		return err
	}

	if err := decodeBlocks(&c, out, header); err != nil {
		return err
	}

	if header.Flags.Has(FlagContentChecksum) {
		expected, err := readUint32(&c)
		if err != nil {
			return err
		}
		if xxh32Sum(out.Bytes()) != expected {
			return ErrContentChecksumInvalid
		}
	}

	if header.ContentSize != nil && *header.ContentSize != uint64(out.Len()) {
		return ErrContentSizeInvalid
	}

	return nil
}

// PeekHeader parses and validates just the frame descriptor (through the
// header checksum), without decoding any block. It is the basis of the
// frame-info CLI subcommand.
func PeekHeader(src []byte) (Header, error) {
	c := cursor.New(src)
	return readHeader(&c)
}

// readHeader consumes magic through the header-checksum byte, collecting
// the FLG, BD and optional content-size bytes as it goes, and validates
// the checksum byte against their XXH32(seed=0) hash before returning.
func readHeader(c *cursor.Cursor) (Header, error) {
	magicBytes, err := c.Array4()
	if err != nil {
		return Header{}, ErrUnexpectedEOF
	}
	if binary.LittleEndian.Uint32(magicBytes[:]) != magic {
		return Header{}, ErrInvalidMagic
	}

	var headerBytes []byte

	flgByte, err := c.ReadByte()
	if err != nil {
		return Header{}, ErrUnexpectedEOF
	}
	headerBytes = append(headerBytes, flgByte)

	flags, err := parseFlags(flgByte)
	if err != nil {
		return Header{}, err
	}

	bdByte, err := c.ReadByte()
	if err != nil {
		return Header{}, ErrUnexpectedEOF
	}
	headerBytes = append(headerBytes, bdByte)

	bd, err := parseBlockDescriptor(bdByte)
	if err != nil {
		return Header{}, err
	}

	var contentSize *uint64
	if flags.Has(FlagContentSize) {
		sizeBytes, err := c.Array8()
		if err != nil {
			return Header{}, ErrUnexpectedEOF
		}
		headerBytes = append(headerBytes, sizeBytes[:]...)
		size := binary.LittleEndian.Uint64(sizeBytes[:])
		contentSize = &size
	}

	if flags.Has(FlagDictionaryID) {
		return Header{}, ErrInvalidInput
	}

	headerChecksum, err := c.ReadByte()
	if err != nil {
		return Header{}, ErrUnexpectedEOF
	}
	if expected := byte(xxh32Sum(headerBytes) >> 8); headerChecksum != expected {
		return Header{}, ErrHeaderChecksumInvalid
	}

	return Header{
		Flags:           flags,
		MaxBlockSizeIdx: bd.maxBlockSizeIdx,
		MaxBlockSize:    bd.maxBlockSize,
		ContentSize:     contentSize,
	}, nil
}

// decodeBlocks runs the ExpectBlockHeader <-> ExpectBlockPayload loop
// until the zero-length end marker is read.
func decodeBlocks(c *cursor.Cursor, out outbuf.Buf, header Header) error {
	for {
		blockHeader, err := readUint32(c)
		if err != nil {
			return err
		}

		if blockHeader == 0 {
			return nil
		}

		uncompressed := blockHeader&0x8000_0000 != 0
		size := int(blockHeader & 0x7FFF_FFFF)

		payload, err := c.Take(size)
		if err != nil {
			return ErrUnexpectedEOF
		}

		var blockChecksum uint32
		hasBlockChecksum := header.Flags.Has(FlagBlockChecksums)
		if hasBlockChecksum {
			blockChecksum = xxh32Sum(payload)
		}

		switch {
		case uncompressed:
			if !out.Extend(payload) {
				return ErrMemoryLimitExceeded
			}
		case size > header.MaxBlockSize:
			// Conformance quirk: an oversized "compressed" block is
			// treated as uncompressed and appended verbatim.
			if !out.Extend(payload) {
				return ErrMemoryLimitExceeded
			}
		default:
			if err := block.Decode(payload, out); err != nil {
				return mapBlockError(err)
			}
		}

		if hasBlockChecksum {
			expected, err := readUint32(c)
			if err != nil {
				return err
			}
			if blockChecksum != expected {
				return ErrBlockChecksumInvalid
			}
		}
	}
}

// mapBlockError translates a block-package error into the equivalent
// frame-package sentinel, so callers only ever need to errors.Is against
// the frame package when decoding frames.
func mapBlockError(err error) error {
	switch err {
	case block.ErrUnexpectedEOF:
		return ErrUnexpectedEOF
	case block.ErrMemoryLimitExceeded:
		return ErrMemoryLimitExceeded
	case block.ErrZeroMatchOffset:
		return ErrZeroMatchOffset
	case block.ErrInvalidInput:
		return ErrInvalidInput
	default:
		return err
	}
}

func readUint32(c *cursor.Cursor) (uint32, error) {
	arr, err := c.Array4()
	if err != nil {
		return 0, ErrUnexpectedEOF
	}
	return binary.LittleEndian.Uint32(arr[:]), nil
}

func xxh32Sum(data []byte) uint32 {
	h := xxHash32.New(0)
	h.Write(data)
	return h.Sum32()
}
