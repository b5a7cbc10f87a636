package frame

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lz4kit/lz4kit/outbuf"
)

// buildFrame assembles a minimal single-block LZ4 frame around payload,
// stored as a single uncompressed block, with the given header flags.
// blockChecksum and contentChecksum control whether those trailers are
// appended; the caller's flg byte must already carry the matching bits.
func buildFrame(flg, bd byte, contentSize *uint64, payload []byte, blockChecksum, contentChecksum bool) []byte {
	var buf []byte

	magicBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(magicBytes, magic)
	buf = append(buf, magicBytes...)

	var headerBytes []byte
	headerBytes = append(headerBytes, flg, bd)
	if contentSize != nil {
		sizeBytes := make([]byte, 8)
		binary.LittleEndian.PutUint64(sizeBytes, *contentSize)
		headerBytes = append(headerBytes, sizeBytes...)
	}
	buf = append(buf, headerBytes...)
	buf = append(buf, byte(xxh32Sum(headerBytes)>>8))

	blockHeader := make([]byte, 4)
	binary.LittleEndian.PutUint32(blockHeader, 0x8000_0000|uint32(len(payload)))
	buf = append(buf, blockHeader...)
	buf = append(buf, payload...)
	if blockChecksum {
		sum := make([]byte, 4)
		binary.LittleEndian.PutUint32(sum, xxh32Sum(payload))
		buf = append(buf, sum...)
	}

	buf = append(buf, 0, 0, 0, 0) // end marker

	if contentChecksum {
		sum := make([]byte, 4)
		binary.LittleEndian.PutUint32(sum, xxh32Sum(payload))
		buf = append(buf, sum...)
	}

	return buf
}

const (
	flgBase              = version << versionShift
	flgIndependentBlocks = flgBase | byte(FlagIndependentBlocks)
	bdMax64KB            = 4 << 4
)

func decodeFrameToString(src []byte) (string, error) {
	out := outbuf.NewHeap()
	err := Decode(src, out)
	return string(out.Bytes()), err
}

func TestDecodeMinimalFrame(t *testing.T) {
	raw := buildFrame(flgIndependentBlocks, bdMax64KB, nil, []byte("hello\n"), false, false)

	got, err := decodeFrameToString(raw)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if got != "hello\n" {
		t.Fatalf("Decode() = %q, want %q", got, "hello\n")
	}
}

func TestDecodeInvalidMagic(t *testing.T) {
	raw := []byte{0x00, 0x00, 0x00, 0x00}
	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("Decode() error = %v, want ErrInvalidMagic", err)
	}
}

func TestDecodeWithContentSizeAndChecksums(t *testing.T) {
	payload := []byte("the quick brown fox")
	size := uint64(len(payload))
	flg := flgIndependentBlocks | byte(FlagContentSize) | byte(FlagContentChecksum) | byte(FlagBlockChecksums)
	raw := buildFrame(flg, bdMax64KB, &size, payload, true, true)

	got, err := decodeFrameToString(raw)
	require.NoError(t, err)
	require.Equal(t, string(payload), got)
}

func TestDecodeRejectsDictionaryID(t *testing.T) {
	flg := flgIndependentBlocks | byte(FlagDictionaryID)
	raw := buildFrame(flg, bdMax64KB, nil, []byte("x"), false, false)

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("Decode() error = %v, want ErrInvalidInput", err)
	}
}

func TestDecodeHeaderChecksumMismatch(t *testing.T) {
	raw := buildFrame(flgIndependentBlocks, bdMax64KB, nil, []byte("hello\n"), false, false)
	raw[6] ^= 0xFF // corrupt the header checksum byte

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrHeaderChecksumInvalid) {
		t.Fatalf("Decode() error = %v, want ErrHeaderChecksumInvalid", err)
	}
}

func TestDecodeContentChecksumMismatch(t *testing.T) {
	raw := buildFrame(flgIndependentBlocks|byte(FlagContentChecksum), bdMax64KB, nil, []byte("hello\n"), false, true)
	raw[len(raw)-1] ^= 0xFF

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrContentChecksumInvalid) {
		t.Fatalf("Decode() error = %v, want ErrContentChecksumInvalid", err)
	}
}

func TestDecodeContentSizeMismatch(t *testing.T) {
	wrongSize := uint64(999)
	raw := buildFrame(flgIndependentBlocks|byte(FlagContentSize), bdMax64KB, &wrongSize, []byte("hello\n"), false, false)

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrContentSizeInvalid) {
		t.Fatalf("Decode() error = %v, want ErrContentSizeInvalid", err)
	}
}

func TestDecodeBlockChecksumMismatch(t *testing.T) {
	raw := buildFrame(flgIndependentBlocks|byte(FlagBlockChecksums), bdMax64KB, nil, []byte("hello\n"), true, false)
	// The block checksum trailer sits right after the 6-byte payload.
	checksumOffset := len(raw) - 4 - 4 // minus end marker, minus checksum itself
	raw[checksumOffset] ^= 0xFF

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrBlockChecksumInvalid) {
		t.Fatalf("Decode() error = %v, want ErrBlockChecksumInvalid", err)
	}
}

func TestDecodeUnsupportedVersion(t *testing.T) {
	flg := flgIndependentBlocks &^ (0x03 << versionShift) // zero out version bits
	raw := buildFrame(flg, bdMax64KB, nil, []byte("x"), false, false)

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrVersionNotSupported) {
		t.Fatalf("Decode() error = %v, want ErrVersionNotSupported", err)
	}
}

func TestDecodeInvalidMaxBlockSize(t *testing.T) {
	raw := buildFrame(flgIndependentBlocks, 0x7<<4, nil, []byte("x"), false, false)
	// idx 7 is valid; force an invalid one (3) directly.
	raw[5] = 3 << 4
	// header checksum now needs to cover the corrupted BD byte too, so
	// recompute it to isolate the max-block-size check from the checksum
	// check.
	headerBytes := raw[4:6]
	raw[6] = byte(xxh32Sum(headerBytes) >> 8)

	_, err := decodeFrameToString(raw)
	if !errors.Is(err, ErrInvalidMaxBlockSize) {
		t.Fatalf("Decode() error = %v, want ErrInvalidMaxBlockSize", err)
	}
}

func TestPeekHeaderMatchesDeclaredContentSize(t *testing.T) {
	size := uint64(6)
	raw := buildFrame(flgIndependentBlocks|byte(FlagContentSize), bdMax64KB, &size, []byte("hello\n"), false, false)

	header, err := PeekHeader(raw)
	require.NoError(t, err)
	require.NotNil(t, header.ContentSize)
	require.Equal(t, size, *header.ContentSize)
	require.Equal(t, 1<<(4*2+8), header.MaxBlockSize)
	require.True(t, header.Flags.Has(FlagIndependentBlocks))
}

func TestDecodeZeroMatchOffsetSurfacesFrameSentinel(t *testing.T) {
	// A compressed block (high bit clear) whose payload is a single
	// malformed token: literal length 1, then a zero match offset.
	badBlock := []byte{0x10, 0x20, 0x00, 0x00}

	var buf []byte
	magicBytes := make([]byte, 4)
	binary.LittleEndian.PutUint32(magicBytes, magic)
	buf = append(buf, magicBytes...)

	headerBytes := []byte{flgIndependentBlocks, bdMax64KB}
	buf = append(buf, headerBytes...)
	buf = append(buf, byte(xxh32Sum(headerBytes)>>8))

	blockHeader := make([]byte, 4)
	binary.LittleEndian.PutUint32(blockHeader, uint32(len(badBlock))) // high bit clear: compressed
	buf = append(buf, blockHeader...)
	buf = append(buf, badBlock...)
	buf = append(buf, 0, 0, 0, 0)

	_, err := decodeFrameToString(buf)
	if !errors.Is(err, ErrZeroMatchOffset) {
		t.Fatalf("Decode() error = %v, want ErrZeroMatchOffset", err)
	}
}
