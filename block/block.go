// Package block decodes a single raw LZ4 block: a concatenation of
// token-led sequences, each an optional literal run followed by an
// optional back-reference match. It holds no state beyond one call to
// Decode and never allocates on its own.
package block

import (
	"github.com/lz4kit/lz4kit/internal/cursor"
	"github.com/lz4kit/lz4kit/outbuf"
)

// Decode decodes the raw LZ4 block src into out, appending literal and
// match bytes as it goes. An empty src decodes to no output and a nil
// error.
//
// The block spec allows two legal early exits that are not errors: an
// empty input (block complete before any token is read) and a final
// sequence that ends immediately after its literal run, with no trailing
// offset/match. Both are handled by returning nil as soon as the cursor
// is exhausted at the right point.
func Decode(src []byte, out outbuf.Buf) error {
	c := cursor.New(src)

	for {
		token, err := c.ReadByte()
		if err != nil {
			// Cursor already exhausted before a new sequence starts: the
			// block is complete.
			return nil
		}

		if err := decodeLiteralRun(&c, out, int(token>>4)); err != nil {
			return err
		}

		low, err := c.ReadByte()
		if err != nil {
			// No offset follows: this was the final, literal-only
			// sequence. Legal end of block, not a failure.
			return nil
		}

		high, err := c.ReadByte()
		if err != nil {
			return ErrUnexpectedEOF
		}
		offset := int(low) | int(high)<<8

		matchLen, err := c.ReadInt(int(token & 0x0F))
		if err != nil {
			return ErrUnexpectedEOF
		}
		matchLen += 4

		if err := copyMatch(out, offset, matchLen); err != nil {
			return err
		}
	}
}

// decodeLiteralRun reads the (possibly extended) literal length starting
// from the token's high nibble, reserves room for it, and copies that
// many bytes from c into out.
func decodeLiteralRun(c *cursor.Cursor, out outbuf.Buf, nibble int) error {
	literalLen, err := c.ReadInt(nibble)
	if err != nil {
		return ErrUnexpectedEOF
	}

	if literalLen == 0 {
		return nil
	}

	if !out.Reserve(literalLen) {
		return ErrMemoryLimitExceeded
	}

	literal, err := c.Take(literalLen)
	if err != nil {
		return ErrUnexpectedEOF
	}

	if !out.Extend(literal) {
		return ErrMemoryLimitExceeded
	}
	return nil
}

// copyMatch executes one back-reference copy of matchLen bytes from
// offset bytes before the current output end.
//
// offset==1 is the "run of last byte" case and is filled via ResizeFill
// rather than a per-byte loop, since a naive copy degenerates there.
// offset>1 must copy one byte at a time, reading each source byte at the
// moment of that iteration: when matchLen > offset the source window
// sweeps across bytes this very copy just wrote, which is exactly how LZ4
// encodes runs shorter than the window they repeat.
func copyMatch(out outbuf.Buf, offset, matchLen int) error {
	switch {
	case offset == 0:
		return ErrZeroMatchOffset
	case offset == 1:
		last := out.Bytes()
		if len(last) == 0 {
			return ErrInvalidInput
		}
		fill := last[len(last)-1]
		if !out.ResizeFill(out.Len()+matchLen, fill) {
			return ErrMemoryLimitExceeded
		}
		return nil
	default:
		if offset > out.Len() {
			return ErrInvalidInput
		}
		if !out.Reserve(matchLen) {
			return ErrMemoryLimitExceeded
		}
		start := out.Len() - offset
		for i := 0; i < matchLen; i++ {
			b := out.Bytes()[start+i]
			if !out.Push(b) {
				return ErrMemoryLimitExceeded
			}
		}
		return nil
	}
}
