// Package cursor provides a read-only, bounds-checked cursor over a byte
// slice. It is the single source of input-position truth for both the
// block and frame decoders; there is no rewind.
package cursor

import "errors"

// ErrUnexpectedEOF is returned whenever fewer bytes remain in the
// underlying slice than a read requested.
var ErrUnexpectedEOF = errors.New("cursor: unexpected end of input")

// Cursor walks forward over a borrowed byte slice.
type Cursor struct {
	buf []byte
	pos int
}

// New wraps buf in a Cursor starting at position 0.
func New(buf []byte) Cursor {
	return Cursor{buf: buf}
}

// Done reports whether every byte of the underlying slice has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.buf)
}

// ReadByte consumes and returns a single byte.
func (c *Cursor) ReadByte() (byte, error) {
	if c.pos >= len(c.buf) {
		return 0, ErrUnexpectedEOF
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// Take returns a borrowed slice of the next n bytes and advances past them.
func (c *Cursor) Take(n int) ([]byte, error) {
	if n < 0 || c.pos+n > len(c.buf) {
		return nil, ErrUnexpectedEOF
	}
	s := c.buf[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// Array4 reads the next 4 bytes into a fixed-size array, useful for
// little-endian u32 fields (magic, block header, block checksum).
func (c *Cursor) Array4() ([4]byte, error) {
	var out [4]byte
	s, err := c.Take(4)
	if err != nil {
		return out, err
	}
	copy(out[:], s)
	return out, nil
}

// Array8 reads the next 8 bytes into a fixed-size array, used for the
// little-endian u64 content-size field.
func (c *Cursor) Array8() ([8]byte, error) {
	var out [8]byte
	s, err := c.Take(8)
	if err != nil {
		return out, err
	}
	copy(out[:], s)
	return out, nil
}

// ReadInt parses the LZ4 "length extension" starting from the nibble value
// first. If first != 15 it is returned unchanged. Otherwise successive
// bytes are read and summed into the running total until a byte < 255 is
// read; that final byte is included in the sum. The extension never
// terminates on end-of-input: an EOF there is propagated as an error.
func (c *Cursor) ReadInt(first int) (int, error) {
	if first != 15 {
		return first, nil
	}

	total := first
	for {
		b, err := c.ReadByte()
		if err != nil {
			return 0, err
		}
		total += int(b)
		if b != 255 {
			return total, nil
		}
	}
}
