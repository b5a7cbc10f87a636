package block

import (
	"testing"

	"github.com/lz4kit/lz4kit/outbuf"
)

// FuzzDecode checks that Decode never panics on arbitrary input and never
// reports success while writing more bytes than the destination capacity
// allows.
func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x11, 'a', 0x01, 0x00})
	f.Add([]byte{0xF0, 0xFF})
	f.Add([]byte{0x30, 'x', 'y', 'z'})

	f.Fuzz(func(t *testing.T, data []byte) {
		out := outbuf.NewFixed(make([]byte, 256))
		err := Decode(data, out)
		if out.Len() > 256 {
			t.Fatalf("Decode() wrote %d bytes into a 256-byte buffer", out.Len())
		}
		_ = err
	})
}
