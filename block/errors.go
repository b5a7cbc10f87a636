package block

import "errors"

// Sentinel errors returned by Decode. Callers should compare with
// errors.Is rather than switching on error strings.
var (
	// ErrUnexpectedEOF means the input ended before a required read could
	// complete: a missing literal byte, offset byte, or length-extension
	// byte.
	ErrUnexpectedEOF = errors.New("lz4 block: unexpected end of input")

	// ErrZeroMatchOffset means a match sequence declared offset 0, which
	// is never valid.
	ErrZeroMatchOffset = errors.New("lz4 block: zero match offset")

	// ErrMemoryLimitExceeded means the output Buf could not accept the
	// bytes a sequence needed to write.
	ErrMemoryLimitExceeded = errors.New("lz4 block: output buffer capacity exceeded")

	// ErrInvalidInput means the block declared a match offset reaching
	// further back than any byte written so far. This can only happen on
	// corrupt or adversarial input; the LZ4 format never produces it.
	ErrInvalidInput = errors.New("lz4 block: match offset exceeds output length")
)
