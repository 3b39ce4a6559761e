package m68kasm

import "encoding/binary"

// cursor is a read position over the bytes of one instruction. The first
// error recorded on it is sticky; reads past the end return 0 so that the
// caller can finish consuming the form it has committed to.
type cursor struct {
	src    []byte
	pos    int
	err    ErrorKind
	errPos int
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src}
}

// fail records kind unless an earlier error is already pending.
func (c *cursor) fail(kind ErrorKind) {
	if c.err == noError {
		c.err = kind
		c.errPos = c.pos
	}
}

// hasWords reports whether n more words are available. It never records
// an error.
func (c *cursor) hasWords(n int) bool {
	return c.pos+2*n <= len(c.src)
}

// peekWord returns the word offset words past the read position without
// consuming it.
func (c *cursor) peekWord(offset int) uint16 {
	i := c.pos + 2*offset
	if i < 0 || i+2 > len(c.src) {
		c.fail(OutOfSpace)
		return 0
	}
	return binary.BigEndian.Uint16(c.src[i:])
}

// skipWords advances over n words that were already peeked.
func (c *cursor) skipWords(n int) {
	if !c.hasWords(n) {
		c.fail(OutOfSpace)
	}
	c.pos += 2 * n
}

func (c *cursor) pull16() uint16 {
	w := c.peekWord(0)
	c.pos += 2
	return w
}

func (c *cursor) pull32() uint32 {
	hi := c.pull16()
	lo := c.pull16()
	return uint32(hi)<<16 | uint32(lo)
}
