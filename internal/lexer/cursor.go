package lexer

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"typelint/internal/source"
)

// Cursor tracks a byte position inside a file.
type Cursor struct {
	File *source.File
	Off  uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f}
}

func (c *Cursor) limit() uint32 {
	return uint32(len(c.File.Content))
}

// EOF reports whether the cursor is past the end of the file.
func (c *Cursor) EOF() bool {
	return c.Off >= c.limit()
}

// Peek reads the current byte without advancing, 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// Peek2 reads the current and following byte.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if c.Off+1 >= c.limit() {
		return 0, 0, false
	}
	return c.File.Content[c.Off], c.File.Content[c.Off+1], true
}

// PeekRune decodes the rune at the cursor, (0, 0) at EOF.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return 0, 0
	}
	return utf8.DecodeRune(c.File.Content[c.Off:])
}

// Bump advances by one byte and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	return b
}

// BumpRune advances by one rune.
func (c *Cursor) BumpRune() {
	_, sz := c.PeekRune()
	c.Off += uint32(sz)
}

// Mark records the current offset for SpanFrom.
func (c *Cursor) Mark() uint32 {
	return c.Off
}

// SpanFrom builds a span from a mark to the current offset.
func (c *Cursor) SpanFrom(start uint32) source.Span {
	return source.Span{File: c.File.ID, Start: start, End: c.Off}
}

// Text returns the source slice between start and the current offset.
func (c *Cursor) Text(start uint32) string {
	return string(c.File.Content[start:c.Off])
}
