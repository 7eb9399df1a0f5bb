package framework

import (
	"fmt"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	// InitialBufferSize is the capacity of a newly created Buffer.
	InitialBufferSize = 256

	// BufferGrowthIncrement is the extra capacity added beyond what is strictly needed
	// whenever a Buffer has to grow.
	BufferGrowthIncrement = 256

	// MaxFormattedLength is the longest text that AppendFormat may render.
	MaxFormattedLength = 8192

	nullText = "NULL"
)

// Buffer is a growable text buffer used for building failure messages and reports.
//
// The buffer always keeps one spare byte past the end of its content, so its length is
// strictly less than its capacity. It is not safe for concurrent use.
type Buffer struct {
	content []byte
	length  int
}

// NewBuffer creates an empty Buffer with capacity InitialBufferSize.
func NewBuffer() *Buffer {
	return &Buffer{content: make([]byte, InitialBufferSize)}
}

func (b *Buffer) init() {
	if b.content == nil {
		b.content = make([]byte, InitialBufferSize)
	}
}

// String returns the current content.
func (b *Buffer) String() string {
	if b == nil {
		return ""
	}
	return string(b.content[:b.length])
}

// Len returns the number of bytes of content.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return b.length
}

// Cap returns the current capacity, which is always greater than Len.
func (b *Buffer) Cap() int {
	if b == nil || b.content == nil {
		return InitialBufferSize
	}
	return len(b.content)
}

// Reset discards the content but keeps the allocated capacity.
func (b *Buffer) Reset() {
	b.init()
	b.length = 0
	b.content[0] = 0
}

// Append adds text to the end of the buffer.
func (b *Buffer) Append(text string) {
	b.init()
	b.ensureRoom(len(text))
	copy(b.content[b.length:], text)
	b.length += len(text)
	b.content[b.length] = 0
}

// AppendOptional is like Append, but appends the literal text "NULL" if the value is
// undefined.
func (b *Buffer) AppendOptional(text ldvalue.OptionalString) {
	b.Append(text.OrElse(nullText))
}

// AppendChar adds a single byte to the end of the buffer.
func (b *Buffer) AppendChar(ch byte) {
	b.Append(string([]byte{ch}))
}

// AppendFormat renders the format string with fmt.Sprintf and appends the result. The
// rendered text must not be longer than MaxFormattedLength.
func (b *Buffer) AppendFormat(format string, args ...interface{}) {
	s := fmt.Sprintf(format, args...)
	if len(s) > MaxFormattedLength {
		panic(misuse("formatted text of %d bytes exceeds the limit of %d", len(s), MaxFormattedLength))
	}
	b.Append(s)
}

// Insert adds text at the given byte position, moving the rest of the content to the
// right. The position is clamped to the range [0, Len()].
func (b *Buffer) Insert(text string, pos int) {
	b.init()
	if pos < 0 {
		pos = 0
	}
	if pos > b.length {
		pos = b.length
	}
	b.ensureRoom(len(text))
	copy(b.content[pos+len(text):], b.content[pos:b.length+1])
	copy(b.content[pos:], text)
	b.length += len(text)
}

func (b *Buffer) ensureRoom(extra int) {
	if b.length+extra+1 >= len(b.content) {
		b.resize(b.length + extra + 1 + BufferGrowthIncrement)
	}
}

func (b *Buffer) resize(newSize int) {
	newContent := make([]byte, newSize)
	copy(newContent, b.content[:b.length+1])
	b.content = newContent
}
