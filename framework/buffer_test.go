package framework

import (
	"strings"
	"testing"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMisuse(t *testing.T, action func()) *MisuseError {
	var err *MisuseError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a panic")
			e, ok := r.(*MisuseError)
			require.True(t, ok, "expected *MisuseError, got %T: %v", r, r)
			err = e
		}()
		action()
	}()
	return err
}

func assertBufferInvariant(t *testing.T, b *Buffer) {
	assert.Less(t, b.Len(), b.Cap())
	assert.Equal(t, len(b.String()), b.Len())
}

func TestNewBufferIsEmpty(t *testing.T) {
	b := NewBuffer()
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, InitialBufferSize, b.Cap())
}

func TestZeroValueBufferIsUsable(t *testing.T) {
	var b Buffer
	b.Append("hello")
	assert.Equal(t, "hello", b.String())
	assertBufferInvariant(t, &b)
}

func TestNilBufferReadsAsEmpty(t *testing.T) {
	var b *Buffer
	assert.Equal(t, "", b.String())
	assert.Equal(t, 0, b.Len())
}

func TestAppendConcatenates(t *testing.T) {
	b := NewBuffer()
	var expected string
	for _, s := range []string{"hello", "", " ", "world", "\n", "!"} {
		b.Append(s)
		expected += s
		assert.Equal(t, expected, b.String())
		assertBufferInvariant(t, b)
	}
}

func TestAppendOptionalUsesNullForUndefined(t *testing.T) {
	b := NewBuffer()
	b.AppendOptional(ldvalue.NewOptionalString("a"))
	b.AppendOptional(ldvalue.OptionalString{})
	b.AppendOptional(ldvalue.NewOptionalString("b"))
	assert.Equal(t, "aNULLb", b.String())
}

func TestAppendChar(t *testing.T) {
	b := NewBuffer()
	for _, ch := range []byte("abc") {
		b.AppendChar(ch)
	}
	assert.Equal(t, "abc", b.String())
	assert.Equal(t, 3, b.Len())
}

func TestAppendGrowsByIncrement(t *testing.T) {
	b := NewBuffer()
	text := strings.Repeat("x", 300)
	b.Append(text)
	assert.Equal(t, text, b.String())
	assert.Equal(t, 300+1+BufferGrowthIncrement, b.Cap())
}

func TestAppendGrowsWhenExactlyFull(t *testing.T) {
	b := NewBuffer()
	b.Append(strings.Repeat("x", InitialBufferSize-1))
	assert.Equal(t, InitialBufferSize-1, b.Len())
	assert.Greater(t, b.Cap(), InitialBufferSize)
	assertBufferInvariant(t, b)
}

func TestAppendManyTimesKeepsContent(t *testing.T) {
	b := NewBuffer()
	var expected strings.Builder
	for i := 0; i < 1000; i++ {
		b.Append("abcdefg")
		expected.WriteString("abcdefg")
	}
	assert.Equal(t, expected.String(), b.String())
	assertBufferInvariant(t, b)
}

func TestAppendFormat(t *testing.T) {
	b := NewBuffer()
	b.Append("x=")
	b.AppendFormat("%d, y=%s", 3, "four")
	assert.Equal(t, "x=3, y=four", b.String())
}

func TestAppendFormatAtLimit(t *testing.T) {
	b := NewBuffer()
	b.AppendFormat("%s", strings.Repeat("y", MaxFormattedLength))
	assert.Equal(t, MaxFormattedLength, b.Len())
	assertBufferInvariant(t, b)
}

func TestAppendFormatOverLimitIsMisuse(t *testing.T) {
	b := NewBuffer()
	err := requireMisuse(t, func() {
		b.AppendFormat("%s", strings.Repeat("y", MaxFormattedLength+1))
	})
	assert.Contains(t, err.Error(), "exceeds the limit")
	assert.Equal(t, "", b.String())
}

func TestInsertAtStart(t *testing.T) {
	b := NewBuffer()
	b.Append("world")
	b.Insert("hello ", 0)
	assert.Equal(t, "hello world", b.String())
	assertBufferInvariant(t, b)
}

func TestInsertInMiddle(t *testing.T) {
	b := NewBuffer()
	b.Append("abef")
	b.Insert("cd", 2)
	assert.Equal(t, "abcdef", b.String())
	assert.Equal(t, 6, b.Len())
}

func TestInsertPositionIsClamped(t *testing.T) {
	b := NewBuffer()
	b.Append("abc")
	b.Insert("d", 100)
	assert.Equal(t, "abcd", b.String())
	b.Insert("_", -5)
	assert.Equal(t, "_abcd", b.String())
}

func TestInsertMatchesSliceConcatenation(t *testing.T) {
	content := "0123456789"
	for pos := -1; pos <= len(content)+1; pos++ {
		b := NewBuffer()
		b.Append(content)
		b.Insert("XY", pos)
		clamped := pos
		if clamped < 0 {
			clamped = 0
		}
		if clamped > len(content) {
			clamped = len(content)
		}
		assert.Equal(t, content[:clamped]+"XY"+content[clamped:], b.String(), "position %d", pos)
	}
}

func TestInsertGrows(t *testing.T) {
	b := NewBuffer()
	b.Append("end")
	long := strings.Repeat("z", 500)
	b.Insert(long, 0)
	assert.Equal(t, long+"end", b.String())
	assert.Equal(t, 3+500+1+BufferGrowthIncrement, b.Cap())
}

func TestResetKeepsCapacity(t *testing.T) {
	b := NewBuffer()
	b.Append(strings.Repeat("q", 1000))
	capacity := b.Cap()
	b.Reset()
	assert.Equal(t, "", b.String())
	assert.Equal(t, capacity, b.Cap())
	b.Append("again")
	assert.Equal(t, "again", b.String())
}
