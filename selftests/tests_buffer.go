package selftests

import (
	"strings"

	"github.com/launchdarkly/unit-test-harness/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func DoBufferTests(s *framework.FilteredSuite) {
	s.AddTest("new buffer", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		t.AssertIntEquals(0, b.Len())
		t.AssertIntEquals(framework.InitialBufferSize, b.Cap())
		t.AssertStrEquals("", b.String())
	})

	s.AddTest("append", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		b.Append("hello")
		t.AssertIntEquals(5, b.Len())
		t.AssertStrEquals("hello", b.String())
		b.Append(" world")
		t.AssertIntEquals(11, b.Len())
		t.AssertStrEquals("hello world", b.String())
	})

	s.AddTest("append NULL", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		b.AppendOptional(ldvalue.OptionalString{})
		t.AssertIntEquals(4, b.Len())
		t.AssertStrEquals("NULL", b.String())
	})

	s.AddTest("append char", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		b.AppendChar('a')
		b.AppendChar('b')
		b.AppendChar('c')
		b.AppendChar('d')
		t.AssertIntEquals(4, b.Len())
		t.AssertStrEquals("abcd", b.String())
	})

	s.AddTest("append format", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		b.AppendFormat("%s:%d", "line", 12)
		t.AssertStrEquals("line:12", b.String())
	})

	s.AddTest("inserts", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		b.Append("world")
		b.Insert("hello ", 0)
		t.AssertStrEquals("hello world", b.String())
		b.Insert("big ", 6)
		t.AssertStrEquals("hello big world", b.String())
		b.Insert("!", 1000)
		t.AssertStrEquals("hello big world!", b.String())
		t.AssertIntEquals(16, b.Len())
	})

	s.AddTest("resizes", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		for i := 0; i < 50; i++ {
			b.Append("aa")
		}
		t.AssertIntEquals(100, b.Len())
		t.AssertIntEquals(framework.InitialBufferSize, b.Cap())

		b.Append(strings.Repeat("b", 200))
		t.AssertIntEquals(300, b.Len())
		t.AssertIntEquals(300+1+framework.BufferGrowthIncrement, b.Cap())
		assert.Equal(t, strings.Repeat("a", 100)+strings.Repeat("b", 200), b.String())
	})

	s.AddTest("length is always less than capacity", func(t *framework.TestCase) {
		b := framework.NewBuffer()
		for i := 0; i < 2000; i++ {
			b.AppendChar('x')
			if b.Len() >= b.Cap() {
				t.Fail("length reached capacity")
			}
		}
		t.AssertIntEquals(2000, b.Len())
	})
}
