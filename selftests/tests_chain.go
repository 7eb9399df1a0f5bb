package selftests

import (
	"strings"

	"github.com/launchdarkly/unit-test-harness/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"

	"github.com/stretchr/testify/assert"
)

func chainNames(s *framework.Suite) string {
	var names []string
	for _, c := range s.Chain() {
		names = append(names, c.Name())
	}
	return strings.Join(names, ",")
}

func namedSuite(name string) *framework.Suite {
	return framework.NewSuiteWithConfig(framework.SuiteConfig{Name: name})
}

func DoChainTests(s *framework.FilteredSuite) {
	s.AddTest("new suite", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		t.AssertIntEquals(0, inner.Count())
		t.AssertIntEquals(0, inner.FailCount())
		t.AssertIntEquals(1, len(inner.Chain()))
	})

	s.AddTest("add test", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		tc := framework.NewTestCase("MyTest", passing)
		inner.Add(tc)
		t.AssertIntEquals(1, inner.Count())
		t.AssertPtrEquals(tc, inner.Cases()[0])
		t.AssertStrEquals("MyTest", inner.Cases()[0].Name())
	})

	s.AddTest("capacity", func(t *framework.TestCase) {
		inner := framework.NewSuiteWithConfig(framework.SuiteConfig{MaxCases: ldvalue.NewOptionalInt(1)})
		inner.AddTest("a", passing)
		defer func() {
			_, isMisuse := recover().(*framework.MisuseError)
			t.Assert("adding beyond capacity should panic with MisuseError", isMisuse)
		}()
		inner.AddTest("b", passing)
	})

	s.AddTest("add suite", func(t *framework.TestCase) {
		a, b, c := namedSuite("a"), namedSuite("b"), namedSuite("c")
		a.AddSuite(b)
		a.AddSuite(c)
		t.AssertStrEquals("a,b,c", chainNames(a))
	})

	s.AddTest("add suite goes after last", func(t *framework.TestCase) {
		a, b, c := namedSuite("a"), namedSuite("b"), namedSuite("c")
		a.AddSuite(b)
		b.AddSuite(c)
		t.AssertStrEquals("a,b,c", chainNames(a))
	})

	s.AddTest("add suite from middle of chain", func(t *framework.TestCase) {
		a, b, c, d := namedSuite("a"), namedSuite("b"), namedSuite("c"), namedSuite("d")
		a.AddSuite(b)
		a.AddSuite(c)
		b.AddSuite(d)
		t.AssertStrEquals("a,b,c,d", chainNames(a))
		t.AssertStrEquals("b,c,d", chainNames(b))
	})

	s.AddTest("run again", func(t *framework.TestCase) {
		runs := 0
		inner := framework.NewSuite()
		inner.AddTest("a", func(tc *framework.TestCase) {
			runs++
			failing(tc)
		})
		inner.Run()
		inner.Run()
		t.AssertIntEquals(2, runs)
		t.AssertIntEquals(1, inner.FailCount())
	})

	s.AddTest("add suite detaches its successors", func(t *framework.TestCase) {
		a, b, c := namedSuite("a"), namedSuite("b"), namedSuite("c")
		b.AddSuite(c)
		a.AddSuite(b)
		t.AssertStrEquals("a,b", chainNames(a))
	})

	s.AddTest("run chain", func(t *framework.TestCase) {
		var order []string
		record := func(tc *framework.TestCase) { order = append(order, tc.ID().String()) }
		a, b := namedSuite("a"), namedSuite("b")
		a.AddTest("1", record)
		a.AddTest("2", failing)
		b.AddTest("1", failing)
		b.AddTest("2", record)
		a.AddSuite(b)
		a.Run()
		assert.Equal(t, []string{"a/1", "b/2"}, order)
		t.AssertIntEquals(1, a.FailCount())
		t.AssertIntEquals(1, b.FailCount())
		t.AssertIntEquals(2, a.TotalFailCount())
	})

	s.AddTest("delete", func(t *framework.TestCase) {
		a, b := namedSuite("a"), namedSuite("b")
		a.AddTest("1", passing)
		b.AddTest("1", passing)
		a.AddSuite(b)
		a.Delete()
		t.AssertIntEquals(0, a.Count())
		t.AssertIntEquals(1, b.Count())
	})
}
