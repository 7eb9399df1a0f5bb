package selftests

import (
	"github.com/launchdarkly/unit-test-harness/framework"
)

type frameLog struct {
	calls []string
}

func (l *frameLog) hook(name string, fail bool) framework.TestFunction {
	return func(tc *framework.TestCase) {
		l.calls = append(l.calls, name+" "+tc.Name())
		if fail {
			tc.Fail(name + " failed")
		}
	}
}

func (l *frameLog) String() string {
	b := framework.NewBuffer()
	for i, c := range l.calls {
		if i > 0 {
			b.Append(", ")
		}
		b.Append(c)
	}
	return b.String()
}

func DoFrameTests(s *framework.FilteredSuite) {
	s.AddTest("default frame", func(t *framework.TestCase) {
		inner := framework.NewSuite()
		tc := inner.AddTest("a", passing)
		inner.Run()
		t.Assert("should have passed", tc.Status() == framework.Passed)
	})

	s.AddTest("setup and teardown order", func(t *framework.TestCase) {
		log := &frameLog{}
		inner := framework.NewSuiteWithFrame(framework.NewFrame(log.hook("setup", false), log.hook("teardown", false)), nil)
		inner.AddTest("a", log.hook("test", false))
		inner.AddTest("b", log.hook("test", false))
		inner.Run()
		t.AssertStrEquals("setup a, test a, teardown a, setup b, test b, teardown b", log.String())
		t.AssertIntEquals(0, inner.FailCount())
	})

	s.AddTest("failed setup skips test and teardown", func(t *framework.TestCase) {
		log := &frameLog{}
		inner := framework.NewSuiteWithFrame(framework.NewFrame(log.hook("setup", true), log.hook("teardown", false)), nil)
		tc := inner.AddTest("a", log.hook("test", false))
		inner.Run()
		t.AssertStrEquals("setup a", log.String())
		t.AssertStrEquals("setup failed", failureText(tc))
		t.AssertIntEquals(1, inner.FailCount())
	})

	s.AddTest("teardown runs after failed test", func(t *framework.TestCase) {
		log := &frameLog{}
		inner := framework.NewSuiteWithFrame(framework.NewFrame(log.hook("setup", false), log.hook("teardown", false)), nil)
		tc := inner.AddTest("a", log.hook("test", true))
		inner.Run()
		t.AssertStrEquals("setup a, test a, teardown a", log.String())
		t.Assert("should have failed", tc.Failed())
	})

	s.AddTest("failed teardown fails test", func(t *framework.TestCase) {
		log := &frameLog{}
		inner := framework.NewSuiteWithFrame(framework.NewFrame(nil, log.hook("teardown", true)), nil)
		tc := inner.AddTest("a", passing)
		inner.Run()
		t.AssertStrEquals("teardown failed", failureText(tc))
	})

	s.AddTest("context is shared with setup, test and teardown", func(t *framework.TestCase) {
		type counter struct{ setups, tests, teardowns int }
		frame := framework.NewFrame(
			func(tc *framework.TestCase) { tc.Context().(*counter).setups++ },
			func(tc *framework.TestCase) { tc.Context().(*counter).teardowns++ },
		)
		c := &counter{}
		inner := framework.NewSuiteWithFrame(frame, c)
		for _, name := range []string{"a", "b", "c"} {
			inner.AddTest(name, func(tc *framework.TestCase) { tc.Context().(*counter).tests++ })
		}
		inner.Run()
		t.AssertIntEquals(3, c.setups)
		t.AssertIntEquals(3, c.tests)
		t.AssertIntEquals(3, c.teardowns)
	})

	s.AddTest("context replaced by setup is passed on", func(t *framework.TestCase) {
		var seen []string
		frame := framework.NewFrame(
			func(tc *framework.TestCase) {
				if tc.Context() == nil {
					tc.SetContext("created once")
				}
			},
			nil,
		)
		inner := framework.NewSuiteWithFrame(frame, nil)
		for _, name := range []string{"a", "b"} {
			inner.AddTest(name, func(tc *framework.TestCase) { seen = append(seen, tc.Context().(string)) })
		}
		inner.Run()
		t.AssertIntEquals(2, len(seen))
		t.AssertStrEquals("created once", seen[0])
		t.AssertStrEquals("created once", seen[1])
	})
}
