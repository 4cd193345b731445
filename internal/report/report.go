package report

import (
	"bufio"
	"encoding/json"
	"io"
	"strings"
	"time"
)

// Event is a single record from the test runner's -json stream.
type Event struct {
	Time    time.Time `json:"Time"`
	Action  string    `json:"Action"`
	Package string    `json:"Package"`
	Test    string    `json:"Test"`
	Elapsed float64   `json:"Elapsed"`
	Output  string    `json:"Output"`
}

// TestResult is the aggregated outcome of one top-level test function.
type TestResult struct {
	Name    string
	Outcome string // pass, fail or skip
	Elapsed time.Duration
	Output  []string
}

// SuiteResult groups the tests of one page suite.
type SuiteResult struct {
	Name    string
	Tests   []*TestResult
	Passed  int
	Failed  int
	Skipped int
}

// Duration sums the elapsed time of the suite's tests.
func (s *SuiteResult) Duration() time.Duration {
	var total time.Duration
	for _, t := range s.Tests {
		total += t.Elapsed
	}
	return total
}

// Summary is a whole run's outcome, grouped per suite.
type Summary struct {
	Started  time.Time
	Finished time.Time
	Suites   []*SuiteResult
	Passed   int
	Failed   int
	Skipped  int
}

// Total returns the number of tests that ran or were skipped.
func (s *Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Collector folds test runner events into per-test results. Subtest events
// are attributed to their top-level test.
type Collector struct {
	order    []string
	tests    map[string]*TestResult
	started  time.Time
	finished time.Time
}

func NewCollector() *Collector {
	return &Collector{tests: make(map[string]*TestResult)}
}

// Read consumes a -json event stream line by line. Lines that are not valid
// events (build output, panics) are ignored; they still reach the user via
// the runner's stderr passthrough.
func (c *Collector) Read(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		var ev Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			continue
		}
		c.Add(ev)
	}
	return scanner.Err()
}

// Add folds one event into the collector.
func (c *Collector) Add(ev Event) {
	if !ev.Time.IsZero() {
		if c.started.IsZero() || ev.Time.Before(c.started) {
			c.started = ev.Time
		}
		if ev.Time.After(c.finished) {
			c.finished = ev.Time
		}
	}

	if ev.Test == "" {
		return
	}
	name := topLevelName(ev.Test)
	result, ok := c.tests[name]
	if !ok {
		result = &TestResult{Name: name}
		c.tests[name] = result
		c.order = append(c.order, name)
	}

	switch ev.Action {
	case "output":
		line := strings.TrimRight(ev.Output, "\n")
		if line != "" {
			result.Output = append(result.Output, line)
		}
	case "pass", "fail", "skip":
		// Only the top-level test's own verdict counts; subtest verdicts
		// are already reflected in the parent's.
		if ev.Test == name {
			result.Outcome = ev.Action
			result.Elapsed = time.Duration(ev.Elapsed * float64(time.Second))
		}
	}
}

// Summary groups collected results into suites ordered by first appearance.
func (c *Collector) Summary() *Summary {
	summary := &Summary{Started: c.started, Finished: c.finished}
	suites := make(map[string]*SuiteResult)

	for _, name := range c.order {
		result := c.tests[name]
		if result.Outcome == "" {
			// A test that never reported a verdict (e.g. the run was
			// interrupted) counts as failed.
			result.Outcome = "fail"
		}

		suite, ok := suites[suiteName(name)]
		if !ok {
			suite = &SuiteResult{Name: suiteName(name)}
			suites[suiteName(name)] = suite
			summary.Suites = append(summary.Suites, suite)
		}
		suite.Tests = append(suite.Tests, result)

		switch result.Outcome {
		case "pass":
			suite.Passed++
			summary.Passed++
		case "skip":
			suite.Skipped++
			summary.Skipped++
		default:
			suite.Failed++
			summary.Failed++
		}
	}
	return summary
}

// topLevelName strips the subtest path from a test name.
func topLevelName(test string) string {
	if i := strings.Index(test, "/"); i >= 0 {
		return test[:i]
	}
	return test
}

// suiteName derives the suite from a test name: the segment between the
// Test prefix and the first underscore. TestLogin_ValidCredentials belongs
// to the Login suite.
func suiteName(test string) string {
	name := strings.TrimPrefix(test, "Test")
	if i := strings.Index(name, "_"); i >= 0 {
		name = name[:i]
	}
	if name == "" {
		return test
	}
	return name
}
