package pages

import (
	"errors"
	"testing"
	"time"
)

// fakeClock advances its notion of now by the slept duration, letting the
// polling loop run without real delays.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestWaitUntil_ImmediateSuccess(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	ok := waitUntil(clk, 10*time.Second, time.Second, func() (bool, error) {
		calls++
		return true, nil
	})

	if !ok {
		t.Error("expected success")
	}
	if calls != 1 {
		t.Errorf("expected a single evaluation, got %d", calls)
	}
	if len(clk.slept) != 0 {
		t.Errorf("expected no sleeps, got %v", clk.slept)
	}
}

func TestWaitUntil_SuccessAfterPolls(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	ok := waitUntil(clk, 10*time.Second, time.Second, func() (bool, error) {
		calls++
		return calls >= 4, nil
	})

	if !ok {
		t.Error("expected success")
	}
	if calls != 4 {
		t.Errorf("expected 4 evaluations, got %d", calls)
	}
	if len(clk.slept) != 3 {
		t.Errorf("expected 3 sleeps, got %d", len(clk.slept))
	}
	for _, d := range clk.slept {
		if d != time.Second {
			t.Errorf("expected 1s intervals, got %v", d)
		}
	}
}

func TestWaitUntil_Timeout(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	ok := waitUntil(clk, 5*time.Second, time.Second, func() (bool, error) {
		calls++
		return false, nil
	})

	if ok {
		t.Error("expected timeout")
	}
	// Initial evaluation plus one per elapsed interval.
	if calls != 6 {
		t.Errorf("expected 6 evaluations, got %d", calls)
	}
}

func TestWaitUntil_ErrorsTreatedAsNotYet(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	ok := waitUntil(clk, 10*time.Second, time.Second, func() (bool, error) {
		calls++
		if calls < 3 {
			return true, errors.New("execution context destroyed")
		}
		return true, nil
	})

	if !ok {
		t.Error("expected success once the condition stops erroring")
	}
	if calls != 3 {
		t.Errorf("expected 3 evaluations, got %d", calls)
	}
}

func TestWaitUntil_ZeroTimeoutEvaluatesOnce(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	ok := waitUntil(clk, 0, time.Second, func() (bool, error) {
		calls++
		return false, nil
	})

	if ok {
		t.Error("expected failure")
	}
	if calls != 1 {
		t.Errorf("expected a single evaluation, got %d", calls)
	}
}

func TestWaitCountAbove_ReturnsUpdatedValue(t *testing.T) {
	clk := newFakeClock()
	// The badge keeps showing its old value for a few reads after the click.
	reads := []int{2, 2, 2, 3}
	i := 0

	got := waitCountAbove(clk, 10*time.Second, time.Second, 2, func() (int, error) {
		n := reads[i]
		if i < len(reads)-1 {
			i++
		}
		return n, nil
	})

	if got != 3 {
		t.Errorf("expected the updated value 3, got %d", got)
	}
	if len(clk.slept) != 3 {
		t.Errorf("expected 3 sleeps before the update landed, got %d", len(clk.slept))
	}
}

func TestWaitCountAbove_ReadErrorsTreatedAsNotYet(t *testing.T) {
	clk := newFakeClock()
	calls := 0

	got := waitCountAbove(clk, 10*time.Second, time.Second, 0, func() (int, error) {
		calls++
		if calls < 3 {
			return 0, errors.New("element detached")
		}
		return 1, nil
	})

	if got != 1 {
		t.Errorf("expected 1 once reads recover, got %d", got)
	}
}

func TestWaitCountAbove_TimeoutKeepsLastRead(t *testing.T) {
	clk := newFakeClock()

	got := waitCountAbove(clk, 3*time.Second, time.Second, 5, func() (int, error) {
		return 5, nil
	})

	if got != 5 {
		t.Errorf("expected the unchanged value 5 after timeout, got %d", got)
	}
}

func TestSettleForm_BannerIsTerminal(t *testing.T) {
	clk := newFakeClock()
	polls := 0

	ok := settleForm(clk, 20*time.Second, time.Second, func() bool {
		polls++
		return polls >= 3
	}, func() bool { return false })

	if ok {
		t.Error("expected failure once the banner is shown")
	}
	// Two polls before the banner, the terminal one, and the final check.
	if polls != 4 {
		t.Errorf("expected 4 banner checks, got %d", polls)
	}
	if len(clk.slept) != 2 {
		t.Errorf("a visible banner should stop the poll early, got %d sleeps", len(clk.slept))
	}
}

func TestSettleForm_RedirectSucceeds(t *testing.T) {
	clk := newFakeClock()
	left := false

	ok := settleForm(clk, 20*time.Second, time.Second,
		func() bool { return false },
		func() bool {
			if left {
				return true
			}
			left = true
			return false
		})

	if !ok {
		t.Error("expected success once the browser leaves the page")
	}
}

func TestSettleForm_TimeoutFails(t *testing.T) {
	clk := newFakeClock()

	ok := settleForm(clk, 3*time.Second, time.Second,
		func() bool { return false },
		func() bool { return false })

	if ok {
		t.Error("expected failure when the form never settles")
	}
}
