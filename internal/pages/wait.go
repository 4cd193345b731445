package pages

import "time"

// clock abstracts time for the polling loop so it can be tested with a fake.
type clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// waitUntil polls cond every interval until it reports true or the timeout
// elapses, and returns whether the condition was met. The condition is always
// evaluated at least once. Errors from cond count as "not yet": element
// queries routinely fail while a page is mid-navigation.
func waitUntil(c clock, timeout, interval time.Duration, cond func() (bool, error)) bool {
	deadline := c.Now().Add(timeout)
	for {
		ok, err := cond()
		if err == nil && ok {
			return true
		}
		if !c.Now().Before(deadline) {
			return false
		}
		c.Sleep(interval)
	}
}

// waitCountAbove re-reads a counter until it exceeds the prior value or the
// timeout elapses, and returns the last value successfully read. Storefront
// badges update asynchronously after a click, so a read that still shows the
// old value counts as "not yet".
func waitCountAbove(c clock, timeout, interval time.Duration, before int, read func() (int, error)) int {
	last := before
	waitUntil(c, timeout, interval, func() (bool, error) {
		n, err := read()
		if err != nil {
			return false, err
		}
		last = n
		return n > before, nil
	})
	return last
}

// settleForm polls until a form submission's outcome is known: an error
// banner appeared or the browser left the submitting page. A visible banner
// is terminal, so rejected submissions report failure without waiting out
// the timeout.
func settleForm(c clock, timeout, interval time.Duration, bannerVisible, leftPage func() bool) bool {
	settled := waitUntil(c, timeout, interval, func() (bool, error) {
		return bannerVisible() || leftPage(), nil
	})
	return settled && !bannerVisible()
}
