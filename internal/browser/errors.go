package browser

import (
	"fmt"
	"time"
)

// DriverInitError means the requested browser/driver pairing could not be
// brought up. It is fatal for the test run.
type DriverInitError struct {
	Browser string
	Err     error
}

func (e *DriverInitError) Error() string {
	return fmt.Sprintf("failed to initialize %s driver: %v", e.Browser, e.Err)
}

func (e *DriverInitError) Unwrap() error { return e.Err }

// NavigationError means a page load failed or returned a non-success status.
type NavigationError struct {
	URL    string
	Status int
	Err    error
}

func (e *NavigationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("navigation to %s failed: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("navigation to %s returned status %d", e.URL, e.Status)
}

func (e *NavigationError) Unwrap() error { return e.Err }

// ElementNotFoundError means an element never became visible within the wait
// timeout.
type ElementNotFoundError struct {
	Locator string
	Timeout time.Duration
}

func (e *ElementNotFoundError) Error() string {
	return fmt.Sprintf("element %q not found within %s", e.Locator, e.Timeout)
}

// ElementNotInteractableError means an element was located but never became
// clickable or editable within the wait timeout.
type ElementNotInteractableError struct {
	Locator string
	Timeout time.Duration
	Err     error
}

func (e *ElementNotInteractableError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("element %q not interactable: %v", e.Locator, e.Err)
	}
	return fmt.Sprintf("element %q not interactable within %s", e.Locator, e.Timeout)
}

func (e *ElementNotInteractableError) Unwrap() error { return e.Err }
