package utils

import "time"

// Helper interface to make mocking time.Now() and time.AfterFunc() easier
type TimeProvider interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine once d has elapsed.
	// The timer cannot be stopped.
	AfterFunc(d time.Duration, f func())
}

func NewTimeProvider() TimeProvider {
	return &timeProvider{}
}

type timeProvider struct{}

func (*timeProvider) Now() time.Time {
	return time.Now()
}

func (*timeProvider) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
