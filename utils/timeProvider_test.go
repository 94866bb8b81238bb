package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_Now__should_return_current_time(t *testing.T) {
	before := time.Now()
	now := NewTimeProvider().Now()

	assert.False(t, now.Before(before))
}

func Test_AfterFunc__should_call_f_once_delay_elapsed(t *testing.T) {
	fired := make(chan struct{})

	NewTimeProvider().AfterFunc(time.Millisecond, func() {
		close(fired)
	})

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
}
