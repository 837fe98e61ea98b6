package main

import (
	"testing"
	"time"
)

func TestResetDebounce_DiscardsStaleTick(t *testing.T) {
	timer := time.NewTimer(time.Millisecond)
	time.Sleep(20 * time.Millisecond) // timer fired; tick sits unread in the channel

	resetDebounce(timer, 100*time.Millisecond)

	select {
	case <-timer.C:
		t.Fatal("stale tick delivered before the debounce window elapsed")
	case <-time.After(20 * time.Millisecond):
	}

	select {
	case <-timer.C:
	case <-time.After(time.Second):
		t.Fatal("debounce tick never delivered after reset")
	}
}

func TestStopDebounce_UnfiredTimer(t *testing.T) {
	timer := time.NewTimer(time.Hour)
	stopDebounce(timer)

	select {
	case <-timer.C:
		t.Fatal("stopped timer should not tick")
	case <-time.After(10 * time.Millisecond):
	}
}
