package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestPumpEventsStopsWhenDone(t *testing.T) {
	poll := func() tcell.Event {
		return tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone)
	}
	events := make(chan tcell.Event) // nobody reads
	done := make(chan struct{})
	exited := make(chan struct{})

	go func() {
		pumpEvents(poll, events, done)
		close(exited)
	}()
	close(done)

	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("event pump still blocked after done was closed")
	}
}

func TestPumpEventsStopsOnNil(t *testing.T) {
	sent := 0
	poll := func() tcell.Event {
		if sent == 2 {
			return nil
		}
		sent++
		return tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
	}
	events := make(chan tcell.Event, 4)

	pumpEvents(poll, events, make(chan struct{}))

	assert.Len(t, events, 2)
}
