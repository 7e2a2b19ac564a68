// Package speech defines the capture adapter contract between a speech
// backend and the rest of the application, plus a scripted backend for
// environments with no microphone.
//
// The contract is event-based: a session emits interim transcripts while the
// user speaks and exactly one final transcript when recognition settles. Only
// final transcripts are ever parsed into expenses; interim events exist for
// live display.
package speech

import (
	"context"
	"errors"
	"sync"
)

// ErrUnavailable is returned by Start when no recognition backend exists in
// this environment. Callers degrade gracefully: the rest of the application
// works without voice input.
var ErrUnavailable = errors.New("speech recognition is not available")

// EventKind discriminates session events.
type EventKind int

const (
	// EventInterim carries a provisional transcript that later events may
	// revise. For display only.
	EventInterim EventKind = iota
	// EventFinal carries the settled transcript. At most one per session.
	EventFinal
	// EventError reports a backend failure. The session is over.
	EventError
)

// Event is a single occurrence within a capture session.
type Event struct {
	Kind       EventKind
	Transcript string
	Err        error
}

// Recognizer is a speech capture backend. Start begins a single capture
// session and returns a channel that delivers the session's events; the
// channel is closed when the session ends, whether by a final transcript, an
// error, Stop, or context cancellation. A Recognizer runs at most one session
// at a time; Start during an active session is an error.
type Recognizer interface {
	Start(ctx context.Context) (<-chan Event, error)
	Stop()
}

// ScriptedRecognizer replays a fixed transcript sequence, standing in for a
// live microphone backend. All entries but the last are delivered as interim
// events; the last is the final transcript. Stopping mid-session discards
// everything not yet delivered, including the final transcript.
type ScriptedRecognizer struct {
	transcripts []string

	mu     sync.Mutex
	active bool
	cancel context.CancelFunc
}

// NewScriptedRecognizer creates a recognizer that replays the given
// transcripts, one session per Start.
func NewScriptedRecognizer(transcripts ...string) *ScriptedRecognizer {
	return &ScriptedRecognizer{transcripts: transcripts}
}

// Start begins a replay session.
func (r *ScriptedRecognizer) Start(ctx context.Context) (<-chan Event, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.active {
		return nil, errors.New("speech: session already active")
	}
	if len(r.transcripts) == 0 {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithCancel(ctx)
	r.active = true
	r.cancel = cancel

	events := make(chan Event)
	go r.replay(ctx, events)
	return events, nil
}

// Stop ends the active session. Undelivered events are discarded; the session
// produces no final transcript. Stop is safe to call with no session active.
func (r *ScriptedRecognizer) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
}

func (r *ScriptedRecognizer) replay(ctx context.Context, events chan<- Event) {
	defer func() {
		close(events)
		r.mu.Lock()
		r.active = false
		r.cancel = nil
		r.mu.Unlock()
	}()

	for i, transcript := range r.transcripts {
		event := Event{Kind: EventInterim, Transcript: transcript}
		if i == len(r.transcripts)-1 {
			event.Kind = EventFinal
		}
		select {
		case events <- event:
		case <-ctx.Done():
			return
		}
	}
}

// FinalTranscript drains a session and returns its final transcript. It
// returns false when the session ended without one, whether stopped, failed,
// or cancelled.
func FinalTranscript(events <-chan Event) (string, bool) {
	for event := range events {
		switch event.Kind {
		case EventFinal:
			return event.Transcript, true
		case EventError:
			return "", false
		}
	}
	return "", false
}
