// Package sink provides calendar.Sink implementations: a Recorder
// that appends firings to the persistent log, a Script sink that runs
// author-written Lua hooks, and a Multi fan-out combining them.
//
// The calendar itself is sink-agnostic: it runs the identical state
// machine with any of these attached, or none.
package sink

import (
	"github.com/diegesisandmimesis/calendar/pkg/calendar"
	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

// Multi fans one notification out to several sinks in order. Nil
// entries are skipped, so optional sinks can be composed without
// branching at the call site.
type Multi []calendar.Sink

// NewMulti builds a Multi from the non-nil sinks given.
func NewMulti(sinks ...calendar.Sink) Multi {
	var m Multi
	for _, s := range sinks {
		if s != nil {
			m = append(m, s)
		}
	}
	return m
}

// Notify delivers to every sink in order.
func (m Multi) Notify(periodID string, firedAt timeval.TimeValue) {
	for _, s := range m {
		if s != nil {
			s.Notify(periodID, firedAt)
		}
	}
}

// Func adapts a plain function to the Sink interface.
type Func func(periodID string, firedAt timeval.TimeValue)

// Notify calls the function.
func (f Func) Notify(periodID string, firedAt timeval.TimeValue) { f(periodID, firedAt) }
