package sink

import (
	"fmt"

	"github.com/Shopify/go-lua"

	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

// hookName is the function an author's hook script must define.
const hookName = "on_period"

// Script runs an author-written Lua hook on every notification. The
// script is loaded once at construction and must define
//
//	function on_period(ev)
//
// where ev is a table with fields id, name (when a resolver is set),
// year, month, day, hour and total_hours. Hook errors never propagate
// into the calendar; they go to OnError.
type Script struct {
	l *lua.State

	// Labels resolves a period id to its display name for the ev
	// table. Nil omits the name field.
	Labels func(periodID string) string

	// OnError receives hook runtime errors. Nil discards them.
	OnError func(error)
}

// NewScript loads and runs the hook file, then verifies it defined
// on_period.
func NewScript(path string) (*Script, error) {
	l := lua.NewState()
	lua.OpenLibraries(l)

	if err := lua.LoadFile(l, path, ""); err != nil {
		return nil, fmt.Errorf("load hooks %s: %w", path, err)
	}
	if err := l.ProtectedCall(0, 0, 0); err != nil {
		return nil, fmt.Errorf("run hooks %s: %w", path, err)
	}

	l.Global(hookName)
	defined := l.TypeOf(-1) == lua.TypeFunction
	l.Pop(1)
	if !defined {
		return nil, fmt.Errorf("hooks %s: no %s function defined", path, hookName)
	}
	return &Script{l: l}, nil
}

// Notify implements calendar.Sink: it calls on_period with the event
// table.
func (s *Script) Notify(periodID string, firedAt timeval.TimeValue) {
	l := s.l
	l.Global(hookName)

	l.NewTable()
	l.PushString(periodID)
	l.SetField(-2, "id")
	if s.Labels != nil {
		l.PushString(s.Labels(periodID))
		l.SetField(-2, "name")
	}
	year, month, day, hour := firedAt.YMD()
	l.PushInteger(year)
	l.SetField(-2, "year")
	l.PushInteger(month)
	l.SetField(-2, "month")
	l.PushInteger(day)
	l.SetField(-2, "day")
	l.PushInteger(hour)
	l.SetField(-2, "hour")
	l.PushInteger(int(firedAt.Hours()))
	l.SetField(-2, "total_hours")

	if err := l.ProtectedCall(1, 0, 0); err != nil {
		// The error value stays on the stack; clear it so repeated
		// failures cannot grow the stack.
		l.SetTop(0)
		if s.OnError != nil {
			s.OnError(fmt.Errorf("%s: %w", hookName, err))
		}
	}
}
