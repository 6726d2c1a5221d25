// Package calendar implements the game clock: a single authoritative
// TimeValue advanced by game logic, a registry of recurring periods,
// and synchronous notification when calendar time crosses a period's
// next firing threshold.
//
// A Calendar is process-wide state in the same sense the host engine's
// global clock is: one handle, created at startup, mutated only from
// the turn-processing loop. It is not goroutine-safe; callers that
// need cross-goroutine access own the synchronization.
//
// Period bookkeeping keeps a stable cadence: when a period elapses,
// its anchor moves forward by exactly one duration, not to the current
// time, so a long advance yields one firing per elapsed cycle, each
// tagged with the instant the threshold was crossed. Discontinuous
// jumps (SetYMD, SetTime) are the one exception — see the jump policy
// on those methods.
package calendar

import (
	"errors"
	"fmt"

	"github.com/diegesisandmimesis/calendar/pkg/period"
	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

var (
	// ErrInvalidAdvance reports an Advance of zero or negative hours.
	ErrInvalidAdvance = errors.New("advance must be a positive number of hours")

	// ErrDuplicateID reports a Register of an id that is already
	// registered.
	ErrDuplicateID = errors.New("period id already registered")

	// ErrNotFound reports an Unregister of an id that is not
	// registered.
	ErrNotFound = errors.New("period id not registered")
)

// Sink receives period notifications. Implementations are called
// synchronously from Advance, once per elapsed cycle, and must not
// call back into the Calendar.
type Sink interface {
	Notify(periodID string, firedAt timeval.TimeValue)
}

// Firing records one elapsed period cycle: which period, and the
// instant its threshold was crossed (not the time the clock ended up
// at).
type Firing struct {
	PeriodID string            `json:"period_id"`
	At       timeval.TimeValue `json:"-"`
	AtHours  int64             `json:"at_hours"`
}

// Registration is a snapshot of one registered period and its firing
// anchor, as returned by Periods.
type Registration struct {
	Period    period.Period     `json:"period"`
	LastFired timeval.TimeValue `json:"last_fired_hours"`
}

type registration struct {
	p         period.Period
	lastFired timeval.TimeValue
}

// Calendar owns the clock and the period registry. The zero value is
// not usable; construct with New.
type Calendar struct {
	now   timeval.TimeValue
	order []string
	regs  map[string]*registration
	sink  Sink
}

// Option configures a Calendar at construction.
type Option func(*Calendar)

// WithSink attaches the notification target. Without it the calendar
// runs the identical state machine and simply skips delivery.
func WithSink(s Sink) Option { return func(c *Calendar) { c.sink = s } }

// WithStart sets the initial clock value. The default is the epoch.
func WithStart(t timeval.TimeValue) Option { return func(c *Calendar) { c.now = t } }

// New constructs a Calendar at the epoch (year 1, January 1, hour 0)
// unless WithStart overrides it.
func New(opts ...Option) *Calendar {
	c := &Calendar{regs: make(map[string]*registration)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetSink replaces the notification target. A nil sink detaches it.
func (c *Calendar) SetSink(s Sink) { c.sink = s }

// Now returns the current clock value. TimeValues are immutable, so
// the snapshot cannot be used to mutate calendar state.
func (c *Calendar) Now() timeval.TimeValue { return c.now }

// DateDiff returns the signed hour difference between the current
// time and other. Positive means the clock is later than other.
func (c *Calendar) DateDiff(other timeval.TimeValue) int64 { return c.now.Diff(other) }

// Register adds a period to the registry. Its firing anchor starts at
// the current time, so the first firing is one full duration from now.
// Returns ErrDuplicateID — and leaves the existing registration
// untouched — if the id is already present.
func (c *Calendar) Register(p period.Period) error {
	return c.RegisterAt(p, c.now)
}

// RegisterAt adds a period with an explicit firing anchor. This is the
// restore path for persistence layers reloading saved bookkeeping; new
// registrations should use Register.
func (c *Calendar) RegisterAt(p period.Period, lastFired timeval.TimeValue) error {
	if p.ID == "" || p.Hours <= 0 {
		return fmt.Errorf("%w: %+v", period.ErrInvalidPeriod, p)
	}
	if _, ok := c.regs[p.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateID, p.ID)
	}
	c.regs[p.ID] = &registration{p: p, lastFired: lastFired}
	c.order = append(c.order, p.ID)
	return nil
}

// Unregister removes a period. Returns ErrNotFound for unknown ids;
// callers that want idempotent removal can errors.Is for it.
func (c *Calendar) Unregister(id string) error {
	if _, ok := c.regs[id]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	delete(c.regs, id)
	for i, pid := range c.order {
		if pid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

// Periods returns the registry in registration order, with each
// period's current firing anchor.
func (c *Calendar) Periods() []Registration {
	out := make([]Registration, 0, len(c.order))
	for _, id := range c.order {
		r := c.regs[id]
		out = append(out, Registration{Period: r.p, LastFired: r.lastFired})
	}
	return out
}

// Lookup returns the registration for id, if present.
func (c *Calendar) Lookup(id string) (Registration, bool) {
	r, ok := c.regs[id]
	if !ok {
		return Registration{}, false
	}
	return Registration{Period: r.p, LastFired: r.lastFired}, true
}

// Advance moves the clock forward by hours (> 0) and evaluates every
// registered period. A period whose accumulated time reaches its
// duration fires once per elapsed cycle: the anchor moves forward by
// exactly one duration each cycle, and the firing is tagged with the
// anchor's new position. Firings are delivered to the sink (when one
// is attached) and returned in registration order, chronological
// within each period.
//
// On error nothing moves: the clock and all bookkeeping are unchanged.
func (c *Calendar) Advance(hours int64) ([]Firing, error) {
	if hours <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidAdvance, hours)
	}
	next, err := c.now.Add(hours)
	if err != nil {
		return nil, err
	}
	c.now = next

	var fired []Firing
	for _, id := range c.order {
		r := c.regs[id]
		for c.now.Diff(r.lastFired) >= r.p.Hours {
			at, err := r.lastFired.Add(r.p.Hours)
			if err != nil {
				break
			}
			r.lastFired = at
			f := Firing{PeriodID: id, At: at, AtHours: at.Hours()}
			fired = append(fired, f)
			if c.sink != nil {
				c.sink.Notify(id, at)
			}
		}
	}
	return fired, nil
}

// SetYMD jumps the clock to the given date, preserving the current
// hour of day. Returns timeval.ErrInvalidDate (or ErrOverflow) without
// touching any state when the date is out of range.
//
// Jump policy: this is a discontinuity, not an advance. Period
// bookkeeping is not replayed across the gap; instead each period
// whose threshold the jump crossed is resynced so it fires exactly
// once — tagged at the jump target — on the next Advance. A backward
// jump resets the period's cadence to the new time.
func (c *Calendar) SetYMD(year, month, day int) error {
	t, err := timeval.FromYMD(year, month, day, c.now.Hour())
	if err != nil {
		return err
	}
	c.jumpTo(t)
	return nil
}

// SetTime jumps the hour of day without changing the date. Returns
// timeval.ErrInvalidDate for hours outside [0, 24). The jump policy of
// SetYMD applies.
func (c *Calendar) SetTime(hour int) error {
	if hour < 0 || hour >= timeval.HoursPerDay {
		return fmt.Errorf("%w: hour %d", timeval.ErrInvalidDate, hour)
	}
	dayStart := c.now.Hours() - int64(c.now.Hour())
	c.jumpTo(timeval.FromHours(dayStart + int64(hour)))
	return nil
}

// jumpTo moves the clock discontinuously and resyncs every period
// anchor per the jump policy: at most one pending cycle after a
// forward jump, cadence reset after a backward one.
func (c *Calendar) jumpTo(t timeval.TimeValue) {
	c.now = t
	for _, id := range c.order {
		r := c.regs[id]
		switch {
		case t.Before(r.lastFired):
			r.lastFired = t
		case t.Diff(r.lastFired) >= r.p.Hours:
			r.lastFired = timeval.FromHours(t.Hours() - r.p.Hours)
		}
	}
}
