// Package period defines the recurring-duration declarations the
// calendar schedules against.
//
// A Period is a pure definition: an author-assigned id, an optional
// display name, and a positive duration in game hours. The calendar
// owns all firing bookkeeping; a Period itself never changes after
// creation. Declarations typically arrive from an external authoring
// layer as (id, name?, hours) tuples — this package only validates
// the tuple, never the authoring syntax that produced it.
package period

import (
	"errors"
	"fmt"
)

// ErrInvalidPeriod reports a declaration with an empty id or a
// non-positive duration.
var ErrInvalidPeriod = errors.New("invalid period definition")

// Period is a named recurring duration. Immutable after New; equality
// is by ID.
type Period struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name,omitempty" yaml:"name,omitempty"`
	Hours int64  `json:"hours" yaml:"hours"`
}

// New validates and constructs a Period. The id must be non-empty and
// the duration strictly positive.
func New(id, name string, hours int64) (Period, error) {
	if id == "" {
		return Period{}, fmt.Errorf("%w: empty id", ErrInvalidPeriod)
	}
	if hours <= 0 {
		return Period{}, fmt.Errorf("%w: %q duration %d hours (must be > 0)", ErrInvalidPeriod, id, hours)
	}
	return Period{ID: id, Name: name, Hours: hours}, nil
}

// Label returns the display name, falling back to the id when no name
// was declared.
func (p Period) Label() string {
	if p.Name != "" {
		return p.Name
	}
	return p.ID
}

// Equal reports whether two periods are the same declaration. Identity
// is the id alone.
func (p Period) Equal(other Period) bool { return p.ID == other.ID }
