// iface.go defines the Interface the concrete *Store satisfies, so the
// cmd layer and tests can inject a substitute.
package store

import "github.com/diegesisandmimesis/calendar/pkg/period"

// Interface is the full set of store operations.
type Interface interface {
	// Close closes the database connection.
	Close() error

	// --- Clock ---

	// LoadHours returns the persisted clock value (0 before first save).
	LoadHours() (int64, error)

	// SaveHours persists the clock value.
	SaveHours(h int64) error

	// --- Periods ---

	// InsertPeriod persists a new registration.
	InsertPeriod(p period.Period, lastFired int64) error

	// DeletePeriod removes a registration, reporting whether it existed.
	DeletePeriod(id string) (bool, error)

	// SetLastFired updates one period's firing anchor.
	SetLastFired(id string, lastFired int64) error

	// ListPeriods returns all registrations in registration order.
	ListPeriods() ([]PeriodRow, error)

	// SaveState persists clock and anchors in one transaction.
	SaveState(totalHours int64, regs []PeriodRow) error

	// Reset wipes all persisted state.
	Reset() error

	// --- Firing log ---

	// AppendFiring logs one delivered notification.
	AppendFiring(periodID string, atHours int64) (int64, error)

	// ListFirings returns logged notifications with row ID > sinceID.
	ListFirings(sinceID int64, limit int) ([]FiringRow, error)

	// CountFirings returns the total number of logged notifications.
	CountFirings() int64
}

// Compile-time check that *Store implements Interface.
var _ Interface = (*Store)(nil)
