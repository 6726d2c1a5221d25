// Package store persists calendar state in SQLite: the clock's hour
// count, each registered period with its firing anchor, and an
// append-only log of delivered notifications.
//
// The persisted shape is deliberately minimal — (total_hours,
// {period id: last_fired}) is everything the calendar needs to resume,
// and the firing log exists so game tooling can audit what fired when.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/diegesisandmimesis/calendar/pkg/period"

	_ "modernc.org/sqlite"
)

// Store manages all SQLite operations. WAL mode so a watch-style
// reader can observe while a game process writes.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database and initializes the
// schema.
func New(path string) (*Store, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(60000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(30 * time.Minute)

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS calendar (
		id          INTEGER PRIMARY KEY CHECK (id = 0),
		total_hours INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS periods (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL DEFAULT '',
		duration_hours INTEGER NOT NULL,
		last_fired     INTEGER NOT NULL,
		position       INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_periods_position ON periods(position);

	CREATE TABLE IF NOT EXISTS firings (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		period_id   TEXT NOT NULL,
		fired_at    INTEGER NOT NULL,
		recorded_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_firings_period ON firings(period_id, id);
	`
	_, err := s.db.Exec(schema)
	return err
}

// ---------------------------------------------------------------------------
// Clock
// ---------------------------------------------------------------------------

// LoadHours returns the persisted clock value, or 0 (the epoch) when
// no state has been saved yet.
func (s *Store) LoadHours() (int64, error) {
	var h int64
	err := s.db.QueryRow(`SELECT total_hours FROM calendar WHERE id = 0`).Scan(&h)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("load clock: %w", err)
	}
	return h, nil
}

// SaveHours persists the clock value.
func (s *Store) SaveHours(h int64) error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO calendar (id, total_hours) VALUES (0, ?)
			 ON CONFLICT(id) DO UPDATE SET total_hours = excluded.total_hours`, h)
		return err
	})
}

// ---------------------------------------------------------------------------
// Periods
// ---------------------------------------------------------------------------

// PeriodRow is one persisted registration: the period definition plus
// the hour count of its firing anchor.
type PeriodRow struct {
	Period    period.Period `json:"period"`
	LastFired int64         `json:"last_fired"`
}

// InsertPeriod persists a new registration at the end of the
// registration order. Fails on a duplicate id (the calendar layer
// reports that as ErrDuplicateID before the store is ever reached).
func (s *Store) InsertPeriod(p period.Period, lastFired int64) error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(
			`INSERT INTO periods (id, name, duration_hours, last_fired, position)
			 VALUES (?, ?, ?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM periods))`,
			p.ID, p.Name, p.Hours, lastFired)
		return err
	})
}

// DeletePeriod removes a registration. Returns whether a row existed.
func (s *Store) DeletePeriod(id string) (bool, error) {
	var affected int64
	err := retryOnContention(func() error {
		res, err := s.db.Exec(`DELETE FROM periods WHERE id = ?`, id)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	return affected > 0, err
}

// SetLastFired updates one period's firing anchor.
func (s *Store) SetLastFired(id string, lastFired int64) error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(`UPDATE periods SET last_fired = ? WHERE id = ?`, lastFired, id)
		return err
	})
}

// ListPeriods returns all registrations in registration order.
func (s *Store) ListPeriods() ([]PeriodRow, error) {
	rows, err := s.db.Query(
		`SELECT id, name, duration_hours, last_fired FROM periods ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []PeriodRow
	for rows.Next() {
		var r PeriodRow
		if err := rows.Scan(&r.Period.ID, &r.Period.Name, &r.Period.Hours, &r.LastFired); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// SaveState persists the clock and every firing anchor in a single
// transaction, so a crash between the two leaves no torn state.
// Registrations and removals are persisted by InsertPeriod and
// DeletePeriod at the time they happen; SaveState only refreshes
// anchors for rows that already exist.
func (s *Store) SaveState(totalHours int64, regs []PeriodRow) error {
	return retryOnContention(func() error {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("begin tx: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		if _, err := tx.Exec(
			`INSERT INTO calendar (id, total_hours) VALUES (0, ?)
			 ON CONFLICT(id) DO UPDATE SET total_hours = excluded.total_hours`, totalHours); err != nil {
			return err
		}
		for _, r := range regs {
			if _, err := tx.Exec(
				`UPDATE periods SET last_fired = ? WHERE id = ?`, r.LastFired, r.Period.ID); err != nil {
				return err
			}
		}
		return tx.Commit()
	})
}

// Reset wipes all persisted state: clock, registrations, firing log.
func (s *Store) Reset() error {
	return retryOnContention(func() error {
		_, err := s.db.Exec(`DELETE FROM calendar; DELETE FROM periods; DELETE FROM firings;`)
		return err
	})
}

// ---------------------------------------------------------------------------
// Firing log
// ---------------------------------------------------------------------------

// FiringRow is one logged notification.
type FiringRow struct {
	ID         int64     `json:"id"`
	PeriodID   string    `json:"period_id"`
	AtHours    int64     `json:"at_hours"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AppendFiring logs one delivered notification. Returns the row ID.
func (s *Store) AppendFiring(periodID string, atHours int64) (int64, error) {
	var lastID int64
	err := retryOnContention(func() error {
		res, err := s.db.Exec(
			`INSERT INTO firings (period_id, fired_at, recorded_at) VALUES (?, ?, ?)`,
			periodID, atHours, time.Now().UTC().Format(time.RFC3339Nano))
		if err != nil {
			return err
		}
		lastID, err = res.LastInsertId()
		return err
	})
	return lastID, err
}

// ListFirings returns logged notifications with row ID > sinceID,
// oldest first.
func (s *Store) ListFirings(sinceID int64, limit int) ([]FiringRow, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.Query(
		`SELECT id, period_id, fired_at, recorded_at FROM firings
		 WHERE id > ? ORDER BY id ASC LIMIT ?`, sinceID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []FiringRow
	for rows.Next() {
		var f FiringRow
		var recStr string
		if err := rows.Scan(&f.ID, &f.PeriodID, &f.AtHours, &recStr); err != nil {
			return nil, err
		}
		var parseErr error
		f.RecordedAt, parseErr = time.Parse(time.RFC3339Nano, recStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parse recorded_at for firing %d: %w", f.ID, parseErr)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// CountFirings returns the total number of logged notifications.
func (s *Store) CountFirings() int64 {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM firings`).Scan(&count); err != nil {
		return 0
	}
	return count
}
