package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/diegesisandmimesis/calendar/pkg/calendar"
	"github.com/diegesisandmimesis/calendar/pkg/config"
	"github.com/diegesisandmimesis/calendar/pkg/sink"
	"github.com/diegesisandmimesis/calendar/pkg/store"
	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

const defaultDB = ".calendar/calendar.db"

// app holds shared state for all CLI subcommands: the store, the
// calendar hydrated from it, and the environment configuration.
type app struct {
	cfg   config.Env
	store store.Interface
	cal   *calendar.Calendar
}

// newApp parses the environment, opens the database and hydrates the
// calendar from persisted state. Creates the .calendar/ directory when
// using the default DB path.
func newApp() (*app, error) {
	cfg, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	if cfg.DBPath == defaultDB {
		if err := os.MkdirAll(filepath.Dir(defaultDB), 0755); err != nil {
			return nil, fmt.Errorf("cannot create %s: %w", filepath.Dir(defaultDB), err)
		}
	}
	s, err := store.New(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", cfg.DBPath, err)
	}
	a := &app{cfg: cfg, store: s}
	if err := a.loadCalendar(); err != nil {
		s.Close()
		return nil, err
	}
	return a, nil
}

// Close releases the database connection.
func (a *app) Close() { a.store.Close() }

// loadCalendar rebuilds the in-memory Calendar from the store and
// wires the sinks: the firing-log recorder always, the Lua hook
// script when CALENDAR_HOOKS is set.
func (a *app) loadCalendar() error {
	hours, err := a.store.LoadHours()
	if err != nil {
		return err
	}
	cal := calendar.New(calendar.WithStart(timeval.FromHours(hours)))

	rows, err := a.store.ListPeriods()
	if err != nil {
		return fmt.Errorf("load periods: %w", err)
	}
	for _, r := range rows {
		if err := cal.RegisterAt(r.Period, timeval.FromHours(r.LastFired)); err != nil {
			return fmt.Errorf("restore period %q: %w", r.Period.ID, err)
		}
	}

	recorder := sink.NewRecorder(a.store)
	recorder.OnError = func(err error) {
		fmt.Fprintf(os.Stderr, "cal: firing log: %v\n", err)
	}
	sinks := []calendar.Sink{recorder}

	if a.cfg.Hooks != "" {
		script, err := sink.NewScript(a.cfg.Hooks)
		if err != nil {
			return err
		}
		script.Labels = func(id string) string {
			if reg, ok := cal.Lookup(id); ok {
				return reg.Period.Label()
			}
			return id
		}
		script.OnError = func(err error) {
			fmt.Fprintf(os.Stderr, "cal: hooks: %v\n", err)
		}
		sinks = append(sinks, script)
	}

	cal.SetSink(sink.NewMulti(sinks...))
	a.cal = cal
	return nil
}

// save persists the clock and every period's firing anchor in one
// transaction. Registrations themselves are persisted when they
// happen; save runs after every mutating command.
func (a *app) save() error {
	regs := a.cal.Periods()
	rows := make([]store.PeriodRow, 0, len(regs))
	for _, r := range regs {
		rows = append(rows, store.PeriodRow{Period: r.Period, LastFired: r.LastFired.Hours()})
	}
	if err := a.store.SaveState(a.cal.Now().Hours(), rows); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// parseIntArg parses a positional integer argument with a named error.
func parseIntArg(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return n, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}
