package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/diegesisandmimesis/calendar/pkg/calendar"
	"github.com/diegesisandmimesis/calendar/pkg/config"
)

func (a *app) cmdLoad(args []string) int {
	flags := flag.NewFlagSet("load", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cal load <file.yaml> [--json]")
		return 1
	}

	added, skipped, err := a.registerDeclarations(flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: load: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"added": added, "skipped": skipped})
	} else {
		fmt.Printf("registered %d period(s)", added)
		if skipped > 0 {
			fmt.Printf(", skipped %d already-registered", skipped)
		}
		fmt.Println()
	}
	return 0
}

// registerDeclarations loads a YAML declaration file and registers
// every period in it, both in memory and in the store. Periods whose
// id is already registered are skipped, so declaration files stay
// idempotent across runs.
func (a *app) registerDeclarations(path string) (added, skipped int, err error) {
	periods, err := config.LoadDeclarations(path)
	if err != nil {
		return 0, 0, err
	}
	for _, p := range periods {
		if err := a.cal.Register(p); err != nil {
			if errors.Is(err, calendar.ErrDuplicateID) {
				skipped++
				continue
			}
			return added, skipped, err
		}
		if err := a.store.InsertPeriod(p, a.cal.Now().Hours()); err != nil {
			return added, skipped, fmt.Errorf("persist period %q: %w", p.ID, err)
		}
		added++
	}
	return added, skipped, nil
}
