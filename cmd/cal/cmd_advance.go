package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
)

func (a *app) cmdAdvance(args []string) int {
	flags := flag.NewFlagSet("advance", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cal advance <hours> [--json]")
		return 1
	}
	hours, err := strconv.ParseInt(flags.Arg(0), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: advance: hours must be an integer, got %q\n", flags.Arg(0))
		return 1
	}

	fired, err := a.cal.Advance(hours)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: advance: %v\n", err)
		return 1
	}
	if err := a.save(); err != nil {
		fmt.Fprintf(os.Stderr, "cal: advance: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"now":       a.cal.Now().String(),
			"now_hours": a.cal.Now().Hours(),
			"fired":     fired,
		})
		return 0
	}

	fmt.Printf("advanced %d hour(s) to %s\n", hours, a.cal.Now())
	for _, f := range fired {
		label := f.PeriodID
		if reg, ok := a.cal.Lookup(f.PeriodID); ok {
			label = reg.Period.Label()
		}
		fmt.Printf("  fired %s at %s\n", label, f.At)
	}
	return 0
}
