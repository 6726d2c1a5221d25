package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

func (a *app) cmdLog(args []string) int {
	flags := flag.NewFlagSet("log", flag.ContinueOnError)
	since := flags.Int64("since", 0, "only firings with row ID greater than this")
	limit := flags.Int("limit", 50, "maximum rows")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	firings, err := a.store.ListFirings(*since, *limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: log: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(firings)
		return 0
	}
	if len(firings) == 0 {
		fmt.Println("no firings logged")
		return 0
	}
	for _, f := range firings {
		fmt.Printf("[%d] %-20s at %s\n", f.ID, f.PeriodID, timeval.FromHours(f.AtHours))
	}
	return 0
}
