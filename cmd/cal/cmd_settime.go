package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdSetTime(args []string) int {
	flags := flag.NewFlagSet("set-time", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cal set-time <hour> [--json]")
		return 1
	}

	hour, err := parseIntArg("hour", flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-time: %v\n", err)
		return 1
	}
	if err := a.cal.SetTime(hour); err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-time: %v\n", err)
		return 1
	}
	if err := a.save(); err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-time: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"now": a.cal.Now().String(), "now_hours": a.cal.Now().Hours()})
	} else {
		fmt.Printf("clock set to %s\n", a.cal.Now())
	}
	return 0
}
