package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdSetDate(args []string) int {
	flags := flag.NewFlagSet("set-date", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "usage: cal set-date <year> <month> <day> [--json]")
		return 1
	}

	year, err := parseIntArg("year", flags.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-date: %v\n", err)
		return 1
	}
	month, err := parseIntArg("month", flags.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-date: %v\n", err)
		return 1
	}
	day, err := parseIntArg("day", flags.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-date: %v\n", err)
		return 1
	}

	if err := a.cal.SetYMD(year, month, day); err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-date: %v\n", err)
		return 1
	}
	if err := a.save(); err != nil {
		fmt.Fprintf(os.Stderr, "cal: set-date: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"now": a.cal.Now().String(), "now_hours": a.cal.Now().Hours()})
	} else {
		fmt.Printf("clock set to %s\n", a.cal.Now())
	}
	return 0
}
