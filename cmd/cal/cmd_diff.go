package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

func (a *app) cmdDiff(args []string) int {
	flags := flag.NewFlagSet("diff", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 3 {
		fmt.Fprintln(os.Stderr, "usage: cal diff <year> <month> <day> [hour] [--json]")
		return 1
	}

	var vals [4]int
	names := []string{"year", "month", "day", "hour"}
	for i := 0; i < 3; i++ {
		v, err := parseIntArg(names[i], flags.Arg(i))
		if err != nil {
			fmt.Fprintf(os.Stderr, "cal: diff: %v\n", err)
			return 1
		}
		vals[i] = v
	}
	if flags.NArg() > 3 {
		v, err := parseIntArg("hour", flags.Arg(3))
		if err != nil {
			fmt.Fprintf(os.Stderr, "cal: diff: %v\n", err)
			return 1
		}
		vals[3] = v
	}

	other, err := timeval.FromYMD(vals[0], vals[1], vals[2], vals[3])
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: diff: %v\n", err)
		return 1
	}
	diff := a.cal.DateDiff(other)

	if *jsonOut {
		printJSON(map[string]interface{}{
			"now":   a.cal.Now().String(),
			"other": other.String(),
			"hours": diff,
		})
	} else {
		fmt.Printf("%d hour(s)\n", diff)
	}
	return 0
}
