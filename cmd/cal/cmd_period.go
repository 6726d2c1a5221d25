package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/diegesisandmimesis/calendar/pkg/period"
)

func (a *app) cmdRegister(args []string) int {
	flags := flag.NewFlagSet("register", flag.ContinueOnError)
	name := flags.String("name", "", "display name")
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "usage: cal register <id> <hours> [--name N] [--json]")
		return 1
	}
	hours, err := strconv.ParseInt(flags.Arg(1), 10, 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: register: hours must be an integer, got %q\n", flags.Arg(1))
		return 1
	}

	p, err := period.New(flags.Arg(0), *name, hours)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cal: register: %v\n", err)
		return 1
	}
	if err := a.cal.Register(p); err != nil {
		fmt.Fprintf(os.Stderr, "cal: register: %v\n", err)
		return 1
	}
	if err := a.store.InsertPeriod(p, a.cal.Now().Hours()); err != nil {
		fmt.Fprintf(os.Stderr, "cal: register: persist: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(p)
	} else {
		fmt.Printf("registered %q every %d hour(s); first firing at %d hours\n",
			p.ID, p.Hours, a.cal.Now().Hours()+p.Hours)
	}
	return 0
}

func (a *app) cmdUnregister(args []string) int {
	flags := flag.NewFlagSet("unregister", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: cal unregister <id> [--json]")
		return 1
	}
	id := flags.Arg(0)

	if err := a.cal.Unregister(id); err != nil {
		fmt.Fprintf(os.Stderr, "cal: unregister: %v\n", err)
		return 1
	}
	if _, err := a.store.DeletePeriod(id); err != nil {
		fmt.Fprintf(os.Stderr, "cal: unregister: persist: %v\n", err)
		return 1
	}

	if *jsonOut {
		printJSON(map[string]interface{}{"unregistered": id})
	} else {
		fmt.Printf("unregistered %q\n", id)
	}
	return 0
}

func (a *app) cmdPeriods(args []string) int {
	flags := flag.NewFlagSet("periods", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	regs := a.cal.Periods()
	if *jsonOut {
		printJSON(regs)
		return 0
	}
	if len(regs) == 0 {
		fmt.Println("no periods registered")
		return 0
	}
	for _, r := range regs {
		label := r.Period.ID
		if r.Period.Name != "" {
			label = fmt.Sprintf("%s (%s)", r.Period.ID, r.Period.Name)
		}
		fmt.Printf("%-24s every %4d h   last fired %s\n", label, r.Period.Hours, r.LastFired)
	}
	return 0
}
