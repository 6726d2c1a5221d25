package main

import (
	"flag"
	"fmt"
	"os"
)

func (a *app) cmdInit(args []string) int {
	flags := flag.NewFlagSet("init", flag.ContinueOnError)
	reset := flags.Bool("reset", false, "wipe all persisted state first")
	periodsFile := flags.String("periods", "", "YAML declaration file (overrides CALENDAR_PERIODS)")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	if *reset {
		if err := a.store.Reset(); err != nil {
			fmt.Fprintf(os.Stderr, "cal: init: reset: %v\n", err)
			return 1
		}
		if err := a.loadCalendar(); err != nil {
			fmt.Fprintf(os.Stderr, "cal: init: %v\n", err)
			return 1
		}
	}

	fmt.Printf("initialized calendar (db: %s)\n", a.cfg.DBPath)
	fmt.Printf("  clock at %s\n", a.cal.Now())

	declPath := *periodsFile
	if declPath == "" {
		declPath = a.cfg.Periods
	}
	if declPath != "" {
		added, skipped, err := a.registerDeclarations(declPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "cal: init: %v\n", err)
			return 1
		}
		fmt.Printf("  registered %d period(s) from %s", added, declPath)
		if skipped > 0 {
			fmt.Printf(" (%d already registered)", skipped)
		}
		fmt.Println()
	}
	if regs := a.cal.Periods(); len(regs) > 0 {
		fmt.Printf("  %d period(s) registered\n", len(regs))
	}

	fmt.Println()
	fmt.Println("next steps:")
	if len(a.cal.Periods()) == 0 {
		fmt.Println("  cal register <id> <hours>   # or: cal load periods.yaml")
	}
	fmt.Println("  cal advance <hours>")
	fmt.Println("  cal status")
	return 0
}
