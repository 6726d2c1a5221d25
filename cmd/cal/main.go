// Command cal is the game-calendar CLI — an in-game clock with
// recurring periods and firing notifications, persisted in SQLite.
package main

import (
	"fmt"
	"os"
)

const version = "1.0.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "--help", "-h", "help":
		printUsage()
		return
	case "--version", "-v", "version":
		fmt.Println("cal", version)
		return
	}

	a, err := newApp()
	if err != nil {
		fatal("%v", err)
	}
	defer a.Close()

	switch os.Args[1] {
	// Setup
	case "init":
		os.Exit(a.cmdInit(os.Args[2:]))
	case "load":
		os.Exit(a.cmdLoad(os.Args[2:]))

	// Clock
	case "status":
		os.Exit(a.cmdStatus(os.Args[2:]))
	case "set-date":
		os.Exit(a.cmdSetDate(os.Args[2:]))
	case "set-time":
		os.Exit(a.cmdSetTime(os.Args[2:]))
	case "advance":
		os.Exit(a.cmdAdvance(os.Args[2:]))
	case "diff":
		os.Exit(a.cmdDiff(os.Args[2:]))

	// Periods
	case "register":
		os.Exit(a.cmdRegister(os.Args[2:]))
	case "unregister":
		os.Exit(a.cmdUnregister(os.Args[2:]))
	case "periods":
		os.Exit(a.cmdPeriods(os.Args[2:]))
	case "log":
		os.Exit(a.cmdLog(os.Args[2:]))

	default:
		fmt.Fprintf(os.Stderr, "cal: unknown command %q\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "Run 'cal --help' for usage.")
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Print(`cal — in-game calendar with recurring periods

An hour-granular game clock (proleptic Gregorian, epoch at year 1)
with author-declared recurring periods. Advancing the clock past a
period's threshold fires a notification: into the persistent log, and
into an optional Lua hook script.

Usage:
  cal <command> [flags]

Setup:
  init [--reset]            Initialize the calendar database
  load <file.yaml>          Register periods from a declaration file

Clock:
  status                    Show clock, periods, next firings
  set-date <y> <m> <d>      Jump to a date (hour of day preserved)
  set-time <hour>           Set the hour of day (0-23)
  advance <hours>           Advance the clock, firing elapsed periods
  diff <y> <m> <d> [hour]   Signed hours between now and a date

Periods:
  register <id> <hours> [--name N]   Register a recurring period
  unregister <id>                    Remove a registered period
  periods                            List registered periods
  log [--since N] [--limit N]        Show the firing log

Environment:
  CALENDAR_DB       SQLite database path (default: .calendar/calendar.db)
  CALENDAR_HOOKS    Lua hook script; must define on_period(ev)
  CALENDAR_PERIODS  YAML declaration file loaded by init

All commands support --json for machine-readable output.

Exit codes:
  0  success
  1  error
`)
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "cal: "+format+"\n", args...)
	os.Exit(1)
}
