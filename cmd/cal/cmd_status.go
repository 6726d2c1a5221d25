package main

import (
	"flag"
	"fmt"

	"github.com/diegesisandmimesis/calendar/pkg/timeval"
)

// statusPeriod is the JSON shape of one registered period in status
// output.
type statusPeriod struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	Hours       int64  `json:"hours"`
	LastFired   int64  `json:"last_fired_hours"`
	NextFireIn  int64  `json:"next_fire_in_hours"`
	NextFiredAt string `json:"next_fire_at"`
}

func (a *app) cmdStatus(args []string) int {
	flags := flag.NewFlagSet("status", flag.ContinueOnError)
	jsonOut := flags.Bool("json", false, "JSON output")
	if err := flags.Parse(args); err != nil {
		return 1
	}

	now := a.cal.Now()
	regs := a.cal.Periods()

	var periods []statusPeriod
	for _, r := range regs {
		next := timeval.FromHours(r.LastFired.Hours() + r.Period.Hours)
		periods = append(periods, statusPeriod{
			ID:          r.Period.ID,
			Name:        r.Period.Name,
			Hours:       r.Period.Hours,
			LastFired:   r.LastFired.Hours(),
			NextFireIn:  next.Diff(now),
			NextFiredAt: next.String(),
		})
	}

	if *jsonOut {
		printJSON(map[string]interface{}{
			"now":       now.String(),
			"now_hours": now.Hours(),
			"periods":   periods,
			"firings":   a.store.CountFirings(),
			"hooks":     a.cfg.Hooks,
		})
		return 0
	}

	fmt.Printf("clock: %s (%d hours since epoch)\n", now, now.Hours())
	if len(periods) == 0 {
		fmt.Println("no periods registered")
	} else {
		fmt.Printf("periods (%d):\n", len(periods))
		for _, p := range periods {
			label := p.ID
			if p.Name != "" {
				label = fmt.Sprintf("%s (%s)", p.ID, p.Name)
			}
			fmt.Printf("  %-20s every %4d h   next at %s (in %d h)\n",
				label, p.Hours, p.NextFiredAt, p.NextFireIn)
		}
	}
	fmt.Printf("firings logged: %d\n", a.store.CountFirings())
	if a.cfg.Hooks != "" {
		fmt.Printf("hooks: %s\n", a.cfg.Hooks)
	}
	return 0
}
