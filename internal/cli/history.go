package cli

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/studiowebux/lit/internal/types"
)

// HistoryOptions configures History
type HistoryOptions struct {
	Limit   int
	Profile string
	Format  string
	Query   string
	Clear   bool
	Stats   bool // per-profile summary instead of individual events
}

// History prints or clears the switch history
func (a *App) History(opts HistoryOptions) error {
	if a.HistoryDB == nil {
		return fmt.Errorf("history is disabled (history.enabled: false)")
	}

	if opts.Clear {
		count, err := a.HistoryDB.GetCount()
		if err != nil {
			return err
		}
		if err := a.HistoryDB.Clear(); err != nil {
			return err
		}
		fmt.Fprintf(a.Out, "History cleared (%d entries removed).\n", count)
		return nil
	}

	if opts.Format == "" {
		opts.Format = FormatText
	}
	if err := ValidateFormat(opts.Format); err != nil {
		return err
	}
	if err := validateQuery(opts.Format, opts.Query); err != nil {
		return err
	}

	if opts.Stats {
		return a.historyStats(opts)
	}

	list := a.HistoryDB.List
	if opts.Profile != "" {
		list = func(limit int) ([]types.SwitchEvent, error) {
			return a.HistoryDB.ListForProfile(opts.Profile, limit)
		}
	}

	events, err := list(opts.Limit)
	if err != nil {
		return err
	}

	if opts.Format != FormatText {
		return a.printData(events, opts.Format, opts.Query)
	}

	if len(events) == 0 {
		fmt.Fprintln(a.Out, "No history.")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tPROFILE\tIDENTITY\tSOURCE\tRESULT")
	for _, e := range events {
		result := "ok"
		if !e.Succeeded() {
			result = "failed: " + e.Error
		}
		fmt.Fprintf(w, "%s\t%s\t%s <%s>\t%s\t%s\n",
			e.Timestamp.Format(time.DateTime), e.ProfileName, e.UserName, e.UserEmail, e.Source, result)
	}
	return w.Flush()
}

func (a *App) historyStats(opts HistoryOptions) error {
	stats, err := a.HistoryDB.Stats()
	if err != nil {
		return err
	}

	if opts.Format != FormatText {
		return a.printData(stats, opts.Format, opts.Query)
	}

	if len(stats) == 0 {
		fmt.Fprintln(a.Out, "No history.")
		return nil
	}

	w := tabwriter.NewWriter(a.Out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tSWITCHES\tFAILURES\tLAST SWITCHED")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.ProfileName, s.Switches, s.Failures, s.LastSwitched.Format(time.DateTime))
	}
	return w.Flush()
}
