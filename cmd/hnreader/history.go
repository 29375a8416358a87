package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/tesso57/hnreader/internal/application/usecase"
	"github.com/tesso57/hnreader/internal/infrastructure/config"
	"github.com/tesso57/hnreader/internal/infrastructure/history"
)

// HistoryCmd prints the stories opened most recently.
type HistoryCmd struct {
	Limit int `help:"Max stories to show." short:"n" default:"20"`
}

// Run lists visits, newest first.
func (c *HistoryCmd) Run(g *Globals) error {
	store, err := config.Load(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	visits := history.NewManager(store.Settings.HistoryFile)
	defer func() { _ = visits.Close() }()

	svc := usecase.NewReadingService(nil, nil, visits, store.Settings.API.Timeout(), nil)
	recent, err := svc.RecentVisits(c.Limit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(recent) == 0 {
		fmt.Fprintln(g.Stdout, "No stories read yet")
		return nil
	}

	faint := color.New(color.Faint).SprintFunc()
	for _, v := range recent {
		fmt.Fprintf(g.Stdout, "%s %s %s\n", faint(fmt.Sprintf("%8d", v.ID)), v.Title, faint(v.VisitedAt.Local().Format("02 Jan 06 15:04")))
		if v.URL != "" {
			fmt.Fprintf(g.Stdout, "         %s\n", faint(v.URL))
		}
	}
	return nil
}
