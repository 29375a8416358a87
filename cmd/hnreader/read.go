package main

import (
	"fmt"
	"net/http"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/tesso57/hnreader/internal/application/settings"
	"github.com/tesso57/hnreader/internal/application/usecase"
	"github.com/tesso57/hnreader/internal/domain/news"
	"github.com/tesso57/hnreader/internal/infrastructure/config"
	"github.com/tesso57/hnreader/internal/infrastructure/history"
	"github.com/tesso57/hnreader/internal/infrastructure/hnapi"
	"github.com/tesso57/hnreader/internal/infrastructure/hnrss"
	"github.com/tesso57/hnreader/internal/infrastructure/logging"
	"github.com/tesso57/hnreader/internal/presentation/dom"
	"github.com/tesso57/hnreader/internal/presentation/markup"
	"github.com/tesso57/hnreader/internal/presentation/router"
	"github.com/tesso57/hnreader/internal/presentation/tui"
	"github.com/tesso57/hnreader/internal/presentation/view"
)

const rootID = "root"

// ReadCmd starts the interactive reader.
type ReadCmd struct {
	Location string `help:"Start location, e.g. #/page/2 or #/show/<id>." short:"l"`
}

// Run loads the config, wires the screens and runs the program.
func (c *ReadCmd) Run(g *Globals) error {
	store, err := config.Load(g.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings

	logger, closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("setup logging: %w", err)
	}
	defer func() { _ = closer.Close() }()

	visits := history.NewManager(cfg.HistoryFile)
	defer func() { _ = visits.Close() }()

	model, err := newModel(cfg, newReadingService(cfg, visits, logger), c.Location, logger)
	if err != nil {
		return err
	}

	logger.Info().Str("config", store.Path()).Str("source", cfg.API.Source).Msg("hnreader starting")
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}

// newReadingService picks the feed source. Details always come from the JSON API.
func newReadingService(cfg settings.Settings, visits usecase.VisitRepository, logger zerolog.Logger) usecase.ReadingService {
	fetcher := hnapi.NewFetcher(&http.Client{Timeout: cfg.API.Timeout()}, logger.With().Str("component", "hnapi").Logger())
	client := hnapi.NewClient(fetcher, cfg.API.FeedURL, cfg.API.ItemURL)

	var feed usecase.FeedSource = client
	if cfg.API.Source == settings.SourceRSS {
		feed = hnrss.NewSource(cfg.API.RSSURL, cfg.API.Timeout())
	}
	return usecase.NewReadingService(feed, client, visits, cfg.API.Timeout(), nil)
}

// newModel builds the document, both screens and the router around svc.
func newModel(cfg settings.Settings, svc usecase.ReadingService, location string, logger zerolog.Logger) (*tui.Model, error) {
	doc := dom.NewDocument(rootID)
	root, _ := doc.ElementByID(rootID)
	store := news.NewStore()

	opts := view.Options{
		PageSize:      cfg.Reader.PageSize,
		CommentIndent: cfg.Reader.CommentIndent,
		Async:         cfg.API.Async(),
		Styles:        view.NewStyles(cfg.Theme),
		Content:       markup.NewRenderer(cfg.Reader.ContentStyle),
		Logger:        logger,
	}
	feed, err := view.NewFeedView(doc, rootID, store, svc, opts)
	if err != nil {
		return nil, err
	}
	detail, err := view.NewDetailView(doc, rootID, store, svc, svc, opts)
	if err != nil {
		return nil, err
	}

	r := router.New(logger)
	r.SetDefaultRoute(feed)
	r.AddRoute(view.DetailRoute, detail)
	r.AddRoute(view.FeedRoute, feed)

	return tui.NewModel(tui.Options{
		Settings: cfg,
		Router:   r,
		Store:    store,
		Root:     root,
		Views:    []view.View{feed, detail},
		Detail:   detail,
		Location: location,
		Logger:   logger,
	}), nil
}
