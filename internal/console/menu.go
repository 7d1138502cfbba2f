package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/preston-bernstein/football-leagues/internal/app/leagues"
	"github.com/preston-bernstein/football-leagues/internal/catalog"
	"github.com/preston-bernstein/football-leagues/internal/domain/league"
	"github.com/preston-bernstein/football-leagues/internal/i18n"
	"github.com/preston-bernstein/football-leagues/internal/logging"
	"github.com/preston-bernstein/football-leagues/internal/metrics"
)

// LeagueService is what the menu needs from the application layer.
type LeagueService interface {
	Catalog() ([]league.CatalogEntry, error)
	Acquire(ctx context.Context, entry league.CatalogEntry) (league.Document, error)
	Cached() leagues.Cached
	Export(doc league.Document) (string, error)
	CachePath() string
}

// Config wires the menu's input, output and ambient helpers.
type Config struct {
	In      io.Reader
	Out     io.Writer
	Text    *i18n.Printer
	Metrics *metrics.Recorder
	Logger  *slog.Logger
}

// Menu is the two-level interactive loop: top level (create league, exit) and the
// per-league session submenu.
type Menu struct {
	svc     LeagueService
	prompt  *Prompter
	out     io.Writer
	text    *i18n.Printer
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewMenu constructs a Menu over svc.
func NewMenu(svc LeagueService, cfg Config) *Menu {
	text := cfg.Text
	if text == nil {
		text = i18n.New("")
	}
	return &Menu{
		svc:     svc,
		prompt:  NewPrompter(cfg.In, cfg.Out),
		out:     cfg.Out,
		text:    text,
		metrics: cfg.Metrics,
		logger:  cfg.Logger,
	}
}

// Run shows the top-level menu until the user exits or input ends. It returns ctx's error
// when cancelled and any console read failure; exiting or reaching end of input returns nil.
func (m *Menu) Run(ctx context.Context) error {
	defer m.prompt.Close()
	for {
		m.say(i18n.MenuTitle)
		m.say(i18n.MenuCreateLeague)
		m.say(i18n.MenuExit)

		option, ok, err := m.readOption(ctx)
		if err != nil {
			return m.finish(err)
		}
		if !ok {
			continue
		}

		switch option {
		case topCreateLeague:
			m.metrics.RecordMenuAction(actionCreateLeague)
			if err := m.session(ctx); err != nil {
				return m.finish(err)
			}
		case topExit:
			m.metrics.RecordMenuAction(actionExit)
			m.say(i18n.Goodbye)
			return nil
		default:
			m.metrics.RecordMenuAction(actionInvalid)
			m.say(i18n.InvalidOption)
		}
	}
}

// session acquires a league and then serves the submenu until the user leaves it.
func (m *Menu) session(ctx context.Context) error {
	logger := logging.FromContext(ctx, m.logger)
	if logger != nil {
		logger = logger.With(slog.String(logging.FieldSessionID, uuid.NewString()))
		ctx = logging.WithContext(ctx, logger)
	}

	acquired, err := m.acquire(ctx)
	if err != nil || !acquired {
		return err
	}

	for {
		m.say(i18n.MenuTitle)
		m.say(i18n.MenuCountTeams)
		m.say(i18n.MenuListTeams)
		m.say(i18n.MenuExportReport)
		m.say(i18n.MenuLeaveSession)

		option, ok, err := m.readOption(ctx)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		switch option {
		case sessionCountTeams:
			m.metrics.RecordMenuAction(actionCountTeams)
			m.countTeams(m.svc.Cached())
		case sessionListTeams:
			m.metrics.RecordMenuAction(actionListTeams)
			m.listTeams(m.svc.Cached())
		case sessionExportReport:
			m.metrics.RecordMenuAction(actionExportReport)
			m.exportReport(m.svc.Cached())
		case sessionLeave:
			m.metrics.RecordMenuAction(actionLeave)
			logging.Debug(logger, "session closed")
			return nil
		default:
			m.metrics.RecordMenuAction(actionInvalid)
			m.say(i18n.InvalidIndex)
		}
	}
}

// acquire lists the catalog and asks for a league until one is fetched and cached.
// It reports false without error when the session cannot start.
func (m *Menu) acquire(ctx context.Context) (bool, error) {
	for {
		entries, err := m.svc.Catalog()
		if err != nil {
			logging.Warn(logging.FromContext(ctx, m.logger), "catalog unavailable", "error", err)
			m.say(i18n.CatalogError, err)
			return false, nil
		}
		for i, entry := range entries {
			m.say(i18n.CatalogLine, i+1, entry.Name)
		}

		selection, err := m.prompt.ReadInt(ctx, m.text.Sprintf(i18n.PromptLeague))
		if errors.Is(err, ErrNotNumber) {
			m.say(i18n.InvalidNumber)
			continue
		}
		if err != nil {
			return false, err
		}

		entry, ok := catalog.Select(entries, selection)
		if !ok {
			m.say(i18n.OutOfRange)
			continue
		}
		m.say(i18n.LeagueSelected, entry.Name)

		if _, err := m.svc.Acquire(ctx, entry); err != nil {
			if ctx.Err() != nil {
				return false, ctx.Err()
			}
			if errors.Is(err, leagues.ErrSaveFailed) {
				m.say(i18n.SaveFailed, err)
			} else {
				m.say(i18n.FetchFailed, err)
			}
			return false, nil
		}
		m.say(i18n.DataLoaded, m.svc.CachePath())
		return true, nil
	}
}

// readOption reads a menu choice. A non-numeric answer is reported and yields ok=false.
func (m *Menu) readOption(ctx context.Context) (int, bool, error) {
	option, err := m.prompt.ReadInt(ctx, m.text.Sprintf(i18n.PromptOption))
	if errors.Is(err, ErrNotNumber) {
		m.say(i18n.InvalidNumber)
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return option, true, nil
}

// finish maps end of input to a normal exit.
func (m *Menu) finish(err error) error {
	if errors.Is(err, io.EOF) {
		fmt.Fprintln(m.out)
		m.say(i18n.Goodbye)
		return nil
	}
	return err
}

func (m *Menu) say(key string, args ...any) {
	m.text.Println(m.out, key, args...)
}
