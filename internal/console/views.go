package console

import (
	"github.com/preston-bernstein/football-leagues/internal/app/leagues"
	"github.com/preston-bernstein/football-leagues/internal/i18n"
	"github.com/preston-bernstein/football-leagues/internal/report"
)

// countTeams prints the number of clubs. A missing cache only gets the not-found notice.
func (m *Menu) countTeams(c leagues.Cached) {
	switch c.State {
	case leagues.CacheOK:
		m.say(i18n.TeamCount, c.Doc.TeamCount())
	case leagues.CacheMissing:
		m.say(i18n.CacheNotFound, m.svc.CachePath())
	default:
		m.say(i18n.UnexpectedShape)
	}
}

func (m *Menu) listTeams(c leagues.Cached) {
	switch c.State {
	case leagues.CacheOK:
		if err := report.BuildTable(c.Doc).Render(m.out); err != nil {
			m.say(i18n.BadlyRead)
		}
	case leagues.CacheMissing:
		m.say(i18n.CacheNotFound, m.svc.CachePath())
		m.say(i18n.BadlyRead)
	default:
		m.say(i18n.BadlyRead)
	}
}

// exportReport writes the report file; without a usable cache it reports the cache as not found.
func (m *Menu) exportReport(c leagues.Cached) {
	if c.State == leagues.CacheMissing {
		m.say(i18n.CacheNotFound, m.svc.CachePath())
	}
	if c.State != leagues.CacheOK {
		m.say(i18n.CacheNotFound, m.svc.CachePath())
		return
	}
	path, err := m.svc.Export(c.Doc)
	if err != nil {
		m.say(i18n.ReportFailed, report.FileName(c.Doc), err)
		return
	}
	m.say(i18n.ReportSaved, path)
}
