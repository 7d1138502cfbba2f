package cli

import (
	"github.com/preston-bernstein/football-leagues/internal/config"
	"github.com/preston-bernstein/football-leagues/internal/i18n"
	"github.com/preston-bernstein/football-leagues/internal/report"
	"github.com/preston-bernstein/football-leagues/internal/snapshots"
)

type storageComponents struct {
	store    *snapshots.FSStore
	exporter *report.Exporter
}

// buildStorage wires the single-slot cache and the report exporter; both replace files atomically.
func buildStorage(cfg config.Config, text *i18n.Printer) storageComponents {
	return storageComponents{
		store:    snapshots.NewFSStore(cfg.CachePath),
		exporter: report.NewExporter(cfg.ExportDir, snapshots.NewWriter(), reportLabels(text)),
	}
}

func reportLabels(text *i18n.Printer) report.Labels {
	return report.Labels{
		League:  text.Sprintf(i18n.LabelLeague),
		Team:    text.Sprintf(i18n.LabelTeam),
		Code:    text.Sprintf(i18n.LabelCode),
		Country: text.Sprintf(i18n.LabelCountry),
	}
}
