package i18n

import (
	"bytes"
	"testing"

	"golang.org/x/text/language"
)

func TestNewDefaultsToSpanish(t *testing.T) {
	for _, lang := range []string{"", "es", "not a tag"} {
		p := New(lang)
		if p.Tag() != language.Spanish {
			t.Fatalf("lang %q: expected spanish, got %s", lang, p.Tag())
		}
		if got := p.Sprintf(InvalidNumber); got != "Ingrese un número válido." {
			t.Fatalf("lang %q: unexpected message %q", lang, got)
		}
	}
}

func TestNewResolvesRegionalVariants(t *testing.T) {
	if got := New("es-AR").Tag(); got != language.Spanish {
		t.Fatalf("expected es-AR to resolve to spanish, got %s", got)
	}
	if got := New("en-GB").Tag(); got != language.English {
		t.Fatalf("expected en-GB to resolve to english, got %s", got)
	}
}

func TestNewAcceptsPOSIXLocaleValues(t *testing.T) {
	cases := map[string]language.Tag{
		"en_US:en":    language.English,
		"en_GB.UTF-8": language.English,
		"es_ES.UTF-8": language.Spanish,
		"es_ES@euro":  language.Spanish,
		" en ":        language.English,
	}
	for lang, want := range cases {
		if got := New(lang).Tag(); got != want {
			t.Fatalf("lang %q: expected %s, got %s", lang, want, got)
		}
	}
}

func TestSprintfFormatsArguments(t *testing.T) {
	es := New("es")
	if got := es.Sprintf(TeamCount, 20); got != "\nNúmero de equipos: 20 Equipos." {
		t.Fatalf("unexpected spanish count %q", got)
	}
	en := New("en")
	if got := en.Sprintf(TeamCount, 20); got != "\nNumber of teams: 20 Teams." {
		t.Fatalf("unexpected english count %q", got)
	}
	if got := es.Sprintf(CacheNotFound, "data_base.json"); got != "El archivo 'data_base.json' no encontrado." {
		t.Fatalf("unexpected not found message %q", got)
	}
}

func TestEveryKeyHasSpanishText(t *testing.T) {
	keys := []string{
		MenuTitle, MenuCreateLeague, MenuExit, MenuCountTeams, MenuListTeams, MenuExportReport,
		MenuLeaveSession, PromptOption, InvalidNumber, InvalidOption, InvalidIndex, Goodbye,
		CatalogLine, PromptLeague, OutOfRange, LeagueSelected, DataLoaded, CatalogError,
		FetchFailed, SaveFailed, CacheNotFound, TeamCount, UnexpectedShape, BadlyRead,
		ReportSaved, ReportFailed, LabelLeague, LabelTeam, LabelCode, LabelCountry,
	}
	for _, key := range keys {
		if _, ok := spanish[key]; !ok {
			t.Fatalf("missing spanish text for %q", key)
		}
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	p := New("es")
	p.Println(&buf, LeagueSelected, "La Liga")
	p.Println(&buf, MenuExit)

	want := "\nLiga seleccionada: La Liga\n2. Salir\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}
}
