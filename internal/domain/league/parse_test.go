package league

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestUnmarshalParsesLeagueShape(t *testing.T) {
	doc, err := Unmarshal([]byte(`{
		"name": "Premier League 2023/24",
		"clubs": [
			{"name": "Arsenal", "code": "ARS", "country": "England"},
			{"name": "Brentford"}
		]
	}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Name.Or("") != "Premier League 2023/24" {
		t.Fatalf("unexpected league name %+v", doc.Name)
	}
	if doc.TeamCount() != 2 {
		t.Fatalf("expected 2 teams, got %d", doc.TeamCount())
	}
	if doc.Clubs[0].Code != Set("ARS") || doc.Clubs[0].Country != Set("England") {
		t.Fatalf("unexpected first club %+v", doc.Clubs[0])
	}
	if doc.Clubs[1].Code.Present || doc.Clubs[1].Country.Present {
		t.Fatalf("expected optional fields absent on second club, got %+v", doc.Clubs[1])
	}
}

func TestParseRejectsWrongShapes(t *testing.T) {
	cases := map[string]string{
		"array":           `[1, 2, 3]`,
		"missing clubs":   `{"name": "x"}`,
		"clubs object":    `{"clubs": {"a": 1}}`,
		"club not object": `{"clubs": ["x"]}`,
		"scalar":          `"text"`,
	}
	for name, input := range cases {
		if _, err := Unmarshal([]byte(input)); !errors.Is(err, ErrMalformedDocument) {
			t.Fatalf("%s: expected ErrMalformedDocument, got %v", name, err)
		}
	}
}

func TestUnmarshalRejectsInvalidJSON(t *testing.T) {
	_, err := Unmarshal([]byte(`{bad json`))
	if !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("expected ErrInvalidJSON, got %v", err)
	}
	if errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("invalid json should not be reported as malformed shape")
	}
}

func TestFieldHandlesNullAndNumbers(t *testing.T) {
	doc, err := Decode(strings.NewReader(`{"name": null, "clubs": [{"name": "X", "code": 7}]}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if doc.Name.Present {
		t.Fatalf("expected null name to be absent")
	}
	if doc.Clubs[0].Code != Set("7") {
		t.Fatalf("expected numeric code rendered as text, got %+v", doc.Clubs[0].Code)
	}
}

func TestMarshalRoundTripKeepsUnknownFields(t *testing.T) {
	input := `{"name": "Liga Española", "season": 2024, "clubs": [{"name": "Atlético", "code": "ATM", "stadium": "Metropolitano", "founded": 1903}]}`
	doc, err := Unmarshal([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	text := string(out)
	if !strings.Contains(text, "Atlético") || !strings.Contains(text, "Liga Española") {
		t.Fatalf("expected non-ASCII characters preserved literally, got %s", text)
	}
	if !strings.Contains(text, "\n  \"name\": \"Liga Española\"") {
		t.Fatalf("expected two-space indentation, got %s", text)
	}

	again, err := Unmarshal(out)
	if err != nil {
		t.Fatalf("reparse failed: %v", err)
	}
	if !reflect.DeepEqual(doc.Payload, again.Payload) {
		t.Fatalf("round trip changed payload:\n%v\n%v", doc.Payload, again.Payload)
	}
}

func TestMarshalIndentsNestedValues(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"name":"L","clubs":[{"name":"A","extra":{},"list":[]}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{
  "name": "L",
  "clubs": [
    {
      "name": "A",
      "extra": {},
      "list": []
    }
  ]
}`
	if string(out) != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshalKeepsSourceKeyOrder(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"season": 2024, "name": "Z\u00fcrich Cup", "clubs": [{"stadium": "X", "code": "ZH", "name": "FCZ"}], "area": {"z": 1, "a": null}}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := `{
  "season": 2024,
  "name": "Zürich Cup",
  "clubs": [
    {
      "stadium": "X",
      "code": "ZH",
      "name": "FCZ"
    }
  ],
  "area": {
    "z": 1,
    "a": null
  }
}`
	if string(out) != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", out, want)
	}
}

func TestMarshalPayloadOnlySortsKeys(t *testing.T) {
	doc := Document{Payload: map[string]any{"name": "L", "clubs": []any{}, "area": map[string]any{}}}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	want := "{\n  \"area\": {},\n  \"clubs\": [],\n  \"name\": \"L\"\n}"
	if string(out) != want {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestMarshalDoesNotEscapeHTML(t *testing.T) {
	doc, err := Unmarshal([]byte(`{"name": "A & B <C>", "clubs": []}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := Marshal(doc)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(out), "A & B <C>") {
		t.Fatalf("expected html characters kept literally, got %s", out)
	}
}

func TestMarshalRequiresPayload(t *testing.T) {
	if _, err := Marshal(Document{}); !errors.Is(err, ErrMalformedDocument) {
		t.Fatalf("expected malformed error for empty document, got %v", err)
	}
}

func TestFieldOr(t *testing.T) {
	if got := (Field{}).Or("N/A"); got != "N/A" {
		t.Fatalf("expected fallback, got %s", got)
	}
	if got := Set("").Or("N/A"); got != "" {
		t.Fatalf("expected present empty value kept, got %q", got)
	}
}
