package league

// CatalogEntry is one selectable league from the catalog, in file order.
type CatalogEntry struct {
	Name string
	URL  string
}

// Team is a club entry of a league document. Optional attributes keep track of presence
// because views default absent values differently.
type Team struct {
	Name    Field
	Code    Field
	Country Field
}

// Document is a parsed league payload. Payload keeps the full decoded JSON object so the
// cache can be rewritten without dropping attributes the views ignore. Raw holds the bytes the
// document was decoded from, when there were any, so the cache keeps the upstream key order.
type Document struct {
	Name    Field
	Clubs   []Team
	Payload map[string]any
	Raw     []byte
}

// Field is an optional string attribute.
type Field struct {
	Value   string
	Present bool
}

// Set returns a present field holding v.
func Set(v string) Field {
	return Field{Value: v, Present: true}
}

// Or returns the value when present, otherwise fallback.
func (f Field) Or(fallback string) string {
	if f.Present {
		return f.Value
	}
	return fallback
}

// TeamCount reports how many clubs the league lists.
func (d Document) TeamCount() int {
	return len(d.Clubs)
}
