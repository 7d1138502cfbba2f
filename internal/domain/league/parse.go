package league

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
)

const (
	keyName    = "name"
	keyClubs   = "clubs"
	keyCode    = "code"
	keyCountry = "country"
)

// ErrMalformedDocument marks JSON that decodes but lacks the league shape.
var ErrMalformedDocument = errors.New("league document: unexpected format")

// ErrInvalidJSON marks payloads that are not JSON at all.
var ErrInvalidJSON = errors.New("league document: invalid json")

// codec keeps numbers verbatim and leaves non-ASCII and HTML characters unescaped.
var codec = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
	UseNumber:   true,
}.Froze()

// Decode reads r to the end and parses it as a league document.
func Decode(r io.Reader) (Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, err
	}
	return Unmarshal(data)
}

// Unmarshal parses data as a league document.
func Unmarshal(data []byte) (Document, error) {
	var raw any
	if err := codec.Unmarshal(data, &raw); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	doc, err := Parse(raw)
	if err != nil {
		return Document{}, err
	}
	doc.Raw = data
	return doc, nil
}

// Marshal renders the document pretty-printed with two-space indentation. Documents decoded
// from bytes keep their key order; documents built from a payload alone get sorted keys.
func Marshal(doc Document) ([]byte, error) {
	var (
		compact []byte
		err     error
	)
	switch {
	case len(doc.Raw) > 0:
		compact, err = reencode(doc.Raw)
	case doc.Payload != nil:
		compact, err = codec.Marshal(doc.Payload)
	default:
		return nil, fmt.Errorf("%w: empty payload", ErrMalformedDocument)
	}
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// reencode rewrites data compactly in source order, turning \u escapes into literal text.
func reencode(data []byte) ([]byte, error) {
	iter := codec.BorrowIterator(data)
	defer codec.ReturnIterator(iter)
	stream := codec.BorrowStream(nil)
	defer codec.ReturnStream(stream)

	copyValue(iter, stream)
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, iter.Error)
	}
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

func copyValue(iter *jsoniter.Iterator, stream *jsoniter.Stream) {
	switch iter.WhatIsNext() {
	case jsoniter.ObjectValue:
		stream.WriteObjectStart()
		first := true
		iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(key)
			copyValue(it, stream)
			return it.Error == nil
		})
		stream.WriteObjectEnd()
	case jsoniter.ArrayValue:
		stream.WriteArrayStart()
		first := true
		iter.ReadArrayCB(func(it *jsoniter.Iterator) bool {
			if !first {
				stream.WriteMore()
			}
			first = false
			copyValue(it, stream)
			return it.Error == nil
		})
		stream.WriteArrayEnd()
	case jsoniter.StringValue:
		stream.WriteString(iter.ReadString())
	case jsoniter.NumberValue:
		stream.WriteRaw(string(iter.ReadNumber()))
	case jsoniter.BoolValue:
		stream.WriteBool(iter.ReadBool())
	case jsoniter.NilValue:
		iter.ReadNil()
		stream.WriteNil()
	default:
		iter.ReportError("reencode", "unexpected value")
	}
}

// Parse checks that raw is an object holding a "clubs" array of objects.
func Parse(raw any) (Document, error) {
	obj, ok := raw.(map[string]any)
	if !ok {
		return Document{}, fmt.Errorf("%w: top level is %T", ErrMalformedDocument, raw)
	}
	clubsRaw, ok := obj[keyClubs]
	if !ok {
		return Document{}, fmt.Errorf("%w: missing %q", ErrMalformedDocument, keyClubs)
	}
	items, ok := clubsRaw.([]any)
	if !ok {
		return Document{}, fmt.Errorf("%w: %q is %T", ErrMalformedDocument, keyClubs, clubsRaw)
	}

	clubs := make([]Team, 0, len(items))
	for i, item := range items {
		club, ok := item.(map[string]any)
		if !ok {
			return Document{}, fmt.Errorf("%w: club %d is %T", ErrMalformedDocument, i, item)
		}
		clubs = append(clubs, Team{
			Name:    field(club, keyName),
			Code:    field(club, keyCode),
			Country: field(club, keyCountry),
		})
	}

	return Document{
		Name:    field(obj, keyName),
		Clubs:   clubs,
		Payload: obj,
	}, nil
}

// field treats JSON null like an absent key; non-string scalars are rendered as text.
func field(obj map[string]any, key string) Field {
	v, ok := obj[key]
	if !ok || v == nil {
		return Field{}
	}
	if s, ok := v.(string); ok {
		return Set(s)
	}
	return Set(fmt.Sprint(v))
}
