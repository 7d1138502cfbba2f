package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/preston-bernstein/football-leagues/internal/domain/league"
)

const (
	columnName = "name"
	columnCode = "code"
	columnGap  = "  "
)

// TableRow is one numbered club line.
type TableRow struct {
	Index int
	Name  string
	Code  string
}

// Table lists clubs by name and code, numbered from 1.
type Table struct {
	Rows []TableRow
}

// BuildTable lists every club; absent names and codes become empty cells.
func BuildTable(doc league.Document) Table {
	rows := make([]TableRow, 0, len(doc.Clubs))
	for i, club := range doc.Clubs {
		rows = append(rows, TableRow{
			Index: i + 1,
			Name:  club.Name.Or(""),
			Code:  club.Code.Or(""),
		})
	}
	return Table{Rows: rows}
}

// Render writes the table with centered headers and right-aligned cells.
// Widths are measured in terminal cells so accented and wide names stay aligned.
func (t Table) Render(w io.Writer) error {
	indexWidth := 0
	nameWidth := runewidth.StringWidth(columnName)
	codeWidth := runewidth.StringWidth(columnCode)
	for _, row := range t.Rows {
		indexWidth = max(indexWidth, len(strconv.Itoa(row.Index)))
		nameWidth = max(nameWidth, runewidth.StringWidth(row.Name))
		codeWidth = max(codeWidth, runewidth.StringWidth(row.Code))
	}

	header := strings.Repeat(" ", indexWidth) + columnGap + center(columnName, nameWidth) + columnGap + center(columnCode, codeWidth)
	if _, err := fmt.Fprintln(w, strings.TrimRight(header, " ")); err != nil {
		return err
	}
	for _, row := range t.Rows {
		line := runewidth.FillLeft(strconv.Itoa(row.Index), indexWidth) +
			columnGap + runewidth.FillLeft(row.Name, nameWidth) +
			columnGap + runewidth.FillLeft(row.Code, codeWidth)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}

// center pads s to width cells; odd padding puts the extra space on the right.
func center(s string, width int) string {
	pad := width - runewidth.StringWidth(s)
	if pad <= 0 {
		return s
	}
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}
