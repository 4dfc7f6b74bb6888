package output

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Table is a simple styled table renderer.
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given column headers.
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = visualLen(h)
	}
	return &Table{
		headers: headers,
		widths:  widths,
	}
}

// AddRow adds a row of values to the table. The number of values should
// match the number of headers.
func (t *Table) AddRow(values ...string) {
	row := make([]string, len(t.headers))
	for i := range t.headers {
		if i < len(values) {
			row[i] = values[i]
		}
		if w := visualLen(row[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.rows = append(t.rows, row)
}

// Render returns the formatted table as a string.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	var sb strings.Builder

	// Header row.
	for i, h := range t.headers {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(pad(StyleHeader.Render(h), t.widths[i]))
	}
	sb.WriteString("\n")

	// Separator.
	for i, w := range t.widths {
		if i > 0 {
			sb.WriteString("  ")
		}
		sb.WriteString(StyleMuted.Render(strings.Repeat("─", w)))
	}
	sb.WriteString("\n")

	// Data rows.
	for _, row := range t.rows {
		for i, cell := range row {
			if i > 0 {
				sb.WriteString("  ")
			}
			sb.WriteString(pad(cell, t.widths[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String implements fmt.Stringer.
func (t *Table) String() string {
	return t.Render()
}

// Print writes the table to w.
func (t *Table) Print(w io.Writer) {
	fmt.Fprint(w, t.Render())
}

// ansiPattern matches SGR escape sequences emitted by lipgloss.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// visualLen is the printed width of s: runes, ignoring ANSI styling.
func visualLen(s string) int {
	return utf8.RuneCountInString(ansiPattern.ReplaceAllString(s, ""))
}

// pad right-pads a string to the given visual width.
func pad(s string, width int) string {
	n := visualLen(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
