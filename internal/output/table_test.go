package output

import (
	"os"
	"strings"
	"testing"
)

func TestVisualLen_PlainText(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"hello", 5},
		{"", 0},
		{"abc def", 7},
	}

	for _, tc := range tests {
		got := visualLen(tc.input)
		if got != tc.want {
			t.Errorf("visualLen(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestVisualLen_StripsANSI(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{
			name:  "bold",
			input: "\x1b[1mhello\x1b[0m",
			want:  5,
		},
		{
			name:  "color",
			input: "\x1b[31mred\x1b[0m",
			want:  3,
		},
		{
			name:  "multiple sequences",
			input: "\x1b[1m\x1b[34mblue bold\x1b[0m",
			want:  9,
		},
		{
			name:  "no ansi",
			input: "plain text",
			want:  10,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := visualLen(tc.input)
			if got != tc.want {
				t.Errorf("visualLen() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  int // expected length of output
	}{
		{"needs padding", "hi", 10, 10},
		{"exact width", "hello", 5, 5},
		{"over width", "toolong", 3, 7}, // no truncation
		{"styled", "\x1b[32mok\x1b[0m", 4, len("\x1b[32mok\x1b[0m") + 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := pad(tc.input, tc.width)
			if len(got) != tc.want {
				t.Errorf("pad(%q, %d) len = %d, want %d", tc.input, tc.width, len(got), tc.want)
			}
		})
	}
}

func TestTable_Render(t *testing.T) {
	// Disable color so we get predictable output.
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Directory", "Exists")
	tbl.AddRow("/usr/include", "yes")
	tbl.AddRow("./third_party", "no")

	output := tbl.Render()

	// Should contain headers.
	if !strings.Contains(output, "Directory") {
		t.Error("expected header 'Directory' in output")
	}
	if !strings.Contains(output, "Exists") {
		t.Error("expected header 'Exists' in output")
	}

	// Should contain data.
	if !strings.Contains(output, "/usr/include") {
		t.Error("expected '/usr/include' in output")
	}
	if !strings.Contains(output, "./third_party") {
		t.Error("expected './third_party' in output")
	}

	// Should have separator line.
	if !strings.Contains(output, "─") {
		t.Error("expected separator character in output")
	}

	// Count lines: header + separator + 2 data rows = 4 lines.
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d", len(lines))
	}
}

func TestTable_EmptyHeaders(t *testing.T) {
	tbl := NewTable()
	output := tbl.Render()
	if output != "" {
		t.Errorf("expected empty output for empty table, got %q", output)
	}
}

func TestTable_ColumnWidths(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("A", "Canonical")
	tbl.AddRow("/very/long/search/dir", "X")

	output := tbl.Render()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")

	if len(lines) < 3 {
		t.Fatalf("expected at least 3 lines, got %d", len(lines))
	}

	// The data row should be padded so columns align.
	dataLine := lines[2]
	if !strings.Contains(dataLine, "/very/long/search/dir") {
		t.Error("expected data row to contain '/very/long/search/dir'")
	}
	// Header is padded to the widest cell.
	if !strings.HasPrefix(lines[0], "A"+strings.Repeat(" ", len("/very/long/search/dir")-1)+"  Canonical") {
		t.Errorf("header not aligned: %q", lines[0])
	}
}

func TestTable_String(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Col1")
	tbl.AddRow("Val1")

	// String() should equal Render().
	if tbl.String() != tbl.Render() {
		t.Error("String() != Render()")
	}
}

func TestSetNoColor(t *testing.T) {
	// After SetNoColor(true), StyleHeader should render without ANSI.
	SetNoColor(true)
	rendered := StyleHeader.Render("test")
	if strings.Contains(rendered, "\x1b[") {
		t.Error("expected no ANSI codes after SetNoColor(true)")
	}

	// After SetNoColor(false), we restore — but note: the original styles
	// are lost since SetNoColor only sets to plain. We just verify no crash
	// and that the function is idempotent.
	SetNoColor(false)
}

func TestTable_Print(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	tbl := NewTable("Ref", "Path")
	tbl.AddRow("hdr.h", "/inc/hdr.h")

	var sb strings.Builder
	tbl.Print(&sb)
	if sb.String() != tbl.Render() {
		t.Errorf("Print wrote %q, want %q", sb.String(), tbl.Render())
	}
}

func TestMark(t *testing.T) {
	SetNoColor(true)
	defer SetNoColor(false)

	if got := Mark(true); got != "✓" {
		t.Errorf("Mark(true) = %q", got)
	}
	if got := Mark(false); got != "✗" {
		t.Errorf("Mark(false) = %q", got)
	}
}

func TestIsTerminal_NilAndFile(t *testing.T) {
	if IsTerminal(nil) {
		t.Error("nil file reported as terminal")
	}
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Error("regular file reported as terminal")
	}
}
