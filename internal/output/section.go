package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Mark returns a check or cross styled for ok.
func Mark(ok bool) string {
	if ok {
		return StyleSuccess.Render("✓")
	}
	return StyleError.Render("✗")
}
