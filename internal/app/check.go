package app

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/blackwell-systems/incpath/includepath"
	"github.com/blackwell-systems/incpath/internal/output"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Inspect the effective search list",
	Long: `Print the search list in search order with, for each directory, whether
it exists, its canonical path and whether an earlier entry already names the
same directory. Missing or unreadable entries are reported, not fatal:
resolve skips them too.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

// searchDirCheck describes one search list entry.
type searchDirCheck struct {
	Index       int    `json:"index"`
	Dir         string `json:"dir"`
	Exists      bool   `json:"exists"`
	IsDir       bool   `json:"is_dir"`
	Canonical   string `json:"canonical,omitempty"`
	DuplicateOf int    `json:"duplicate_of,omitempty"`
}

// checkOutput is the JSON-serializable result of the check command.
type checkOutput struct {
	Entries []searchDirCheck `json:"entries"`
	Usable  int              `json:"usable"`
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	searchList := cfg.SearchList(flagInclude)
	if len(searchList) == 0 {
		log.Warn("search list is empty")
	}

	entries := checkSearchList(includepath.OSFS{}, searchList)
	usable := 0
	for _, e := range entries {
		if e.IsDir && e.DuplicateOf == 0 {
			usable++
		}
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(checkOutput{Entries: entries, Usable: usable})
	}

	fmt.Fprintln(w, output.Section("Search list"))
	fmt.Fprintln(w)
	tbl := output.NewTable("#", "", "Directory", "Canonical", "Note")
	for _, e := range entries {
		tbl.AddRow(strconv.Itoa(e.Index), output.Mark(e.IsDir), displayDir(e.Dir), e.Canonical, checkNote(e))
	}
	tbl.Print(w)
	fmt.Fprintln(w)
	fmt.Fprintf(w, " %s\n", output.StyleBold.Render(fmt.Sprintf("%d/%d directories usable", usable, len(entries))))
	return nil
}

// checkSearchList inspects each entry in order. Indexes are 1-based.
func checkSearchList(fsys includepath.StatFS, searchList []string) []searchDirCheck {
	entries := make([]searchDirCheck, 0, len(searchList))
	seen := make(map[string]int)

	for i, dir := range searchList {
		e := searchDirCheck{Index: i + 1, Dir: dir}

		probe := dir
		if probe == "" {
			probe = "."
		}
		if fsys.Exists(probe) {
			e.Exists = true
			if info, err := fsys.Stat(probe); err == nil {
				e.IsDir = info.IsDir()
			}
			if canonical, err := fsys.Canonicalize(probe); err == nil {
				e.Canonical = canonical
				if first, ok := seen[canonical]; ok {
					e.DuplicateOf = first
				} else {
					seen[canonical] = e.Index
				}
			}
		}
		entries = append(entries, e)
	}
	return entries
}

func checkNote(e searchDirCheck) string {
	switch {
	case !e.Exists:
		return "missing or unreadable"
	case !e.IsDir:
		return "not a directory"
	case e.Canonical == "":
		return "cannot canonicalize"
	case e.DuplicateOf > 0:
		return fmt.Sprintf("same as #%d", e.DuplicateOf)
	}
	return ""
}

// displayDir shows the empty entry explicitly.
func displayDir(dir string) string {
	if dir == "" {
		return `"" (current directory)`
	}
	return dir
}
