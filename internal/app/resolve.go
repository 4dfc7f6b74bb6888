package app

import (
	"encoding/json"
	"fmt"

	"github.com/blackwell-systems/incpath/includepath"
	"github.com/blackwell-systems/incpath/internal/output"
	"github.com/spf13/cobra"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve [ref...]",
	Short: "Resolve references to canonical paths",
	Long: `Resolve each reference against the search list and print the canonical
path of the first match. Earlier directories shadow later ones. An absolute
reference is checked as-is (the search list must still be non-empty).

Exits non-zero if any reference is not found.

Examples:
  incpath resolve -I include -I /usr/include stdio.h sys/types.h
  incpath resolve --json -I proto Common.ipdlh
  INCPATH_PATH=/opt/sdk/include:/usr/include incpath resolve zlib.h`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

// resolveOutput is the JSON-serializable result of the resolve command.
type resolveOutput struct {
	SearchList []string             `json:"search_list"`
	Results    []includepath.Result `json:"results"`
	Missing    int                  `json:"missing"`
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup(cmd)
	if err != nil {
		return err
	}

	searchList := cfg.SearchList(flagInclude)
	if len(searchList) == 0 {
		log.Warn("search list is empty; no reference can be found")
	}
	log.WithField("search_list", searchList).Debug("resolving")

	r := &includepath.Resolver{}
	if flagVerbose {
		r.Trace = traceProbes(log)
	}

	results, err := r.ResolveAll(cmd.Context(), searchList, args, cfg.Concurrency)
	if err != nil {
		return fmt.Errorf("resolving references: %w", err)
	}

	missing := 0
	for _, res := range results {
		if !res.Found {
			missing++
		}
	}

	w := cmd.OutOrStdout()
	if flagJSON {
		out := resolveOutput{
			SearchList: searchList,
			Results:    results,
			Missing:    missing,
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			return err
		}
	} else {
		tbl := output.NewTable("", "Reference", "Resolved")
		for _, res := range results {
			path := res.Path
			if !res.Found {
				path = output.StyleMuted.Render("not found")
			}
			tbl.AddRow(output.Mark(res.Found), res.Ref, path)
		}
		tbl.Print(w)
	}

	if missing > 0 {
		return fmt.Errorf("%d of %d references not found", missing, len(results))
	}
	return nil
}
