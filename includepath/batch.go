package includepath

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result is the outcome of resolving one reference in ResolveAll.
type Result struct {
	Ref   string `json:"ref"`
	Path  string `json:"path,omitempty"`
	Found bool   `json:"found"`
}

// ResolveAll resolves every ref against searchList, running at most limit
// lookups at once (limit <= 0 means no bound). Results are in the order of
// refs. The only error is ctx's, once it is done.
//
// Trace, if set, is called from several goroutines.
func (r *Resolver) ResolveAll(ctx context.Context, searchList []string, refs []string, limit int) ([]Result, error) {
	results := make([]Result, len(refs))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, ref := range refs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path, ok := r.Resolve(searchList, ref)
			results[i] = Result{Ref: ref, Path: path, Found: ok}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
