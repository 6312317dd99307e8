package allocation

import (
	"context"

	"github.com/puzpuzpuz/xsync/v4"
	"golang.org/x/sync/errgroup"
)

// fanOut runs fn once per key with at most a.parallelism workers in flight and
// collects the results by key. It returns after every worker finished; the
// first error cancels the remaining workers and is returned.
func (a *Allocator) fanOut(
	ctx context.Context,
	keys []string,
	fn func(ctx context.Context, key string) (map[string]int, error),
) (*xsync.Map[string, map[string]int], error) {
	results := xsync.NewMap[string, map[string]int]()

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(a.parallelism)

	for _, key := range keys {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}

			seats, err := fn(gCtx, key)
			if err != nil {
				return err
			}
			results.Store(key, seats)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
