package histstore

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/celldyn/mtstat/history"
)

// LoadCells fetches and decodes a batch of history recordings. Fetching and
// decoding run concurrently up to the given limit (0 means unbounded); the
// analysis itself stays single-threaded downstream. Results keep the order
// of names.
func LoadCells(ctx context.Context, s Store, names []string, v history.Version, limit int) ([]*history.Cell, error) {
	cells := make([]*history.Cell, len(names))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for k, name := range names {
		g.Go(func() error {
			rc, err := OpenDecoded(ctx, s, name)
			if err != nil {
				return fmt.Errorf("histstore: opening %q: %w", name, err)
			}
			defer rc.Close()

			cell, err := history.ReadCell(rc, v)
			if err != nil {
				return fmt.Errorf("histstore: decoding %q: %w", name, err)
			}
			cells[k] = cell
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return cells, nil
}
