package store

import (
	"context"

	"ticket-scan/common/errs"
	"ticket-scan/model"
)

// ResourceCounts summarizes the cached rows per entity, used by the sync
// summary output and by tests.
type ResourceCounts struct {
	Categories int
	Items      int
	SubEvents  int
	Orders     int
	Positions  int
}

func (s *Store) Counts(ctx context.Context, event model.Event) (ResourceCounts, error) {
	db, err := s.reader(ctx, event)
	if err != nil {
		return ResourceCounts{}, err
	}

	var counts ResourceCounts
	for _, c := range []struct {
		table string
		dst   *int
	}{
		{"item_categories", &counts.Categories},
		{"items", &counts.Items},
		{"subevents", &counts.SubEvents},
		{"orders", &counts.Orders},
		{"order_positions", &counts.Positions},
	} {
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+c.table).Scan(c.dst); err != nil {
			return ResourceCounts{}, &errs.StoreError{Op: "count " + c.table, Err: err}
		}
	}

	return counts, nil
}
