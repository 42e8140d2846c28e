package gevulot

import (
	"context"
	"iter"

	"github.com/gevulot-network/gevulot-go/gvpb"
)

// DefaultPageSize is the per-page limit used by the list iterators.
const DefaultPageSize = 100

// pageFetcher fetches one page and returns its items plus the cursor.
type pageFetcher[T any] func(ctx context.Context, page *gvpb.PageRequest) ([]T, *gvpb.PageResponse, error)

// paginate walks a cursor-paginated collection lazily: page N+1 is
// fetched only when the consumer advances past the last item of page
// N. Server order is preserved. A server that replays a continuation
// token, even a non-consecutive one, would cycle the walk forever, so
// every followed token is remembered and any repeat terminates the
// walk. Re-invoking the returned sequence restarts from the beginning.
func paginate[T any](ctx context.Context, pageSize uint64, fetch pageFetcher[T]) iter.Seq2[T, error] {
	if pageSize == 0 {
		pageSize = DefaultPageSize
	}
	return func(yield func(T, error) bool) {
		seen := make(map[string]struct{})
		page := &gvpb.PageRequest{Limit: pageSize}
		for {
			items, cursor, err := fetch(ctx, page)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			for _, item := range items {
				if !yield(item, nil) {
					return
				}
			}
			if cursor == nil || len(cursor.NextKey) == 0 {
				return
			}
			key := string(cursor.NextKey)
			if _, ok := seen[key]; ok {
				return
			}
			seen[key] = struct{}{}
			page = &gvpb.PageRequest{Key: cursor.NextKey, Limit: pageSize}
		}
	}
}
