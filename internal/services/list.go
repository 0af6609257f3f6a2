package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"ats/internal/domain"
	"ats/internal/query"
)

// ListRequest carries a decoded list query string and the URL it came from.
type ListRequest struct {
	Path    string
	RawURL  string
	Options query.Options
}

// Page is one page of a collection with its pagination metadata.
type Page[T any] struct {
	Items    []T
	Metadata query.Metadata
}

type collectionDef struct {
	collection string
	filters    query.Fields
	orders     query.Fields
}

// listPage runs the count, page check and read of one paginated collection.
func listPage[T any](ctx context.Context, store Lister[T], def collectionDef, req ListRequest) (Page[T], error) {
	opts := query.Prune(req.Options)
	page := opts.Int("page", query.DefaultPage)
	perPage := opts.Int("perPage", query.DefaultPerPage)

	q, err := query.Build(opts, def.filters, def.orders)
	if err != nil {
		return Page[T]{}, asValidation(err)
	}

	total, err := store.Count(ctx, q)
	if err != nil {
		return Page[T]{}, fmt.Errorf("count %s: %w", def.collection, err)
	}
	if total == 0 {
		return Page[T]{}, domain.EmptyCollectionError{Collection: def.collection, Filters: appliedFilters(opts, def.filters)}
	}

	p := query.NewPagination(req.Path, page, perPage, total, query.ExtractExtraParams(req.RawURL, req.Path))
	if p.ExceedsPageLimit() {
		return Page[T]{}, domain.ExceededPageIndexError{Msg: p.ExceedPageLimitHint()}
	}

	q.Skip, q.Take = p.Skip(), p.Take()
	items, err := store.List(ctx, q)
	if err != nil {
		return Page[T]{}, fmt.Errorf("list %s: %w", def.collection, err)
	}
	return Page[T]{Items: items, Metadata: p.Metadata()}, nil
}

func appliedFilters(opts query.Options, filters query.Fields) []string {
	out := make([]string, 0)
	for key := range filters {
		if opts.Filter(key) != nil {
			out = append(out, key)
		}
	}
	sort.Strings(out)
	return out
}

func asValidation(err error) error {
	var fe query.FilterError
	if errors.As(err, &fe) {
		return domain.ValidationError{Msg: fe.Msg, Err: err}
	}
	var ce query.InvalidCriteriaError
	if errors.As(err, &ce) {
		return domain.ValidationError{Msg: ce.Error(), Err: err}
	}
	return err
}

// checkSlugs fails when a slug filter under key names a resource that does not exist.
func checkSlugs(ctx context.Context, counter SlugCounter, opts query.Options, key string) error {
	f := opts.Filter(key)
	if f == nil {
		return nil
	}
	op, criterias := query.Operands(f)
	if op == query.OpIsNull || len(criterias) == 0 {
		return nil
	}
	unique := dedupe(criterias)
	n, err := counter.CountSlugs(ctx, unique)
	if err != nil {
		return err
	}
	if n != len(unique) {
		return domain.ValidationError{Msg: "Provided slugs does not match resources."}
	}
	return nil
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
