package sitecontent

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Search runs the unified search across all six content types: one
// case-insensitive substring query per kind, each row tagged with its kind
// and resolved reference labels, merged into a single stably sorted feed.
// Any per-kind fetch error aborts the whole call.
func (s *service) Search(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	var (
		albums     []*Album
		blogs      []*Blog
		documents  []*Document
		businesses []*Business
		products   []*Product
		projects   []*Project
	)

	// The fetches are independent; each writes its own slot, so the merge
	// below sees a fixed kind order regardless of completion order.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		albums, err = s.store.ListAlbums(gctx, AlbumFilter{Name: req.Name})
		return err
	})
	g.Go(func() error {
		var err error
		blogs, err = s.store.ListBlogs(gctx, BlogFilter{Title: req.Name})
		return err
	})
	g.Go(func() error {
		var err error
		documents, err = s.store.ListDocuments(gctx, DocumentFilter{Name: req.Name})
		return err
	})
	g.Go(func() error {
		var err error
		businesses, err = s.store.ListBusinesses(gctx, BusinessFilter{Title: req.Name})
		return err
	})
	g.Go(func() error {
		var err error
		products, err = s.store.ListProducts(gctx, ProductFilter{Title: req.Name})
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.store.ListProjects(gctx, ProjectFilter{Title: req.Name})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	features := make([]FeatureRecord, 0,
		len(albums)+len(blogs)+len(documents)+len(businesses)+len(products)+len(projects))
	for _, a := range albums {
		features = append(features, albumFeature(a))
	}
	for _, b := range blogs {
		features = append(features, blogFeature(b))
	}
	for _, d := range documents {
		features = append(features, documentFeature(d))
	}
	for _, b := range businesses {
		features = append(features, businessFeature(b))
	}
	for _, p := range products {
		features = append(features, productFeature(p))
	}
	for _, p := range projects {
		features = append(features, projectFeature(p))
	}

	sortFeatures(features, req.SortBy, req.Order)

	// The newest timestamp is derived from the merged set, not from any
	// single kind's own latest row.
	newest := newestActivity(features)

	return &SearchResult{
		Total:  len(features),
		Newest: FormatReadableTime(newest),
		Items:  features,
	}, nil
}

// sortFeatures stably sorts the merged feed in place. Name comparison is
// locale-aware; a missing activity timestamp sorts as oldest. Desc flips the
// comparator sign, so ties keep their concatenation order either way.
func sortFeatures(features []FeatureRecord, sortBy SearchSort, order SortOrder) {
	sign := 1
	if order == OrderDesc {
		sign = -1
	}

	if sortBy == SearchSortName {
		c := collate.New(language.Und, collate.Loose)
		sort.SliceStable(features, func(i, j int) bool {
			return sign*c.CompareString(features[i].DisplayName, features[j].DisplayName) < 0
		})
		return
	}

	sort.SliceStable(features, func(i, j int) bool {
		return sign*activityTime(features[i]).Compare(activityTime(features[j])) < 0
	})
}

func activityTime(f FeatureRecord) time.Time {
	if f.ActivityAt == nil {
		return time.Time{}
	}
	return *f.ActivityAt
}

// newestActivity scans the whole merged set for the maximum activity
// timestamp; nil when the set is empty or no record carries one.
func newestActivity(features []FeatureRecord) *time.Time {
	var newest *time.Time
	for i := range features {
		t := features[i].ActivityAt
		if t == nil || t.IsZero() {
			continue
		}
		if newest == nil || t.After(*newest) {
			newest = t
		}
	}
	return newest
}
