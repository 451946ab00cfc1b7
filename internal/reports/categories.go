package reports

import "fintrack/internal/models"

// CategoryResolver resolves a transaction's literal category string to
// a known Category. The data model links transactions to categories by
// name rather than by ID; keeping the lookup behind this interface
// means a future move to ID references only touches implementations.
type CategoryResolver interface {
	ResolveCategory(name string) (*models.Category, bool)
}

// NameResolver matches category names by exact string equality, the
// same rule the aggregation uses for breakdown keys.
type NameResolver struct {
	byName map[string]*models.Category
}

// NewNameResolver builds a resolver over a category snapshot. When two
// categories share a name the first one wins.
func NewNameResolver(categories []models.Category) *NameResolver {
	byName := make(map[string]*models.Category, len(categories))
	for i := range categories {
		if _, exists := byName[categories[i].Name]; !exists {
			byName[categories[i].Name] = &categories[i]
		}
	}
	return &NameResolver{byName: byName}
}

func (r *NameResolver) ResolveCategory(name string) (*models.Category, bool) {
	category, ok := r.byName[name]
	return category, ok
}

// OrphanCategories returns the breakdown keys that no longer resolve
// to an existing category, sorted order not guaranteed. Renaming or
// deleting a category orphans its historical transactions; they keep
// aggregating under the literal name and are surfaced here so reports
// can flag them.
func OrphanCategories(totals Totals, resolver CategoryResolver) []string {
	orphans := make([]string, 0)
	for name := range totals.CategoryBreakdown {
		if _, ok := resolver.ResolveCategory(name); !ok {
			orphans = append(orphans, name)
		}
	}
	return orphans
}
