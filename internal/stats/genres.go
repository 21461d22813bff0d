package stats

import (
	"gradecheck/internal/filter"
	"gradecheck/internal/transcript"
)

// CategoryGroup is one discovered category with the subcategories seen under
// it. An empty Category is the "uncategorized" group.
type CategoryGroup struct {
	Category      string   `json:"category"`
	Subcategories []string `json:"subcategories"`
}

// DiscoverGenres returns the distinct category/subcategory pairs in records,
// grouped by category in first-seen order.
func DiscoverGenres(records []transcript.Record) []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := make(map[string]int)
	seen := make(map[[2]string]struct{})
	for _, r := range records {
		pos, ok := index[r.Category]
		if !ok {
			pos = len(groups)
			index[r.Category] = pos
			groups = append(groups, CategoryGroup{Category: r.Category, Subcategories: []string{}})
		}
		key := [2]string{r.Category, r.Subcategory}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		groups[pos].Subcategories = append(groups[pos].Subcategories, r.Subcategory)
	}
	return groups
}

// SubcategoryCredits is the earned credit under one subcategory.
type SubcategoryCredits struct {
	Subcategory string `json:"subcategory"`
	Credits     int    `json:"credits"`
}

// CategoryCredits is the earned credit under one category with its
// subcategory subtotals.
type CategoryCredits struct {
	Category      string               `json:"category"`
	Credits       int                  `json:"credits"`
	Subcategories []SubcategoryCredits `json:"subcategories"`
}

// Breakdown returns earned credits per discovered category and subcategory.
// The criteria's own whitelist is intersected with each group's constraint.
func Breakdown(records []transcript.Record, criteria filter.Criteria) []CategoryCredits {
	groups := DiscoverGenres(records)
	out := make([]CategoryCredits, 0, len(groups))
	for _, g := range groups {
		catCriteria := criteria
		catCriteria.Include = scoped(criteria.Include, filter.Constraints{filter.AttrCategory: {g.Category}})
		entry := CategoryCredits{
			Category:      g.Category,
			Credits:       EarnedCredits(records, catCriteria),
			Subcategories: make([]SubcategoryCredits, 0, len(g.Subcategories)),
		}
		for _, sub := range g.Subcategories {
			subCriteria := criteria
			subCriteria.Include = scoped(criteria.Include, filter.Constraints{
				filter.AttrCategory:    {g.Category},
				filter.AttrSubcategory: {sub},
			})
			entry.Subcategories = append(entry.Subcategories, SubcategoryCredits{
				Subcategory: sub,
				Credits:     EarnedCredits(records, subCriteria),
			})
		}
		out = append(out, entry)
	}
	return out
}

// scoped overlays group constraints on a whitelist. Keys already present in
// the base keep only the values both sides allow.
func scoped(base, group filter.Constraints) filter.Constraints {
	out := make(filter.Constraints, len(base)+len(group))
	for attr, values := range base {
		out[attr] = values
	}
	for attr, values := range group {
		existing, ok := out[attr]
		if !ok {
			out[attr] = values
			continue
		}
		kept := make([]string, 0, len(values))
		for _, v := range values {
			for _, e := range existing {
				if e == v {
					kept = append(kept, v)
					break
				}
			}
		}
		out[attr] = kept
	}
	return out
}
