// Package stats computes transcript aggregates: earned and attempted credit
// totals, the truncated grade-point average, per-category credit breakdowns,
// and the category/subcategory pairs present in a record set.
//
// Every function takes the record slice and a filter.Criteria and returns
// plain values. Nothing is cached; callers recompute after any change to the
// records or the selection. A GPA with no eligible credit is math.NaN(), which
// callers must render as blank rather than zero.
package stats
