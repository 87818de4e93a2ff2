// Package service implements the domain operations: reference checks on
// create, ID assignment, and cascading cleanup on delete.
package service

import (
	"fmt"
	"slices"
	"strings"
)

// paginate slices items[skip : skip+limit], clamped so out-of-range bounds
// yield an empty result instead of an error.
func paginate[T any](items []T, skip, limit int) []T {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(items) {
		return []T{}
	}
	end := skip + limit
	if end > len(items) || end < skip {
		end = len(items)
	}
	return items[skip:end]
}

// filterKey identifies one genre/parent filter combination.
func filterKey(genre string, parentID int) string {
	return fmt.Sprintf("genre=%s&parent=%d", strings.ToLower(genre), parentID)
}

// withoutID returns ids minus every occurrence of id, leaving ids untouched.
func withoutID(ids []int, id int) []int {
	return slices.DeleteFunc(slices.Clone(ids), func(v int) bool { return v == id })
}
