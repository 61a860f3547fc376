package transform

import "github.com/phac-aspc/catalogue-go/pkg/catalogue/models"

// IDColumn is the column used to match rows against the approved list.
const IDColumn = "ID"

// FilterApproved keeps the rows whose ID is approved, preserving order.
// A table without an ID column passes through unfiltered; the second result
// reports whether filtering took place.
func FilterApproved(t *models.Table, approved *models.ApprovedIDSet) (*models.Table, bool) {
	idx := t.Index(IDColumn)
	if idx < 0 {
		return t, false
	}
	return t.Filter(func(r models.Row) bool {
		return approved.Contains(r[idx])
	}), true
}
