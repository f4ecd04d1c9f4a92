package importer

import (
	"context"
	"fmt"
)

// SubjectLookup is the injected capability for checking that a referenced
// subject actually exists. It is backed by the persistence layer; the
// pipeline never queries storage directly.
type SubjectLookup interface {
	Exists(ctx context.Context, id int64) (bool, error)
	// ExistsAll returns the subset of ids that exist. Preferred by the
	// validator: one round trip per import instead of one per row.
	ExistsAll(ctx context.Context, ids []int64) (map[int64]bool, error)
}

// ValidatedItem is a candidate whose subject reference has been
// confirmed. Only validated items may reach persistence.
type ValidatedItem struct {
	Candidate
}

// ValidateAll checks referential integrity for decoded candidates and
// splits them into validated items and rejected rows, preserving row
// order in both lists. The subject existence check is batched into a
// single ExistsAll call. A lookup failure is an infrastructure error and
// aborts the batch; it is never recorded as a row error.
func ValidateAll(ctx context.Context, lookup SubjectLookup, candidates []*Candidate) ([]ValidatedItem, []RowError, error) {
	if lookup == nil {
		return nil, nil, fmt.Errorf("subject lookup is required")
	}
	if len(candidates) == 0 {
		return nil, nil, nil
	}

	seen := make(map[int64]bool, len(candidates))
	ids := make([]int64, 0, len(candidates))
	for _, c := range candidates {
		if c.SubjectID > 0 && !seen[c.SubjectID] {
			seen[c.SubjectID] = true
			ids = append(ids, c.SubjectID)
		}
	}

	existing, err := lookup.ExistsAll(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("subject lookup failed: %w", err)
	}

	var validated []ValidatedItem
	var rejected []RowError
	for _, c := range candidates {
		// Defensive re-checks: the decoder should already guarantee
		// these, but the validator does not trust upstream invariants.
		if c.DayOfWeek < 0 || c.DayOfWeek > 6 {
			rejected = append(rejected, RowError{
				Row:     c.Line,
				Message: fmt.Sprintf("invalid day of week: %d", c.DayOfWeek),
			})
			continue
		}
		if c.StartTime == "" || c.EndTime == "" || c.Subject == "" || c.SubjectID <= 0 {
			rejected = append(rejected, RowError{Row: c.Line, Message: "missing required fields"})
			continue
		}
		if !existing[c.SubjectID] {
			rejected = append(rejected, RowError{
				Row:     c.Line,
				Message: fmt.Sprintf("subject with ID %d does not exist", c.SubjectID),
			})
			continue
		}
		validated = append(validated, ValidatedItem{Candidate: *c})
	}

	return validated, rejected, nil
}
