package metadata

import "sort"

// Violation describes a single audit finding: the full identity of the
// offending declaration or member and a human-readable reason.
type Violation struct {
	Subject string
	Reason  string
}

// SortViolations orders findings by subject, then reason, ascending. Report
// output relies on this explicit ordering rather than any incidental
// iteration order.
func SortViolations(violations []Violation) {
	sort.Slice(violations, func(firstIndex, secondIndex int) bool {
		if violations[firstIndex].Subject != violations[secondIndex].Subject {
			return violations[firstIndex].Subject < violations[secondIndex].Subject
		}
		return violations[firstIndex].Reason < violations[secondIndex].Reason
	})
}
