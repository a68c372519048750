package servicebracket

import "go-payroll/internal/shared/ranges"

// Match returns the bracket whose range contains years, or nil when no
// bracket does. Brackets are expected to be active and non-overlapping, so
// at most one can match.
func Match(brackets []ServiceBracket, years int) *ServiceBracket {
	for i := range brackets {
		if ranges.Contains(brackets[i].MinYears, brackets[i].MaxYears, years) {
			return &brackets[i]
		}
	}
	return nil
}
