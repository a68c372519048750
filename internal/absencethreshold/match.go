package absencethreshold

import "go-payroll/internal/shared/ranges"

// Match returns the threshold whose range contains days, or nil when no
// threshold does.
func Match(thresholds []AbsenceThreshold, days int) *AbsenceThreshold {
	for i := range thresholds {
		if ranges.Contains(thresholds[i].MinDays, thresholds[i].MaxDays, days) {
			return &thresholds[i]
		}
	}
	return nil
}
