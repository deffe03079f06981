// internal/slots/filter.go
package slots

import "cowin-slot-alert/internal/models"

// Options holds the eligibility switches for a run. An unset switch means
// its condition is never inspected.
type Options struct {
	Only18Plus    bool
	OnlyFirstDose bool
}

// Viable flattens the calendar into notification-ready slots, keeping only
// sessions that pass every active condition. Output order follows input
// order: centers as the API returned them, sessions within each center.
// Rejected sessions are dropped silently.
func Viable(calendar *models.CalendarResponse, opts Options) []models.Slot {
	var viable []models.Slot
	if calendar == nil {
		return viable
	}

	for _, center := range calendar.Centers {
		for _, session := range center.Sessions {
			// Skip sessions reserved for older groups
			if opts.Only18Plus && session.MinAge() > 18 {
				continue
			}
			// Skip sessions with too little first-dose capacity
			if opts.OnlyFirstDose && session.Dose1Capacity() < 5 {
				continue
			}
			if session.Capacity() > 0 {
				viable = append(viable, models.Slot{
					CenterName:    center.Name,
					Address:       center.Address,
					Date:          session.Date,
					Vaccine:       session.Vaccine,
					Capacity:      session.Capacity(),
					Dose1Capacity: session.Dose1Capacity(),
					Dose2Capacity: session.Dose2Capacity(),
					MinAgeLimit:   session.MinAge(),
				})
			}
		}
	}

	return viable
}

// SessionCount reports how many sessions the calendar carries in total,
// before any filtering.
func SessionCount(calendar *models.CalendarResponse) int {
	if calendar == nil {
		return 0
	}
	count := 0
	for _, center := range calendar.Centers {
		count += len(center.Sessions)
	}
	return count
}
