// internal/cowin/date.go
package cowin

import "time"

const apiDateLayout = "02-01-2006"

var istLocation = loadIST()

func loadIST() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		// IST has no DST, so a fixed offset is equivalent when the host
		// lacks tzdata.
		return time.FixedZone("IST", 5*3600+30*60)
	}
	return loc
}

// APIDate formats the civil date of t in Indian Standard Time the way the
// calendarByDistrict endpoint expects it (DD-MM-YYYY).
func APIDate(t time.Time) string {
	return t.In(istLocation).Format(apiDateLayout)
}

// TodayIST returns today's date in Indian Standard Time, regardless of the
// host timezone.
func TodayIST() string {
	return APIDate(time.Now())
}
