// internal/models/cowin.go
package models

// CalendarResponse is the body of the CoWIN calendarByDistrict endpoint.
// A missing or empty centers key is a valid response meaning no centers
// are listed for the district that week.
type CalendarResponse struct {
	Centers []Center `json:"centers"`
}

// Center is a vaccination center with its week of sessions in the order
// the API returned them.
type Center struct {
	CenterID int       `json:"center_id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Pincode  float64   `json:"pincode"`
	FeeType  string    `json:"fee_type"`
	Sessions []Session `json:"sessions"`
}

// Session is one bookable day at a center. The API intermittently
// serializes numeric fields as floats, so they decode as float64 and the
// accessors truncate to int.
type Session struct {
	Date                   string  `json:"date"`
	AvailableCapacity      float64 `json:"available_capacity"`
	MinAgeLimit            float64 `json:"min_age_limit"`
	Vaccine                string  `json:"vaccine"`
	AvailableCapacityDose1 float64 `json:"available_capacity_dose1"`
	AvailableCapacityDose2 float64 `json:"available_capacity_dose2"`
}

// PostalCode returns the center pincode as an int.
func (c *Center) PostalCode() int {
	return int(c.Pincode)
}

// Capacity returns the total open capacity as an int.
func (s *Session) Capacity() int {
	return int(s.AvailableCapacity)
}

// MinAge returns the minimum eligible age as an int.
func (s *Session) MinAge() int {
	return int(s.MinAgeLimit)
}

// Dose1Capacity returns the open first-dose capacity as an int.
func (s *Session) Dose1Capacity() int {
	return int(s.AvailableCapacityDose1)
}

// Dose2Capacity returns the open second-dose capacity as an int.
func (s *Session) Dose2Capacity() int {
	return int(s.AvailableCapacityDose2)
}
