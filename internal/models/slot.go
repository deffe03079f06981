package models

// Slot is a session that passed every active filter, flattened with its
// center details for notification. Slots live only for the duration of a
// run; nothing stores or deduplicates them.
type Slot struct {
	CenterName    string `json:"centerName"`
	Address       string `json:"address"`
	Date          string `json:"date"`
	Vaccine       string `json:"vaccine"`
	Capacity      int    `json:"capacity"`
	Dose1Capacity int    `json:"dose1Capacity"`
	Dose2Capacity int    `json:"dose2Capacity"`
	MinAgeLimit   int    `json:"minAgeLimit"`
}
