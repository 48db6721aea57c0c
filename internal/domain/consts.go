package domain

// Signup status values as submitted by the signup form
const (
	StatusYes   = "ja"
	StatusMaybe = "vielleicht"
	StatusNo    = "nein"
)

// ValidStatuses lists the accepted statuses in display order
var ValidStatuses = []string{StatusYes, StatusMaybe, StatusNo}

// IsValidStatus reports whether status is one of ValidStatuses
func IsValidStatus(status string) bool {
	for _, s := range ValidStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// DefaultCutoffHour is the hour on Sunday after which signups roll over to the following week
const DefaultCutoffHour = 15

// Validation failure reasons, sent to the client as-is
const (
	ReasonMissingFields = "Missing fields"
	ReasonInvalidStatus = "Invalid status"
	ReasonInvalidName   = "Invalid name"
)

// ISO 8601 weekday constants and mappings
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)

// WeekdayNames maps ISO 8601 weekday numbers to their German names
var WeekdayNames = map[int]string{
	Monday:    "Montag",
	Tuesday:   "Dienstag",
	Wednesday: "Mittwoch",
	Thursday:  "Donnerstag",
	Friday:    "Freitag",
	Saturday:  "Samstag",
	Sunday:    "Sonntag",
}

// WeekdayNumbers maps weekday numbers as strings to integers
var WeekdayNumbers = map[string]int{
	"1": Monday,
	"2": Tuesday,
	"3": Wednesday,
	"4": Thursday,
	"5": Friday,
	"6": Saturday,
	"7": Sunday,
}

// DefaultSummaryDays posts the weekly summary on Sunday only
var DefaultSummaryDays = []int{Sunday}
