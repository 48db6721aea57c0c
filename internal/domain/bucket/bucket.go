package bucket

import (
	"time"

	"github.com/diegoclair/weekly-signup/internal/domain/entity"
)

const (
	// KeyLayout formats a bucket date as its storage key
	KeyLayout = "20060102"
	// DisplayLayout matches the de-DE short date format (no zero padding)
	DisplayLayout = "2.1.2006"
)

// NextSunday returns the calendar day of the upcoming event.
// On a Sunday before cutoffHour that is today; otherwise it is 7 - weekday days
// ahead, so a Sunday at or after the cutoff moves to the following Sunday.
// The result is midnight in now's location.
func NextSunday(now time.Time, cutoffHour int) time.Time {
	weekday := int(now.Weekday())

	daysUntilSunday := 7 - weekday
	if weekday == int(time.Sunday) && now.Hour() < cutoffHour {
		daysUntilSunday = 0
	}

	return time.Date(now.Year(), now.Month(), now.Day()+daysUntilSunday, 0, 0, 0, 0, now.Location())
}

// Key formats a bucket date as YYYYMMDD
func Key(date time.Time) string {
	return date.Format(KeyLayout)
}

// Display formats a bucket date for humans, e.g. 7.1.2024
func Display(date time.Time) string {
	return date.Format(DisplayLayout)
}

// For resolves the bucket for the given instant
func For(now time.Time, cutoffHour int) entity.Bucket {
	date := NextSunday(now, cutoffHour)
	return entity.Bucket{
		Date:    date,
		Key:     Key(date),
		Display: Display(date),
	}
}

// ValidKey reports whether key looks like a bucket key (8 digits forming a real date)
func ValidKey(key string) bool {
	if len(key) != len(KeyLayout) {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	_, err := time.Parse(KeyLayout, key)
	return err == nil
}

// Resolver resolves the current bucket against a clock in a fixed location.
// Read and write paths must share one Resolver so they agree on the key.
type Resolver struct {
	now        func() time.Time
	location   *time.Location
	cutoffHour int
}

// NewResolver creates a Resolver. A nil clock means time.Now, a nil location means time.Local.
func NewResolver(location *time.Location, cutoffHour int, now func() time.Time) *Resolver {
	if now == nil {
		now = time.Now
	}
	if location == nil {
		location = time.Local
	}
	return &Resolver{
		now:        now,
		location:   location,
		cutoffHour: cutoffHour,
	}
}

// Current returns the bucket for the resolver's current time
func (r *Resolver) Current() entity.Bucket {
	return For(r.Now(), r.cutoffHour)
}

// Now returns the resolver's clock reading in its location
func (r *Resolver) Now() time.Time {
	return r.now().In(r.location)
}

// Location returns the location buckets are computed in
func (r *Resolver) Location() *time.Location {
	return r.location
}
