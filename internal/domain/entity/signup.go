package entity

import "time"

// Signup is a single RSVP record
type Signup struct {
	Name   string
	Status string
}

// Bucket identifies the upcoming Sunday all current signups belong to
type Bucket struct {
	Date    time.Time
	Key     string // YYYYMMDD, used as storage key
	Display string // d.m.yyyy
}

// BucketView is what readers of the current bucket get back
type BucketView struct {
	Paused  bool
	Message string
	Date    string
	Display string
	Signups map[string]string
}
